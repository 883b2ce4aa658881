package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/knightride/knightride/internal/common"
	"github.com/knightride/knightride/internal/logging"
	"github.com/knightride/knightride/internal/server/services"
)

const estimatedArrival = "15-30 minutes"

// Handler holds the services behind the HTTP API.
type Handler struct {
	userService      *services.UserService
	directoryService *services.DirectoryService
	contactService   *services.ContactService
	assistService    *services.AssistService
	jwtSecret        []byte
	logger           logging.Logger
}

func NewHandler(userService *services.UserService, directoryService *services.DirectoryService,
	contactService *services.ContactService, assistService *services.AssistService,
	jwtSecret []byte, logger logging.Logger) *Handler {
	return &Handler{
		userService:      userService,
		directoryService: directoryService,
		contactService:   contactService,
		assistService:    assistService,
		jwtSecret:        jwtSecret,
		logger:           logger,
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Knight Ride API is running!"})
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "invalid request body"})
		return
	}

	result, err := h.userService.Register(c.Request.Context(),
		req.Name, req.Email, req.Phone, req.Password, req.BikeModel)
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Email already registered"})
			return
		}
		h.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokenResponse{
		AccessToken: result.AccessToken,
		TokenType:   "bearer",
		UserID:      result.User.ID,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "invalid request body"})
		return
	}

	result, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid credentials"})
			return
		}
		h.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokenResponse{
		AccessToken: result.AccessToken,
		TokenType:   "bearer",
		UserID:      result.User.ID,
	})
}

func (h *Handler) Profile(c *gin.Context) {
	user, err := h.userService.GetProfile(c.Request.Context(), c.GetString(userEmailKey))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
			return
		}
		h.internalError(c, err)
		return
	}

	// models.User hides the password hash from JSON
	c.JSON(http.StatusOK, user)
}

func (h *Handler) NearbyServices(c *gin.Context) {
	stations, err := h.directoryService.ListNearby(c.Request.Context(), c.Query("service_type"))
	if err != nil {
		h.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": stations})
}

func (h *Handler) RequestService(c *gin.Context) {
	var req serviceRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "invalid request body"})
		return
	}

	request, err := h.assistService.SubmitServiceRequest(c.Request.Context(),
		c.GetString(userEmailKey), req.ServiceID, req.Location, req.Message, req.ServiceType)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Service not found"})
			return
		}
		h.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, serviceRequestResponse{
		RequestID:        request.ID,
		Status:           string(request.Status),
		Message:          fmt.Sprintf("Service request sent to %s", request.ServiceName),
		EstimatedArrival: estimatedArrival,
	})
}

func (h *Handler) SendSOS(c *gin.Context) {
	var req sosRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "invalid request body"})
		return
	}

	alert, err := h.assistService.SubmitSOS(c.Request.Context(),
		c.GetString(userEmailKey), req.Location, req.Message)
	if err != nil {
		h.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, sosResponse{
		SOSID:            alert.ID,
		Status:           "sent",
		ContactsNotified: alert.ContactsNotified,
		Message:          "Emergency alert sent successfully",
	})
}

func (h *Handler) AddContact(c *gin.Context) {
	var req contactRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "invalid request body"})
		return
	}

	contact, err := h.contactService.Add(c.Request.Context(),
		c.GetString(userEmailKey), req.Name, req.Phone, req.Relationship)
	if err != nil {
		h.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Contact added successfully",
		"contact": contact,
	})
}

func (h *Handler) ListContacts(c *gin.Context) {
	contacts, err := h.contactService.List(c.Request.Context(), c.GetString(userEmailKey))
	if err != nil {
		h.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"contacts": contacts})
}

func (h *Handler) DeleteContact(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "invalid contact index"})
		return
	}

	deleted, err := h.contactService.DeleteAt(c.Request.Context(), c.GetString(userEmailKey), index)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Contact not found"})
			return
		}
		h.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Contact deleted successfully",
		"deleted_contact": deleted,
	})
}

func (h *Handler) internalError(c *gin.Context, err error) {
	h.logger.Error(c.Request.Context(), "request failed",
		"path", c.Request.URL.Path, "error", err.Error())
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
}
