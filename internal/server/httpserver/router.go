package httpserver

import "github.com/gin-gonic/gin"

// NewRouter builds the gin engine. Registration, login, the station
// directory and the health check are public; everything else sits behind
// the bearer-token middleware.
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(requestLogger(h.logger))

	router.GET("/", h.Health)
	router.POST("/auth/register", h.Register)
	router.POST("/auth/login", h.Login)
	router.GET("/location/nearby-services", h.NearbyServices)

	protected := router.Group("/")
	protected.Use(bearerAuth(h.jwtSecret))
	{
		protected.GET("/user/profile", h.Profile)
		protected.POST("/request-service", h.RequestService)
		protected.POST("/sos/send", h.SendSOS)
		protected.POST("/contacts/add", h.AddContact)
		protected.GET("/contacts", h.ListContacts)
		protected.DELETE("/contacts/:index", h.DeleteContact)
	}

	return router
}
