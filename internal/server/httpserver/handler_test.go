package httpserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knightride/knightride/internal/logging"
	"github.com/knightride/knightride/internal/server/config"
	"github.com/knightride/knightride/internal/server/repositories/repomanager"
	"github.com/knightride/knightride/internal/server/services"
)

const testSecret = "test-secret"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		SecretKey:                   testSecret,
		AccessTokenValidityDuration: time.Hour,
	}

	repos := repomanager.NewInMemoryRepositoryManager()

	userService := services.NewUserService(repos.Users(), repos.Contacts(), cfg)
	directoryService := services.NewDirectoryService(repos.Stations())
	contactService := services.NewContactService(repos.Contacts())
	assistService := services.NewAssistService(repos.Requests(), repos.Alerts(), repos.Stations(), repos.Contacts())

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	h := NewHandler(userService, directoryService, contactService, assistService, []byte(testSecret), logger)
	return NewRouter(h)
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func registerUser(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/auth/register", "", gin.H{
		"name":       "Rider",
		"email":      email,
		"phone":      "+91 9000000000",
		"password":   "pw",
		"bike_model": "Classic 350",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode(t, w)["access_token"].(string)
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Knight Ride API is running!", decode(t, w)["message"])
}

func TestRegisterLoginProfile(t *testing.T) {
	router := newTestRouter(t)

	token := registerUser(t, router, "a@x.com")
	require.NotEmpty(t, token)

	// duplicate registration fails
	w := doJSON(t, router, http.MethodPost, "/auth/register", "", gin.H{
		"name": "Again", "email": "a@x.com", "phone": "1", "password": "pw", "bike_model": "b",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// login with the right password
	w = doJSON(t, router, http.MethodPost, "/auth/login", "", gin.H{"email": "a@x.com", "password": "pw"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "bearer", body["token_type"])
	assert.NotEmpty(t, body["user_id"])

	// login with the wrong password
	w = doJSON(t, router, http.MethodPost, "/auth/login", "", gin.H{"email": "a@x.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// profile with a valid token, password hash never leaks
	w = doJSON(t, router, http.MethodGet, "/user/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	profile := decode(t, w)
	assert.Equal(t, "a@x.com", profile["email"])
	assert.NotContains(t, w.Body.String(), "password")
}

func TestProtectedRoutesRejectBadTokens(t *testing.T) {
	router := newTestRouter(t)

	// no header
	w := doJSON(t, router, http.MethodGet, "/user/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// garbage token
	w = doJSON(t, router, http.MethodGet, "/contacts", "not.a.jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestNearbyServices(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/location/nearby-services", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["services"], 4)

	w = doJSON(t, router, http.MethodGet, "/location/nearby-services?service_type=garage", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["services"], 2)

	w = doJSON(t, router, http.MethodGet, "/location/nearby-services?service_type=helipad", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["services"], 0)
}

func TestRequestService(t *testing.T) {
	router := newTestRouter(t)
	token := registerUser(t, router, "a@x.com")

	w := doJSON(t, router, http.MethodPost, "/request-service", token, gin.H{
		"service_id":   "1",
		"location":     gin.H{"lat": 19.07, "lng": 72.87},
		"message":      "out of fuel",
		"service_type": "fuel",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "pending", body["status"])
	assert.Equal(t, "Service request sent to Shell Petrol Pump", body["message"])
	assert.Equal(t, "15-30 minutes", body["estimated_arrival"])
	assert.NotEmpty(t, body["request_id"])

	// unknown service id
	w = doJSON(t, router, http.MethodPost, "/request-service", token, gin.H{
		"service_id": "999", "location": gin.H{"lat": 0, "lng": 0}, "message": "", "service_type": "fuel",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestContactsAndSOS(t *testing.T) {
	router := newTestRouter(t)
	token := registerUser(t, router, "a@x.com")

	// SOS before any contacts: snapshot is zero
	w := doJSON(t, router, http.MethodPost, "/sos/send", token, gin.H{
		"location": gin.H{"lat": 1.0, "lng": 2.0}, "message": "crash",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "sent", body["status"])
	assert.Equal(t, float64(0), body["contacts_notified"])

	for i := 0; i < 3; i++ {
		w = doJSON(t, router, http.MethodPost, "/contacts/add", token, gin.H{
			"name": fmt.Sprintf("Contact %d", i), "phone": "+91 90000", "relationship": "family",
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Contact added successfully", decode(t, w)["message"])
	}

	w = doJSON(t, router, http.MethodGet, "/contacts", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["contacts"], 3)

	// SOS snapshot reflects the current contact count
	w = doJSON(t, router, http.MethodPost, "/sos/send", token, gin.H{
		"location": gin.H{"lat": 1.0, "lng": 2.0}, "message": "crash",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(3), decode(t, w)["contacts_notified"])

	// positional delete shifts the remainder down
	w = doJSON(t, router, http.MethodDelete, "/contacts/0", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, "Contact deleted successfully", body["message"])
	deleted := body["deleted_contact"].(map[string]any)
	assert.Equal(t, "Contact 0", deleted["name"])

	w = doJSON(t, router, http.MethodGet, "/contacts", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	remaining := decode(t, w)["contacts"].([]any)
	require.Len(t, remaining, 2)
	assert.Equal(t, "Contact 1", remaining[0].(map[string]any)["name"])
	assert.Equal(t, "Contact 2", remaining[1].(map[string]any)["name"])

	// out-of-range and malformed indices
	w = doJSON(t, router, http.MethodDelete, "/contacts/5", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/contacts/abc", token, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestContactsAreScopedPerUser(t *testing.T) {
	router := newTestRouter(t)
	tokenA := registerUser(t, router, "a@x.com")
	tokenB := registerUser(t, router, "b@x.com")

	w := doJSON(t, router, http.MethodPost, "/contacts/add", tokenA, gin.H{
		"name": "Mom", "phone": "1", "relationship": "family",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/contacts", tokenB, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["contacts"], 0)
}

func TestMalformedBodyRejected(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
