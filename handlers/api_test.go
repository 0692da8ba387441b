package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderai/wanderai-backend/config"
	"github.com/wanderai/wanderai-backend/handlers"
	"github.com/wanderai/wanderai-backend/logger"
	"github.com/wanderai/wanderai-backend/router"
	"github.com/wanderai/wanderai-backend/services"
	"github.com/wanderai/wanderai-backend/store/memory"
	"github.com/wanderai/wanderai-backend/types"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.IsTest = true
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Environment:      config.EnvDevelopment,
			Port:             "8080",
			AllowedOrigins:   []string{"*"},
			Version:          "test",
			JwtSecretKey:     "test-secret-key-at-least-32-chars-long",
			TokenExpiryHours: 1,
		},
		Currency:  config.CurrencyConfig{Canonical: "INR", USDRate: 83.25},
		UserStore: config.UserStoreMemory,
	}
}

func newTestEngine(t *testing.T) (*gin.Engine, *services.AuthService) {
	t.Helper()
	cfg := testConfig()

	users := memory.NewSeededUserStore()
	authService := services.NewAuthService(users, cfg.Server.JwtSecretKey, time.Hour, nil)

	curated := services.DefaultCuratedDataset()
	itineraryService := services.NewItineraryService(
		services.NewTieredPlaceProvider(nil, curated, nil),
		services.NewChatNarrativeProvider(nil),
		services.NewBudgetAllocator(services.DefaultCostTables()),
		services.NewCurrencyConverter(cfg.Currency.USDRate),
		services.DefaultHotelTemplates(),
		nil,
	)
	healthService := services.NewHealthService(cfg.Server.Version, false, false, users, nil, false, nil)

	engine := router.New(router.Dependencies{
		Config:      cfg,
		Auth:        authService,
		Itineraries: handlers.NewItineraryHandler(itineraryService, services.NewCityInfoService(curated)),
		AuthHandler: handlers.NewAuthHandler(authService),
		Health:      handlers.NewHealthHandler(healthService, cfg),
	})
	return engine, authService
}

func doJSON(engine *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func loginToken(t *testing.T, engine *gin.Engine, email, password string) string {
	t.Helper()
	w := doJSON(engine, http.MethodPost, "/v1/auth/login", "", gin.H{"email": email, "password": password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp types.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestLoginEndpoint(t *testing.T) {
	engine, _ := newTestEngine(t)

	w := doJSON(engine, http.MethodPost, "/v1/auth/login", "", gin.H{
		"email":    "user@wanderai.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp types.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.User)
	assert.Equal(t, "user@wanderai.com", resp.User.Email)
	assert.NotEmpty(t, resp.Token)
}

func TestLoginWrongPassword(t *testing.T) {
	engine, _ := newTestEngine(t)

	w := doJSON(engine, http.MethodPost, "/v1/auth/login", "", gin.H{
		"email":    "user@wanderai.com",
		"password": "nope",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "bad_credentials")
}

func TestSignupEndpoint(t *testing.T) {
	engine, _ := newTestEngine(t)

	w := doJSON(engine, http.MethodPost, "/v1/auth/signup", "", gin.H{
		"name":            "New Traveler",
		"email":           "new@example.com",
		"password":        "Wanderlust1",
		"confirmPassword": "Wanderlust1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Duplicate signup conflicts.
	w = doJSON(engine, http.MethodPost, "/v1/auth/signup", "", gin.H{
		"name":            "New Traveler",
		"email":           "new@example.com",
		"password":        "Wanderlust1",
		"confirmPassword": "Wanderlust1",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSignupValidation(t *testing.T) {
	engine, _ := newTestEngine(t)

	testCases := []struct {
		name string
		body gin.H
	}{
		{name: "short password", body: gin.H{"name": "T", "email": "a@b.com", "password": "short", "confirmPassword": "short"}},
		{name: "no uppercase letter", body: gin.H{"name": "Traveler", "email": "a@b.com", "password": "alllowercase1", "confirmPassword": "alllowercase1"}},
		{name: "no digit", body: gin.H{"name": "Traveler", "email": "a@b.com", "password": "NoDigitsHere", "confirmPassword": "NoDigitsHere"}},
		{name: "mismatched confirm", body: gin.H{"name": "Traveler", "email": "a@b.com", "password": "Longenough1", "confirmPassword": "Different1"}},
		{name: "bad email", body: gin.H{"name": "Traveler", "email": "not-an-email", "password": "Longenough1", "confirmPassword": "Longenough1"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(engine, http.MethodPost, "/v1/auth/signup", "", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestGenerateItineraryEndpoint(t *testing.T) {
	engine, _ := newTestEngine(t)
	token := loginToken(t, engine, "user@wanderai.com", "password123")

	w := doJSON(engine, http.MethodPost, "/v1/itinerary/generate", token, gin.H{
		"city":       "Mathura",
		"budget":     1000,
		"days":       3,
		"difficulty": "medium",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Success bool            `json:"success"`
		Data    types.Itinerary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Mathura", resp.Data.Destination)
	assert.Equal(t, types.PlaceSourceCurated, resp.Data.PlaceSource)
	require.Len(t, resp.Data.Days, 3)
	assert.Equal(t, "INR", resp.Data.Currency)
}

func TestGenerateItineraryRequiresAuth(t *testing.T) {
	engine, _ := newTestEngine(t)

	w := doJSON(engine, http.MethodPost, "/v1/itinerary/generate", "", gin.H{
		"city": "Mathura", "budget": 1000, "days": 3, "difficulty": "medium",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token_missing")
}

func TestGenerateItineraryValidation(t *testing.T) {
	engine, _ := newTestEngine(t)
	token := loginToken(t, engine, "user@wanderai.com", "password123")

	w := doJSON(engine, http.MethodPost, "/v1/itinerary/generate", token, gin.H{
		"city": "Mathura", "budget": 50, "days": 15, "difficulty": "medium",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVerifyEndpoint(t *testing.T) {
	engine, _ := newTestEngine(t)
	token := loginToken(t, engine, "admin@wanderai.com", "admin123")

	w := doJSON(engine, http.MethodGet, "/v1/auth/verify", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp types.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.User)
	assert.Equal(t, "admin@wanderai.com", resp.User.Email)
}

func TestCityInfoEndpoint(t *testing.T) {
	engine, _ := newTestEngine(t)
	token := loginToken(t, engine, "user@wanderai.com", "password123")

	w := doJSON(engine, http.MethodGet, "/v1/city/mathura", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool           `json:"success"`
		Data    types.CityInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "India", resp.Data.Country)
	assert.Contains(t, resp.Data.PopularAttractions, "Krishna Janmabhoomi Temple")
}

func TestAdminOnlyEndpoints(t *testing.T) {
	engine, _ := newTestEngine(t)
	userToken := loginToken(t, engine, "user@wanderai.com", "password123")
	adminToken := loginToken(t, engine, "admin@wanderai.com", "admin123")

	for _, path := range []string{"/v1/auth/users", "/v1/config"} {
		w := doJSON(engine, http.MethodGet, path, userToken, nil)
		assert.Equalf(t, http.StatusForbidden, w.Code, "non-admin must be rejected from %s", path)

		w = doJSON(engine, http.MethodGet, path, adminToken, nil)
		assert.Equalf(t, http.StatusOK, w.Code, "admin must be allowed on %s", path)
	}
}

func TestConfigEndpointMasksSecrets(t *testing.T) {
	engine, _ := newTestEngine(t)
	adminToken := loginToken(t, engine, "admin@wanderai.com", "admin123")

	w := doJSON(engine, http.MethodGet, "/v1/config", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), testConfig().Server.JwtSecretKey)
}

func TestHealthEndpoint(t *testing.T) {
	engine, _ := newTestEngine(t)

	w := doJSON(engine, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var check types.HealthCheck
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &check))
	// No maps or AI key configured: degraded, but serving.
	assert.Equal(t, types.HealthStatusDegraded, check.Status)
	assert.Equal(t, types.HealthStatusDegraded, check.Components["placeProvider"].Status)
	assert.Equal(t, types.HealthStatusUp, check.Components["userStore"].Status)
}

func TestExpiredTokenCode(t *testing.T) {
	cfg := testConfig()
	users := memory.NewSeededUserStore()

	issued := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	past := services.NewAuthService(users, cfg.Server.JwtSecretKey, time.Hour, func() time.Time { return issued })
	_, token, err := past.Login(context.Background(), types.LoginRequest{
		Email:    "user@wanderai.com",
		Password: "password123",
	})
	require.NoError(t, err)

	engine, _ := newTestEngine(t)
	w := doJSON(engine, http.MethodGet, "/v1/auth/verify", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token_expired")
}
