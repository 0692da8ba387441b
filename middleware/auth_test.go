package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderai/wanderai-backend/logger"
	"github.com/wanderai/wanderai-backend/services"
	"github.com/wanderai/wanderai-backend/store/memory"
	"github.com/wanderai/wanderai-backend/types"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.IsTest = true
}

func authTestEngine(t *testing.T) (*gin.Engine, string) {
	t.Helper()

	auth := services.NewAuthService(memory.NewSeededUserStore(), "test-secret-key-at-least-32-chars-long", time.Hour, nil)
	_, token, err := auth.Login(t.Context(), types.LoginRequest{
		Email:    "user@wanderai.com",
		Password: "password123",
	})
	require.NoError(t, err)

	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/protected", RequireAuth(auth), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": c.GetString(ContextUserIDKey)})
	})
	return r, token
}

func TestRequireAuthHeaderVariants(t *testing.T) {
	r, token := authTestEngine(t)

	testCases := []struct {
		name         string
		header       string
		expectedCode int
		expectedBody string
	}{
		{name: "valid bearer", header: "Bearer " + token, expectedCode: http.StatusOK},
		{name: "lowercase scheme", header: "bearer " + token, expectedCode: http.StatusOK},
		{name: "missing header", header: "", expectedCode: http.StatusUnauthorized, expectedBody: "token_missing"},
		{name: "no scheme", header: token, expectedCode: http.StatusUnauthorized, expectedBody: "token_malformed"},
		{name: "wrong scheme", header: "Basic " + token, expectedCode: http.StatusUnauthorized, expectedBody: "token_malformed"},
		{name: "empty token", header: "Bearer ", expectedCode: http.StatusUnauthorized, expectedBody: "token_malformed"},
		{name: "garbage token", header: "Bearer not.a.jwt", expectedCode: http.StatusUnauthorized, expectedBody: "token_malformed"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedCode, w.Code)
			if tc.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tc.expectedBody)
			}
		})
	}
}

func TestRequireAuthSetsIdentity(t *testing.T) {
	r, token := authTestEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "userId")
	assert.NotContains(t, w.Body.String(), `"userId":""`)
}
