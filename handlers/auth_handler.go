package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wanderai/wanderai-backend/errors"
	"github.com/wanderai/wanderai-backend/middleware"
	"github.com/wanderai/wanderai-backend/services"
	"github.com/wanderai/wanderai-backend/types"
)

// AuthHandler exposes login, signup, token verification and the admin user
// listing.
type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login handles POST /v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid login request", err.Error()))
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.AuthResponse{
		Success: true,
		User:    user,
		Token:   token,
		Message: "Login successful",
	})
}

// Signup handles POST /v1/auth/signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req types.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid signup request", err.Error()))
		return
	}

	user, token, err := h.auth.Signup(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, types.AuthResponse{
		Success: true,
		User:    user,
		Token:   token,
		Message: "Account created",
	})
}

// Verify handles GET /v1/auth/verify. It runs behind RequireAuth, so reaching
// the handler means the token is valid; it just echoes the account.
func (h *AuthHandler) Verify(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	user, err := h.auth.GetUser(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.AuthResponse{Success: true, User: user})
}

// ListUsers handles GET /v1/auth/users, admin only.
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.auth.ListUsers(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.SuccessResponse(users))
}
