package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/wanderai/wanderai-backend/errors"
	"github.com/wanderai/wanderai-backend/logger"
	"github.com/wanderai/wanderai-backend/services"
	"github.com/wanderai/wanderai-backend/types"
)

// Context keys set by the auth middleware.
const (
	ContextUserIDKey    = "user_id"
	ContextUserEmailKey = "user_email"
	ContextUserRoleKey  = "user_role"
)

// RequireAuth validates the Bearer token and stores the caller's identity in
// the request context. Failures carry a machine-readable code so clients can
// tell an expired token from a malformed or missing one.
func RequireAuth(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortWithAuthError(c, errors.AuthenticationFailed(errors.CodeTokenMissing, "Authorization header is required"))
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			abortWithAuthError(c, errors.AuthenticationFailed(errors.CodeTokenMalformed, "Authorization header must be 'Bearer {token}'"))
			return
		}

		claims, err := auth.VerifyToken(parts[1])
		if err != nil {
			logger.GetLogger().Infow("Token verification failed",
				"token", logger.MaskJWT(parts[1]),
				"path", c.Request.URL.Path,
				"clientIp", c.ClientIP(),
			)
			if appErr, ok := err.(*errors.AppError); ok {
				abortWithAuthError(c, appErr)
			} else {
				abortWithAuthError(c, errors.AuthenticationFailed(errors.CodeTokenMalformed, "Invalid token"))
			}
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextUserEmailKey, claims.Email)
		c.Set(ContextUserRoleKey, claims.Role)

		c.Next()
	}
}

// RequireAdmin allows only callers whose token carries the admin role. Must
// run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextUserRoleKey)
		if !exists || role != types.RoleAdmin {
			_ = c.Error(errors.Forbidden("Admin access required", ""))
			c.Abort()
			return
		}
		c.Next()
	}
}

func abortWithAuthError(c *gin.Context, err *errors.AppError) {
	_ = c.Error(err)
	c.Abort()
}
