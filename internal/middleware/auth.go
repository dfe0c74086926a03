package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/Jaymi-01/framez/internal/auth"
	"github.com/Jaymi-01/framez/internal/logger"
	"github.com/Jaymi-01/framez/internal/models"
	"github.com/Jaymi-01/framez/internal/util"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenValidator resolves a bearer token to its user
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*models.User, error)
}

// BearerToken extracts the token from an "Authorization: Bearer" header
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

// AuthMiddleware rejects requests without a valid session and stores the
// user, user id and raw token in the gin context
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			util.RespondUnauthorized(c, "missing bearer token")
			return
		}

		user, err := validator.ValidateToken(c.Request.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrTokenRevoked):
				util.RespondUnauthorized(c, "session has been logged out")
			case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrUserNotFound):
				util.RespondUnauthorized(c, "invalid or expired token")
			default:
				logger.Log.Error("Token validation failed", zap.Error(err))
				util.RespondUnauthorized(c, "could not validate session")
			}
			return
		}

		c.Set(util.ContextUserKey, user)
		c.Set(util.ContextUserIDKey, user.ID)
		c.Set(util.ContextTokenKey, token)
		c.Next()
	}
}
