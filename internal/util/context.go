package util

import (
	"github.com/Jaymi-01/framez/internal/models"
	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware
const (
	ContextUserKey   = "user"
	ContextUserIDKey = "user_id"
	ContextTokenKey  = "token"
)

// GetUserFromContext returns the authenticated user. When there is none it
// responds with 401 and returns false.
func GetUserFromContext(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		RespondUnauthorized(c)
		return nil, false
	}
	user, ok := value.(*models.User)
	if !ok || user == nil {
		RespondUnauthorized(c, "invalid user data in context")
		return nil, false
	}
	return user, true
}

// GetUserIDFromContext returns the authenticated user's id, responding with
// 401 when missing.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID := c.GetString(ContextUserIDKey)
	if userID == "" {
		RespondUnauthorized(c)
		return "", false
	}
	return userID, true
}
