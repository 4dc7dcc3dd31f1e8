package middleware

import (
	"github.com/gin-gonic/gin"
)

const (
	// UserIDKey is the gin context key carrying the acting user's ID.
	UserIDKey = "userID"

	// userIDHeader is the request header naming the acting user. Single-user
	// deployments omit it and fall back to the default identity.
	userIDHeader = "X-User-ID"

	// DefaultUserID is the identity used when no header is present.
	DefaultUserID = "local"
)

// UserIdentity resolves the acting user from the request and stores it in
// the gin context for handlers.
func UserIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(userIDHeader)
		if userID == "" {
			userID = DefaultUserID
		}
		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// UserID returns the acting user's ID from the gin context.
func UserID(c *gin.Context) string {
	if id := c.GetString(UserIDKey); id != "" {
		return id
	}
	return DefaultUserID
}
