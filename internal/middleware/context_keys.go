package middleware

import "github.com/gin-gonic/gin"

const userIDKey = contextKey("userID")
const ownerIDKey = contextKey("ownerID")

// GetUserIDFromContext retrieves the authenticated user ID from the Gin
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	val := c.Request.Context().Value(userIDKey)
	if val == nil {
		return "", false
	}
	userID, ok := val.(string)
	return userID, ok
}

// GetOwnerIDFromContext retrieves the tenant/owner ID carried by the
// authenticated token.
func GetOwnerIDFromContext(c *gin.Context) (string, bool) {
	val := c.Request.Context().Value(ownerIDKey)
	if val == nil {
		return "", false
	}
	ownerID, ok := val.(string)
	return ownerID, ok
}
