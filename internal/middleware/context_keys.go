package middleware

import "github.com/gin-gonic/gin"

// usernameKey is the key used to store the authenticated username in the
// request context. Using a custom type prevents collisions.
const usernameKey = contextKey("username")

// GetUsernameFromContext retrieves the authenticated username from the Gin
// context. It returns the username and a boolean indicating if it was found.
func GetUsernameFromContext(c *gin.Context) (string, bool) {
	if val := c.Request.Context().Value(usernameKey); val != nil {
		username, ok := val.(string)
		return username, ok
	}
	return "", false
}
