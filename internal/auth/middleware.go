package auth

import (
	"strings"

	"codeberg.org/solari/bff/internal/errors"
	"github.com/gin-gonic/gin"
)

// bearer token from the Authorization header, "" if absent or malformed
func BearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}

// resolves the caller from the bearer token, then the session cookie
func ClaimsFromRequest(c *gin.Context, store *SessionStore) (*Claims, bool) {
	token := BearerToken(c)
	if token == "" && store != nil {
		token = store.Token(c.Request)
	}

	if token == "" {
		return nil, false
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		return nil, false
	}

	return claims, true
}

// requires a valid token and adds user info to context
func AuthMiddleware(store *SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFromRequest(c, store)
		if !ok {
			errors.Unauthorized(c, "invalid or missing token")
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserEmail, claims.Email)

		c.Next()
	}
}

// validates the token if present but doesn't require it
func OptionalAuthMiddleware(store *SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := ClaimsFromRequest(c, store); ok {
			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextUserEmail, claims.Email)
		}

		c.Next()
	}
}

// extracts user_id from context after AuthMiddleware
func GetUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(ContextUserID)
	return userID, userID != ""
}

func GetUserEmail(c *gin.Context) string {
	return c.GetString(ContextUserEmail)
}
