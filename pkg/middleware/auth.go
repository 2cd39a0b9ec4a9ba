package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Princessdada/Blogging-API/pkg/token"
)

const (
	ctxUserIDKey = "auth.user_id"
	ctxEmailKey  = "auth.email"
	ctxTokenKey  = "auth.token"
)

// Auth returns a Gin middleware that validates the bearer token and injects
// the resolved identity into the context.
func Auth(tm token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")
		claims, err := tm.Verify(c.Request.Context(), tokenString)
		if err != nil {
			if errors.Is(err, token.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token expired"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxEmailKey, claims.Email)
		c.Set(ctxTokenKey, tokenString)
		c.Next()
	}
}

// UserID extracts the authenticated user's id from the context.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ctxUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// Email extracts the authenticated user's email from the context.
func Email(c *gin.Context) (string, bool) {
	v, ok := c.Get(ctxEmailKey)
	if !ok {
		return "", false
	}
	email, ok := v.(string)
	return email, ok
}

// RawToken returns the bearer token string the request authenticated with.
func RawToken(c *gin.Context) (string, bool) {
	v, ok := c.Get(ctxTokenKey)
	if !ok {
		return "", false
	}
	tok, ok := v.(string)
	return tok, ok
}
