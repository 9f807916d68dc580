package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"terratrace-system/internal/auth"
)

// ContextUserID is the gin context key holding the authenticated user ID.
const ContextUserID = "user_id"

// Auth accepts either a valid session cookie (browser clients) or a valid
// Authorization bearer token (API clients). Unauthenticated requests get 401.
func Auth(sessionStore sessions.Store, jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := auth.SessionUserID(sessionStore, c.Request); ok {
			c.Set(ContextUserID, userID)
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			tokenStr := strings.TrimPrefix(header, "Bearer ")
			if claims, err := auth.ParseToken(jwtSecret, tokenStr); err == nil {
				c.Set(ContextUserID, claims.UserID)
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authentication required",
		})
	}
}

// UserID returns the authenticated user's ID from the request context.
func UserID(c *gin.Context) int64 {
	id, _ := c.Get(ContextUserID)
	userID, _ := id.(int64)
	return userID
}
