package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"zyppr/utils"
)

// JWTAuthMiddleware authenticates a bearer token against its Redis session
// slot and puts the session identity into the request context.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		tokenHash := utils.HashToken(tokenString)
		session, err := utils.GetAuthSession(c.Request.Context(), utils.GetSessionCacheClient(), tokenHash)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please log in again"})
			return
		}

		c.Set("userID", session.UserID)
		c.Set("userEmail", session.Email)
		c.Set("userRole", session.Role)
		c.Set("tokenHash", tokenHash)
		c.Next()
	}
}

// RequireRole rejects authenticated requests whose session role does not
// match. Runs after JWTAuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("userRole") != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}
