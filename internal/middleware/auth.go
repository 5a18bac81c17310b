package middleware

import (
	"net/http"
	"strings"

	"github.com/daftari-app/daftari/internal/utils"
	"github.com/gin-gonic/gin"
)

// SessionAuthMiddleware validates the bearer session token's signature.
// Tokens carry no expiry: a session opened on this machine is trusted until
// logout, matching the single-user access-gate model.
func SessionAuthMiddleware(sessionSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		if _, err := utils.ParseSessionToken(parts[1], sessionSecret); err != nil {
			logger.Warn("Invalid session token", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid session token"})
			return
		}

		c.Next()
	}
}
