package auth

import (
	"net/http"
	"strings"

	"portfolio/site/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// WebhookMiddleware only lets through requests carrying a bearer token signed
// with secret for the content webhook subject. An empty secret disables the
// protected routes entirely.
func WebhookMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Webhook is not configured"})
			return
		}

		authHeader := c.GetHeader("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must be a Bearer token"})
			return
		}

		subject, err := jwt.ParseToken(secret, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		if subject != jwt.WebhookSubject {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Token is not valid for this webhook"})
			return
		}

		c.Set("tokenSubject", subject)
		c.Next()
	}
}
