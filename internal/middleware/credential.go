package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const credentialKey = "credential"

// Credential extracts the bearer token and injects it into the context.
// The token is an opaque credential issued by the auth collaborator; when a
// JWT secret is configured the signature and expiry are checked locally so a
// dead token fails fast instead of per upstream call.
func Credential(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader("Authorization"))
		if raw == "" {
			log.Println("[AUTH] [ERROR] missing token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		parts := strings.Split(raw, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			log.Println("[AUTH] [ERROR] invalid token format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		if jwtSecret != "" {
			token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
				return []byte(jwtSecret), nil
			})
			if err != nil || !token.Valid {
				log.Println("[AUTH] [ERROR] token validation failed:", err)
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
				return
			}
		}

		c.Set(credentialKey, parts[1])
		c.Next()
	}
}

// CredentialFromContext returns the bearer token injected by Credential, or
// "" when the route runs without it.
func CredentialFromContext(c *gin.Context) string {
	if v, ok := c.Get(credentialKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// BearerToken reads the bearer token straight off the request without
// rejecting its absence. Checkout uses this: the credential is simply
// attached to the submission and the fulfillment service decides.
func BearerToken(c *gin.Context) string {
	raw := strings.TrimSpace(c.GetHeader("Authorization"))
	parts := strings.Split(raw, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
