package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"profranchising/internal/response"
)

// UsernameKey is the gin context key holding the authenticated username.
const UsernameKey = "username"

// Identifier turns a token into the username it was issued for.
type Identifier interface {
	Identify(token string) (string, error)
}

// AuthMiddleware accepts either a raw token or "Bearer <token>".
func AuthMiddleware(identifier Identifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimSpace(c.GetHeader("Authorization"))
		if scheme, rest, ok := strings.Cut(token, " "); ok && strings.EqualFold(scheme, "Bearer") {
			token = strings.TrimSpace(rest)
		}

		username, err := identifier.Identify(token)
		if err != nil {
			response.Error(c, err)
			return
		}

		c.Set(UsernameKey, username)
		c.Next()
	}
}

// Username returns the caller set by AuthMiddleware, or "".
func Username(c *gin.Context) string {
	return c.GetString(UsernameKey)
}
