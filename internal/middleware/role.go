package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"profranchising/internal/policy"
	"profranchising/internal/response"
)

type Authorizer interface {
	Authorize(ctx context.Context, username string, capability policy.Capability) error
}

// RequireCapability runs the access policy before the handler sees the body.
func RequireCapability(authorizer Authorizer, capability policy.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := authorizer.Authorize(c.Request.Context(), Username(c), capability); err != nil {
			response.Error(c, err)
			return
		}
		c.Next()
	}
}
