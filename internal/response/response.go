// Package response writes JSON bodies in the {"message": ...} shape clients expect.
package response

import (
	"github.com/gin-gonic/gin"

	"profranchising/internal/apperr"
)

// Error writes err with its mapped status. Internal errors are attached to the
// gin context so the request logger records the cause.
func Error(c *gin.Context, err error) {
	if apperr.KindOf(err) == apperr.KindInternal {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(apperr.HTTPStatus(err), gin.H{"message": apperr.PublicMessage(err)})
}

func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}
