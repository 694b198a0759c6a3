package middleware

import (
	"time"

	coreport "github.com/amirhossein-jamali/golden-key-vault/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

// Timeout bounds the request context so database work cannot outlive it
func Timeout(timeProvider coreport.TimeProvider, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if timeout <= 0 {
			c.Next()
			return
		}

		ctx, cancel := timeProvider.WithTimeout(c.Request.Context(), coreport.Duration(timeout))
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
