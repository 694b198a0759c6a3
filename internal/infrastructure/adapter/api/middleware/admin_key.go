package middleware

import (
	"crypto/subtle"
	"net/http"

	domainerr "github.com/amirhossein-jamali/golden-key-vault/internal/domain/error"
	coreport "github.com/amirhossein-jamali/golden-key-vault/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

// AdminKeyHeader carries the administrative key
const AdminKeyHeader = "X-Admin-Key"

// AdminKey guards administrative routes. An empty key leaves the route open,
// which configuration validation only permits outside production.
func AdminKey(adminKey string, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if adminKey == "" {
			c.Next()
			return
		}

		provided := c.GetHeader(AdminKeyHeader)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(adminKey)) != 1 {
			logger.Warn("Rejected administrative request", map[string]any{
				"path":       c.Request.URL.Path,
				"client_ip":  c.ClientIP(),
				"request_id": GetRequestID(c),
				"key_sent":   provided != "",
			})
			abortWithError(c, http.StatusUnauthorized, domainerr.ErrAdminRequired, "Admin key is required")
			return
		}

		c.Next()
	}
}
