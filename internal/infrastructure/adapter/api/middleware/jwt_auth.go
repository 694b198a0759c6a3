package middleware

import (
	"net/http"
	"strings"

	"github.com/amirhossein-jamali/golden-key-vault/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/golden-key-vault/internal/domain/error"
	coreport "github.com/amirhossein-jamali/golden-key-vault/internal/domain/port/core"
	"github.com/amirhossein-jamali/golden-key-vault/internal/domain/port/security"
	"github.com/gin-gonic/gin"
)

const claimsKey = "session_claims"

// JWTAuth verifies the bearer session token and stores its claims in the context
func JWTAuth(issuer security.TokenIssuer, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, http.StatusUnauthorized, domainerr.ErrInvalidToken, "Authorization header is required")
			return
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		tokenString = strings.TrimSpace(tokenString)
		if !found || tokenString == "" {
			abortWithError(c, http.StatusUnauthorized, domainerr.ErrInvalidToken, "Bearer token format is invalid")
			return
		}

		claims, err := issuer.Parse(tokenString)
		if err != nil {
			logger.Warn("Rejected session token", map[string]any{
				"path":       c.Request.URL.Path,
				"request_id": GetRequestID(c),
				"error":      err.Error(),
			})
			abortWithError(c, http.StatusUnauthorized, domainerr.ErrInvalidToken, "Token is invalid or expired")
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// GetClaims returns the session claims stored by JWTAuth
func GetClaims(c *gin.Context) (*entity.SessionClaims, bool) {
	value, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := value.(*entity.SessionClaims)
	return claims, ok && claims != nil
}
