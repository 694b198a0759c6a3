package handler

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/golden-key-vault/internal/domain/error"
	"github.com/amirhossein-jamali/golden-key-vault/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// HTTPStatus maps a domain error to the status code returned to clients
func HTTPStatus(err error) int {
	code := domainerr.ErrorCode(err)
	switch {
	case code >= 4000 && code < 4010:
		return http.StatusBadRequest
	case code >= 4010 && code < 4020:
		return http.StatusUnauthorized
	case code >= 4030 && code < 4040:
		return http.StatusForbidden
	case code >= 4040 && code < 4050:
		return http.StatusNotFound
	case code >= 4090 && code < 4100:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage returns the client-facing message for an error; server-side
// details stay in the logs
func errorMessage(err error) string {
	switch domainerr.ErrorCode(err) {
	case domainerr.CodeMissingCredential:
		return "Login credential is required"
	case domainerr.CodeMalformedCredential:
		return "Login credential is malformed"
	case domainerr.CodeInvalidKeyData:
		return err.Error()
	case domainerr.CodeUnauthorizedSource:
		return "Login credential was not issued by Telegram for this bot"
	case domainerr.CodeInvalidToken:
		return "Token is invalid or expired"
	case domainerr.CodeAdminRequired:
		return "Admin key is required"
	case domainerr.CodeUserBlocked:
		return "User is blocked"
	case domainerr.CodeUserNotFound:
		return "User not found"
	case domainerr.CodeKeyNotFound:
		return "Key not found"
	case domainerr.CodeDuplicateKey:
		return "Key already exists"
	case domainerr.CodeServerMisconfigured:
		return "Server is not configured to issue tokens"
	case domainerr.CodeStorageUnavailable:
		return "Storage is temporarily unavailable"
	default:
		return "Internal server error"
	}
}

// respondError writes the standard error body for err
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(HTTPStatus(err), dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: errorMessage(err),
	})
}

// respondBindingError writes a 400 for a request body that failed binding
func respondBindingError(c *gin.Context, code int, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    code,
		Message: "Invalid request format: " + err.Error(),
	})
}
