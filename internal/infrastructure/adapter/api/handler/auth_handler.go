package handler

import (
	"errors"
	"io"
	"net/http"

	domainerr "github.com/amirhossein-jamali/golden-key-vault/internal/domain/error"
	coreport "github.com/amirhossein-jamali/golden-key-vault/internal/domain/port/core"
	"github.com/amirhossein-jamali/golden-key-vault/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/golden-key-vault/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/golden-key-vault/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// AuthHandler handles login and token refresh
type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(authUseCase usecase.AuthUseCase, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// Login handles the POST /users/login endpoint
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, loginBindingError(err))
		return
	}

	result, err := h.authUseCase.Authenticate(c.Request.Context(), req.Key)
	if err != nil {
		if !domainerr.IsClientError(err) {
			h.logger.Error("Login failed", map[string]any{
				"request_id": middleware.GetRequestID(c),
				"error":      err.Error(),
			})
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
	})
}

// Refresh handles the POST /users/refresh endpoint
func (h *AuthHandler) Refresh(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		respondError(c, domainerr.ErrInvalidToken)
		return
	}

	result, err := h.authUseCase.Refresh(c.Request.Context(), *claims)
	if err != nil {
		if !domainerr.IsClientError(err) {
			h.logger.Error("Token refresh failed", map[string]any{
				"user_id": claims.UserID,
				"error":   err.Error(),
			})
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
	})
}

// loginBindingError separates an absent or empty key from a body of the wrong shape
func loginBindingError(err error) error {
	if errors.Is(err, io.EOF) {
		return domainerr.NewCredentialError("presence", domainerr.ErrMissingCredential, nil)
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Field() == "Key" {
				return domainerr.NewCredentialError("presence", domainerr.ErrMissingCredential, nil)
			}
		}
	}

	return domainerr.NewCredentialError("shape", domainerr.ErrMalformedCredential, err)
}
