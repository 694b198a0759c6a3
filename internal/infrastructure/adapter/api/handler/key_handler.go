package handler

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/golden-key-vault/internal/domain/error"
	coreport "github.com/amirhossein-jamali/golden-key-vault/internal/domain/port/core"
	"github.com/amirhossein-jamali/golden-key-vault/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/golden-key-vault/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/golden-key-vault/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// KeyHandler handles the vault endpoints of the signed-in user
type KeyHandler struct {
	keyUseCase usecase.KeyUseCase
	logger     coreport.Logger
}

// NewKeyHandler creates a new key handler instance
func NewKeyHandler(keyUseCase usecase.KeyUseCase, logger coreport.Logger) *KeyHandler {
	return &KeyHandler{
		keyUseCase: keyUseCase,
		logger:     logger,
	}
}

// ListKeys handles the GET /keys/user endpoint
func (h *KeyHandler) ListKeys(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		respondError(c, domainerr.ErrInvalidToken)
		return
	}

	keys, err := h.keyUseCase.ListKeys(c.Request.Context(), claims.UserID)
	if err != nil {
		h.logFailure("Error listing keys", claims.UserID, "", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Response{
		Code: http.StatusOK,
		Msg:  "Keys retrieved successfully",
		Data: dto.NewKeyResponses(keys),
	})
}

// CreateKey handles the POST /keys/create endpoint
func (h *KeyHandler) CreateKey(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		respondError(c, domainerr.ErrInvalidToken)
		return
	}

	var req dto.CreateKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, domainerr.CodeInvalidKeyData, err)
		return
	}

	key, err := h.keyUseCase.CreateKey(c.Request.Context(), claims.UserID, usecase.KeyInput{
		Name:        req.Name,
		Type:        req.Type,
		Value:       req.Value,
		Description: req.Description,
	})
	if err != nil {
		h.logFailure("Error creating key", claims.UserID, "", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Response{
		Code: http.StatusCreated,
		Msg:  "Key created successfully",
		Data: dto.NewKeyResponse(key),
	})
}

// UpdateKey handles the PUT /keys/:id endpoint
func (h *KeyHandler) UpdateKey(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		respondError(c, domainerr.ErrInvalidToken)
		return
	}
	keyID := c.Param("id")

	var req dto.UpdateKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, domainerr.CodeInvalidKeyData, err)
		return
	}

	key, err := h.keyUseCase.UpdateKey(c.Request.Context(), claims.UserID, keyID, req.ToChanges())
	if err != nil {
		h.logFailure("Error updating key", claims.UserID, keyID, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Response{
		Code: http.StatusOK,
		Msg:  "Key updated successfully",
		Data: dto.NewKeyResponse(key),
	})
}

// DeleteKey handles the DELETE /keys/:id endpoint
func (h *KeyHandler) DeleteKey(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		respondError(c, domainerr.ErrInvalidToken)
		return
	}
	keyID := c.Param("id")

	if err := h.keyUseCase.DeleteKey(c.Request.Context(), claims.UserID, keyID); err != nil {
		h.logFailure("Error deleting key", claims.UserID, keyID, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Response{
		Code: http.StatusOK,
		Msg:  "Key deleted successfully",
	})
}

// logFailure logs server-side failures; client mistakes are already visible in the access log
func (h *KeyHandler) logFailure(message, userID, keyID string, err error) {
	if domainerr.IsClientError(err) {
		return
	}
	fields := map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	}
	if keyID != "" {
		fields["key_id"] = keyID
	}
	h.logger.Error(message, fields)
}
