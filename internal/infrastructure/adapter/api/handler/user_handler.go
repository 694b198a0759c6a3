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

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(
	userUseCase usecase.UserUseCase,
	logger coreport.Logger,
) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// GetProfile handles the GET /users/profile endpoint
func (h *UserHandler) GetProfile(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		respondError(c, domainerr.ErrInvalidToken)
		return
	}

	profile, err := h.userUseCase.GetProfile(c.Request.Context(), claims.TgID)
	if err != nil {
		if !domainerr.IsNotFoundError(err) {
			h.logger.Error("Error getting user profile", map[string]any{
				"user_id": claims.UserID,
				"error":   err.Error(),
			})
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Response{
		Code: http.StatusOK,
		Msg:  "User profile retrieved successfully",
		Data: profile,
	})
}

// ListUsers handles the GET /users endpoint
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userUseCase.ListUsers(c.Request.Context())
	if err != nil {
		h.logger.Error("Error listing users", map[string]any{
			"error": err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Response{
		Code: http.StatusOK,
		Msg:  "Users retrieved successfully",
		Data: users,
	})
}
