package handler

import (
	"context"
	"net/http"

	coreport "github.com/amirhossein-jamali/golden-key-vault/internal/domain/port/core"
	"github.com/amirhossein-jamali/golden-key-vault/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/golden-key-vault/internal/infrastructure/adapter/database"
	"github.com/gin-gonic/gin"
)

// DatabaseProbe is the part of the database manager the health check needs
type DatabaseProbe interface {
	Ping(ctx context.Context) error
	Dialect() string
	PoolMetrics() database.ConnectionPoolMetrics
}

// HealthHandler reports whether the service can reach its database
type HealthHandler struct {
	db     DatabaseProbe
	logger coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(db DatabaseProbe, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		logger: logger,
	}
}

// Health handles the GET /health endpoint
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		h.logger.Warn("Health check failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{
			Status:   "unavailable",
			Database: "unreachable",
			Dialect:  h.db.Dialect(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:   "ok",
		Database: "ok",
		Dialect:  h.db.Dialect(),
		Pool:     h.db.PoolMetrics(),
	})
}
