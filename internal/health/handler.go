// Package health provides health check endpoint handler.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	championshipRepository "github.com/abnerteste26-bot/group-champs/internal/championship/repository"
	"github.com/abnerteste26-bot/group-champs/internal/database/database"
)

const checkTimeout = 5 * time.Second

// Handler handles health check requests.
type Handler struct {
	db            *gorm.DB
	championships championshipRepository.Repository
	logger        *zap.SugaredLogger
}

// New creates a new health handler instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		db:            db,
		championships: championshipRepository.New(db),
		logger:        logger,
	}
}

// Response represents health check response.
type Response struct {
	Status              string `json:"status"`
	ActiveChampionships int64  `json:"active_championships"`
	OpenConnections     int    `json:"open_connections"`
}

// Check handles GET /health request.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} Response
// @Failure 503 {object} Response
// @Router /health [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), checkTimeout)
	defer cancel()

	if err := database.HealthCheck(ctx, h.db); err != nil {
		h.logger.Warnw("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, Response{Status: "unhealthy"})
		return
	}

	active, err := h.championships.CountActive(ctx)
	if err != nil {
		h.logger.Warnw("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, Response{Status: "unhealthy"})
		return
	}

	resp := Response{Status: "ok", ActiveChampionships: active}
	if stats, err := database.GetStats(h.db); err == nil {
		resp.OpenConnections = stats.OpenConnections
	}
	c.JSON(http.StatusOK, resp)
}
