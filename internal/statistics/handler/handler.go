// Package handler provides HTTP handlers for statistics endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abnerteste26-bot/group-champs/internal/httpx"
	"github.com/abnerteste26-bot/group-champs/internal/statistics/service"
)

// Handler handles HTTP requests for statistics endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new statistics handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetChampionshipStatistics handles GET /championships/:id/statistics request.
// @Summary Get statistics for a championship
// @Tags Statistics
// @Produce json
// @Param id path string true "Championship ID"
// @Success 200 {object} model.ChampionshipStatisticsResponse
// @Failure 404 {object} httpx.ErrorResponse "Championship not found"
// @Failure 503 {object} httpx.ErrorResponse "Store unavailable"
// @Router /championships/{id}/statistics [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetChampionshipStatistics(c *gin.Context) {
	resp, err := h.service.GetChampionshipStatistics(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
