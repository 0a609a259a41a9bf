// Package handler provides HTTP handlers for standings endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abnerteste26-bot/group-champs/internal/httpx"
	"github.com/abnerteste26-bot/group-champs/internal/standings/service"
)

// Handler handles HTTP requests for standings endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new standings handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetStandings handles GET /championships/:id/standings request.
// @Summary Get group tables
// @Tags Standings
// @Produce json
// @Param id path string true "Championship ID"
// @Success 200 {object} model.StandingsResponse
// @Failure 404 {object} httpx.ErrorResponse "Championship not found"
// @Router /championships/{id}/standings [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetStandings(c *gin.Context) {
	resp, err := h.service.GetStandings(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Recompute handles POST /championships/:id/groups/:groupId/standings/recompute request.
// @Summary Recompute one group's table
// @Tags Standings
// @Produce json
// @Param id path string true "Championship ID"
// @Param groupId path string true "Group ID"
// @Success 200 {object} model.RecomputeResponse
// @Failure 403 {object} httpx.ErrorResponse "Caller is not an administrator"
// @Failure 404 {object} httpx.ErrorResponse "Group not found"
// @Router /championships/{id}/groups/{groupId}/standings/recompute [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Recompute(c *gin.Context) {
	resp, err := h.service.RecomputeStandings(c.Request.Context(), httpx.Actor(c), c.Param("id"), c.Param("groupId"))
	if err != nil {
		httpx.RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
