// Package handler provides HTTP handlers for group endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abnerteste26-bot/group-champs/internal/group/service"
	"github.com/abnerteste26-bot/group-champs/internal/httpx"
)

// Handler handles HTTP requests for group endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new group handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// ListGroups handles GET /championships/:id/groups request.
// @Summary List groups with their members
// @Tags Groups
// @Produce json
// @Param id path string true "Championship ID"
// @Success 200 {object} map[string][]model.GroupResponse "Groups wrapped in groups object"
// @Failure 404 {object} httpx.ErrorResponse "Championship not found"
// @Router /championships/{id}/groups [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ListGroups(c *gin.Context) {
	groups, err := h.service.ListGroups(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"groups": groups})
}
