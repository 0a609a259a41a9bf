// Package handler provides HTTP handlers for fixture endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abnerteste26-bot/group-champs/internal/fixture/service"
	"github.com/abnerteste26-bot/group-champs/internal/httpx"
)

// Handler handles HTTP requests for fixture endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new fixture handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GenerateResponse reports the number of matches created.
type GenerateResponse struct {
	ChampionshipID string `json:"championship_id"`
	Count          int    `json:"count"`
}

// Generate handles POST /championships/:id/fixtures request.
// @Summary Generate group-stage fixtures
// @Tags Fixtures
// @Produce json
// @Param id path string true "Championship ID"
// @Success 201 {object} GenerateResponse
// @Failure 403 {object} httpx.ErrorResponse "Caller is not an administrator"
// @Failure 409 {object} httpx.ErrorResponse "FIXTURES_ALREADY_GENERATED"
// @Router /championships/{id}/fixtures [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Generate(c *gin.Context) {
	championshipID := c.Param("id")

	count, err := h.service.GenerateGroupFixtures(c.Request.Context(), httpx.Actor(c), championshipID)
	if err != nil {
		httpx.RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, GenerateResponse{ChampionshipID: championshipID, Count: count})
}
