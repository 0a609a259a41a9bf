// Package handler provides HTTP handlers for session clock endpoints.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abnerteste26-bot/group-champs/internal/clock/model"
	"github.com/abnerteste26-bot/group-champs/internal/clock/service"
	"github.com/abnerteste26-bot/group-champs/internal/httpx"
	"github.com/abnerteste26-bot/group-champs/internal/identity"
)

// Handler handles HTTP requests for clock endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new clock handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

type mutation func(ctx context.Context, actor identity.Identity, championshipID string) (*model.ClockResponse, error)

// Start handles POST /championships/:id/clock/start request.
// @Summary Start the session clock
// @Tags Clock
// @Produce json
// @Param id path string true "Championship ID"
// @Success 200 {object} model.ClockResponse
// @Failure 403 {object} httpx.ErrorResponse "Caller is not an administrator"
// @Router /championships/{id}/clock/start [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Start(c *gin.Context) {
	h.mutate(c, h.service.StartClock)
}

// Pause handles POST /championships/:id/clock/pause request.
// @Summary Pause the session clock
// @Tags Clock
// @Produce json
// @Param id path string true "Championship ID"
// @Success 200 {object} model.ClockResponse
// @Failure 404 {object} httpx.ErrorResponse "Clock not found"
// @Failure 409 {object} httpx.ErrorResponse "Clock is not running"
// @Router /championships/{id}/clock/pause [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Pause(c *gin.Context) {
	h.mutate(c, h.service.PauseClock)
}

// Reset handles POST /championships/:id/clock/reset request.
// @Summary Reset the session clock
// @Tags Clock
// @Produce json
// @Param id path string true "Championship ID"
// @Success 200 {object} model.ClockResponse
// @Router /championships/{id}/clock/reset [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Reset(c *gin.Context) {
	h.mutate(c, h.service.ResetClock)
}

// Get handles GET /championships/:id/clock request.
// @Summary Read the session clock
// @Tags Clock
// @Produce json
// @Param id path string true "Championship ID"
// @Success 200 {object} model.ClockResponse
// @Failure 404 {object} httpx.ErrorResponse "Clock not found"
// @Router /championships/{id}/clock [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Get(c *gin.Context) {
	resp, err := h.service.GetClock(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) mutate(c *gin.Context, op mutation) {
	resp, err := op(c.Request.Context(), httpx.Actor(c), c.Param("id"))
	if err != nil {
		httpx.RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
