// Package handler provides HTTP handlers for championship lifecycle endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abnerteste26-bot/group-champs/internal/championship/model"
	"github.com/abnerteste26-bot/group-champs/internal/championship/service"
	"github.com/abnerteste26-bot/group-champs/internal/httpx"
)

// Handler handles HTTP requests for championship endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new championship handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Create handles POST /championships request.
// @Summary Create a championship
// @Description Creates a championship with groups A to D and a stopped session clock
// @Tags Championships
// @Accept json
// @Produce json
// @Param request body model.CreateChampionshipRequest true "Championship data"
// @Success 201 {object} map[string]model.ChampionshipResponse
// @Failure 400 {object} httpx.ErrorResponse "Invalid request"
// @Failure 403 {object} httpx.ErrorResponse "Caller is not an administrator"
// @Failure 409 {object} httpx.ErrorResponse "Pool is full"
// @Router /championships [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateChampionshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.InvalidRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.CreateChampionship(c.Request.Context(), httpx.Actor(c), &req)
	if err != nil {
		httpx.RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"championship": resp})
}

// List handles GET /championships request.
// @Summary List active championships
// @Tags Championships
// @Produce json
// @Success 200 {object} map[string][]model.ChampionshipResponse
// @Router /championships [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) List(c *gin.Context) {
	list, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		httpx.RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"championships": list})
}

// Get handles GET /championships/:id request.
// @Summary Get a championship
// @Tags Championships
// @Produce json
// @Param id path string true "Championship ID"
// @Success 200 {object} map[string]model.ChampionshipResponse
// @Failure 404 {object} httpx.ErrorResponse "Championship not found"
// @Router /championships/{id} [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Get(c *gin.Context) {
	resp, err := h.service.GetChampionship(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"championship": resp})
}

// CloseRegistration handles POST /championships/:id/close-registration request.
// @Summary Close registration and generate fixtures
// @Tags Championships
// @Produce json
// @Param id path string true "Championship ID"
// @Success 200 {object} model.CloseRegistrationResponse
// @Failure 403 {object} httpx.ErrorResponse "Caller is not an administrator"
// @Failure 404 {object} httpx.ErrorResponse "Championship not found"
// @Failure 409 {object} httpx.ErrorResponse "Registration already closed"
// @Router /championships/{id}/close-registration [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) CloseRegistration(c *gin.Context) {
	resp, err := h.service.CloseRegistration(c.Request.Context(), httpx.Actor(c), c.Param("id"))
	if err != nil {
		httpx.RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Close handles POST /championships/:id/close request.
// @Summary Finish a championship
// @Description Marks the championship finished and provisions a successor when the pool has room
// @Tags Championships
// @Produce json
// @Param id path string true "Championship ID"
// @Success 200 {object} model.CloseChampionshipResponse
// @Failure 403 {object} httpx.ErrorResponse "Caller is not an administrator"
// @Failure 404 {object} httpx.ErrorResponse "Championship not found"
// @Failure 409 {object} httpx.ErrorResponse "Already finished"
// @Router /championships/{id}/close [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Close(c *gin.Context) {
	resp, err := h.service.CloseChampionship(c.Request.Context(), httpx.Actor(c), c.Param("id"))
	if err != nil {
		httpx.RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
