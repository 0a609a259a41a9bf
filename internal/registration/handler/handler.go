// Package handler provides HTTP handlers for registration endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abnerteste26-bot/group-champs/internal/httpx"
	"github.com/abnerteste26-bot/group-champs/internal/registration/model"
	"github.com/abnerteste26-bot/group-champs/internal/registration/service"
)

// Handler handles HTTP requests for registration endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new registration handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Submit handles POST /registrations request.
// @Summary Submit a registration request
// @Tags Registrations
// @Accept json
// @Produce json
// @Param request body model.SubmitRegistrationRequest true "Request"
// @Success 201 {object} map[string]model.RegistrationResponse "Response wrapped in registration object"
// @Failure 400 {object} httpx.ErrorResponse "INVALID_REQUEST"
// @Failure 404 {object} httpx.ErrorResponse "Championship or receipt not found"
// @Failure 409 {object} httpx.ErrorResponse "REGISTRATION_CLOSED"
// @Router /registrations [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Submit(c *gin.Context) {
	var req model.SubmitRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.InvalidRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.SubmitRegistration(c.Request.Context(), &req)
	if err != nil {
		httpx.RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"registration": resp})
}

// ListPending handles GET /championships/:id/registrations request.
// @Summary List pending registrations
// @Tags Registrations
// @Produce json
// @Param id path string true "Championship ID"
// @Success 200 {object} map[string][]model.RegistrationResponse "Registrations wrapped in registrations object"
// @Failure 403 {object} httpx.ErrorResponse "Caller is not an administrator"
// @Router /championships/{id}/registrations [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ListPending(c *gin.Context) {
	regs, err := h.service.ListPending(c.Request.Context(), httpx.Actor(c), c.Param("id"))
	if err != nil {
		httpx.RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"registrations": regs})
}

// Approve handles POST /registrations/:id/approve request.
// @Summary Approve a registration and admit the team
// @Tags Registrations
// @Produce json
// @Param id path string true "Registration ID"
// @Success 200 {object} model.ApprovalResult
// @Failure 403 {object} httpx.ErrorResponse "Caller is not an administrator"
// @Failure 409 {object} httpx.ErrorResponse "ALREADY_PROCESSED, REGISTRATION_CLOSED, CAPACITY_EXCEEDED"
// @Router /registrations/{id}/approve [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Approve(c *gin.Context) {
	resp, err := h.service.ApproveRegistration(c.Request.Context(), httpx.Actor(c), c.Param("id"))
	if err != nil {
		httpx.RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Reject handles POST /registrations/:id/reject request.
// @Summary Reject a registration
// @Tags Registrations
// @Produce json
// @Param id path string true "Registration ID"
// @Success 200 {object} map[string]model.RegistrationResponse "Response wrapped in registration object"
// @Failure 409 {object} httpx.ErrorResponse "ALREADY_PROCESSED"
// @Router /registrations/{id}/reject [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Reject(c *gin.Context) {
	resp, err := h.service.RejectRegistration(c.Request.Context(), httpx.Actor(c), c.Param("id"))
	if err != nil {
		httpx.RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"registration": resp})
}
