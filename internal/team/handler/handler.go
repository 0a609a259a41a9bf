// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abnerteste26-bot/group-champs/internal/httpx"
	teamModel "github.com/abnerteste26-bot/group-champs/internal/team/model"
	"github.com/abnerteste26-bot/group-champs/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetTeam handles GET /teams/:id request.
// @Summary Get a team
// @Tags Teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} map[string]teamModel.TeamResponse "Response wrapped in team object"
// @Failure 404 {object} httpx.ErrorResponse "Team not found"
// @Router /teams/{id} [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetTeam(c *gin.Context) {
	resp, err := h.service.GetTeam(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"team": resp})
}

// ListTeams handles GET /championships/:id/teams request.
// @Summary List a championship's teams
// @Tags Teams
// @Produce json
// @Param id path string true "Championship ID"
// @Success 200 {object} map[string][]teamModel.TeamResponse "Teams wrapped in teams object"
// @Failure 404 {object} httpx.ErrorResponse "Championship not found"
// @Router /championships/{id}/teams [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ListTeams(c *gin.Context) {
	teams, err := h.service.ListTeams(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"teams": teams})
}

// SetActive handles POST /teams/:id/active request.
// @Summary Activate or deactivate a team
// @Tags Teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param request body teamModel.SetActiveRequest true "Request"
// @Success 200 {object} map[string]teamModel.TeamResponse "Response wrapped in team object"
// @Failure 403 {object} httpx.ErrorResponse "Caller is not an administrator"
// @Failure 404 {object} httpx.ErrorResponse "Team not found"
// @Router /teams/{id}/active [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) SetActive(c *gin.Context) {
	var req teamModel.SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.InvalidRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.SetTeamActive(c.Request.Context(), httpx.Actor(c), c.Param("id"), *req.Active)
	if err != nil {
		httpx.RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"team": resp})
}

// SetBadge handles POST /teams/:id/badge request.
// @Summary Set the team badge
// @Tags Teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param request body teamModel.SetBadgeRequest true "Request"
// @Success 200 {object} map[string]teamModel.TeamResponse "Response wrapped in team object"
// @Failure 403 {object} httpx.ErrorResponse "Caller is neither administrator nor owner"
// @Failure 404 {object} httpx.ErrorResponse "Team or badge object not found"
// @Router /teams/{id}/badge [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) SetBadge(c *gin.Context) {
	var req teamModel.SetBadgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.InvalidRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.SetBadge(c.Request.Context(), httpx.Actor(c), c.Param("id"), req.BadgeRef)
	if err != nil {
		httpx.RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"team": resp})
}

// DeleteTeam handles DELETE /teams/:id request.
// @Summary Delete a team with its open matches
// @Tags Teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} teamModel.DeleteTeamResponse
// @Failure 403 {object} httpx.ErrorResponse "Caller is not an administrator"
// @Failure 404 {object} httpx.ErrorResponse "Team not found"
// @Router /teams/{id} [delete] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) DeleteTeam(c *gin.Context) {
	resp, err := h.service.DeleteTeam(c.Request.Context(), httpx.Actor(c), c.Param("id"))
	if err != nil {
		httpx.RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
