// Package handler provides HTTP handlers for match endpoints.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abnerteste26-bot/group-champs/internal/httpx"
	"github.com/abnerteste26-bot/group-champs/internal/match/model"
	"github.com/abnerteste26-bot/group-champs/internal/match/service"
)

// Handler handles HTTP requests for match endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new match handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetMatch handles GET /matches/:id request.
// @Summary Get a match
// @Tags Matches
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} model.MatchResponse
// @Failure 404 {object} httpx.ErrorResponse "Match not found"
// @Router /matches/{id} [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetMatch(c *gin.Context) {
	resp, err := h.service.GetMatch(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListMatches handles GET /championships/:id/matches request.
// @Summary List matches of a championship ordered by round
// @Tags Matches
// @Produce json
// @Param id path string true "Championship ID"
// @Param group_id query string false "Group ID"
// @Param phase query string false "Phase"
// @Param status query string false "Status"
// @Success 200 {object} map[string][]model.MatchResponse "Matches wrapped in matches object"
// @Failure 404 {object} httpx.ErrorResponse "Championship not found"
// @Router /championships/{id}/matches [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ListMatches(c *gin.Context) {
	filter := model.ListMatchesFilter{
		GroupID: c.Query("group_id"),
		Phase:   model.Phase(c.Query("phase")),
		Status:  model.Status(c.Query("status")),
	}

	matches, err := h.service.ListMatches(c.Request.Context(), c.Param("id"), filter)
	if err != nil {
		httpx.RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

// Submit handles POST /matches/:id/submit request.
// @Summary Submit a score for administrator review
// @Tags Matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Param request body model.ScoreRequest true "Score"
// @Success 200 {object} model.MatchResponse
// @Failure 400 {object} httpx.ErrorResponse "INVALID_SCORE"
// @Failure 403 {object} httpx.ErrorResponse "Caller is not a participant"
// @Failure 409 {object} httpx.ErrorResponse "ALREADY_PROCESSED"
// @Router /matches/{id}/submit [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Submit(c *gin.Context) {
	req, ok := h.bindScore(c)
	if !ok {
		return
	}

	resp, err := h.service.SubmitMatchScore(c.Request.Context(), httpx.Actor(c), c.Param("id"), req)
	if err != nil {
		httpx.RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Confirm handles POST /matches/:id/confirm request.
// @Summary Confirm the submitted score
// @Tags Matches
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} model.MatchResponse
// @Failure 400 {object} httpx.ErrorResponse "INVALID_SCORE when nothing was submitted"
// @Failure 409 {object} httpx.ErrorResponse "ALREADY_CONFIRMED"
// @Router /matches/{id}/confirm [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Confirm(c *gin.Context) {
	resp, err := h.service.ConfirmMatchScore(c.Request.Context(), httpx.Actor(c), c.Param("id"))
	if err != nil {
		httpx.RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ConfirmWinner handles POST /matches/:id/confirm-winner request.
// @Summary Confirm a result as the winning team
// @Tags Matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Param request body model.ScoreRequest true "Score"
// @Success 200 {object} model.MatchResponse
// @Failure 400 {object} httpx.ErrorResponse "DRAW_REQUIRES_ADMIN, NOT_A_WINNING_SCORE, INVALID_SCORE"
// @Failure 409 {object} httpx.ErrorResponse "ALREADY_CONFIRMED"
// @Router /matches/{id}/confirm-winner [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ConfirmWinner(c *gin.Context) {
	req, ok := h.bindScore(c)
	if !ok {
		return
	}

	resp, err := h.service.ConfirmMatchAsWinner(c.Request.Context(), httpx.Actor(c), c.Param("id"), req)
	if err != nil {
		httpx.RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Adjust handles POST /matches/:id/adjust request.
// @Summary Overwrite the final score
// @Tags Matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Param request body model.ScoreRequest true "Score"
// @Success 200 {object} model.MatchResponse
// @Failure 403 {object} httpx.ErrorResponse "Caller is not an administrator"
// @Router /matches/{id}/adjust [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Adjust(c *gin.Context) {
	req, ok := h.bindScore(c)
	if !ok {
		return
	}

	resp, err := h.service.AdjustMatchScore(c.Request.Context(), httpx.Actor(c), c.Param("id"), req)
	if err != nil {
		httpx.RespondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// bindScore decodes a ScoreRequest. A score of the wrong JSON type (a
// fraction, a string) is an invalid score rather than a malformed body.
func (h *Handler) bindScore(c *gin.Context) (model.ScoreRequest, bool) {
	var req model.ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && (typeErr.Field == "score_a" || typeErr.Field == "score_b") {
			httpx.RespondError(c, h.logger, model.ErrInvalidScore)
			return req, false
		}
		httpx.InvalidRequest(c, "invalid request body")
		return req, false
	}
	return req, true
}
