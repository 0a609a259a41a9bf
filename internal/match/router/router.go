// Package router provides match module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abnerteste26-bot/group-champs/internal/match/handler"
	"github.com/abnerteste26-bot/group-champs/internal/match/service"
	"github.com/abnerteste26-bot/group-champs/internal/middleware"
)

// RegisterRoutes registers match module routes.
func RegisterRoutes(r gin.IRouter, svc service.Service, logger *zap.SugaredLogger) {
	h := handler.New(svc, logger)

	r.GET("/championships/:id/matches", h.ListMatches)
	r.GET("/matches/:id", h.GetMatch)

	authed := r.Group("/matches/:id", middleware.RequireIdentity())
	authed.POST("/submit", h.Submit)
	authed.POST("/confirm", h.Confirm)
	authed.POST("/confirm-winner", h.ConfirmWinner)
	authed.POST("/adjust", h.Adjust)
}
