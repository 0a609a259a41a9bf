// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abnerteste26-bot/group-champs/internal/middleware"
	"github.com/abnerteste26-bot/group-champs/internal/team/handler"
	"github.com/abnerteste26-bot/group-champs/internal/team/service"
)

// RegisterRoutes registers team module routes.
func RegisterRoutes(r gin.IRouter, svc service.Service, logger *zap.SugaredLogger) {
	h := handler.New(svc, logger)

	r.GET("/championships/:id/teams", h.ListTeams)
	r.GET("/teams/:id", h.GetTeam)

	authed := r.Group("/teams/:id", middleware.RequireIdentity())
	authed.DELETE("", h.DeleteTeam)
	authed.POST("/active", h.SetActive)
	authed.POST("/badge", h.SetBadge)
}
