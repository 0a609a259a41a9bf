// Package router provides session clock routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abnerteste26-bot/group-champs/internal/clock/handler"
	"github.com/abnerteste26-bot/group-champs/internal/clock/service"
	"github.com/abnerteste26-bot/group-champs/internal/middleware"
)

// RegisterRoutes registers clock routes.
func RegisterRoutes(r gin.IRouter, svc service.Service, logger *zap.SugaredLogger) {
	h := handler.New(svc, logger)

	r.GET("/championships/:id/clock", h.Get)

	authed := r.Group("/championships/:id/clock", middleware.RequireIdentity())
	authed.POST("/start", h.Start)
	authed.POST("/pause", h.Pause)
	authed.POST("/reset", h.Reset)
}
