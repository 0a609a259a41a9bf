// Package router provides standings module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abnerteste26-bot/group-champs/internal/middleware"
	"github.com/abnerteste26-bot/group-champs/internal/standings/handler"
	"github.com/abnerteste26-bot/group-champs/internal/standings/service"
)

// RegisterRoutes registers standings module routes.
func RegisterRoutes(r gin.IRouter, svc service.Service, logger *zap.SugaredLogger) {
	h := handler.New(svc, logger)

	r.GET("/championships/:id/standings", h.GetStandings)
	r.POST("/championships/:id/groups/:groupId/standings/recompute", middleware.RequireIdentity(), h.Recompute)
}
