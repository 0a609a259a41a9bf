// Package router provides fixture module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abnerteste26-bot/group-champs/internal/fixture/handler"
	"github.com/abnerteste26-bot/group-champs/internal/fixture/service"
	"github.com/abnerteste26-bot/group-champs/internal/middleware"
)

// RegisterRoutes registers fixture module routes.
func RegisterRoutes(r gin.IRouter, svc service.Service, logger *zap.SugaredLogger) {
	h := handler.New(svc, logger)

	r.POST("/championships/:id/fixtures", middleware.RequireIdentity(), h.Generate)
}
