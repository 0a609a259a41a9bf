// Package router provides group module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abnerteste26-bot/group-champs/internal/group/handler"
	"github.com/abnerteste26-bot/group-champs/internal/group/service"
)

// RegisterRoutes registers group module routes.
func RegisterRoutes(r gin.IRouter, svc service.Service, logger *zap.SugaredLogger) {
	h := handler.New(svc, logger)

	r.GET("/championships/:id/groups", h.ListGroups)
}
