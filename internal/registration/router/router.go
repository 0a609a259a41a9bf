// Package router provides registration module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abnerteste26-bot/group-champs/internal/middleware"
	"github.com/abnerteste26-bot/group-champs/internal/registration/handler"
	"github.com/abnerteste26-bot/group-champs/internal/registration/service"
)

// RegisterRoutes registers registration module routes.
func RegisterRoutes(r gin.IRouter, svc service.Service, logger *zap.SugaredLogger) {
	h := handler.New(svc, logger)

	r.POST("/registrations", h.Submit)
	r.GET("/championships/:id/registrations", middleware.RequireIdentity(), h.ListPending)

	authed := r.Group("/registrations/:id", middleware.RequireIdentity())
	authed.POST("/approve", h.Approve)
	authed.POST("/reject", h.Reject)
}
