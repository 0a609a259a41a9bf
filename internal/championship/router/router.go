// Package router provides championship routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abnerteste26-bot/group-champs/internal/championship/handler"
	"github.com/abnerteste26-bot/group-champs/internal/championship/service"
	"github.com/abnerteste26-bot/group-champs/internal/middleware"
)

// RegisterRoutes registers championship routes.
func RegisterRoutes(r gin.IRouter, svc service.Service, logger *zap.SugaredLogger) {
	h := handler.New(svc, logger)

	r.GET("/championships", h.List)
	r.GET("/championships/:id", h.Get)

	authed := r.Group("/championships", middleware.RequireIdentity())
	authed.POST("", h.Create)
	authed.POST("/:id/close-registration", h.CloseRegistration)
	authed.POST("/:id/close", h.Close)
}
