// Package router provides ticket module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/bungee-astro/tracker-api/internal/middleware"
	"github.com/bungee-astro/tracker-api/internal/notify"
	"github.com/bungee-astro/tracker-api/internal/ticket/handler"
	"github.com/bungee-astro/tracker-api/internal/ticket/repository"
	"github.com/bungee-astro/tracker-api/internal/ticket/service"
	"github.com/bungee-astro/tracker-api/internal/token"
)

// RegisterRoutes registers ticket module routes.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	tokens *token.Service,
	notifier notify.Notifier,
	logger *zap.SugaredLogger,
) {
	repo := repository.New(db, logger)
	svc := service.New(repo, notifier, logger)
	h := handler.New(svc, logger)

	r.POST("/api/tickets", middleware.OptionalAuth(tokens), h.Create)
	r.GET("/api/tickets", h.List)
	r.GET("/api/tickets/:id", h.Get)
	r.PATCH("/api/tickets/:id", middleware.RequireAuth(tokens), h.Update)
	r.DELETE("/api/tickets/:id", middleware.RequireAuth(tokens), h.Delete)
}
