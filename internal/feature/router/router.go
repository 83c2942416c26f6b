// Package router provides feature module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/bungee-astro/tracker-api/internal/feature/handler"
	"github.com/bungee-astro/tracker-api/internal/feature/repository"
	"github.com/bungee-astro/tracker-api/internal/feature/service"
	"github.com/bungee-astro/tracker-api/internal/middleware"
	"github.com/bungee-astro/tracker-api/internal/notify"
	"github.com/bungee-astro/tracker-api/internal/token"
)

// RegisterRoutes registers feature module routes and returns the service
// for the Discord interactions ingress to drive status decisions.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	tokens *token.Service,
	notifier notify.Notifier,
	logger *zap.SugaredLogger,
) service.Service {
	repo := repository.New(db, logger)
	svc := service.New(repo, notifier, logger)
	h := handler.New(svc, logger)

	r.POST("/api/features", middleware.OptionalAuth(tokens), h.Create)
	r.GET("/api/features", middleware.OptionalAuth(tokens), h.List)
	r.GET("/api/features/:id", middleware.OptionalAuth(tokens), h.Get)
	r.PATCH("/api/features/:id", middleware.RequireAuth(tokens), h.Update)
	r.DELETE("/api/features/:id", middleware.RequireAuth(tokens), h.Delete)

	return svc
}
