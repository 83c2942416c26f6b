// Package router provides account module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/bungee-astro/tracker-api/internal/account/handler"
	"github.com/bungee-astro/tracker-api/internal/account/repository"
	"github.com/bungee-astro/tracker-api/internal/account/service"
	"github.com/bungee-astro/tracker-api/internal/config"
	"github.com/bungee-astro/tracker-api/internal/middleware"
	"github.com/bungee-astro/tracker-api/internal/token"
)

// RegisterRoutes registers account module routes.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	tokens *token.Service,
	cfg config.AuthConfig,
	logger *zap.SugaredLogger,
) {
	repo := repository.New(db, logger)
	svc := service.New(repo, tokens, cfg, logger)
	h := handler.New(svc, logger)

	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)
	r.GET("/api/profiles", h.ListProfiles)
	r.PATCH("/api/profiles/avatar", middleware.RequireAuth(tokens), h.UpdateAvatar)
}
