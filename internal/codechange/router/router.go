// Package router provides codechange module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	accountrepo "github.com/bungee-astro/tracker-api/internal/account/repository"
	"github.com/bungee-astro/tracker-api/internal/codechange/handler"
	"github.com/bungee-astro/tracker-api/internal/codechange/repository"
	"github.com/bungee-astro/tracker-api/internal/codechange/service"
	"github.com/bungee-astro/tracker-api/internal/middleware"
	"github.com/bungee-astro/tracker-api/internal/token"
)

// RegisterRoutes registers codechange module routes and returns the
// service for the GitHub webhook ingress to record attributed commits.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	tokens *token.Service,
	logger *zap.SugaredLogger,
) service.Service {
	repo := repository.New(db, logger)
	accounts := accountrepo.New(db, logger)
	svc := service.New(repo, accounts, logger)
	h := handler.New(svc, logger)

	r.POST("/api/code-changes", middleware.RequireAuth(tokens), h.Create)
	r.GET("/api/code-changes", h.List)
	r.DELETE("/api/code-changes/:id", middleware.RequireAuth(tokens), h.Delete)

	return svc
}
