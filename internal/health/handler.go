// Package health exposes the liveness endpoint the deploy probes hit.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/bungee-astro/tracker-api/internal/database/database"
)

// pingTimeout bounds the database ping so a stuck pool cannot hang the
// probe.
const pingTimeout = 5 * time.Second

// Handler answers GET /health.
type Handler struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a health handler.
func New(db *gorm.DB, logger *zap.SugaredLogger) *Handler {
	return &Handler{db: db, logger: logger}
}

// Response is the health probe body.
type Response struct {
	Status string `json:"status"`
}

// Check pings the database and reports ok or unhealthy.
func (h *Handler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
	defer cancel()

	if err := database.HealthCheck(ctx, h.db); err != nil {
		h.logger.Warnw("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, Response{Status: "unhealthy"})
		return
	}
	c.JSON(http.StatusOK, Response{Status: "ok"})
}
