// Package handler provides HTTP handlers for statistics endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bungee-astro/tracker-api/internal/apperror"
	"github.com/bungee-astro/tracker-api/internal/statistics/service"
)

// Handler handles HTTP requests for statistics endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new statistics handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetStatistics handles GET /api/statistics requests.
func (h *Handler) GetStatistics(c *gin.Context) {
	resp, err := h.service.GetStatistics(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error getting statistics", "error", err)
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
