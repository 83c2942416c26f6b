// Package handler provides HTTP handlers for code-change endpoints.
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bungee-astro/tracker-api/internal/apperror"
	"github.com/bungee-astro/tracker-api/internal/codechange/model"
	"github.com/bungee-astro/tracker-api/internal/codechange/service"
	"github.com/bungee-astro/tracker-api/internal/middleware"
)

// Handler handles HTTP requests for code-change endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new code-change handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Create handles POST /api/code-changes (authenticated).
func (h *Handler) Create(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		apperror.Respond(c, apperror.Unauthorized("valid authentication required"))
		return
	}

	var req model.CreateCodeChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, apperror.Validation("",
			"file_path, description and change_type are required"))
		return
	}

	change, err := h.service.Create(c.Request.Context(), claims.ID, &req)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "code change recorded",
		"code_change": change,
	})
}

// List handles GET /api/code-changes.
func (h *Handler) List(c *gin.Context) {
	var filter model.ListCodeChangesFilter
	if raw := c.Query("profile_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			apperror.Respond(c, apperror.Validation("profile_id", "profile_id must be a positive integer"))
			return
		}
		filter.ProfileID = uint(id)
	}

	resp, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/code-changes/:id (authenticated).
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperror.Respond(c, apperror.Validation("id", "id must be a positive integer"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), uint(id)); err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "code change deleted"})
}
