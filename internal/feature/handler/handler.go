// Package handler provides HTTP handlers for feature endpoints.
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bungee-astro/tracker-api/internal/apperror"
	"github.com/bungee-astro/tracker-api/internal/feature/model"
	"github.com/bungee-astro/tracker-api/internal/feature/service"
	"github.com/bungee-astro/tracker-api/internal/middleware"
)

// Handler handles HTTP requests for feature endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new feature handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Create handles POST /api/features. Publicly writable.
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, apperror.Validation("",
			"developer, category and description are required"))
		return
	}

	var reporterAccountID *uint
	if claims, ok := middleware.ClaimsFromContext(c); ok {
		reporterAccountID = &claims.ID
		if req.ReporterName == "" {
			req.ReporterName = claims.Username
		}
	}

	resp, err := h.service.Create(c.Request.Context(), &req, reporterAccountID)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// List handles GET /api/features. Private requests are only listed for
// authenticated callers.
func (h *Handler) List(c *gin.Context) {
	_, authenticated := middleware.ClaimsFromContext(c)

	filter := model.ListFeaturesFilter{
		Developer:      c.Query("developer"),
		Status:         c.Query("status"),
		IncludePrivate: authenticated,
	}

	resp, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/features/:id.
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	feature, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	if feature.IsPrivate {
		if _, authenticated := middleware.ClaimsFromContext(c); !authenticated {
			apperror.Respond(c, apperror.NotFound("feature request", c.Param("id")))
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"feature": feature})
}

// Update handles PATCH /api/features/:id (authenticated).
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.UpdateFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, apperror.Validation("", "invalid request body"))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/features/:id (authenticated).
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "feature request deleted"})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperror.Respond(c, apperror.Validation("id", "id must be a positive integer"))
		return 0, false
	}
	return uint(id), true
}
