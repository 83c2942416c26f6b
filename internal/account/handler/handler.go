// Package handler provides HTTP handlers for account endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bungee-astro/tracker-api/internal/account/model"
	"github.com/bungee-astro/tracker-api/internal/account/service"
	"github.com/bungee-astro/tracker-api/internal/apperror"
	"github.com/bungee-astro/tracker-api/internal/middleware"
)

// Handler handles HTTP requests for account endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new account handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Register handles POST /api/auth/register.
func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, apperror.Validation("", "username, email, password, developer_type and registration_secret are required"))
		return
	}

	resp, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login handles POST /api/auth/login.
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, apperror.Validation("", "identifier and password are required"))
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListProfiles handles GET /api/profiles.
func (h *Handler) ListProfiles(c *gin.Context) {
	resp, err := h.service.ListProfiles(c.Request.Context())
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateAvatar handles PATCH /api/profiles/avatar (authenticated).
func (h *Handler) UpdateAvatar(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		apperror.Respond(c, apperror.Unauthorized("valid authentication required"))
		return
	}

	var req model.UpdateAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, apperror.Validation("avatar_url", "avatar_url is required"))
		return
	}

	profile, err := h.service.UpdateAvatar(c.Request.Context(), claims.ID, &req)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "avatar updated",
		"profile": profile,
	})
}
