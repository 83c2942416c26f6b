// Package handler provides HTTP handlers for ticket endpoints.
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bungee-astro/tracker-api/internal/apperror"
	"github.com/bungee-astro/tracker-api/internal/middleware"
	"github.com/bungee-astro/tracker-api/internal/ticket/model"
	"github.com/bungee-astro/tracker-api/internal/ticket/service"
)

// Handler handles HTTP requests for ticket endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new ticket handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Create handles POST /api/tickets. Publicly writable: anyone may file a
// report; authenticated submitters get linked to their account.
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, apperror.Validation("",
			"developer, class, current_behavior and expected_behavior are required"))
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

// List handles GET /api/tickets.
func (h *Handler) List(c *gin.Context) {
	filter := model.ListTicketsFilter{
		Developer: c.Query("developer"),
		Status:    c.Query("status"),
		Priority:  c.Query("priority"),
	}
	if raw := c.Query("archived"); raw != "" {
		archived, err := strconv.ParseBool(raw)
		if err != nil {
			apperror.Respond(c, apperror.Validation("archived", "archived must be true or false"))
			return
		}
		filter.Archived = &archived
	}

	resp, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/tickets/:id.
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ticket, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ticket": ticket})
}

// Update handles PATCH /api/tickets/:id (authenticated).
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.UpdateTicketRequest
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

// Delete handles DELETE /api/tickets/:id (authenticated). The default is
// a soft archive; ?hard=true removes the row permanently.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if c.Query("hard") == "true" {
		if err := h.service.HardDelete(c.Request.Context(), id); err != nil {
			apperror.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "ticket permanently deleted"})
		return
	}

	resp, err := h.service.Archive(c.Request.Context(), id)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperror.Respond(c, apperror.Validation("id", "id must be a positive integer"))
		return 0, false
	}
	return uint(id), true
}
