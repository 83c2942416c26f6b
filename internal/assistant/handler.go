package assistant

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bungee-astro/tracker-api/internal/apperror"
)

// askRequest is the guide-assistant question payload.
type askRequest struct {
	Question     string `json:"question"     binding:"required"`
	GuideContext string `json:"guideContext" binding:"required"`
}

// Handler handles guide-assistant HTTP requests.
type Handler struct {
	client *Client
	logger *zap.SugaredLogger
}

// NewHandler creates a new assistant handler instance.
func NewHandler(client *Client, logger *zap.SugaredLogger) *Handler {
	return &Handler{client: client, logger: logger}
}

// Ask handles POST /api/assistant/ask.
func (h *Handler) Ask(c *gin.Context) {
	if !h.client.Configured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "assistant is not configured"})
		return
	}

	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, apperror.Validation("", "question and guideContext are required"))
		return
	}

	answer, err := h.client.Ask(c.Request.Context(), req.GuideContext, req.Question)
	if err != nil {
		h.logger.Errorw("assistant ask failed", "error", err)
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"answer": answer})
}

// RegisterRoutes registers assistant routes.
func RegisterRoutes(r *gin.Engine, client *Client, logger *zap.SugaredLogger) {
	h := NewHandler(client, logger)

	r.POST("/api/assistant/ask", h.Ask)
}
