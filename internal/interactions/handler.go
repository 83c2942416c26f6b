// Package interactions ingests Discord interaction callbacks: protocol
// pings and the accept/reject buttons attached to feature request
// notifications.
package interactions

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bungee-astro/tracker-api/internal/apperror"
	featuremodel "github.com/bungee-astro/tracker-api/internal/feature/model"
	featureservice "github.com/bungee-astro/tracker-api/internal/feature/service"
)

// Discord interaction and response type constants.
const (
	interactionPing      = 1
	interactionComponent = 3

	responsePong          = 1
	responseUpdateMessage = 7
)

// interaction is the subset of a Discord interaction payload we read.
type interaction struct {
	Type int `json:"type"`
	Data struct {
		CustomID string `json:"custom_id"`
	} `json:"data"`
}

// Handler handles inbound Discord interaction callbacks.
type Handler struct {
	publicKey string
	features  featureservice.Service
	logger    *zap.SugaredLogger
}

// New creates a new Discord interactions handler.
func New(publicKey string, features featureservice.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{publicKey: publicKey, features: features, logger: logger}
}

// Receive handles POST /api/webhooks/discord.
func (h *Handler) Receive(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable request body"})
		return
	}

	if !VerifySignature(
		h.publicKey,
		c.GetHeader("X-Signature-Timestamp"),
		body,
		c.GetHeader("X-Signature-Ed25519"),
	) {
		h.logger.Warnw("discord interaction: signature verification failed")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid request signature"})
		return
	}

	var payload interaction
	if err := json.Unmarshal(body, &payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed interaction payload"})
		return
	}

	switch payload.Type {
	case interactionPing:
		c.JSON(http.StatusOK, gin.H{"type": responsePong})

	case interactionComponent:
		h.handleComponent(c, payload.Data.CustomID)

	default:
		c.JSON(http.StatusOK, gin.H{"message": "interaction ignored"})
	}
}

// handleComponent drives a feature status decision from a button click.
// The custom id carries the action: "feature_{accept|reject}_{id}".
func (h *Handler) handleComponent(c *gin.Context, customID string) {
	parts := strings.Split(customID, "_")
	if len(parts) != 3 || parts[0] != "feature" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unrecognized component"})
		return
	}

	var status string
	switch parts[1] {
	case "accept":
		status = featuremodel.StatusAccepted
	case "reject":
		status = featuremodel.StatusRejected
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unrecognized component action"})
		return
	}

	id, err := strconv.ParseUint(parts[2], 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unrecognized component id"})
		return
	}

	resp, err := h.features.Update(c.Request.Context(), uint(id), &featuremodel.UpdateFeatureRequest{
		Status: &status,
	})
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			h.logger.Warnw("discord interaction: unknown feature", "feature_id", id)
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown feature"})
			return
		}
		h.logger.Errorw("discord interaction: feature decision failed",
			"feature_id", id, "status", status, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "feature decision failed"})
		return
	}

	h.logger.Infow("discord interaction: feature decision applied",
		"feature_id", id, "status", status)

	// UPDATE_MESSAGE rewrites the originating message, dropping the
	// action buttons so the decision cannot be re-triggered.
	c.JSON(http.StatusOK, gin.H{
		"type": responseUpdateMessage,
		"data": gin.H{
			"content":    "Feature request #" + parts[2] + " " + resp.Feature.Status,
			"components": []any{},
		},
	})
}
