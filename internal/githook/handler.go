// Package githook ingests GitHub push webhooks, attributes commits to
// developer profiles and records them in the code-change log.
package githook

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	accountrepo "github.com/bungee-astro/tracker-api/internal/account/repository"
	"github.com/bungee-astro/tracker-api/internal/attribution"
	ccmodel "github.com/bungee-astro/tracker-api/internal/codechange/model"
	ccservice "github.com/bungee-astro/tracker-api/internal/codechange/service"
)

// Handler handles inbound GitHub webhook requests.
type Handler struct {
	secret      string
	aliases     attribution.AliasTable
	accounts    accountrepo.Repository
	codeChanges ccservice.Service
	logger      *zap.SugaredLogger
}

// New creates a new GitHub webhook handler.
func New(
	secret string,
	aliases attribution.AliasTable,
	accounts accountrepo.Repository,
	codeChanges ccservice.Service,
	logger *zap.SugaredLogger,
) *Handler {
	return &Handler{
		secret:      secret,
		aliases:     aliases,
		accounts:    accounts,
		codeChanges: codeChanges,
		logger:      logger,
	}
}

// Receive handles POST /api/webhooks/github.
func (h *Handler) Receive(c *gin.Context) {
	event := c.GetHeader("X-GitHub-Event")

	// Ping is GitHub's connectivity probe; it bypasses verification.
	if event == "ping" {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		h.logger.Errorw("github webhook: reading body failed", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable request body"})
		return
	}

	if !VerifySignature(h.secret, body, c.GetHeader("X-Hub-Signature-256")) {
		h.logger.Warnw("github webhook: signature verification failed", "event", event)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	// Verified but uninteresting events are acknowledged without work.
	if event != "push" {
		c.JSON(http.StatusOK, gin.H{"message": "event ignored"})
		return
	}

	var push pushEvent
	if err := json.Unmarshal(body, &push); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed push payload"})
		return
	}

	profiles, err := h.accounts.ListProfiles(c.Request.Context())
	if err != nil {
		h.logger.Errorw("github webhook: listing profiles failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	matchable := make([]attribution.Profile, len(profiles))
	for i, p := range profiles {
		matchable[i] = attribution.Profile{
			ID:            p.ID,
			Username:      p.Username,
			DeveloperType: p.DeveloperType,
		}
	}

	recorded := 0
	for _, commit := range push.Commits {
		profile, ok := attribution.Match(attribution.Commit{
			AuthorName:     commit.Author.Name,
			AuthorUsername: commit.Author.Username,
			Message:        commit.Message,
		}, matchable, h.aliases)
		if !ok {
			h.logger.Debugw("github webhook: commit skipped",
				"commit", commit.ID, "author", commit.Author.Name)
			continue
		}

		change := &ccmodel.CodeChange{
			ProfileID:   profile.ID,
			FilePath:    commit.filePath(push.Repository.Name),
			Description: firstLine(commit.Message),
			ChangeType:  string(attribution.ClassifyChangeType(commit.Message)),
			ExternalURL: commit.URL,
		}

		// Commits are processed sequentially; earlier writes stay persisted
		// when a later one fails.
		if err := h.codeChanges.RecordCommit(c.Request.Context(), change); err != nil {
			h.logger.Errorw("github webhook: recording commit failed",
				"commit", commit.ID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "recording commit failed"})
			return
		}
		recorded++
	}

	h.logger.Infow("github webhook: push processed",
		"commits", len(push.Commits), "recorded", recorded)
	c.JSON(http.StatusOK, gin.H{
		"message":  "push processed",
		"recorded": recorded,
	})
}

func firstLine(message string) string {
	if idx := strings.IndexByte(message, '\n'); idx >= 0 {
		return strings.TrimSpace(message[:idx])
	}
	return strings.TrimSpace(message)
}
