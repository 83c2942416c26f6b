// Package notify mirrors ticket and feature state to Discord webhook
// channels. Dispatch is best-effort by design: a broken or unconfigured
// webhook is logged and skipped, never surfaced to the caller, so the
// store of record stays independent of the notification mirror.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/bungee-astro/tracker-api/internal/config"
)

const defaultTimeout = 10 * time.Second

// Notifier is the dispatch interface services call after a successful
// write. Implementations must never fail the caller.
type Notifier interface {
	// NotifyCreated posts a message to the developer's live channel and
	// returns the remote message id, or "" when dispatch was skipped or failed.
	NotifyCreated(ctx context.Context, developer string, embed Embed) string

	// NotifyUpdated edits the tracked live-channel message in place.
	// No-op when messageID is empty.
	NotifyUpdated(ctx context.Context, developer, messageID string, embed Embed)

	// NotifyResolved posts a summary to the developer's archive channel,
	// then deletes the original live-channel message.
	NotifyResolved(ctx context.Context, developer, messageID string, embed Embed)
}

// Dispatcher posts, edits and deletes Discord webhook messages.
type Dispatcher struct {
	webhooks map[string]config.DiscordWebhooks
	client   *http.Client
	logger   *zap.SugaredLogger
}

// Option configures the dispatcher.
type Option func(*Dispatcher)

// WithHTTPClient sets a custom HTTP client (used by tests).
func WithHTTPClient(client *http.Client) Option {
	return func(d *Dispatcher) {
		d.client = client
	}
}

// New creates a dispatcher from Discord configuration.
func New(cfg config.DiscordConfig, logger *zap.SugaredLogger, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		webhooks: cfg.Webhooks,
		client:   &http.Client{Timeout: defaultTimeout},
		logger:   logger,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

var _ Notifier = (*Dispatcher)(nil)

// NotifyCreated posts a message to the developer's live channel and
// returns the remote message id for later edits.
func (d *Dispatcher) NotifyCreated(ctx context.Context, developer string, embed Embed) string {
	url := d.webhooks[developer].Live
	if !configured(url) {
		d.logger.Debugw("notification skipped: live webhook not configured", "developer", developer)
		return ""
	}

	// wait=true makes Discord return the created message so we can track its id.
	body, err := d.do(ctx, http.MethodPost, url+"?wait=true", &webhookPayload{Embeds: []Embed{embed}})
	if err != nil {
		d.logger.Warnw("create notification failed", "developer", developer, "error", err)
		return ""
	}

	var msg struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &msg); err != nil {
		d.logger.Warnw("create notification: unparseable webhook response", "developer", developer, "error", err)
		return ""
	}

	return msg.ID
}

// NotifyUpdated edits the tracked live-channel message in place.
func (d *Dispatcher) NotifyUpdated(ctx context.Context, developer, messageID string, embed Embed) {
	if messageID == "" {
		return
	}
	url := d.webhooks[developer].Live
	if !configured(url) {
		return
	}

	editURL := url + "/messages/" + messageID
	if _, err := d.do(ctx, http.MethodPatch, editURL, &webhookPayload{Embeds: []Embed{embed}}); err != nil {
		d.logger.Warnw("update notification failed", "developer", developer, "message_id", messageID, "error", err)
	}
}

// NotifyResolved posts a summary to the archive channel, then deletes the
// original live-channel message.
func (d *Dispatcher) NotifyResolved(ctx context.Context, developer, messageID string, embed Embed) {
	if archiveURL := d.webhooks[developer].Archive; configured(archiveURL) {
		if _, err := d.do(ctx, http.MethodPost, archiveURL, &webhookPayload{Embeds: []Embed{embed}}); err != nil {
			d.logger.Warnw("archive notification failed", "developer", developer, "error", err)
		}
	} else {
		d.logger.Debugw("notification skipped: archive webhook not configured", "developer", developer)
	}

	liveURL := d.webhooks[developer].Live
	if messageID == "" || !configured(liveURL) {
		return
	}
	deleteURL := liveURL + "/messages/" + messageID
	if _, err := d.do(ctx, http.MethodDelete, deleteURL, nil); err != nil {
		d.logger.Warnw("deleting live notification failed", "developer", developer, "message_id", messageID, "error", err)
	}
}

type webhookPayload struct {
	Embeds []Embed `json:"embeds"`
}

func (d *Dispatcher) do(ctx context.Context, method, url string, payload *webhookPayload) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encoding payload: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("webhook returned %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}

// configured reports whether raw looks like a real webhook endpoint
// rather than a missing value or an unfilled placeholder such as
// "https://REPLACE_ME". A dialable host always carries a dot or a port.
func configured(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return false
	}
	return strings.ContainsAny(u.Host, ".:")
}
