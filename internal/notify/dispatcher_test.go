package notify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bungee-astro/tracker-api/internal/config"
)

type recordedRequest struct {
	Method string
	Path   string
	Body   string
}

// webhookServer fakes a Discord webhook endpoint and records every request.
func webhookServer(t *testing.T) (*httptest.Server, *[]recordedRequest) {
	t.Helper()

	var requests []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		requests = append(requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path + "?" + r.URL.RawQuery,
			Body:   string(body),
		})
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "msg-100"})
	}))
	t.Cleanup(srv.Close)
	return srv, &requests
}

func dispatcherFor(live, archive string) *Dispatcher {
	cfg := config.DiscordConfig{
		Webhooks: map[string]config.DiscordWebhooks{
			"astro": {Live: live, Archive: archive},
		},
	}
	return New(cfg, zap.NewNop().Sugar())
}

func TestNotifyCreated_ReturnsMessageID(t *testing.T) {
	srv, requests := webhookServer(t)
	d := dispatcherFor(srv.URL, "")

	messageID := d.NotifyCreated(context.Background(), "astro", Embed{Title: "new ticket"})
	require.Equal(t, "msg-100", messageID)

	require.Len(t, *requests, 1)
	require.Equal(t, http.MethodPost, (*requests)[0].Method)
	require.Contains(t, (*requests)[0].Path, "wait=true")
	require.Contains(t, (*requests)[0].Body, "new ticket")
}

func TestNotifyCreated_UnconfiguredWebhookSkips(t *testing.T) {
	d := dispatcherFor("", "")

	messageID := d.NotifyCreated(context.Background(), "astro", Embed{Title: "x"})
	require.Empty(t, messageID)
}

func TestConfigured(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"", false},
		{"not a url", false},
		{"ftp://discord.com/api/webhooks/1/t", false},
		{"https://REPLACE_ME", false},
		{"https://your-webhook-here", false},
		{"https://discord.com/api/webhooks/1/t", true},
		{"http://127.0.0.1:9999", true},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, configured(tt.url), "url %q", tt.url)
	}
}

func TestNotifyCreated_PlaceholderWebhookSkips(t *testing.T) {
	d := dispatcherFor("https://REPLACE_ME", "")

	messageID := d.NotifyCreated(context.Background(), "astro", Embed{Title: "x"})
	require.Empty(t, messageID)
}

func TestNotifyCreated_UnknownDeveloperSkips(t *testing.T) {
	srv, requests := webhookServer(t)
	d := dispatcherFor(srv.URL, "")

	messageID := d.NotifyCreated(context.Background(), "nobody", Embed{Title: "x"})
	require.Empty(t, messageID)
	require.Empty(t, *requests)
}

func TestNotifyCreated_ServerErrorSwallowed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	d := dispatcherFor(srv.URL, "")
	messageID := d.NotifyCreated(context.Background(), "astro", Embed{Title: "x"})
	require.Empty(t, messageID)
}

func TestNotifyUpdated_EditsTrackedMessage(t *testing.T) {
	srv, requests := webhookServer(t)
	d := dispatcherFor(srv.URL, "")

	d.NotifyUpdated(context.Background(), "astro", "msg-7", Embed{Title: "edited"})

	require.Len(t, *requests, 1)
	require.Equal(t, http.MethodPatch, (*requests)[0].Method)
	require.Contains(t, (*requests)[0].Path, "/messages/msg-7")
}

func TestNotifyUpdated_NoMessageIDIsNoop(t *testing.T) {
	srv, requests := webhookServer(t)
	d := dispatcherFor(srv.URL, "")

	d.NotifyUpdated(context.Background(), "astro", "", Embed{Title: "edited"})
	require.Empty(t, *requests)
}

func TestNotifyResolved_ArchivesThenDeletes(t *testing.T) {
	liveSrv, liveRequests := webhookServer(t)
	archiveSrv, archiveRequests := webhookServer(t)
	d := dispatcherFor(liveSrv.URL, archiveSrv.URL)

	d.NotifyResolved(context.Background(), "astro", "msg-9", Embed{Title: "resolved"})

	require.Len(t, *archiveRequests, 1)
	require.Equal(t, http.MethodPost, (*archiveRequests)[0].Method)
	require.Contains(t, (*archiveRequests)[0].Body, "resolved")

	require.Len(t, *liveRequests, 1)
	require.Equal(t, http.MethodDelete, (*liveRequests)[0].Method)
	require.Contains(t, (*liveRequests)[0].Path, "/messages/msg-9")
}

func TestNotifyResolved_NoMessageIDSkipsDelete(t *testing.T) {
	liveSrv, liveRequests := webhookServer(t)
	archiveSrv, archiveRequests := webhookServer(t)
	d := dispatcherFor(liveSrv.URL, archiveSrv.URL)

	d.NotifyResolved(context.Background(), "astro", "", Embed{Title: "resolved"})

	require.Len(t, *archiveRequests, 1)
	require.Empty(t, *liveRequests)
}
