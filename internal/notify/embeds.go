package notify

import (
	"fmt"
	"time"

	featuremodel "github.com/bungee-astro/tracker-api/internal/feature/model"
	ticketmodel "github.com/bungee-astro/tracker-api/internal/ticket/model"
)

// Embed is a Discord embed with the fixed field layout the tracker uses.
type Embed struct {
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color"`
	Fields      []EmbedField `json:"fields,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
}

// EmbedField is one name/value pair inside an embed.
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// Embed colors per ticket state.
const (
	colorOpen       = 0xe74c3c // red
	colorInProgress = 0xf1c40f // yellow
	colorResolved   = 0x2ecc71 // green
	colorFeature    = 0x3498db // blue
)

func statusColor(status string) int {
	switch status {
	case ticketmodel.StatusInProgress:
		return colorInProgress
	case ticketmodel.StatusResolved:
		return colorResolved
	default:
		return colorOpen
	}
}

// TicketEmbed renders a bug ticket for the live channel.
func TicketEmbed(t *ticketmodel.BugTicket) Embed {
	reporter := t.ReporterName
	if reporter == "" {
		reporter = "anonymous"
	}

	return Embed{
		Title: fmt.Sprintf("Bug #%d - %s", t.ID, t.Class),
		Color: statusColor(t.Status),
		Fields: []EmbedField{
			{Name: "Class/Spec", Value: classSpec(t.Class, t.Spec), Inline: true},
			{Name: "Priority", Value: t.Priority, Inline: true},
			{Name: "Status", Value: t.Status, Inline: true},
			{Name: "Current behavior", Value: truncate(t.CurrentBehavior, 1024)},
			{Name: "Expected behavior", Value: truncate(t.ExpectedBehavior, 1024)},
			{Name: "Reported by", Value: reporter, Inline: true},
		},
		Timestamp: t.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// TicketResolvedEmbed renders the archive-channel resolution summary.
func TicketResolvedEmbed(t *ticketmodel.BugTicket) Embed {
	reason := t.ResolveReason
	if reason == "" {
		reason = "resolved"
	}

	return Embed{
		Title:       fmt.Sprintf("Bug #%d resolved - %s", t.ID, t.Class),
		Description: truncate(t.CurrentBehavior, 1024),
		Color:       colorResolved,
		Fields: []EmbedField{
			{Name: "Resolution", Value: reason, Inline: true},
			{Name: "Priority", Value: t.Priority, Inline: true},
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// FeatureEmbed renders a feature request for the live channel.
func FeatureEmbed(f *featuremodel.FeatureRequest) Embed {
	reporter := f.ReporterName
	if reporter == "" {
		reporter = "anonymous"
	}

	return Embed{
		Title: fmt.Sprintf("Feature #%d - %s", f.ID, f.Category),
		Color: colorFeature,
		Fields: []EmbedField{
			{Name: "Category", Value: classSpec(f.Category, f.Class), Inline: true},
			{Name: "Status", Value: f.Status, Inline: true},
			{Name: "Description", Value: truncate(f.Description, 1024)},
			{Name: "Suggested by", Value: reporter, Inline: true},
		},
		Timestamp: f.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func classSpec(class, spec string) string {
	if spec == "" {
		return class
	}
	return class + " / " + spec
}

// truncate caps a value at Discord's per-field limit.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
