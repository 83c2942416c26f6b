package config

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// DiscordWebhooks holds the live and archive webhook URLs for one developer.
type DiscordWebhooks struct {
	Live    string
	Archive string
}

// DiscordConfig holds Discord integration configuration.
type DiscordConfig struct {
	// PublicKey is the hex-encoded Ed25519 key Discord signs interaction
	// callbacks with. Empty disables the interactions endpoint.
	PublicKey string
	// Webhooks maps developer tag to its notification webhook URLs.
	// Missing or empty URLs disable notifications for that channel.
	Webhooks map[string]DiscordWebhooks
}

// LoadDiscordConfigFromEnv loads Discord configuration from environment
// variables. Webhook URLs are looked up per allowed developer as
// DISCORD_WEBHOOK_<TAG> and DISCORD_ARCHIVE_WEBHOOK_<TAG>.
func LoadDiscordConfigFromEnv(allowedUsers []string) DiscordConfig {
	webhooks := make(map[string]DiscordWebhooks, len(allowedUsers))
	for _, tag := range allowedUsers {
		key := strings.ToUpper(tag)
		webhooks[tag] = DiscordWebhooks{
			Live:    envOr("DISCORD_WEBHOOK_"+key, ""),
			Archive: envOr("DISCORD_ARCHIVE_WEBHOOK_"+key, ""),
		}
	}

	return DiscordConfig{
		PublicKey: envOr("DISCORD_PUBLIC_KEY", ""),
		Webhooks:  webhooks,
	}
}

// Validate validates Discord configuration.
func (c DiscordConfig) Validate() error {
	if c.PublicKey == "" {
		return nil
	}
	key, err := hex.DecodeString(c.PublicKey)
	if err != nil {
		return fmt.Errorf("DISCORD_PUBLIC_KEY is not valid hex: %w", err)
	}
	if len(key) != 32 {
		return fmt.Errorf("DISCORD_PUBLIC_KEY must decode to 32 bytes, got %d", len(key))
	}
	return nil
}

// GitHubConfig holds GitHub webhook configuration.
type GitHubConfig struct {
	// WebhookSecret keys the HMAC signature on inbound push events.
	// Empty disables the endpoint.
	WebhookSecret string
}

// LoadGitHubConfigFromEnv loads GitHub configuration from environment variables.
func LoadGitHubConfigFromEnv() GitHubConfig {
	return GitHubConfig{
		WebhookSecret: envOr("GITHUB_WEBHOOK_SECRET", ""),
	}
}

// AssistantConfig holds guide-assistant LLM configuration.
type AssistantConfig struct {
	// APIKey authenticates against the Groq API. Empty disables the endpoint.
	APIKey  string
	BaseURL string
	Model   string
}

// LoadAssistantConfigFromEnv loads assistant configuration from environment variables.
func LoadAssistantConfigFromEnv() AssistantConfig {
	return AssistantConfig{
		APIKey:  envOr("GROQ_API_KEY", ""),
		BaseURL: envOr("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		Model:   envOr("GROQ_MODEL", "llama-3.1-8b-instant"),
	}
}

// AttributionConfig holds the commit-attribution alias specification.
type AttributionConfig struct {
	// AliasSpec is the raw alias table, "tag:alias|alias;tag:alias".
	// Empty means the built-in defaults.
	AliasSpec string
}

// LoadAttributionConfigFromEnv loads attribution configuration from environment variables.
func LoadAttributionConfigFromEnv() AttributionConfig {
	return AttributionConfig{
		AliasSpec: envOr("ATTRIBUTION_ALIASES", ""),
	}
}
