package config

import "fmt"

// Config holds application configuration.
type Config struct {
	// Server holds HTTP server configuration.
	Server ServerConfig
	// Logger holds logger configuration.
	Logger LoggerConfig
	// Auth holds authentication and registration configuration.
	Auth AuthConfig
	// Discord holds Discord webhook and interaction configuration.
	Discord DiscordConfig
	// GitHub holds GitHub webhook configuration.
	GitHub GitHubConfig
	// Assistant holds guide-assistant LLM configuration.
	Assistant AssistantConfig
	// Attribution holds the commit-attribution alias specification.
	Attribution AttributionConfig
	// GinMode is the Gin framework mode (debug, release, test).
	GinMode string
}

// LoadFromEnv loads all configuration from environment variables.
func LoadFromEnv() Config {
	auth := LoadAuthConfigFromEnv()
	return Config{
		Server:      LoadServerConfigFromEnv(),
		Logger:      LoadLoggerConfigFromEnv(),
		Auth:        auth,
		Discord:     LoadDiscordConfigFromEnv(auth.AllowedUsers),
		GitHub:      LoadGitHubConfigFromEnv(),
		Assistant:   LoadAssistantConfigFromEnv(),
		Attribution: LoadAttributionConfigFromEnv(),
		GinMode:     envOr("GIN_MODE", "release"),
	}
}

// Validate validates all configuration.
func (c Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := c.Logger.Validate(); err != nil {
		return fmt.Errorf("logger config validation failed: %w", err)
	}

	if err := c.Auth.Validate(); err != nil {
		return fmt.Errorf("auth config validation failed: %w", err)
	}

	if err := c.Discord.Validate(); err != nil {
		return fmt.Errorf("discord config validation failed: %w", err)
	}

	validGinModes := map[string]bool{
		"debug":   true,
		"release": true,
		"test":    true,
	}
	if !validGinModes[c.GinMode] {
		return fmt.Errorf("invalid GIN_MODE: %s (must be: debug, release, test)", c.GinMode)
	}

	return nil
}
