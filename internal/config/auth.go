package config

import (
	"fmt"
	"strings"
)

// AuthConfig holds authentication and registration configuration.
type AuthConfig struct {
	// JWTSecret signs and verifies bearer tokens.
	JWTSecret string
	// RegistrationSecret is the shared out-of-band secret required to register.
	RegistrationSecret string
	// AllowedUsers is the closed set of identities permitted to register.
	AllowedUsers []string
}

// LoadAuthConfigFromEnv loads authentication configuration from environment variables.
func LoadAuthConfigFromEnv() AuthConfig {
	raw := envOr("AUTH_ALLOWED_USERS", "astro,bungee")

	var allowed []string
	for _, u := range strings.Split(raw, ",") {
		u = strings.TrimSpace(strings.ToLower(u))
		if u != "" {
			allowed = append(allowed, u)
		}
	}

	return AuthConfig{
		JWTSecret:          envOr("JWT_SECRET", ""),
		RegistrationSecret: envOr("AUTH_REGISTRATION_SECRET", ""),
		AllowedUsers:       allowed,
	}
}

// Validate validates authentication configuration.
func (c AuthConfig) Validate() error {
	if len(c.JWTSecret) < 16 {
		return fmt.Errorf("JWT_SECRET must be at least 16 characters")
	}
	if c.RegistrationSecret == "" {
		return fmt.Errorf("AUTH_REGISTRATION_SECRET must be set")
	}
	if len(c.AllowedUsers) == 0 {
		return fmt.Errorf("AUTH_ALLOWED_USERS must list at least one identity")
	}
	return nil
}

// IsAllowedUser reports whether username is in the registration allow-list.
// Comparison is case-insensitive.
func (c AuthConfig) IsAllowedUser(username string) bool {
	username = strings.ToLower(username)
	for _, u := range c.AllowedUsers {
		if u == username {
			return true
		}
	}
	return false
}
