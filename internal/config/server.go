package config

import (
	"fmt"
	"net"
	"strings"
	"time"
)

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	// Host is the bind host; empty binds all interfaces.
	Host string
	// Port is the bind port, with or without a leading colon.
	Port string
	// ReadTimeout bounds reading one whole request.
	ReadTimeout time.Duration
	// WriteTimeout bounds writing one whole response.
	WriteTimeout time.Duration
	// IdleTimeout bounds keep-alive waits between requests.
	IdleTimeout time.Duration
}

// LoadServerConfigFromEnv loads listener settings from the environment.
func LoadServerConfigFromEnv() ServerConfig {
	return ServerConfig{
		Host:         envOr("SERVER_HOST", ""),
		Port:         envOr("SERVER_PORT", ":8080"),
		ReadTimeout:  envDuration("SERVER_READ_TIMEOUT", 10*time.Second),
		WriteTimeout: envDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
		IdleTimeout:  envDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
	}
}

// Address returns the listen address in host:port form.
func (c ServerConfig) Address() string {
	port := strings.TrimPrefix(c.Port, ":")
	if c.Host == "" {
		return ":" + port
	}
	return net.JoinHostPort(c.Host, port)
}

// Validate rejects non-positive timeouts.
func (c ServerConfig) Validate() error {
	for name, d := range map[string]time.Duration{
		"ReadTimeout":  c.ReadTimeout,
		"WriteTimeout": c.WriteTimeout,
		"IdleTimeout":  c.IdleTimeout,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be greater than 0", name)
		}
	}
	return nil
}
