// Package config holds the postgres connection settings and the DSN
// handling around them.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bungee-astro/tracker-api/pkg/retry"
)

// Config holds the postgres connection parameters.
type Config struct {
	Host     string
	User     string
	Password string
	DBName   string
	Port     string
	SSLMode  string
	TimeZone string
}

// Load reads connection parameters from DB_* environment variables.
func Load() Config {
	return Config{
		Host:     envOr("DB_HOST", "localhost"),
		User:     envOr("DB_USER", "postgres"),
		Password: envOr("DB_PASSWORD", "postgres"),
		DBName:   envOr("DB_NAME", "tracker"),
		Port:     envOr("DB_PORT", "5432"),
		SSLMode:  envOr("DB_SSLMODE", "disable"),
		TimeZone: envOr("DB_TIMEZONE", "UTC"),
	}
}

// DSN returns the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.Host, c.User, c.Password, c.DBName, c.Port, c.SSLMode, c.TimeZone)
}

// redactedDSN is the DSN with the password masked, safe to log.
func (c Config) redactedDSN() string {
	masked := c
	masked.Password = "***"
	return masked.DSN()
}

// Sanitize wraps a connection error with the password scrubbed out, so
// driver errors that echo the DSN never leak credentials into logs.
func Sanitize(err error, c Config) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	msg = strings.ReplaceAll(msg, c.DSN(), c.redactedDSN())
	if c.Password != "" {
		msg = strings.ReplaceAll(msg, c.Password, "***")
	}
	return fmt.Errorf("failed to connect to database: %s", msg)
}

// ConnectPolicy returns the startup retry policy, with the attempt
// count and delays overridable from the environment.
func ConnectPolicy() retry.Policy {
	p := retry.ConnectPolicy()
	p.Attempts = envInt("DB_RETRY_ATTEMPTS", p.Attempts)
	p.BaseDelay = envDuration("DB_RETRY_BASE_DELAY", p.BaseDelay)
	p.MaxDelay = envDuration("DB_RETRY_MAX_DELAY", p.MaxDelay)
	return p
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
