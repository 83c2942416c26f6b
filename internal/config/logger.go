package config

import "fmt"

// LoggerConfig holds structured-logging settings.
type LoggerConfig struct {
	// Level is one of debug, info, warn, error.
	Level string
	// Format is json or console.
	Format string
	// Output is stdout, stderr, or a file path.
	Output string
}

// LoadLoggerConfigFromEnv loads logging settings from the environment.
func LoadLoggerConfigFromEnv() LoggerConfig {
	return LoggerConfig{
		Level:  envOr("LOG_LEVEL", "info"),
		Format: envOr("LOG_FORMAT", "json"),
		Output: envOr("LOG_OUTPUT", "stdout"),
	}
}

// Validate rejects unknown levels and formats.
func (c LoggerConfig) Validate() error {
	switch c.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q (want debug, info, warn or error)", c.Level)
	}

	switch c.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format %q (want json or console)", c.Format)
	}
	return nil
}

// IsProduction reports whether the settings describe a production
// deployment. Console output or debug logging means a developer is
// watching.
func (c LoggerConfig) IsProduction() bool {
	return c.Format == "json" && c.Level != "debug"
}
