package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadLoggerConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := LoadLoggerConfigFromEnv()
		assert.Equal(t, LoggerConfig{Level: "info", Format: "json", Output: "stdout"}, cfg)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "console")
		t.Setenv("LOG_OUTPUT", "stderr")

		cfg := LoadLoggerConfigFromEnv()
		assert.Equal(t, LoggerConfig{Level: "debug", Format: "console", Output: "stderr"}, cfg)
	})
}

func TestLoggerConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LoggerConfig
		wantErr bool
	}{
		{"json info", LoggerConfig{Level: "info", Format: "json"}, false},
		{"console debug", LoggerConfig{Level: "debug", Format: "console"}, false},
		{"unknown level", LoggerConfig{Level: "trace", Format: "json"}, true},
		{"unknown format", LoggerConfig{Level: "info", Format: "logfmt"}, true},
		{"empty", LoggerConfig{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoggerConfig_IsProduction(t *testing.T) {
	assert.True(t, LoggerConfig{Level: "info", Format: "json"}.IsProduction())
	assert.True(t, LoggerConfig{Level: "warn", Format: "json"}.IsProduction())
	assert.False(t, LoggerConfig{Level: "debug", Format: "json"}.IsProduction())
	assert.False(t, LoggerConfig{Level: "info", Format: "console"}.IsProduction())
}
