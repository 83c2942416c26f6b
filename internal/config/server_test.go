package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadServerConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := LoadServerConfigFromEnv()
		assert.Equal(t, "", cfg.Host)
		assert.Equal(t, ":8080", cfg.Port)
		assert.Equal(t, 10*time.Second, cfg.ReadTimeout)
		assert.Equal(t, 120*time.Second, cfg.IdleTimeout)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("SERVER_HOST", "10.0.0.5")
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("SERVER_READ_TIMEOUT", "30s")

		cfg := LoadServerConfigFromEnv()
		assert.Equal(t, "10.0.0.5", cfg.Host)
		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, 30*time.Second, cfg.ReadTimeout)
	})
}

func TestServerConfig_Address(t *testing.T) {
	tests := []struct {
		name string
		host string
		port string
		want string
	}{
		{"all interfaces with colon port", "", ":8080", ":8080"},
		{"all interfaces bare port", "", "8080", ":8080"},
		{"host with colon port", "127.0.0.1", ":8080", "127.0.0.1:8080"},
		{"host with bare port", "tracker.internal", "9090", "tracker.internal:9090"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := ServerConfig{Host: tt.host, Port: tt.port}
			assert.Equal(t, tt.want, cfg.Address())
		})
	}
}

func TestServerConfig_Validate(t *testing.T) {
	valid := ServerConfig{
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  time.Minute,
	}
	require.NoError(t, valid.Validate())

	t.Run("zero read timeout", func(t *testing.T) {
		cfg := valid
		cfg.ReadTimeout = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("negative idle timeout", func(t *testing.T) {
		cfg := valid
		cfg.IdleTimeout = -time.Second
		assert.Error(t, cfg.Validate())
	})
}
