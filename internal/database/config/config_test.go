package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := Load()
		assert.Equal(t, Config{
			Host:     "localhost",
			User:     "postgres",
			Password: "postgres",
			DBName:   "tracker",
			Port:     "5432",
			SSLMode:  "disable",
			TimeZone: "UTC",
		}, cfg)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("DB_HOST", "db.tracker.internal")
		t.Setenv("DB_NAME", "tracker_staging")
		t.Setenv("DB_SSLMODE", "require")

		cfg := Load()
		assert.Equal(t, "db.tracker.internal", cfg.Host)
		assert.Equal(t, "tracker_staging", cfg.DBName)
		assert.Equal(t, "require", cfg.SSLMode)
		assert.Equal(t, "postgres", cfg.User)
	})
}

func TestDSN(t *testing.T) {
	cfg := Config{
		Host:     "localhost",
		User:     "tracker",
		Password: "hunter2",
		DBName:   "tracker",
		Port:     "5432",
		SSLMode:  "disable",
		TimeZone: "UTC",
	}

	assert.Equal(t,
		"host=localhost user=tracker password=hunter2 dbname=tracker port=5432 sslmode=disable TimeZone=UTC",
		cfg.DSN())
}

func TestSanitize(t *testing.T) {
	cfg := Config{
		Host:     "localhost",
		User:     "tracker",
		Password: "hunter2",
		DBName:   "tracker",
		Port:     "5432",
		SSLMode:  "disable",
		TimeZone: "UTC",
	}

	t.Run("scrubs bare password", func(t *testing.T) {
		err := Sanitize(errors.New("auth failed: password=hunter2"), cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to connect to database")
		assert.Contains(t, err.Error(), "***")
		assert.NotContains(t, err.Error(), "hunter2")
	})

	t.Run("scrubs echoed DSN", func(t *testing.T) {
		err := Sanitize(errors.New("failed to connect to `"+cfg.DSN()+"`"), cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "password=***")
		assert.NotContains(t, err.Error(), "hunter2")
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, Sanitize(nil, cfg))
	})
}

func TestConnectPolicy(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		p := ConnectPolicy()
		assert.Equal(t, 5, p.Attempts)
		assert.Equal(t, time.Second, p.BaseDelay)
		assert.NotEmpty(t, p.Transient)
	})

	t.Run("env overrides", func(t *testing.T) {
		t.Setenv("DB_RETRY_ATTEMPTS", "1")
		t.Setenv("DB_RETRY_BASE_DELAY", "10ms")

		p := ConnectPolicy()
		assert.Equal(t, 1, p.Attempts)
		assert.Equal(t, 10*time.Millisecond, p.BaseDelay)
	})
}
