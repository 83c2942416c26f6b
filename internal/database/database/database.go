// Package database opens and manages the postgres connection behind
// the tracker's gorm handle.
package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/bungee-astro/tracker-api/internal/database/config"
	"github.com/bungee-astro/tracker-api/internal/database/pool"
	"github.com/bungee-astro/tracker-api/pkg/retry"
)

// connectTimeout bounds the whole retry loop, not a single attempt.
const connectTimeout = 2 * time.Minute

// New connects using DB_* environment variables.
func New() (*gorm.DB, error) {
	return Open(config.Load())
}

// Open connects with explicit settings, retrying transient failures
// while postgres comes up, then sizes the connection pool.
func Open(cfg config.Config) (*gorm.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	dsn := cfg.DSN()
	db, err := retry.Do(ctx, config.ConnectPolicy(), func() (*gorm.DB, error) {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	})
	if err != nil {
		return nil, config.Sanitize(err, cfg)
	}

	if err := pool.Default().Apply(db); err != nil {
		return nil, fmt.Errorf("failed to set up connection pool: %w", err)
	}
	return db, nil
}

// HealthCheck pings the database within ctx's deadline.
func HealthCheck(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool. Safe on nil.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}
