package pool

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 25, cfg.MaxOpenConns)
	assert.Equal(t, 5, cfg.MaxIdleConns)
	assert.Equal(t, 5*time.Minute, cfg.ConnMaxLifetime)
	assert.LessOrEqual(t, cfg.MaxIdleConns, cfg.MaxOpenConns)
}

func TestApply(t *testing.T) {
	t.Run("sets limits on the pool", func(t *testing.T) {
		db := openTestDB(t)
		require.NoError(t, Default().Apply(db))

		sqlDB, err := db.DB()
		require.NoError(t, err)
		assert.Equal(t, 25, sqlDB.Stats().MaxOpenConnections)
	})

	t.Run("idle equal to open is allowed", func(t *testing.T) {
		cfg := Config{MaxOpenConns: 4, MaxIdleConns: 4, ConnMaxLifetime: time.Minute}
		assert.NoError(t, cfg.Apply(openTestDB(t)))
	})
}

func TestApply_RejectsBadLimits(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero open", Config{MaxOpenConns: 0, MaxIdleConns: 0}},
		{"negative open", Config{MaxOpenConns: -1, MaxIdleConns: 0}},
		{"negative idle", Config{MaxOpenConns: 10, MaxIdleConns: -1}},
		{"idle above open", Config{MaxOpenConns: 5, MaxIdleConns: 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.cfg.Apply(openTestDB(t)))
		})
	}
}
