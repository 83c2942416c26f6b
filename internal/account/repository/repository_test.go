package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/bungee-astro/tracker-api/internal/account/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&model.Account{}, &model.Profile{})
	require.NoError(t, err)

	return db
}

func newAccount(username string) *model.Account {
	return &model.Account{
		Username:      username,
		Email:         username + "@example.com",
		PasswordHash:  "hash",
		DeveloperType: username,
	}
}

func TestCreateWithProfile(t *testing.T) {
	repo := New(setupTestDB(t), zap.NewNop().Sugar())
	ctx := context.Background()

	account := newAccount("astro")
	profile, err := repo.CreateWithProfile(ctx, account)
	require.NoError(t, err)
	require.NotZero(t, account.ID)
	require.Equal(t, account.ID, profile.AccountID)
	require.Equal(t, "astro", profile.Username)
	require.Equal(t, "astro", profile.DeveloperType)
}

func TestCreateWithProfile_DuplicateUsername(t *testing.T) {
	repo := New(setupTestDB(t), zap.NewNop().Sugar())
	ctx := context.Background()

	_, err := repo.CreateWithProfile(ctx, newAccount("astro"))
	require.NoError(t, err)

	dup := newAccount("astro")
	dup.Email = "other@example.com"
	_, err = repo.CreateWithProfile(ctx, dup)
	require.Error(t, err)

	// The transaction must roll back: no orphan profile rows.
	profiles, err := repo.ListProfiles(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 1)
}

func TestGetByUsername_CaseInsensitive(t *testing.T) {
	repo := New(setupTestDB(t), zap.NewNop().Sugar())
	ctx := context.Background()

	_, err := repo.CreateWithProfile(ctx, newAccount("astro"))
	require.NoError(t, err)

	account, err := repo.GetByUsername(ctx, "ASTRO")
	require.NoError(t, err)
	require.Equal(t, "astro", account.Username)

	_, err = repo.GetByUsername(ctx, "ghost")
	require.ErrorIs(t, err, model.ErrAccountNotFound)
}

func TestGetByEmail(t *testing.T) {
	repo := New(setupTestDB(t), zap.NewNop().Sugar())
	ctx := context.Background()

	_, err := repo.CreateWithProfile(ctx, newAccount("bungee"))
	require.NoError(t, err)

	account, err := repo.GetByEmail(ctx, "bungee@example.com")
	require.NoError(t, err)
	require.Equal(t, "bungee", account.Username)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, model.ErrAccountNotFound)
}

func TestExistsByUsernameOrEmail(t *testing.T) {
	repo := New(setupTestDB(t), zap.NewNop().Sugar())
	ctx := context.Background()

	_, err := repo.CreateWithProfile(ctx, newAccount("astro"))
	require.NoError(t, err)

	taken, err := repo.ExistsByUsernameOrEmail(ctx, "Astro", "new@example.com")
	require.NoError(t, err)
	require.True(t, taken)

	taken, err = repo.ExistsByUsernameOrEmail(ctx, "new", "astro@example.com")
	require.NoError(t, err)
	require.True(t, taken)

	taken, err = repo.ExistsByUsernameOrEmail(ctx, "new", "new@example.com")
	require.NoError(t, err)
	require.False(t, taken)
}

func TestListProfiles_EmptyIsNotNil(t *testing.T) {
	repo := New(setupTestDB(t), zap.NewNop().Sugar())

	profiles, err := repo.ListProfiles(context.Background())
	require.NoError(t, err)
	require.NotNil(t, profiles)
	require.Empty(t, profiles)
}

func TestUpdateAvatar(t *testing.T) {
	repo := New(setupTestDB(t), zap.NewNop().Sugar())
	ctx := context.Background()

	account := newAccount("astro")
	_, err := repo.CreateWithProfile(ctx, account)
	require.NoError(t, err)

	profile, err := repo.UpdateAvatar(ctx, account.ID, "https://cdn.example/astro.png")
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example/astro.png", profile.AvatarURL)

	_, err = repo.UpdateAvatar(ctx, 999, "https://cdn.example/x.png")
	require.ErrorIs(t, err, model.ErrProfileNotFound)
}
