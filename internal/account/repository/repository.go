// Package repository provides data access layer for the account module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/bungee-astro/tracker-api/internal/account/model"
)

// Repository defines the interface for account data access operations.
type Repository interface {
	// CreateWithProfile persists an account and its profile in one transaction.
	CreateWithProfile(ctx context.Context, account *model.Account) (*model.Profile, error)

	// GetByUsername finds an account by username (case-insensitive).
	GetByUsername(ctx context.Context, username string) (*model.Account, error)

	// GetByEmail finds an account by email.
	GetByEmail(ctx context.Context, email string) (*model.Account, error)

	// ExistsByUsernameOrEmail reports whether either unique field is taken.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)

	// ListProfiles returns all profiles in stored order.
	ListProfiles(ctx context.Context) ([]model.Profile, error)

	// GetProfileByAccountID finds the profile belonging to an account.
	GetProfileByAccountID(ctx context.Context, accountID uint) (*model.Profile, error)

	// UpdateAvatar sets the avatar URL on an account's profile.
	UpdateAvatar(ctx context.Context, accountID uint, avatarURL string) (*model.Profile, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new account repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// CreateWithProfile persists an account and its profile in one transaction.
func (r *repository) CreateWithProfile(ctx context.Context, account *model.Account) (*model.Profile, error) {
	r.logger.Infow("CreateWithProfile called", "username", account.Username)

	var profile model.Profile
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(account).Error; err != nil {
			return err
		}
		profile = model.Profile{
			AccountID:     account.ID,
			Username:      account.Username,
			DeveloperType: account.DeveloperType,
		}
		return tx.Create(&profile).Error
	})

	if err != nil {
		r.logger.Errorw("CreateWithProfile database error", "username", account.Username, "error", err)
		return nil, err
	}

	r.logger.Infow("CreateWithProfile completed", "account_id", account.ID, "profile_id", profile.ID)
	return &profile, nil
}

// GetByUsername finds an account by username (case-insensitive).
func (r *repository) GetByUsername(ctx context.Context, username string) (*model.Account, error) {
	r.logger.Debugw("GetByUsername called", "username", username)

	var account model.Account
	err := r.db.WithContext(ctx).
		Where("LOWER(username) = LOWER(?)", username).
		First(&account).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrAccountNotFound
		}
		r.logger.Errorw("GetByUsername database error", "username", username, "error", err)
		return nil, err
	}

	return &account, nil
}

// GetByEmail finds an account by email.
func (r *repository) GetByEmail(ctx context.Context, email string) (*model.Account, error) {
	r.logger.Debugw("GetByEmail called", "email", email)

	var account model.Account
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&account).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrAccountNotFound
		}
		r.logger.Errorw("GetByEmail database error", "error", err)
		return nil, err
	}

	return &account, nil
}

// ExistsByUsernameOrEmail reports whether either unique field is taken.
func (r *repository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Account{}).
		Where("LOWER(username) = LOWER(?) OR email = ?", username, email).
		Count(&count).Error

	if err != nil {
		r.logger.Errorw("ExistsByUsernameOrEmail database error", "username", username, "error", err)
		return false, err
	}

	return count > 0, nil
}

// ListProfiles returns all profiles in stored order.
func (r *repository) ListProfiles(ctx context.Context) ([]model.Profile, error) {
	r.logger.Debugw("ListProfiles called")

	var profiles []model.Profile
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&profiles).Error

	if err != nil {
		r.logger.Errorw("ListProfiles database error", "error", err)
		return nil, err
	}

	if profiles == nil {
		profiles = []model.Profile{}
	}
	return profiles, nil
}

// GetProfileByAccountID finds the profile belonging to an account.
func (r *repository) GetProfileByAccountID(ctx context.Context, accountID uint) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&profile).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrProfileNotFound
		}
		r.logger.Errorw("GetProfileByAccountID database error", "account_id", accountID, "error", err)
		return nil, err
	}

	return &profile, nil
}

// UpdateAvatar sets the avatar URL on an account's profile.
func (r *repository) UpdateAvatar(ctx context.Context, accountID uint, avatarURL string) (*model.Profile, error) {
	r.logger.Infow("UpdateAvatar called", "account_id", accountID)

	result := r.db.WithContext(ctx).
		Model(&model.Profile{}).
		Where("account_id = ?", accountID).
		Update("avatar_url", avatarURL)

	if result.Error != nil {
		r.logger.Errorw("UpdateAvatar database error", "account_id", accountID, "error", result.Error)
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, model.ErrProfileNotFound
	}

	return r.GetProfileByAccountID(ctx, accountID)
}
