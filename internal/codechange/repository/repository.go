// Package repository provides data access layer for the codechange module.
package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/bungee-astro/tracker-api/internal/codechange/model"
)

// Repository defines the interface for code-change data access operations.
type Repository interface {
	// Create persists a new code change entry.
	Create(ctx context.Context, change *model.CodeChange) error

	// List returns code changes matching the filter, newest first.
	List(ctx context.Context, filter model.ListCodeChangesFilter) ([]model.CodeChange, error)

	// Delete permanently removes an entry.
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new code-change repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create persists a new code change entry.
func (r *repository) Create(ctx context.Context, change *model.CodeChange) error {
	r.logger.Infow("Create code change called", "profile_id", change.ProfileID, "file_path", change.FilePath)

	if err := r.db.WithContext(ctx).Create(change).Error; err != nil {
		r.logger.Errorw("Create code change database error", "error", err)
		return err
	}
	return nil
}

// List returns code changes matching the filter, newest first.
func (r *repository) List(ctx context.Context, filter model.ListCodeChangesFilter) ([]model.CodeChange, error) {
	query := r.db.WithContext(ctx).Model(&model.CodeChange{})
	if filter.ProfileID != 0 {
		query = query.Where("profile_id = ?", filter.ProfileID)
	}

	var changes []model.CodeChange
	if err := query.Order("created_at DESC").Find(&changes).Error; err != nil {
		r.logger.Errorw("List code changes database error", "error", err)
		return nil, err
	}

	if changes == nil {
		changes = []model.CodeChange{}
	}
	return changes, nil
}

// Delete permanently removes an entry.
func (r *repository) Delete(ctx context.Context, id uint) error {
	r.logger.Infow("Delete code change called", "id", id)

	result := r.db.WithContext(ctx).Delete(&model.CodeChange{}, id)
	if result.Error != nil {
		r.logger.Errorw("Delete code change database error", "id", id, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrCodeChangeNotFound
	}
	return nil
}
