// Package repository provides data access layer for the feature module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/bungee-astro/tracker-api/internal/feature/model"
)

// Repository defines the interface for feature data access operations.
type Repository interface {
	// Create persists a new feature request.
	Create(ctx context.Context, feature *model.FeatureRequest) error

	// GetByID finds a feature request by id.
	GetByID(ctx context.Context, id uint) (*model.FeatureRequest, error)

	// List returns feature requests matching the filter, newest first.
	List(ctx context.Context, filter model.ListFeaturesFilter) ([]model.FeatureRequest, error)

	// Save persists all fields of an existing feature request.
	Save(ctx context.Context, feature *model.FeatureRequest) error

	// Delete permanently removes a feature request row.
	Delete(ctx context.Context, id uint) error

	// SetMessageID stores the notification mirror's message id.
	SetMessageID(ctx context.Context, id uint, messageID string) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new feature repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create persists a new feature request.
func (r *repository) Create(ctx context.Context, feature *model.FeatureRequest) error {
	r.logger.Infow("Create feature called", "developer", feature.Developer, "category", feature.Category)

	if err := r.db.WithContext(ctx).Create(feature).Error; err != nil {
		r.logger.Errorw("Create feature database error", "error", err)
		return err
	}
	return nil
}

// GetByID finds a feature request by id.
func (r *repository) GetByID(ctx context.Context, id uint) (*model.FeatureRequest, error) {
	var feature model.FeatureRequest
	err := r.db.WithContext(ctx).First(&feature, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrFeatureNotFound
		}
		r.logger.Errorw("GetByID feature database error", "id", id, "error", err)
		return nil, err
	}
	return &feature, nil
}

// List returns feature requests matching the filter, newest first.
func (r *repository) List(ctx context.Context, filter model.ListFeaturesFilter) ([]model.FeatureRequest, error) {
	query := r.db.WithContext(ctx).Model(&model.FeatureRequest{})
	if filter.Developer != "" {
		query = query.Where("developer = ?", filter.Developer)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if !filter.IncludePrivate {
		query = query.Where("is_private = ?", false)
	}

	var features []model.FeatureRequest
	if err := query.Order("created_at DESC").Find(&features).Error; err != nil {
		r.logger.Errorw("List features database error", "error", err)
		return nil, err
	}

	if features == nil {
		features = []model.FeatureRequest{}
	}
	return features, nil
}

// Save persists all fields of an existing feature request.
func (r *repository) Save(ctx context.Context, feature *model.FeatureRequest) error {
	if err := r.db.WithContext(ctx).Save(feature).Error; err != nil {
		r.logger.Errorw("Save feature database error", "id", feature.ID, "error", err)
		return err
	}
	return nil
}

// Delete permanently removes a feature request row.
func (r *repository) Delete(ctx context.Context, id uint) error {
	r.logger.Infow("Delete feature called", "id", id)

	result := r.db.WithContext(ctx).Delete(&model.FeatureRequest{}, id)
	if result.Error != nil {
		r.logger.Errorw("Delete feature database error", "id", id, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrFeatureNotFound
	}
	return nil
}

// SetMessageID stores the notification mirror's message id.
func (r *repository) SetMessageID(ctx context.Context, id uint, messageID string) error {
	err := r.db.WithContext(ctx).
		Model(&model.FeatureRequest{}).
		Where("id = ?", id).
		Update("discord_message_id", messageID).Error
	if err != nil {
		r.logger.Errorw("SetMessageID feature database error", "id", id, "error", err)
	}
	return err
}
