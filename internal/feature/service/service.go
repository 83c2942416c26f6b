// Package service provides business logic layer for the feature module.
package service

import (
	"context"
	"errors"
	"strconv"

	"go.uber.org/zap"

	"github.com/bungee-astro/tracker-api/internal/apperror"
	"github.com/bungee-astro/tracker-api/internal/feature/model"
	"github.com/bungee-astro/tracker-api/internal/feature/repository"
	"github.com/bungee-astro/tracker-api/internal/notify"
)

// Service defines the interface for feature business logic operations.
type Service interface {
	// Create validates and persists a public feature suggestion.
	Create(ctx context.Context, req *model.CreateFeatureRequest, reporterAccountID *uint) (*model.FeatureResponse, error)

	// Get returns one feature request.
	Get(ctx context.Context, id uint) (*model.FeatureRequest, error)

	// List returns feature requests matching the filter.
	List(ctx context.Context, filter model.ListFeaturesFilter) (*model.FeaturesResponse, error)

	// Update applies a partial update, including accept/reject decisions.
	Update(ctx context.Context, id uint, req *model.UpdateFeatureRequest) (*model.FeatureResponse, error)

	// Delete permanently removes a feature request.
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo     repository.Repository
	notifier notify.Notifier
	logger   *zap.SugaredLogger
}

// New creates a new feature service instance.
func New(repo repository.Repository, notifier notify.Notifier, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, notifier: notifier, logger: logger}
}

// Create validates and persists a public feature suggestion.
func (s *service) Create(
	ctx context.Context,
	req *model.CreateFeatureRequest,
	reporterAccountID *uint,
) (*model.FeatureResponse, error) {
	s.logger.Debugw("Create feature called", "developer", req.Developer, "category", req.Category)

	if len(req.Description) < model.MinDescriptionLen {
		return nil, apperror.Validation("description",
			"description must be at least 50 characters")
	}

	feature := &model.FeatureRequest{
		Developer:         req.Developer,
		Category:          req.Category,
		Class:             req.Class,
		Description:       req.Description,
		Status:            model.StatusOpen,
		IsPrivate:         req.IsPrivate,
		ReporterName:      req.ReporterName,
		ReporterAccountID: reporterAccountID,
	}

	if err := s.repo.Create(ctx, feature); err != nil {
		return nil, err
	}

	// Post-commit hook; private requests are never mirrored to Discord.
	if !feature.IsPrivate {
		if messageID := s.notifier.NotifyCreated(ctx, feature.Developer, notify.FeatureEmbed(feature)); messageID != "" {
			feature.DiscordMessageID = messageID
			if err := s.repo.SetMessageID(ctx, feature.ID, messageID); err != nil {
				s.logger.Warnw("storing feature message id failed", "id", feature.ID, "error", err)
			}
		}
	}

	s.logger.Infow("Create feature completed", "id", feature.ID, "developer", feature.Developer)
	return &model.FeatureResponse{Message: "feature request created", Feature: *feature}, nil
}

// Get returns one feature request.
func (s *service) Get(ctx context.Context, id uint) (*model.FeatureRequest, error) {
	feature, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapNotFound(err, id)
	}
	return feature, nil
}

// List returns feature requests matching the filter.
func (s *service) List(ctx context.Context, filter model.ListFeaturesFilter) (*model.FeaturesResponse, error) {
	features, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &model.FeaturesResponse{Features: features, Total: len(features)}, nil
}

// Update applies a partial update, including accept/reject decisions.
func (s *service) Update(ctx context.Context, id uint, req *model.UpdateFeatureRequest) (*model.FeatureResponse, error) {
	s.logger.Debugw("Update feature called", "id", id)

	feature, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapNotFound(err, id)
	}

	if req.Category != nil {
		feature.Category = *req.Category
	}
	if req.Class != nil {
		feature.Class = *req.Class
	}
	if req.Description != nil {
		if len(*req.Description) < model.MinDescriptionLen {
			return nil, apperror.Validation("description",
				"description must be at least 50 characters")
		}
		feature.Description = *req.Description
	}
	if req.Status != nil {
		if !model.ValidStatus(*req.Status) {
			return nil, apperror.Validation("status",
				"status must be one of: open, accepted, rejected")
		}
		feature.Status = *req.Status
	}
	if req.IsPrivate != nil {
		feature.IsPrivate = *req.IsPrivate
	}

	if err := s.repo.Save(ctx, feature); err != nil {
		return nil, err
	}

	if !feature.IsPrivate {
		s.notifier.NotifyUpdated(ctx, feature.Developer, feature.DiscordMessageID, notify.FeatureEmbed(feature))
	}

	s.logger.Infow("Update feature completed", "id", id, "status", feature.Status)
	return &model.FeatureResponse{Message: "feature request updated", Feature: *feature}, nil
}

// Delete permanently removes a feature request.
func (s *service) Delete(ctx context.Context, id uint) error {
	s.logger.Debugw("Delete feature called", "id", id)

	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mapNotFound(err, id)
	}

	s.logger.Infow("Delete feature completed", "id", id)
	return nil
}

func (s *service) mapNotFound(err error, id uint) error {
	if errors.Is(err, model.ErrFeatureNotFound) {
		return apperror.NotFound("feature request", strconv.FormatUint(uint64(id), 10))
	}
	s.logger.Errorw("feature operation failed", "id", id, "error", err)
	return err
}
