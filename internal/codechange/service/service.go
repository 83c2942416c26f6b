// Package service provides business logic layer for the codechange module.
package service

import (
	"context"
	"errors"
	"strconv"

	"go.uber.org/zap"

	accountmodel "github.com/bungee-astro/tracker-api/internal/account/model"
	accountrepo "github.com/bungee-astro/tracker-api/internal/account/repository"
	"github.com/bungee-astro/tracker-api/internal/apperror"
	"github.com/bungee-astro/tracker-api/internal/attribution"
	"github.com/bungee-astro/tracker-api/internal/codechange/model"
	"github.com/bungee-astro/tracker-api/internal/codechange/repository"
)

// Service defines the interface for code-change business logic operations.
type Service interface {
	// Create records a manual code change for the calling developer's profile.
	Create(ctx context.Context, accountID uint, req *model.CreateCodeChangeRequest) (*model.CodeChange, error)

	// RecordCommit records a code change attributed from a GitHub commit.
	RecordCommit(ctx context.Context, change *model.CodeChange) error

	// List returns code changes matching the filter.
	List(ctx context.Context, filter model.ListCodeChangesFilter) (*model.CodeChangesResponse, error)

	// Delete permanently removes an entry.
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo     repository.Repository
	accounts accountrepo.Repository
	logger   *zap.SugaredLogger
}

// New creates a new code-change service instance.
func New(repo repository.Repository, accounts accountrepo.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, accounts: accounts, logger: logger}
}

// Create records a manual code change for the calling developer's profile.
func (s *service) Create(ctx context.Context, accountID uint, req *model.CreateCodeChangeRequest) (*model.CodeChange, error) {
	s.logger.Debugw("Create code change called", "account_id", accountID)

	if !attribution.ValidChangeType(req.ChangeType) {
		return nil, apperror.Validation("change_type",
			"change_type must be one of: fix, feature, delete, create, update")
	}

	profile, err := s.accounts.GetProfileByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, accountmodel.ErrProfileNotFound) {
			return nil, apperror.NotFound("profile", "for current account")
		}
		s.logger.Errorw("Create code change failed resolving profile", "account_id", accountID, "error", err)
		return nil, err
	}

	change := &model.CodeChange{
		ProfileID:   profile.ID,
		FilePath:    req.FilePath,
		Description: req.Description,
		ChangeType:  req.ChangeType,
		TicketID:    req.TicketID,
		ExternalURL: req.ExternalURL,
	}

	if err := s.repo.Create(ctx, change); err != nil {
		return nil, err
	}

	s.logger.Infow("Create code change completed", "id", change.ID, "profile_id", profile.ID)
	return change, nil
}

// RecordCommit records a code change attributed from a GitHub commit.
func (s *service) RecordCommit(ctx context.Context, change *model.CodeChange) error {
	return s.repo.Create(ctx, change)
}

// List returns code changes matching the filter.
func (s *service) List(ctx context.Context, filter model.ListCodeChangesFilter) (*model.CodeChangesResponse, error) {
	changes, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &model.CodeChangesResponse{CodeChanges: changes, Total: len(changes)}, nil
}

// Delete permanently removes an entry.
func (s *service) Delete(ctx context.Context, id uint) error {
	s.logger.Debugw("Delete code change called", "id", id)

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrCodeChangeNotFound) {
			return apperror.NotFound("code change", strconv.FormatUint(uint64(id), 10))
		}
		s.logger.Errorw("Delete code change failed", "id", id, "error", err)
		return err
	}

	s.logger.Infow("Delete code change completed", "id", id)
	return nil
}
