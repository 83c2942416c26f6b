// Package service provides business logic layer for statistics module.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/bungee-astro/tracker-api/internal/statistics/model"
	"github.com/bungee-astro/tracker-api/internal/statistics/repository"
)

// Service defines the interface for statistics business logic operations.
type Service interface {
	// GetStatistics returns per-developer activity statistics.
	GetStatistics(ctx context.Context) (*model.StatisticsResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new statistics service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// GetStatistics returns per-developer activity statistics.
func (s *service) GetStatistics(ctx context.Context) (*model.StatisticsResponse, error) {
	s.logger.Debugw("GetStatistics called")

	developers, err := s.repo.GetDeveloperStatistics(ctx)
	if err != nil {
		s.logger.Errorw("GetStatistics failed", "error", err)
		return nil, err
	}

	if developers == nil {
		developers = []model.DeveloperStatistics{}
	}

	totalTickets := 0
	totalFeatures := 0
	for _, dev := range developers {
		totalTickets += dev.OpenTickets + dev.InProgressTickets + dev.ResolvedTickets
		totalFeatures += dev.OpenFeatures + dev.AcceptedFeatures + dev.RejectedFeatures
	}

	s.logger.Infow("GetStatistics completed", "developers", len(developers))
	return &model.StatisticsResponse{
		Developers:    developers,
		TotalTickets:  totalTickets,
		TotalFeatures: totalFeatures,
	}, nil
}
