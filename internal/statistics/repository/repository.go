// Package repository provides aggregation queries for the statistics module.
package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/bungee-astro/tracker-api/internal/statistics/model"
)

// Repository defines the interface for statistics aggregation.
type Repository interface {
	GetDeveloperStatistics(ctx context.Context) ([]model.DeveloperStatistics, error)
}

type statisticsRepository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new statistics repository.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &statisticsRepository{
		db:     db,
		logger: logger,
	}
}

type ticketCounts struct {
	Developer  string
	Open       int
	InProgress int
	Resolved   int
}

type featureCounts struct {
	Developer string
	Open      int
	Accepted  int
	Rejected  int
}

type changeCounts struct {
	Developer string
	Total     int
}

// GetDeveloperStatistics aggregates ticket, feature and code change counts
// per developer. Developers with no activity still appear with zero counts.
func (r *statisticsRepository) GetDeveloperStatistics(ctx context.Context) ([]model.DeveloperStatistics, error) {
	r.logger.Debugw("aggregating developer statistics")

	var developers []string
	if err := r.db.WithContext(ctx).
		Table("profiles").
		Select("developer_type").
		Order("developer_type ASC").
		Scan(&developers).Error; err != nil {
		r.logger.Errorw("failed to list developers", "error", err)
		return nil, err
	}

	var tickets []ticketCounts
	if err := r.db.WithContext(ctx).
		Table("bug_tickets").
		Select(`developer,
			SUM(CASE WHEN status = 'open' THEN 1 ELSE 0 END) AS open,
			SUM(CASE WHEN status = 'in-progress' THEN 1 ELSE 0 END) AS in_progress,
			SUM(CASE WHEN status = 'resolved' THEN 1 ELSE 0 END) AS resolved`).
		Group("developer").
		Scan(&tickets).Error; err != nil {
		r.logger.Errorw("failed to aggregate ticket counts", "error", err)
		return nil, err
	}

	var features []featureCounts
	if err := r.db.WithContext(ctx).
		Table("feature_requests").
		Select(`developer,
			SUM(CASE WHEN status = 'open' THEN 1 ELSE 0 END) AS open,
			SUM(CASE WHEN status = 'accepted' THEN 1 ELSE 0 END) AS accepted,
			SUM(CASE WHEN status = 'rejected' THEN 1 ELSE 0 END) AS rejected`).
		Group("developer").
		Scan(&features).Error; err != nil {
		r.logger.Errorw("failed to aggregate feature counts", "error", err)
		return nil, err
	}

	var changes []changeCounts
	if err := r.db.WithContext(ctx).
		Table("code_changes").
		Select("profiles.developer_type AS developer, COUNT(code_changes.id) AS total").
		Joins("JOIN profiles ON profiles.id = code_changes.profile_id").
		Group("profiles.developer_type").
		Scan(&changes).Error; err != nil {
		r.logger.Errorw("failed to aggregate code change counts", "error", err)
		return nil, err
	}

	byDeveloper := make(map[string]*model.DeveloperStatistics, len(developers))
	order := make([]string, 0, len(developers))
	for _, dev := range developers {
		if _, ok := byDeveloper[dev]; ok {
			continue
		}
		byDeveloper[dev] = &model.DeveloperStatistics{Developer: dev}
		order = append(order, dev)
	}
	for _, row := range tickets {
		stats, ok := byDeveloper[row.Developer]
		if !ok {
			continue
		}
		stats.OpenTickets = row.Open
		stats.InProgressTickets = row.InProgress
		stats.ResolvedTickets = row.Resolved
	}
	for _, row := range features {
		stats, ok := byDeveloper[row.Developer]
		if !ok {
			continue
		}
		stats.OpenFeatures = row.Open
		stats.AcceptedFeatures = row.Accepted
		stats.RejectedFeatures = row.Rejected
	}
	for _, row := range changes {
		stats, ok := byDeveloper[row.Developer]
		if !ok {
			continue
		}
		stats.CodeChanges = row.Total
	}

	result := make([]model.DeveloperStatistics, 0, len(order))
	for _, dev := range order {
		result = append(result, *byDeveloper[dev])
	}

	r.logger.Debugw("developer statistics aggregated", "developers", len(result))
	return result, nil
}
