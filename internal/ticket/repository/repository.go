// Package repository provides data access layer for the ticket module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/bungee-astro/tracker-api/internal/ticket/model"
)

// Repository defines the interface for ticket data access operations.
type Repository interface {
	// Create persists a new ticket.
	Create(ctx context.Context, ticket *model.BugTicket) error

	// GetByID finds a ticket by id.
	GetByID(ctx context.Context, id uint) (*model.BugTicket, error)

	// List returns tickets matching the filter, newest first.
	List(ctx context.Context, filter model.ListTicketsFilter) ([]model.BugTicket, error)

	// Save persists all fields of an existing ticket.
	Save(ctx context.Context, ticket *model.BugTicket) error

	// Archive soft-deletes a ticket: status resolved, archived flag set.
	// Idempotent on already-archived tickets.
	Archive(ctx context.Context, id uint) (*model.BugTicket, error)

	// HardDelete permanently removes a ticket row.
	HardDelete(ctx context.Context, id uint) error

	// SetMessageID stores the notification mirror's message id.
	SetMessageID(ctx context.Context, id uint, messageID string) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new ticket repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create persists a new ticket.
func (r *repository) Create(ctx context.Context, ticket *model.BugTicket) error {
	r.logger.Infow("Create ticket called", "developer", ticket.Developer, "class", ticket.Class)

	if err := r.db.WithContext(ctx).Create(ticket).Error; err != nil {
		r.logger.Errorw("Create ticket database error", "error", err)
		return err
	}
	return nil
}

// GetByID finds a ticket by id.
func (r *repository) GetByID(ctx context.Context, id uint) (*model.BugTicket, error) {
	var ticket model.BugTicket
	err := r.db.WithContext(ctx).First(&ticket, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrTicketNotFound
		}
		r.logger.Errorw("GetByID ticket database error", "id", id, "error", err)
		return nil, err
	}
	return &ticket, nil
}

// List returns tickets matching the filter, newest first.
func (r *repository) List(ctx context.Context, filter model.ListTicketsFilter) ([]model.BugTicket, error) {
	r.logger.Debugw("List tickets called",
		"developer", filter.Developer, "status", filter.Status, "priority", filter.Priority)

	query := r.db.WithContext(ctx).Model(&model.BugTicket{})
	if filter.Developer != "" {
		query = query.Where("developer = ?", filter.Developer)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}
	if filter.Archived != nil {
		query = query.Where("is_archived = ?", *filter.Archived)
	}

	var tickets []model.BugTicket
	if err := query.Order("created_at DESC").Find(&tickets).Error; err != nil {
		r.logger.Errorw("List tickets database error", "error", err)
		return nil, err
	}

	if tickets == nil {
		tickets = []model.BugTicket{}
	}
	return tickets, nil
}

// Save persists all fields of an existing ticket.
func (r *repository) Save(ctx context.Context, ticket *model.BugTicket) error {
	if err := r.db.WithContext(ctx).Save(ticket).Error; err != nil {
		r.logger.Errorw("Save ticket database error", "id", ticket.ID, "error", err)
		return err
	}
	return nil
}

// Archive soft-deletes a ticket: status resolved, archived flag set.
func (r *repository) Archive(ctx context.Context, id uint) (*model.BugTicket, error) {
	r.logger.Infow("Archive ticket called", "id", id)

	result := r.db.WithContext(ctx).
		Model(&model.BugTicket{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":      model.StatusResolved,
			"is_archived": true,
		})

	if result.Error != nil {
		r.logger.Errorw("Archive ticket database error", "id", id, "error", result.Error)
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, model.ErrTicketNotFound
	}

	return r.GetByID(ctx, id)
}

// HardDelete permanently removes a ticket row.
func (r *repository) HardDelete(ctx context.Context, id uint) error {
	r.logger.Infow("HardDelete ticket called", "id", id)

	result := r.db.WithContext(ctx).Delete(&model.BugTicket{}, id)
	if result.Error != nil {
		r.logger.Errorw("HardDelete ticket database error", "id", id, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrTicketNotFound
	}
	return nil
}

// SetMessageID stores the notification mirror's message id.
func (r *repository) SetMessageID(ctx context.Context, id uint, messageID string) error {
	err := r.db.WithContext(ctx).
		Model(&model.BugTicket{}).
		Where("id = ?", id).
		Update("discord_message_id", messageID).Error
	if err != nil {
		r.logger.Errorw("SetMessageID ticket database error", "id", id, "error", err)
	}
	return err
}
