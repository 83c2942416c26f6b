// Package service provides business logic layer for the ticket module.
package service

import (
	"context"
	"errors"
	"strconv"

	"go.uber.org/zap"

	"github.com/bungee-astro/tracker-api/internal/apperror"
	"github.com/bungee-astro/tracker-api/internal/notify"
	"github.com/bungee-astro/tracker-api/internal/ticket/model"
	"github.com/bungee-astro/tracker-api/internal/ticket/repository"
)

// Service defines the interface for ticket business logic operations.
type Service interface {
	// Create validates and persists a public bug report. The reporter
	// account id is set when the submitter was authenticated.
	Create(ctx context.Context, req *model.CreateTicketRequest, reporterAccountID *uint) (*model.TicketResponse, error)

	// Get returns one ticket.
	Get(ctx context.Context, id uint) (*model.BugTicket, error)

	// List returns tickets matching the filter.
	List(ctx context.Context, filter model.ListTicketsFilter) (*model.TicketsResponse, error)

	// Update applies a partial update. Resolving archives the ticket and
	// moves its notification mirror to the archive channel.
	Update(ctx context.Context, id uint, req *model.UpdateTicketRequest) (*model.TicketResponse, error)

	// Archive soft-deletes a ticket, preserving it for statistics.
	Archive(ctx context.Context, id uint) (*model.TicketResponse, error)

	// HardDelete permanently removes a ticket.
	HardDelete(ctx context.Context, id uint) error
}

type service struct {
	repo     repository.Repository
	notifier notify.Notifier
	logger   *zap.SugaredLogger
}

// New creates a new ticket service instance.
func New(repo repository.Repository, notifier notify.Notifier, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, notifier: notifier, logger: logger}
}

// Create validates and persists a public bug report.
func (s *service) Create(
	ctx context.Context,
	req *model.CreateTicketRequest,
	reporterAccountID *uint,
) (*model.TicketResponse, error) {
	s.logger.Debugw("Create ticket called", "developer", req.Developer, "class", req.Class)

	if len(req.CurrentBehavior) < model.MinBehaviorLen {
		return nil, apperror.Validation("current_behavior",
			"current_behavior must be at least 50 characters")
	}
	if len(req.ExpectedBehavior) < model.MinBehaviorLen {
		return nil, apperror.Validation("expected_behavior",
			"expected_behavior must be at least 50 characters")
	}

	priority := req.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !model.ValidPriority(priority) {
		return nil, apperror.Validation("priority",
			"priority must be one of: low, medium, high, critical")
	}

	ticket := &model.BugTicket{
		Developer:         req.Developer,
		Class:             req.Class,
		Spec:              req.Spec,
		CurrentBehavior:   req.CurrentBehavior,
		ExpectedBehavior:  req.ExpectedBehavior,
		Priority:          priority,
		Status:            model.StatusOpen,
		ReporterName:      req.ReporterName,
		ReporterAccountID: reporterAccountID,
	}

	if err := s.repo.Create(ctx, ticket); err != nil {
		return nil, err
	}

	// Post-commit hook: the ticket exists regardless of notification outcome.
	if messageID := s.notifier.NotifyCreated(ctx, ticket.Developer, notify.TicketEmbed(ticket)); messageID != "" {
		ticket.DiscordMessageID = messageID
		if err := s.repo.SetMessageID(ctx, ticket.ID, messageID); err != nil {
			s.logger.Warnw("storing ticket message id failed", "id", ticket.ID, "error", err)
		}
	}

	s.logger.Infow("Create ticket completed", "id", ticket.ID, "developer", ticket.Developer)
	return &model.TicketResponse{Message: "ticket created", Ticket: *ticket}, nil
}

// Get returns one ticket.
func (s *service) Get(ctx context.Context, id uint) (*model.BugTicket, error) {
	ticket, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapNotFound(err, id)
	}
	return ticket, nil
}

// List returns tickets matching the filter.
func (s *service) List(ctx context.Context, filter model.ListTicketsFilter) (*model.TicketsResponse, error) {
	tickets, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &model.TicketsResponse{Tickets: tickets, Total: len(tickets)}, nil
}

// Update applies a partial update.
func (s *service) Update(ctx context.Context, id uint, req *model.UpdateTicketRequest) (*model.TicketResponse, error) {
	s.logger.Debugw("Update ticket called", "id", id)

	ticket, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapNotFound(err, id)
	}

	if req.Class != nil {
		ticket.Class = *req.Class
	}
	if req.Spec != nil {
		ticket.Spec = *req.Spec
	}
	if req.CurrentBehavior != nil {
		if len(*req.CurrentBehavior) < model.MinBehaviorLen {
			return nil, apperror.Validation("current_behavior",
				"current_behavior must be at least 50 characters")
		}
		ticket.CurrentBehavior = *req.CurrentBehavior
	}
	if req.ExpectedBehavior != nil {
		if len(*req.ExpectedBehavior) < model.MinBehaviorLen {
			return nil, apperror.Validation("expected_behavior",
				"expected_behavior must be at least 50 characters")
		}
		ticket.ExpectedBehavior = *req.ExpectedBehavior
	}
	if req.Priority != nil {
		if !model.ValidPriority(*req.Priority) {
			return nil, apperror.Validation("priority",
				"priority must be one of: low, medium, high, critical")
		}
		ticket.Priority = *req.Priority
	}

	resolving := false
	if req.Status != nil {
		if !model.ValidStatus(*req.Status) {
			return nil, apperror.Validation("status",
				"status must be one of: open, in-progress, resolved")
		}
		resolving = *req.Status == model.StatusResolved && ticket.Status != model.StatusResolved
		ticket.Status = *req.Status

		// Status and archival flag move together by convention.
		ticket.IsArchived = *req.Status == model.StatusResolved
	}
	if req.ResolveReason != nil {
		ticket.ResolveReason = *req.ResolveReason
	}

	messageID := ticket.DiscordMessageID
	if resolving {
		// The live message is about to be deleted; stop tracking it.
		ticket.DiscordMessageID = ""
	}

	if err := s.repo.Save(ctx, ticket); err != nil {
		return nil, err
	}

	if resolving {
		s.notifier.NotifyResolved(ctx, ticket.Developer, messageID, notify.TicketResolvedEmbed(ticket))
	} else {
		s.notifier.NotifyUpdated(ctx, ticket.Developer, messageID, notify.TicketEmbed(ticket))
	}

	s.logger.Infow("Update ticket completed", "id", id, "status", ticket.Status)
	return &model.TicketResponse{Message: "ticket updated", Ticket: *ticket}, nil
}

// Archive soft-deletes a ticket, preserving it for statistics.
func (s *service) Archive(ctx context.Context, id uint) (*model.TicketResponse, error) {
	s.logger.Debugw("Archive ticket called", "id", id)

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapNotFound(err, id)
	}
	alreadyArchived := existing.IsArchived

	ticket, err := s.repo.Archive(ctx, id)
	if err != nil {
		return nil, s.mapNotFound(err, id)
	}

	if !alreadyArchived {
		messageID := ticket.DiscordMessageID
		if messageID != "" {
			ticket.DiscordMessageID = ""
			if err := s.repo.SetMessageID(ctx, id, ""); err != nil {
				s.logger.Warnw("clearing ticket message id failed", "id", id, "error", err)
			}
		}
		s.notifier.NotifyResolved(ctx, ticket.Developer, messageID, notify.TicketResolvedEmbed(ticket))
	}

	s.logger.Infow("Archive ticket completed", "id", id)
	return &model.TicketResponse{Message: "ticket archived", Ticket: *ticket}, nil
}

// HardDelete permanently removes a ticket.
func (s *service) HardDelete(ctx context.Context, id uint) error {
	s.logger.Debugw("HardDelete ticket called", "id", id)

	if err := s.repo.HardDelete(ctx, id); err != nil {
		return s.mapNotFound(err, id)
	}

	s.logger.Infow("HardDelete ticket completed", "id", id)
	return nil
}

func (s *service) mapNotFound(err error, id uint) error {
	if errors.Is(err, model.ErrTicketNotFound) {
		return apperror.NotFound("ticket", strconv.FormatUint(uint64(id), 10))
	}
	s.logger.Errorw("ticket operation failed", "id", id, "error", err)
	return err
}
