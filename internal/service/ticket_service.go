package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostelerp/internal/auth"
	"hostelerp/internal/errors"
	"hostelerp/internal/model"
	"hostelerp/internal/repository"
)

// CreateTicketInput carries the fields for a new maintenance ticket.
type CreateTicketInput struct {
	RoomNumber  string
	Title       string
	Description string
}

// UpdateTicketInput carries the optional fields of a ticket update.
type UpdateTicketInput struct {
	Title       *string
	Description *string
	Status      *model.TicketStatus
}

// TicketService handles maintenance ticket operations.
type TicketService interface {
	CreateTicket(ctx context.Context, actor *model.User, in CreateTicketInput) (*model.MaintenanceTicket, error)
	ListTickets(ctx context.Context, actor *model.User) ([]model.MaintenanceTicket, error)
	ListMyTickets(ctx context.Context, actor *model.User) ([]model.MaintenanceTicket, error)
	UpdateTicket(ctx context.Context, actor *model.User, id uuid.UUID, in UpdateTicketInput) (*model.MaintenanceTicket, error)
}

type ticketService struct {
	tickets repository.TicketRepository
}

// NewTicketService creates a new ticket service.
func NewTicketService(tickets repository.TicketRepository) TicketService {
	return &ticketService{tickets: tickets}
}

// CreateTicket opens a ticket authored by the caller. Students only.
func (s *ticketService) CreateTicket(ctx context.Context, actor *model.User, in CreateTicketInput) (*model.MaintenanceTicket, error) {
	if err := auth.RequireRole(actor, model.RoleStudent); err != nil {
		return nil, err
	}

	ticket := &model.MaintenanceTicket{
		CreatedBy:   actor.Username,
		RoomNumber:  in.RoomNumber,
		Title:       in.Title,
		Description: in.Description,
		Status:      model.TicketStatusOpen,
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

// ListTickets returns all tickets for admins and the caller's own tickets
// for students, newest first.
func (s *ticketService) ListTickets(ctx context.Context, actor *model.User) ([]model.MaintenanceTicket, error) {
	if actor.IsAdmin() {
		return s.tickets.ListAll(ctx)
	}
	return s.tickets.ListByAuthor(ctx, actor.Username)
}

// ListMyTickets returns the caller's own tickets. Students only.
func (s *ticketService) ListMyTickets(ctx context.Context, actor *model.User) ([]model.MaintenanceTicket, error) {
	if err := auth.RequireRole(actor, model.RoleStudent); err != nil {
		return nil, err
	}
	return s.tickets.ListByAuthor(ctx, actor.Username)
}

// UpdateTicket applies the provided fields. Owner or admin; any legal
// status value may be set regardless of the current one.
func (s *ticketService) UpdateTicket(ctx context.Context, actor *model.User, id uuid.UUID, in UpdateTicketInput) (*model.MaintenanceTicket, error) {
	ticket, err := s.tickets.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrTicketNotFound
		}
		return nil, err
	}

	if err := auth.RequireOwnerOrRole(actor, ticket.CreatedBy, model.RoleAdmin); err != nil {
		return nil, err
	}

	if in.Status != nil {
		if !model.ValidTicketStatus(*in.Status) {
			return nil, errors.ErrInvalidStatus
		}
		ticket.Status = *in.Status
	}
	if in.Title != nil {
		ticket.Title = *in.Title
	}
	if in.Description != nil {
		ticket.Description = *in.Description
	}
	ticket.UpdatedAt = time.Now().UTC()

	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}
