package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostelerp/internal/model"
)

// TicketRepository defines maintenance ticket persistence operations.
type TicketRepository interface {
	Create(ctx context.Context, ticket *model.MaintenanceTicket) error
	Update(ctx context.Context, ticket *model.MaintenanceTicket) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.MaintenanceTicket, error)
	ListAll(ctx context.Context) ([]model.MaintenanceTicket, error)
	ListByAuthor(ctx context.Context, username string) ([]model.MaintenanceTicket, error)
}

type ticketRepository struct {
	db *gorm.DB
}

// NewTicketRepository creates a new ticket repository.
func NewTicketRepository(db *gorm.DB) TicketRepository {
	return &ticketRepository{db: db}
}

// Create creates a new ticket.
func (r *ticketRepository) Create(ctx context.Context, ticket *model.MaintenanceTicket) error {
	return r.db.WithContext(ctx).Create(ticket).Error
}

// Update updates an existing ticket.
func (r *ticketRepository) Update(ctx context.Context, ticket *model.MaintenanceTicket) error {
	return r.db.WithContext(ctx).Save(ticket).Error
}

// FindByID finds a ticket by ID.
func (r *ticketRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.MaintenanceTicket, error) {
	var ticket model.MaintenanceTicket
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&ticket).Error; err != nil {
		return nil, err
	}
	return &ticket, nil
}

// ListAll lists every ticket, newest first.
func (r *ticketRepository) ListAll(ctx context.Context) ([]model.MaintenanceTicket, error) {
	var tickets []model.MaintenanceTicket
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}

// ListByAuthor lists tickets created by one student, newest first.
func (r *ticketRepository) ListByAuthor(ctx context.Context, username string) ([]model.MaintenanceTicket, error) {
	var tickets []model.MaintenanceTicket
	if err := r.db.WithContext(ctx).Where("created_by = ?", username).
		Order("created_at DESC").Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}
