package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostelerp/internal/model"
)

// GatePassRepository defines gate pass persistence operations.
type GatePassRepository interface {
	Create(ctx context.Context, pass *model.GatePass) error
	Update(ctx context.Context, pass *model.GatePass) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.GatePass, error)
	ListByStudent(ctx context.Context, username string) ([]model.GatePass, error)
	ListAll(ctx context.Context) ([]model.GatePass, error)
}

type gatePassRepository struct {
	db *gorm.DB
}

// NewGatePassRepository creates a new gate pass repository.
func NewGatePassRepository(db *gorm.DB) GatePassRepository {
	return &gatePassRepository{db: db}
}

// Create creates a new gate pass.
func (r *gatePassRepository) Create(ctx context.Context, pass *model.GatePass) error {
	return r.db.WithContext(ctx).Create(pass).Error
}

// Update updates an existing gate pass.
func (r *gatePassRepository) Update(ctx context.Context, pass *model.GatePass) error {
	return r.db.WithContext(ctx).Save(pass).Error
}

// FindByID finds a gate pass by ID.
func (r *gatePassRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.GatePass, error) {
	var pass model.GatePass
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&pass).Error; err != nil {
		return nil, err
	}
	return &pass, nil
}

// ListByStudent lists one student's gate passes, newest first.
func (r *gatePassRepository) ListByStudent(ctx context.Context, username string) ([]model.GatePass, error) {
	var passes []model.GatePass
	if err := r.db.WithContext(ctx).Where("student_username = ?", username).
		Order("created_at DESC").Find(&passes).Error; err != nil {
		return nil, err
	}
	return passes, nil
}

// ListAll lists every gate pass, newest first.
func (r *gatePassRepository) ListAll(ctx context.Context) ([]model.GatePass, error) {
	var passes []model.GatePass
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&passes).Error; err != nil {
		return nil, err
	}
	return passes, nil
}
