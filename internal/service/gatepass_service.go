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

// CreateGatePassInput carries the fields for a new gate pass request.
type CreateGatePassInput struct {
	FromDate time.Time
	ToDate   time.Time
	Reason   string
}

// GatePassService handles gate pass operations.
type GatePassService interface {
	Create(ctx context.Context, actor *model.User, in CreateGatePassInput) (*model.GatePass, error)
	MyGatePasses(ctx context.Context, actor *model.User) ([]model.GatePass, error)
	ListAll(ctx context.Context, actor *model.User) ([]model.GatePass, error)
	Decide(ctx context.Context, actor *model.User, id uuid.UUID, status model.GatePassStatus) (*model.GatePass, error)
}

type gatePassService struct {
	passes repository.GatePassRepository
}

// NewGatePassService creates a new gate pass service.
func NewGatePassService(passes repository.GatePassRepository) GatePassService {
	return &gatePassService{passes: passes}
}

// Create opens a pending gate pass request for the caller. Students only.
func (s *gatePassService) Create(ctx context.Context, actor *model.User, in CreateGatePassInput) (*model.GatePass, error) {
	if err := auth.RequireRole(actor, model.RoleStudent); err != nil {
		return nil, err
	}

	pass := &model.GatePass{
		StudentUsername: actor.Username,
		FromDate:        in.FromDate,
		ToDate:          in.ToDate,
		Reason:          in.Reason,
		Status:          model.GatePassStatusPending,
	}
	if err := s.passes.Create(ctx, pass); err != nil {
		return nil, err
	}
	return pass, nil
}

// MyGatePasses lists the caller's gate passes, newest first. Students only.
func (s *gatePassService) MyGatePasses(ctx context.Context, actor *model.User) ([]model.GatePass, error) {
	if err := auth.RequireRole(actor, model.RoleStudent); err != nil {
		return nil, err
	}
	return s.passes.ListByStudent(ctx, actor.Username)
}

// ListAll lists every gate pass, newest first. Admin only.
func (s *gatePassService) ListAll(ctx context.Context, actor *model.User) ([]model.GatePass, error) {
	if err := auth.RequireRole(actor, model.RoleAdmin); err != nil {
		return nil, err
	}
	return s.passes.ListAll(ctx)
}

// Decide approves or rejects a gate pass. Admin only.
func (s *gatePassService) Decide(ctx context.Context, actor *model.User, id uuid.UUID, status model.GatePassStatus) (*model.GatePass, error) {
	if err := auth.RequireRole(actor, model.RoleAdmin); err != nil {
		return nil, err
	}
	if !model.ValidGatePassDecision(status) {
		return nil, errors.ErrInvalidStatus
	}

	pass, err := s.passes.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrGatePassNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	pass.Status = status
	pass.DecidedAt = &now

	if err := s.passes.Update(ctx, pass); err != nil {
		return nil, err
	}
	return pass, nil
}
