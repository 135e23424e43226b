package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hostelerp/internal/auth"
	"hostelerp/internal/errors"
	"hostelerp/internal/model"
	"hostelerp/internal/repository"
)

// FeeService handles fee record and payment operations.
type FeeService interface {
	SetDue(ctx context.Context, actor *model.User, username string, amount decimal.Decimal) (*model.FeeRecord, error)
	Pay(ctx context.Context, actor *model.User, username string, amount decimal.Decimal) (*model.FeeRecord, error)
	ListAll(ctx context.Context, actor *model.User) ([]model.FeeRecord, error)
	MyFees(ctx context.Context, actor *model.User) (*model.FeeRecord, error)
}

type feeService struct {
	fees repository.FeeRepository
}

// NewFeeService creates a new fee service.
func NewFeeService(fees repository.FeeRepository) FeeService {
	return &feeService{fees: fees}
}

// SetDue sets or replaces the total due for a student. Admin only. The
// record is created when absent; usernames are weak references, so an
// unknown username is not an error.
func (s *feeService) SetDue(ctx context.Context, actor *model.User, username string, amount decimal.Decimal) (*model.FeeRecord, error) {
	if err := auth.RequireRole(actor, model.RoleAdmin); err != nil {
		return nil, err
	}
	if amount.IsNegative() {
		return nil, errors.ErrInvalidAmount
	}

	record, err := s.fees.FindByUsername(ctx, username)
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		record = &model.FeeRecord{Username: username, TotalDue: amount}
		if err := s.fees.Create(ctx, record); err != nil {
			return nil, err
		}
		return s.fees.FindByUsername(ctx, username)
	}

	record.TotalDue = amount
	if err := s.fees.Update(ctx, record); err != nil {
		return nil, err
	}
	return s.fees.FindByUsername(ctx, username)
}

// Pay records a payment against a student's fee record. Admin only. The
// full amount is always recorded; the due is floored at zero, never
// rejected for overpayment. Lookup, append and due update run in one
// transaction so concurrent payments for the same username cannot lose
// updates.
func (s *feeService) Pay(ctx context.Context, actor *model.User, username string, amount decimal.Decimal) (*model.FeeRecord, error) {
	if err := auth.RequireRole(actor, model.RoleAdmin); err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, errors.ErrInvalidAmount
	}

	err := s.fees.WithTransaction(ctx, func(ctx context.Context, repo repository.FeeRepository) error {
		record, err := repo.FindByUsername(ctx, username)
		if err != nil {
			if err != gorm.ErrRecordNotFound {
				return err
			}
			record = &model.FeeRecord{Username: username, TotalDue: decimal.Zero}
			if err := repo.Create(ctx, record); err != nil {
				return err
			}
		}

		if err := repo.CreatePayment(ctx, &model.FeePayment{
			FeeRecordID: record.ID,
			Amount:      amount,
			Timestamp:   time.Now().UTC(),
		}); err != nil {
			return err
		}

		due := record.TotalDue.Sub(amount)
		if due.IsNegative() {
			due = decimal.Zero
		}
		record.TotalDue = due
		return repo.Update(ctx, record)
	})
	if err != nil {
		return nil, err
	}

	return s.fees.FindByUsername(ctx, username)
}

// ListAll lists every fee record. Admin only.
func (s *feeService) ListAll(ctx context.Context, actor *model.User) ([]model.FeeRecord, error) {
	if err := auth.RequireRole(actor, model.RoleAdmin); err != nil {
		return nil, err
	}
	return s.fees.ListAll(ctx)
}

// MyFees returns the caller's fee record. A student with no record reads
// as an implicit empty record rather than a NotFound.
func (s *feeService) MyFees(ctx context.Context, actor *model.User) (*model.FeeRecord, error) {
	record, err := s.fees.FindByUsername(ctx, actor.Username)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return &model.FeeRecord{
				Username: actor.Username,
				TotalDue: decimal.Zero,
				Payments: []model.FeePayment{},
			}, nil
		}
		return nil, err
	}
	return record, nil
}
