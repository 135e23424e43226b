package repository

import (
	"context"

	"gorm.io/gorm"

	"hostelerp/internal/model"
)

// FeeRepository defines fee record and payment persistence operations.
type FeeRepository interface {
	Create(ctx context.Context, record *model.FeeRecord) error
	Update(ctx context.Context, record *model.FeeRecord) error
	FindByUsername(ctx context.Context, username string) (*model.FeeRecord, error)
	ListAll(ctx context.Context) ([]model.FeeRecord, error)
	CreatePayment(ctx context.Context, payment *model.FeePayment) error
	// WithTransaction runs fn against a repository bound to one transaction.
	// Fee mutations are read-modify-write; concurrent payments for the same
	// username must not lose updates.
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo FeeRepository) error) error
}

type feeRepository struct {
	db *gorm.DB
}

// NewFeeRepository creates a new fee repository.
func NewFeeRepository(db *gorm.DB) FeeRepository {
	return &feeRepository{db: db}
}

// Create creates a new fee record.
func (r *feeRepository) Create(ctx context.Context, record *model.FeeRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// Update updates an existing fee record.
func (r *feeRepository) Update(ctx context.Context, record *model.FeeRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

// FindByUsername finds the fee record for one student with payments
// ordered by timestamp.
func (r *feeRepository) FindByUsername(ctx context.Context, username string) (*model.FeeRecord, error) {
	var record model.FeeRecord
	if err := r.db.WithContext(ctx).
		Preload("Payments", func(db *gorm.DB) *gorm.DB { return db.Order("timestamp") }).
		Where("username = ?", username).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// ListAll lists every fee record with ordered payments.
func (r *feeRepository) ListAll(ctx context.Context) ([]model.FeeRecord, error) {
	var records []model.FeeRecord
	if err := r.db.WithContext(ctx).
		Preload("Payments", func(db *gorm.DB) *gorm.DB { return db.Order("timestamp") }).
		Order("username").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// CreatePayment appends a payment to a fee record.
func (r *feeRepository) CreatePayment(ctx context.Context, payment *model.FeePayment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

// WithTransaction executes a function within a database transaction.
func (r *feeRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo FeeRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &feeRepository{db: tx})
	})
}
