package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"hostelerp/internal/model"
)

// HostelAttendanceRepository defines persistence for the daily present-set.
type HostelAttendanceRepository interface {
	FindByDay(ctx context.Context, day time.Time) (*model.HostelAttendance, error)
	Save(ctx context.Context, rec *model.HostelAttendance) error
	ListAll(ctx context.Context) ([]model.HostelAttendance, error)
}

type hostelAttendanceRepository struct {
	db *gorm.DB
}

// NewHostelAttendanceRepository creates a new hostel attendance repository.
func NewHostelAttendanceRepository(db *gorm.DB) HostelAttendanceRepository {
	return &hostelAttendanceRepository{db: db}
}

// FindByDay finds the attendance record for one day.
func (r *hostelAttendanceRepository) FindByDay(ctx context.Context, day time.Time) (*model.HostelAttendance, error) {
	var rec model.HostelAttendance
	if err := r.db.WithContext(ctx).Where("day = ?", day).First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// Save creates or updates an attendance record.
func (r *hostelAttendanceRepository) Save(ctx context.Context, rec *model.HostelAttendance) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

// ListAll lists every day's record, oldest first.
func (r *hostelAttendanceRepository) ListAll(ctx context.Context) ([]model.HostelAttendance, error) {
	var rows []model.HostelAttendance
	if err := r.db.WithContext(ctx).Order("day").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
