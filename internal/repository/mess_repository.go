package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"hostelerp/internal/model"
)

// MessRepository defines persistence for menus, meal attendance and meal
// stats. All three are keyed by (day, meal); Save upserts in place.
type MessRepository interface {
	FindMenu(ctx context.Context, day time.Time, meal string) (*model.DailyMenu, error)
	SaveMenu(ctx context.Context, menu *model.DailyMenu) error
	ListMenus(ctx context.Context, day *time.Time) ([]model.DailyMenu, error)

	FindAttendance(ctx context.Context, day time.Time, meal string) (*model.MealAttendance, error)
	SaveAttendance(ctx context.Context, att *model.MealAttendance) error
	ListAttendance(ctx context.Context, day *time.Time) ([]model.MealAttendance, error)

	FindStats(ctx context.Context, day time.Time, meal string) (*model.MealStats, error)
	SaveStats(ctx context.Context, stats *model.MealStats) error
	ListStats(ctx context.Context, day *time.Time) ([]model.MealStats, error)
}

type messRepository struct {
	db *gorm.DB
}

// NewMessRepository creates a new mess repository.
func NewMessRepository(db *gorm.DB) MessRepository {
	return &messRepository{db: db}
}

// FindMenu finds the menu for one meal on one day.
func (r *messRepository) FindMenu(ctx context.Context, day time.Time, meal string) (*model.DailyMenu, error) {
	var menu model.DailyMenu
	if err := r.db.WithContext(ctx).Where("day = ? AND meal = ?", day, meal).First(&menu).Error; err != nil {
		return nil, err
	}
	return &menu, nil
}

// SaveMenu creates or updates a menu.
func (r *messRepository) SaveMenu(ctx context.Context, menu *model.DailyMenu) error {
	return r.db.WithContext(ctx).Save(menu).Error
}

// ListMenus lists menus, optionally filtered to one day.
func (r *messRepository) ListMenus(ctx context.Context, day *time.Time) ([]model.DailyMenu, error) {
	var menus []model.DailyMenu
	q := r.db.WithContext(ctx).Order("day, meal")
	if day != nil {
		q = q.Where("day = ?", *day)
	}
	if err := q.Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

// FindAttendance finds the attendance row for one meal on one day.
func (r *messRepository) FindAttendance(ctx context.Context, day time.Time, meal string) (*model.MealAttendance, error) {
	var att model.MealAttendance
	if err := r.db.WithContext(ctx).Where("day = ? AND meal = ?", day, meal).First(&att).Error; err != nil {
		return nil, err
	}
	return &att, nil
}

// SaveAttendance creates or updates an attendance row.
func (r *messRepository) SaveAttendance(ctx context.Context, att *model.MealAttendance) error {
	return r.db.WithContext(ctx).Save(att).Error
}

// ListAttendance lists attendance rows, optionally filtered to one day.
// Membership filtering happens in the service: the attendee set is a
// serialized column, not queryable by member.
func (r *messRepository) ListAttendance(ctx context.Context, day *time.Time) ([]model.MealAttendance, error) {
	var rows []model.MealAttendance
	q := r.db.WithContext(ctx).Order("day, meal")
	if day != nil {
		q = q.Where("day = ?", *day)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindStats finds the stats row for one meal on one day.
func (r *messRepository) FindStats(ctx context.Context, day time.Time, meal string) (*model.MealStats, error) {
	var stats model.MealStats
	if err := r.db.WithContext(ctx).Where("day = ? AND meal = ?", day, meal).First(&stats).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

// SaveStats creates or updates a stats row.
func (r *messRepository) SaveStats(ctx context.Context, stats *model.MealStats) error {
	return r.db.WithContext(ctx).Save(stats).Error
}

// ListStats lists stats rows, optionally filtered to one day.
func (r *messRepository) ListStats(ctx context.Context, day *time.Time) ([]model.MealStats, error) {
	var rows []model.MealStats
	q := r.db.WithContext(ctx).Order("day, meal")
	if day != nil {
		q = q.Where("day = ?", *day)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
