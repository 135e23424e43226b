package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"hostelerp/internal/auth"
	"hostelerp/internal/model"
	"hostelerp/internal/repository"
)

// HostelAttendanceService handles the daily present-set.
type HostelAttendanceService interface {
	Mark(ctx context.Context, actor *model.User, day time.Time, username string, present bool) (*model.HostelAttendance, error)
	DayAttendance(ctx context.Context, actor *model.User, day time.Time) (*model.HostelAttendance, error)
	MyAttendance(ctx context.Context, actor *model.User) ([]model.HostelAttendance, error)
}

type hostelAttendanceService struct {
	attendance repository.HostelAttendanceRepository
}

// NewHostelAttendanceService creates a new hostel attendance service.
func NewHostelAttendanceService(attendance repository.HostelAttendanceRepository) HostelAttendanceService {
	return &hostelAttendanceService{attendance: attendance}
}

// Mark toggles a student's presence on a day. Admin only; idempotent.
func (s *hostelAttendanceService) Mark(ctx context.Context, actor *model.User, day time.Time, username string, present bool) (*model.HostelAttendance, error) {
	if err := auth.RequireRole(actor, model.RoleAdmin); err != nil {
		return nil, err
	}

	rec, err := s.attendance.FindByDay(ctx, day)
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		rec = &model.HostelAttendance{Day: day, PresentUsernames: model.StringSet{}}
	}
	if rec.PresentUsernames == nil {
		rec.PresentUsernames = model.StringSet{}
	}

	if present {
		rec.PresentUsernames.Add(username)
	} else {
		rec.PresentUsernames.Remove(username)
	}

	if err := s.attendance.Save(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// DayAttendance returns the present-set for one day. Admin only. A day
// with no record reads as an empty set.
func (s *hostelAttendanceService) DayAttendance(ctx context.Context, actor *model.User, day time.Time) (*model.HostelAttendance, error) {
	if err := auth.RequireRole(actor, model.RoleAdmin); err != nil {
		return nil, err
	}

	rec, err := s.attendance.FindByDay(ctx, day)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return &model.HostelAttendance{Day: day, PresentUsernames: model.StringSet{}}, nil
		}
		return nil, err
	}
	return rec, nil
}

// MyAttendance returns the days on which the caller was present. Students only.
func (s *hostelAttendanceService) MyAttendance(ctx context.Context, actor *model.User) ([]model.HostelAttendance, error) {
	if err := auth.RequireRole(actor, model.RoleStudent); err != nil {
		return nil, err
	}

	rows, err := s.attendance.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := rows[:0]
	for _, r := range rows {
		if r.PresentUsernames.Has(actor.Username) {
			out = append(out, r)
		}
	}
	return out, nil
}
