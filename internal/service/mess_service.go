package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"hostelerp/internal/auth"
	"hostelerp/internal/cache"
	"hostelerp/internal/errors"
	"hostelerp/internal/model"
	"hostelerp/internal/repository"
)

const menuCacheTTL = 5 * time.Minute

// SetMenuInput carries an admin menu write for one (day, meal).
type SetMenuInput struct {
	Day   time.Time
	Meal  string
	Items []string
}

// SetStatsInput carries an admin stats write for one (day, meal).
type SetStatsInput struct {
	Day            time.Time
	Meal           string
	PlatesPrepared int
	PlatesServed   int
}

// MessService handles menu, meal attendance and meal stats operations.
type MessService interface {
	SetMenu(ctx context.Context, actor *model.User, in SetMenuInput) (*model.DailyMenu, error)
	// ListMenus is public: the menu board needs no token.
	ListMenus(ctx context.Context, day *time.Time) ([]model.DailyMenu, error)
	MarkAttendance(ctx context.Context, actor *model.User, day time.Time, meal string, attending bool) (*model.MealAttendance, error)
	ListMyAttendance(ctx context.Context, actor *model.User, day *time.Time) ([]model.MealAttendance, error)
	SetStats(ctx context.Context, actor *model.User, in SetStatsInput) (*model.MealStats, error)
	ListStats(ctx context.Context, actor *model.User, day *time.Time) ([]model.MealStats, error)
}

type messService struct {
	mess  repository.MessRepository
	cache *cache.Client
}

// NewMessService creates a new mess service.
func NewMessService(mess repository.MessRepository, cache *cache.Client) MessService {
	return &messService{mess: mess, cache: cache}
}

func menuCacheKey(day time.Time) string {
	return fmt.Sprintf("mess:menu:%s", day.Format("2006-01-02"))
}

// SetMenu creates or overwrites the menu for (day, meal). Admin only.
func (s *messService) SetMenu(ctx context.Context, actor *model.User, in SetMenuInput) (*model.DailyMenu, error) {
	if err := auth.RequireRole(actor, model.RoleAdmin); err != nil {
		return nil, err
	}
	if !model.ValidMeal(in.Meal) {
		return nil, errors.ErrInvalidMeal
	}

	menu, err := s.mess.FindMenu(ctx, in.Day, in.Meal)
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		menu = &model.DailyMenu{Day: in.Day, Meal: in.Meal}
	}
	menu.Items = model.StringList(in.Items)

	if err := s.mess.SaveMenu(ctx, menu); err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, menuCacheKey(in.Day))

	return menu, nil
}

// ListMenus lists menus, optionally filtered to one day. Day-filtered
// reads are cached; unfiltered reads go straight to the store.
func (s *messService) ListMenus(ctx context.Context, day *time.Time) ([]model.DailyMenu, error) {
	if day != nil {
		if data, _ := s.cache.Get(ctx, menuCacheKey(*day)); data != nil {
			var cached []model.DailyMenu
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
		}
	}

	menus, err := s.mess.ListMenus(ctx, day)
	if err != nil {
		return nil, err
	}

	if day != nil {
		if payload, err := json.Marshal(menus); err == nil {
			_ = s.cache.Set(ctx, menuCacheKey(*day), payload, menuCacheTTL)
		}
	}

	return menus, nil
}

// MarkAttendance toggles the caller in the attendee set for (day, meal).
// Students only; self only. The toggle is idempotent in both directions.
func (s *messService) MarkAttendance(ctx context.Context, actor *model.User, day time.Time, meal string, attending bool) (*model.MealAttendance, error) {
	if err := auth.RequireRole(actor, model.RoleStudent); err != nil {
		return nil, err
	}
	if !model.ValidMeal(meal) {
		return nil, errors.ErrInvalidMeal
	}

	att, err := s.mess.FindAttendance(ctx, day, meal)
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		att = &model.MealAttendance{Day: day, Meal: meal, Attendees: model.StringSet{}}
	}
	if att.Attendees == nil {
		att.Attendees = model.StringSet{}
	}

	if attending {
		att.Attendees.Add(actor.Username)
	} else {
		att.Attendees.Remove(actor.Username)
	}

	if err := s.mess.SaveAttendance(ctx, att); err != nil {
		return nil, err
	}
	return att, nil
}

// ListMyAttendance returns the attendance rows containing the caller,
// optionally filtered to one day. Students only.
func (s *messService) ListMyAttendance(ctx context.Context, actor *model.User, day *time.Time) ([]model.MealAttendance, error) {
	if err := auth.RequireRole(actor, model.RoleStudent); err != nil {
		return nil, err
	}

	rows, err := s.mess.ListAttendance(ctx, day)
	if err != nil {
		return nil, err
	}

	out := rows[:0]
	for _, r := range rows {
		if r.Attendees.Has(actor.Username) {
			out = append(out, r)
		}
	}
	return out, nil
}

// SetStats creates or overwrites the stats for (day, meal). Admin only.
// Served exceeding prepared is rejected, never clamped.
func (s *messService) SetStats(ctx context.Context, actor *model.User, in SetStatsInput) (*model.MealStats, error) {
	if err := auth.RequireRole(actor, model.RoleAdmin); err != nil {
		return nil, err
	}
	if !model.ValidMeal(in.Meal) {
		return nil, errors.ErrInvalidMeal
	}
	if in.PlatesServed > in.PlatesPrepared {
		return nil, errors.ErrServedExceedsPrepared
	}

	stats, err := s.mess.FindStats(ctx, in.Day, in.Meal)
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		stats = &model.MealStats{Day: in.Day, Meal: in.Meal}
	}
	stats.PlatesPrepared = in.PlatesPrepared
	stats.PlatesServed = in.PlatesServed

	if err := s.mess.SaveStats(ctx, stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// ListStats lists stats rows, optionally filtered to one day. Admin only.
func (s *messService) ListStats(ctx context.Context, actor *model.User, day *time.Time) ([]model.MealStats, error) {
	if err := auth.RequireRole(actor, model.RoleAdmin); err != nil {
		return nil, err
	}
	return s.mess.ListStats(ctx, day)
}
