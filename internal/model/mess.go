package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meals served by the mess. Requests naming any other meal are rejected.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
)

// ValidMeal reports whether meal is one of the served meals.
func ValidMeal(meal string) bool {
	switch meal {
	case MealBreakfast, MealLunch, MealDinner:
		return true
	}
	return false
}

// DailyMenu holds the items served for one meal on one day.
// (Day, Meal) is the natural key; admin writes overwrite in place.
type DailyMenu struct {
	ID    uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Day   time.Time  `json:"day" gorm:"type:date;not null;uniqueIndex:idx_menu_day_meal"`
	Meal  string     `json:"meal" gorm:"size:50;not null;uniqueIndex:idx_menu_day_meal"`
	Items StringList `json:"items" gorm:"type:varchar(2000);not null"`
}

// BeforeCreate sets UUID before creating the record.
func (m *DailyMenu) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// MealAttendance tracks which students signed up for one meal on one day.
type MealAttendance struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Day       time.Time `json:"day" gorm:"type:date;not null;uniqueIndex:idx_meal_att_day_meal"`
	Meal      string    `json:"meal" gorm:"size:50;not null;uniqueIndex:idx_meal_att_day_meal"`
	Attendees StringSet `json:"attendees" gorm:"type:varchar(2000);not null"`
}

// BeforeCreate sets UUID before creating the record.
func (a *MealAttendance) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// MealStats records plates prepared and served for one meal on one day.
// Invariant: PlatesServed <= PlatesPrepared, enforced at write time.
type MealStats struct {
	ID             uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Day            time.Time `json:"day" gorm:"type:date;not null;uniqueIndex:idx_meal_stats_day_meal"`
	Meal           string    `json:"meal" gorm:"size:50;not null;uniqueIndex:idx_meal_stats_day_meal"`
	PlatesPrepared int       `json:"plates_prepared" gorm:"not null"`
	PlatesServed   int       `json:"plates_served" gorm:"not null"`
}

// BeforeCreate sets UUID before creating the record.
func (s *MealStats) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
