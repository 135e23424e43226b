package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HostelAttendance records which students were present in the hostel on a
// given day. One row per day; membership toggles are idempotent.
type HostelAttendance struct {
	ID               uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Day              time.Time `json:"day" gorm:"type:date;not null;uniqueIndex"`
	PresentUsernames StringSet `json:"present_students" gorm:"type:varchar(2000);not null"`
}

// BeforeCreate sets UUID before creating the record.
func (h *HostelAttendance) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
