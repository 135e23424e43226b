package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Room represents a hostel room.
type Room struct {
	ID         uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	RoomNumber string    `json:"room_number" gorm:"uniqueIndex;size:50;not null"`
	Block      string    `json:"block" gorm:"size:50;not null"`
	Capacity   int       `json:"capacity" gorm:"not null"`
	RoomType   string    `json:"room_type" gorm:"size:50;not null;default:'normal'"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relations
	Allocations []RoomAllocation `json:"allocations,omitempty" gorm:"foreignKey:RoomID"`
}

// Occupants lists the usernames currently allocated to the room.
func (r *Room) Occupants() []string {
	out := make([]string, 0, len(r.Allocations))
	for _, a := range r.Allocations {
		out = append(out, a.Username)
	}
	return out
}

// VacantBeds is capacity minus current occupancy.
func (r *Room) VacantBeds() int {
	v := r.Capacity - len(r.Allocations)
	if v < 0 {
		return 0
	}
	return v
}

// BeforeCreate sets UUID before creating the record.
func (r *Room) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// RoomAllocation assigns one student to one room. The username is unique:
// a student holds at most one bed.
type RoomAllocation struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	RoomID    uuid.UUID `json:"room_id" gorm:"type:char(36);not null;index"`
	Username  string    `json:"username" gorm:"uniqueIndex;size:255;not null"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Room Room `json:"-" gorm:"foreignKey:RoomID"`
}

// BeforeCreate sets UUID before creating the record.
func (a *RoomAllocation) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
