package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TicketStatus represents the status of a maintenance ticket.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusClosed     TicketStatus = "closed"
)

// ValidTicketStatus reports whether s is a known status value.
func ValidTicketStatus(s TicketStatus) bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusClosed:
		return true
	}
	return false
}

// MaintenanceTicket represents a repair request raised by a student.
// CreatedBy is a username, kept as a weak reference.
type MaintenanceTicket struct {
	ID          uuid.UUID    `json:"id" gorm:"type:char(36);primaryKey"`
	CreatedBy   string       `json:"created_by" gorm:"size:255;not null;index"`
	RoomNumber  string       `json:"room_number" gorm:"size:50;not null"`
	Title       string       `json:"title" gorm:"size:255;not null"`
	Description string       `json:"description" gorm:"size:2000;not null"`
	Status      TicketStatus `json:"status" gorm:"type:varchar(20);not null;default:'open';index"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (t *MaintenanceTicket) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
