package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GatePassStatus represents the decision state of a gate pass.
type GatePassStatus string

const (
	GatePassStatusPending  GatePassStatus = "pending"
	GatePassStatusApproved GatePassStatus = "approved"
	GatePassStatusRejected GatePassStatus = "rejected"
)

// ValidGatePassDecision reports whether s is a legal decision value.
// Pending is not a decision.
func ValidGatePassDecision(s GatePassStatus) bool {
	return s == GatePassStatusApproved || s == GatePassStatusRejected
}

// GatePass represents a student's request to leave the hostel for a period.
type GatePass struct {
	ID              uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	StudentUsername string         `json:"student_username" gorm:"size:255;not null;index"`
	FromDate        time.Time      `json:"from_date" gorm:"type:date;not null"`
	ToDate          time.Time      `json:"to_date" gorm:"type:date;not null"`
	Reason          string         `json:"reason" gorm:"size:1000;not null"`
	Status          GatePassStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt       time.Time      `json:"created_at"`
	DecidedAt       *time.Time     `json:"decided_at,omitempty"`
}

// BeforeCreate sets UUID before creating the record.
func (g *GatePass) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
