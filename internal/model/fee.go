package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FeeRecord tracks the hostel fee due for one student. At most one record
// exists per username. TotalDue never goes below zero.
type FeeRecord struct {
	ID       uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Username string          `json:"username" gorm:"uniqueIndex;size:255;not null"`
	TotalDue decimal.Decimal `json:"total_due" gorm:"type:decimal(20,2);not null;default:0"`

	// Relations
	Payments []FeePayment `json:"payments" gorm:"foreignKey:FeeRecordID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate sets UUID before creating the record.
func (f *FeeRecord) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// FeePayment is one recorded payment against a fee record. The full paid
// amount is stored even when it overdraws the due.
type FeePayment struct {
	ID          uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	FeeRecordID uuid.UUID       `json:"fee_record_id" gorm:"type:char(36);not null;index"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
	Timestamp   time.Time       `json:"timestamp" gorm:"not null"`
}

// BeforeCreate sets UUID before creating the record.
func (p *FeePayment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
