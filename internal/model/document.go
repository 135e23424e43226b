package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentStatus represents the verification state of a document.
type DocumentStatus string

const (
	DocumentStatusPending  DocumentStatus = "pending"
	DocumentStatusVerified DocumentStatus = "verified"
	DocumentStatusRejected DocumentStatus = "rejected"
)

// ValidDocumentDecision reports whether s is a legal verification outcome.
func ValidDocumentDecision(s DocumentStatus) bool {
	return s == DocumentStatusVerified || s == DocumentStatusRejected
}

// Document represents an uploaded student document awaiting verification.
// Only the metadata is tracked here; file storage is external.
type Document struct {
	ID         uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	Username   string         `json:"username" gorm:"size:255;not null;index"`
	DocType    string         `json:"doc_type" gorm:"size:100;not null"`
	Filename   string         `json:"filename" gorm:"size:500;not null"`
	Status     DocumentStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	UploadedAt time.Time      `json:"uploaded_at" gorm:"not null"`
	VerifiedAt *time.Time     `json:"verified_at,omitempty"`
	Comment    string         `json:"comment,omitempty" gorm:"size:1000"`
}

// BeforeCreate sets UUID before creating the record.
func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
