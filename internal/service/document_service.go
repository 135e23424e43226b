package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostelerp/internal/auth"
	"hostelerp/internal/errors"
	"hostelerp/internal/model"
	"hostelerp/internal/repository"
)

// UploadDocumentInput carries the metadata for an uploaded document.
type UploadDocumentInput struct {
	DocType  string
	Filename string
}

// VerifyDocumentInput carries an admin verification decision.
type VerifyDocumentInput struct {
	Status  model.DocumentStatus
	Comment string
}

// DocumentService handles document operations.
type DocumentService interface {
	Upload(ctx context.Context, actor *model.User, in UploadDocumentInput) (*model.Document, error)
	MyDocuments(ctx context.Context, actor *model.User) ([]model.Document, error)
	DocumentsByUser(ctx context.Context, actor *model.User, username string) ([]model.Document, error)
	Verify(ctx context.Context, actor *model.User, id uuid.UUID, in VerifyDocumentInput) (*model.Document, error)
}

type documentService struct {
	documents repository.DocumentRepository
}

// NewDocumentService creates a new document service.
func NewDocumentService(documents repository.DocumentRepository) DocumentService {
	return &documentService{documents: documents}
}

// Upload records a document owned by the caller, pending verification.
// Students only.
func (s *documentService) Upload(ctx context.Context, actor *model.User, in UploadDocumentInput) (*model.Document, error) {
	if err := auth.RequireRole(actor, model.RoleStudent); err != nil {
		return nil, err
	}

	doc := &model.Document{
		Username:   actor.Username,
		DocType:    in.DocType,
		Filename:   in.Filename,
		Status:     model.DocumentStatusPending,
		UploadedAt: time.Now().UTC(),
	}
	if err := s.documents.Create(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// MyDocuments lists the caller's documents, newest first. Students only.
func (s *documentService) MyDocuments(ctx context.Context, actor *model.User) ([]model.Document, error) {
	if err := auth.RequireRole(actor, model.RoleStudent); err != nil {
		return nil, err
	}
	return s.documents.ListByUsername(ctx, actor.Username)
}

// DocumentsByUser lists any student's documents. Admin only.
func (s *documentService) DocumentsByUser(ctx context.Context, actor *model.User, username string) ([]model.Document, error) {
	if err := auth.RequireRole(actor, model.RoleAdmin); err != nil {
		return nil, err
	}
	return s.documents.ListByUsername(ctx, username)
}

// Verify marks a document verified or rejected with an optional comment.
// Admin only.
func (s *documentService) Verify(ctx context.Context, actor *model.User, id uuid.UUID, in VerifyDocumentInput) (*model.Document, error) {
	if err := auth.RequireRole(actor, model.RoleAdmin); err != nil {
		return nil, err
	}
	if !model.ValidDocumentDecision(in.Status) {
		return nil, errors.ErrInvalidStatus
	}

	doc, err := s.documents.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrDocumentNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	doc.Status = in.Status
	doc.Comment = in.Comment
	doc.VerifiedAt = &now

	if err := s.documents.Update(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}
