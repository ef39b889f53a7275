package documents

import (
	"context"
	"strings"

	"github.com/hoaworks/reserve-api/internal/models"
	"github.com/hoaworks/reserve-api/internal/services/storage"
	apperrors "github.com/hoaworks/reserve-api/pkg/errors"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
}

// NewService creates a new document service
func NewService(repository Repository) Service {
	return &ServiceImpl{repository: repository}
}

// ListDocuments returns the caller's documents
func (s *ServiceImpl) ListDocuments(ctx context.Context, ownerID string) ([]models.Document, error) {
	if ownerID == "" {
		return nil, apperrors.Unauthorized("authentication required")
	}
	return s.repository.ListByOwner(ctx, ownerID)
}

// GetDocument retrieves a single document record
func (s *ServiceImpl) GetDocument(ctx context.Context, id uint) (*models.Document, error) {
	return s.repository.GetByID(ctx, id)
}

// CreateDocument validates and persists a new document record
func (s *ServiceImpl) CreateDocument(ctx context.Context, ownerID string, draft DocumentDraft) (*models.Document, error) {
	if ownerID == "" {
		return nil, apperrors.Unauthorized("authentication required")
	}
	if strings.TrimSpace(draft.Title) == "" {
		return nil, apperrors.MissingFieldError("title")
	}
	if draft.SizeBytes < 0 {
		return nil, apperrors.ValidationError("size_bytes", "must not be negative")
	}

	// Clients may bring their own key; otherwise one is minted in the
	// documents/ namespace
	fileKey := strings.TrimSpace(draft.FileKey)
	if fileKey == "" {
		fileKey = storage.DocumentKey()
	}

	document := &models.Document{
		UserID:      ownerID,
		Title:       draft.Title,
		FileKey:     fileKey,
		ContentType: draft.ContentType,
		SizeBytes:   draft.SizeBytes,
	}

	if err := s.repository.Create(ctx, document); err != nil {
		return nil, err
	}
	return document, nil
}

// DeleteDocument removes a document after an explicit ownership check
func (s *ServiceImpl) DeleteDocument(ctx context.Context, id uint, requesterID string) error {
	if requesterID == "" {
		return apperrors.Unauthorized("authentication required")
	}

	document, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if document.UserID != requesterID {
		return apperrors.Forbidden("document", "only the owner may delete a document")
	}

	return s.repository.DeleteWithAnnotations(ctx, id)
}
