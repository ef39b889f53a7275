package documents

import (
	"context"

	"github.com/hoaworks/reserve-api/internal/models"
)

// Repository defines the interface for document data access
type Repository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]models.Document, error)
	GetByID(ctx context.Context, id uint) (*models.Document, error)
	DocumentExists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, document *models.Document) error

	// DeleteWithAnnotations removes the document together with its
	// annotations and their replies in one transaction
	DeleteWithAnnotations(ctx context.Context, id uint) error
}

// DocumentDraft carries the client-supplied fields of a new document record
type DocumentDraft struct {
	Title       string
	FileKey     string
	ContentType string
	SizeBytes   int64
}

// Service defines the interface for document business logic
type Service interface {
	ListDocuments(ctx context.Context, ownerID string) ([]models.Document, error)
	GetDocument(ctx context.Context, id uint) (*models.Document, error)
	CreateDocument(ctx context.Context, ownerID string, draft DocumentDraft) (*models.Document, error)

	// DeleteDocument removes a document and everything annotated on it.
	// Only the owner may delete.
	DeleteDocument(ctx context.Context, id uint, requesterID string) error
}
