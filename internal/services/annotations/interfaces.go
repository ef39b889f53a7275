package annotations

import (
	"context"

	"github.com/hoaworks/reserve-api/internal/models"
)

// Repository defines the interface for annotation data access
type Repository interface {
	// Read operations
	ListByDocumentID(ctx context.Context, documentID uint) ([]models.Annotation, error)
	GetByID(ctx context.Context, id uint) (*models.Annotation, error)
	GetReplyByID(ctx context.Context, id uint) (*models.AnnotationReply, error)

	// Write operations
	Create(ctx context.Context, annotation *models.Annotation) error
	CreateReply(ctx context.Context, reply *models.AnnotationReply) error

	// DeleteWithReplies removes the annotation and all of its replies in
	// one transaction, so a concurrent reader never observes orphans.
	DeleteWithReplies(ctx context.Context, id uint) error
}

// DocumentChecker answers whether a document exists. Satisfied by the
// documents repository; kept narrow so this package only depends on
// what it needs.
type DocumentChecker interface {
	DocumentExists(ctx context.Context, id uint) (bool, error)
}

// AnnotationDraft carries the client-supplied fields of a new annotation
type AnnotationDraft struct {
	Content  string
	Position models.Position
	Type     models.AnnotationType
	Metadata models.JSONMap
}

// Service defines the interface for annotation business logic
type Service interface {
	// ListAnnotations returns a document's annotations newest first,
	// each with its replies oldest first and author views populated
	ListAnnotations(ctx context.Context, documentID uint) ([]models.Annotation, error)

	CreateAnnotation(ctx context.Context, documentID uint, authorID string, draft AnnotationDraft) (*models.Annotation, error)
	CreateReply(ctx context.Context, annotationID uint, authorID, content string) (*models.AnnotationReply, error)

	// DeleteAnnotation removes an annotation and its replies. Only the
	// author may delete; anyone else gets a forbidden error.
	DeleteAnnotation(ctx context.Context, annotationID uint, requesterID string) error
}
