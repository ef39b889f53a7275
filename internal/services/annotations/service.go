package annotations

import (
	"context"
	"strings"

	"github.com/hoaworks/reserve-api/internal/models"
	apperrors "github.com/hoaworks/reserve-api/pkg/errors"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
	documents  DocumentChecker
}

// NewService creates a new annotation service
func NewService(repository Repository, documents DocumentChecker) Service {
	return &ServiceImpl{
		repository: repository,
		documents:  documents,
	}
}

// ListAnnotations returns a document's annotations, or not-found if the
// document itself does not exist. A document with zero annotations
// yields an empty list, never an error.
func (s *ServiceImpl) ListAnnotations(ctx context.Context, documentID uint) ([]models.Annotation, error) {
	exists, err := s.documents.DocumentExists(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NotFound("document", documentID)
	}

	return s.repository.ListByDocumentID(ctx, documentID)
}

// CreateAnnotation validates and persists a new annotation
func (s *ServiceImpl) CreateAnnotation(ctx context.Context, documentID uint, authorID string, draft AnnotationDraft) (*models.Annotation, error) {
	if authorID == "" {
		return nil, apperrors.Unauthorized("authentication required")
	}
	if strings.TrimSpace(draft.Content) == "" {
		return nil, apperrors.MissingFieldError("content")
	}
	if !draft.Position.InBounds() {
		return nil, apperrors.ValidationError("position", "x and y must be percentages in [0,100]")
	}

	annotationType := draft.Type
	if annotationType == "" {
		annotationType = models.AnnotationTypeComment
	}
	if !annotationType.Valid() {
		return nil, apperrors.ValidationError("type", "must be one of highlight, comment, drawing")
	}

	exists, err := s.documents.DocumentExists(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NotFound("document", documentID)
	}

	annotation := &models.Annotation{
		DocumentID: documentID,
		UserID:     authorID,
		Content:    draft.Content,
		Position:   draft.Position,
		Type:       annotationType,
		Metadata:   draft.Metadata,
	}

	if err := s.repository.Create(ctx, annotation); err != nil {
		return nil, err
	}

	// Re-read for the author view; a brand new annotation has no replies
	created, err := s.repository.GetByID(ctx, annotation.ID)
	if err != nil {
		return nil, err
	}
	if created.Replies == nil {
		created.Replies = []models.AnnotationReply{}
	}
	return created, nil
}

// CreateReply validates and persists a reply to an existing annotation
func (s *ServiceImpl) CreateReply(ctx context.Context, annotationID uint, authorID, content string) (*models.AnnotationReply, error) {
	if authorID == "" {
		return nil, apperrors.Unauthorized("authentication required")
	}
	if strings.TrimSpace(content) == "" {
		return nil, apperrors.MissingFieldError("content")
	}

	// Dangling annotation ids are a not-found, and nothing is persisted
	if _, err := s.repository.GetByID(ctx, annotationID); err != nil {
		return nil, err
	}

	reply := &models.AnnotationReply{
		AnnotationID: annotationID,
		UserID:       authorID,
		Content:      content,
	}

	if err := s.repository.CreateReply(ctx, reply); err != nil {
		return nil, err
	}

	return s.repository.GetReplyByID(ctx, reply.ID)
}

// DeleteAnnotation removes an annotation and its replies. The ownership
// check runs before the delete so a non-author gets a distinguishable
// forbidden error instead of a silent no-op.
func (s *ServiceImpl) DeleteAnnotation(ctx context.Context, annotationID uint, requesterID string) error {
	if requesterID == "" {
		return apperrors.Unauthorized("authentication required")
	}

	annotation, err := s.repository.GetByID(ctx, annotationID)
	if err != nil {
		return err
	}

	if annotation.UserID != requesterID {
		return apperrors.Forbidden("annotation", "only the author may delete an annotation")
	}

	return s.repository.DeleteWithReplies(ctx, annotationID)
}
