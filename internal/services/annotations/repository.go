package annotations

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hoaworks/reserve-api/internal/models"
	apperrors "github.com/hoaworks/reserve-api/pkg/errors"
)

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new annotation repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// ListByDocumentID retrieves all annotations for a document, newest
// first, with replies in chronological order and author views joined in
func (r *RepositoryImpl) ListByDocumentID(ctx context.Context, documentID uint) ([]models.Annotation, error) {
	annotations := make([]models.Annotation, 0)
	err := r.db.WithContext(ctx).
		Where("document_id = ?", documentID).
		Order("created_at DESC, id DESC").
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("annotation_replies.created_at ASC, annotation_replies.id ASC")
		}).
		Preload("Replies.User").
		Preload("User").
		Find(&annotations).Error
	if err != nil {
		return nil, apperrors.DatabaseError("listing annotations", err)
	}
	return annotations, nil
}

// GetByID retrieves an annotation with its replies and author views
func (r *RepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Annotation, error) {
	var annotation models.Annotation
	err := r.db.WithContext(ctx).
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("annotation_replies.created_at ASC, annotation_replies.id ASC")
		}).
		Preload("Replies.User").
		Preload("User").
		First(&annotation, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("annotation", id)
		}
		return nil, apperrors.DatabaseError("getting annotation", err)
	}
	return &annotation, nil
}

// GetReplyByID retrieves a reply with its author view
func (r *RepositoryImpl) GetReplyByID(ctx context.Context, id uint) (*models.AnnotationReply, error) {
	var reply models.AnnotationReply
	err := r.db.WithContext(ctx).Preload("User").First(&reply, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("reply", id)
		}
		return nil, apperrors.DatabaseError("getting reply", err)
	}
	return &reply, nil
}

// Create persists a new annotation
func (r *RepositoryImpl) Create(ctx context.Context, annotation *models.Annotation) error {
	if err := r.db.WithContext(ctx).Create(annotation).Error; err != nil {
		return apperrors.DatabaseError("creating annotation", err)
	}
	return nil
}

// CreateReply persists a new reply
func (r *RepositoryImpl) CreateReply(ctx context.Context, reply *models.AnnotationReply) error {
	if err := r.db.WithContext(ctx).Create(reply).Error; err != nil {
		return apperrors.DatabaseError("creating reply", err)
	}
	return nil
}

// DeleteWithReplies hard-deletes an annotation and its replies. Both
// statements run in one transaction; replies go first so no orphan is
// ever visible.
func (r *RepositoryImpl) DeleteWithReplies(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("annotation_id = ?", id).
			Delete(&models.AnnotationReply{}).Error; err != nil {
			return err
		}

		result := tx.Unscoped().Delete(&models.Annotation{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("annotation", id)
		}
		return apperrors.DatabaseError("deleting annotation", err)
	}
	return nil
}
