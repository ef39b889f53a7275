package documents

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

// NewRepository creates a new document repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// ListByOwner retrieves a user's documents, newest first
func (r *RepositoryImpl) ListByOwner(ctx context.Context, ownerID string) ([]models.Document, error) {
	documents := make([]models.Document, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&documents).Error
	if err != nil {
		return nil, apperrors.DatabaseError("listing documents", err)
	}
	return documents, nil
}

// GetByID retrieves a document by its ID
func (r *RepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Document, error) {
	var document models.Document
	if err := r.db.WithContext(ctx).First(&document, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("document", id)
		}
		return nil, apperrors.DatabaseError("getting document", err)
	}
	return &document, nil
}

// DocumentExists reports whether a document row exists
func (r *RepositoryImpl) DocumentExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Document{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, apperrors.DatabaseError("checking document", err)
	}
	return count > 0, nil
}

// Create persists a new document record
func (r *RepositoryImpl) Create(ctx context.Context, document *models.Document) error {
	if err := r.db.WithContext(ctx).Create(document).Error; err != nil {
		return apperrors.DatabaseError("creating document", err)
	}
	return nil
}

// DeleteWithAnnotations hard-deletes the document, its annotations and
// their replies. Replies first, then annotations, then the document, so
// no orphan is ever visible.
func (r *RepositoryImpl) DeleteWithAnnotations(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("annotation_id IN (?)",
				tx.Model(&models.Annotation{}).Select("id").Where("document_id = ?", id)).
			Delete(&models.AnnotationReply{}).Error; err != nil {
			return err
		}

		if err := tx.Unscoped().
			Where("document_id = ?", id).
			Delete(&models.Annotation{}).Error; err != nil {
			return err
		}

		result := tx.Unscoped().Delete(&models.Document{}, id)
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
			return apperrors.NotFound("document", id)
		}
		return apperrors.DatabaseError("deleting document", err)
	}
	return nil
}
