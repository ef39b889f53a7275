package photos

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

// NewRepository creates a new photo repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// List retrieves all gallery records, newest first
func (r *RepositoryImpl) List(ctx context.Context) ([]models.Photo, error) {
	photos := make([]models.Photo, 0)
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&photos).Error
	if err != nil {
		return nil, apperrors.DatabaseError("listing photos", err)
	}
	return photos, nil
}

// ListByComponent retrieves the photos linked to a registry component
func (r *RepositoryImpl) ListByComponent(ctx context.Context, componentID uint) ([]models.Photo, error) {
	photos := make([]models.Photo, 0)
	err := r.db.WithContext(ctx).
		Where("component_id = ?", componentID).
		Order("created_at DESC, id DESC").
		Find(&photos).Error
	if err != nil {
		return nil, apperrors.DatabaseError("listing photos for component", err)
	}
	return photos, nil
}

// GetByID retrieves a photo by its ID
func (r *RepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Photo, error) {
	var photo models.Photo
	if err := r.db.WithContext(ctx).First(&photo, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("photo", id)
		}
		return nil, apperrors.DatabaseError("getting photo", err)
	}
	return &photo, nil
}

// Create persists a new gallery record
func (r *RepositoryImpl) Create(ctx context.Context, photo *models.Photo) error {
	if err := r.db.WithContext(ctx).Create(photo).Error; err != nil {
		return apperrors.DatabaseError("creating photo", err)
	}
	return nil
}

// Delete hard-deletes a gallery record
func (r *RepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Unscoped().Delete(&models.Photo{}, id)
	if result.Error != nil {
		return apperrors.DatabaseError("deleting photo", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("photo", id)
	}
	return nil
}
