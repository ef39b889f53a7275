package photos

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

// NewService creates a new photo service
func NewService(repository Repository) Service {
	return &ServiceImpl{repository: repository}
}

// ListPhotos returns gallery records, optionally filtered by component
func (s *ServiceImpl) ListPhotos(ctx context.Context, componentID *uint) ([]models.Photo, error) {
	if componentID != nil {
		return s.repository.ListByComponent(ctx, *componentID)
	}
	return s.repository.List(ctx)
}

// GetPhoto retrieves a single gallery record
func (s *ServiceImpl) GetPhoto(ctx context.Context, id uint) (*models.Photo, error) {
	return s.repository.GetByID(ctx, id)
}

// AddPhoto validates and persists a new gallery record
func (s *ServiceImpl) AddPhoto(ctx context.Context, uploaderID string, draft PhotoDraft) (*models.Photo, error) {
	if uploaderID == "" {
		return nil, apperrors.Unauthorized("authentication required")
	}
	// Keys are minted in the photos/ namespace when the client does not
	// bring one
	objectKey := strings.TrimSpace(draft.ObjectKey)
	if objectKey == "" {
		objectKey = storage.PhotoKey()
	}

	photo := &models.Photo{
		UserID:      uploaderID,
		ComponentID: draft.ComponentID,
		Caption:     draft.Caption,
		ObjectKey:   objectKey,
		ContentType: draft.ContentType,
		SizeBytes:   draft.SizeBytes,
	}

	if err := s.repository.Create(ctx, photo); err != nil {
		return nil, err
	}
	return photo, nil
}

// RemovePhoto deletes a gallery record after an ownership check
func (s *ServiceImpl) RemovePhoto(ctx context.Context, id uint, requesterID string) error {
	if requesterID == "" {
		return apperrors.Unauthorized("authentication required")
	}

	photo, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if photo.UserID != requesterID {
		return apperrors.Forbidden("photo", "only the uploader may delete a photo")
	}

	return s.repository.Delete(ctx, id)
}
