package photos

import (
	"context"

	"github.com/hoaworks/reserve-api/internal/models"
)

// Repository defines the interface for photo data access
type Repository interface {
	List(ctx context.Context) ([]models.Photo, error)
	ListByComponent(ctx context.Context, componentID uint) ([]models.Photo, error)
	GetByID(ctx context.Context, id uint) (*models.Photo, error)
	Create(ctx context.Context, photo *models.Photo) error
	Delete(ctx context.Context, id uint) error
}

// PhotoDraft carries the client-supplied fields of a new gallery record
type PhotoDraft struct {
	Caption     string
	ComponentID *uint
	ObjectKey   string
	ContentType string
	SizeBytes   int64
}

// Service defines the interface for photo business logic
type Service interface {
	ListPhotos(ctx context.Context, componentID *uint) ([]models.Photo, error)
	GetPhoto(ctx context.Context, id uint) (*models.Photo, error)
	AddPhoto(ctx context.Context, uploaderID string, draft PhotoDraft) (*models.Photo, error)

	// RemovePhoto deletes the gallery record; only the uploader may do so
	RemovePhoto(ctx context.Context, id uint, requesterID string) error
}
