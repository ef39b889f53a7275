package components

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

// NewRepository creates a new component repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// List retrieves the full asset registry, grouped by category then name
func (r *RepositoryImpl) List(ctx context.Context) ([]models.Component, error) {
	components := make([]models.Component, 0)
	err := r.db.WithContext(ctx).
		Order("category ASC, name ASC").
		Find(&components).Error
	if err != nil {
		return nil, apperrors.DatabaseError("listing components", err)
	}
	return components, nil
}

// GetByID retrieves a component by its ID
func (r *RepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Component, error) {
	var component models.Component
	if err := r.db.WithContext(ctx).First(&component, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("component", id)
		}
		return nil, apperrors.DatabaseError("getting component", err)
	}
	return &component, nil
}

// Create persists a new registry entry
func (r *RepositoryImpl) Create(ctx context.Context, component *models.Component) error {
	if err := r.db.WithContext(ctx).Create(component).Error; err != nil {
		return apperrors.DatabaseError("creating component", err)
	}
	return nil
}

// Update saves changes to an existing registry entry
func (r *RepositoryImpl) Update(ctx context.Context, component *models.Component) error {
	result := r.db.WithContext(ctx).Save(component)
	if result.Error != nil {
		return apperrors.DatabaseError("updating component", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("component", component.ID)
	}
	return nil
}

// Delete hard-deletes a registry entry
func (r *RepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Unscoped().Delete(&models.Component{}, id)
	if result.Error != nil {
		return apperrors.DatabaseError("deleting component", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("component", id)
	}
	return nil
}
