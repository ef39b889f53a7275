package scenarios

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

// NewRepository creates a new scenario repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// ListByOwner retrieves a user's scenarios, newest first
func (r *RepositoryImpl) ListByOwner(ctx context.Context, ownerID string) ([]models.Scenario, error) {
	scenarios := make([]models.Scenario, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&scenarios).Error
	if err != nil {
		return nil, apperrors.DatabaseError("listing scenarios", err)
	}
	return scenarios, nil
}

// GetByID retrieves a scenario by its ID
func (r *RepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Scenario, error) {
	var scenario models.Scenario
	if err := r.db.WithContext(ctx).First(&scenario, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("scenario", id)
		}
		return nil, apperrors.DatabaseError("getting scenario", err)
	}
	return &scenario, nil
}

// Create persists a new scenario
func (r *RepositoryImpl) Create(ctx context.Context, scenario *models.Scenario) error {
	if err := r.db.WithContext(ctx).Create(scenario).Error; err != nil {
		return apperrors.DatabaseError("creating scenario", err)
	}
	return nil
}

// Update saves changes to an existing scenario
func (r *RepositoryImpl) Update(ctx context.Context, scenario *models.Scenario) error {
	result := r.db.WithContext(ctx).Save(scenario)
	if result.Error != nil {
		return apperrors.DatabaseError("updating scenario", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("scenario", scenario.ID)
	}
	return nil
}

// Delete hard-deletes a scenario
func (r *RepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Unscoped().Delete(&models.Scenario{}, id)
	if result.Error != nil {
		return apperrors.DatabaseError("deleting scenario", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("scenario", id)
	}
	return nil
}
