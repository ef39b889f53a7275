package reports

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/hoaworks/reserve-api/internal/models"
	apperrors "github.com/hoaworks/reserve-api/pkg/errors"
)

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new report repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// ListByOwner retrieves a user's reports, newest first
func (r *RepositoryImpl) ListByOwner(ctx context.Context, ownerID string) ([]models.Report, error) {
	reports := make([]models.Report, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&reports).Error
	if err != nil {
		return nil, apperrors.DatabaseError("listing reports", err)
	}
	return reports, nil
}

// GetByID retrieves a report by its ID
func (r *RepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Report, error) {
	var report models.Report
	if err := r.db.WithContext(ctx).First(&report, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("report", id)
		}
		return nil, apperrors.DatabaseError("getting report", err)
	}
	return &report, nil
}

// Create persists a new report row
func (r *RepositoryImpl) Create(ctx context.Context, report *models.Report) error {
	if err := r.db.WithContext(ctx).Create(report).Error; err != nil {
		return apperrors.DatabaseError("creating report", err)
	}
	return nil
}

// SetStatus updates only the status of a report
func (r *RepositoryImpl) SetStatus(ctx context.Context, id uint, status models.ReportStatus) error {
	return r.update(ctx, id, map[string]interface{}{"status": status})
}

// SetCompleted stores the generated narrative and marks the report completed
func (r *RepositoryImpl) SetCompleted(ctx context.Context, id uint, narrative string) error {
	return r.update(ctx, id, map[string]interface{}{
		"status":    models.ReportStatusCompleted,
		"narrative": narrative,
		"error":     "",
	})
}

// SetFailed records the failure reason and marks the report failed
func (r *RepositoryImpl) SetFailed(ctx context.Context, id uint, errorMsg string) error {
	return r.update(ctx, id, map[string]interface{}{
		"status": models.ReportStatusFailed,
		"error":  errorMsg,
	})
}

func (r *RepositoryImpl) update(ctx context.Context, id uint, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&models.Report{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return apperrors.DatabaseError("updating report", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("report", id)
	}
	return nil
}
