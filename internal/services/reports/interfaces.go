package reports

import (
	"context"

	"github.com/hoaworks/reserve-api/internal/models"
	"github.com/hoaworks/reserve-api/internal/services/jobs"
)

// Repository defines the interface for report data access
type Repository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]models.Report, error)
	GetByID(ctx context.Context, id uint) (*models.Report, error)
	Create(ctx context.Context, report *models.Report) error
	SetStatus(ctx context.Context, id uint, status models.ReportStatus) error
	SetCompleted(ctx context.Context, id uint, narrative string) error
	SetFailed(ctx context.Context, id uint, errorMsg string) error
}

// Enqueuer enqueues the background generation job for a report
type Enqueuer interface {
	EnqueueUniqueJob(ctx context.Context, jobType models.JobType, payload models.JobPayload, uniqueKey string, opts ...jobs.JobOption) (*models.Job, error)
}

// ScenarioReader resolves a scenario reference on report creation
type ScenarioReader interface {
	GetByID(ctx context.Context, id uint) (*models.Scenario, error)
}

// ReportDraft carries the client-supplied fields of a report request
type ReportDraft struct {
	Title      string
	ScenarioID *uint
}

// Service defines the interface for report business logic
type Service interface {
	ListReports(ctx context.Context, ownerID string) ([]models.Report, error)
	GetReport(ctx context.Context, id uint) (*models.Report, error)
	RequestReport(ctx context.Context, ownerID string, draft ReportDraft) (*models.Report, error)
}
