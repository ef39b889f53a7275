package reports

import (
	"context"
	"log"
	"strings"

	"github.com/hoaworks/reserve-api/internal/models"
	apperrors "github.com/hoaworks/reserve-api/pkg/errors"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repo      Repository
	scenarios ScenarioReader
	queue     Enqueuer
}

// NewService creates a new report service
func NewService(repo Repository, scenarios ScenarioReader, queue Enqueuer) Service {
	return &ServiceImpl{repo: repo, scenarios: scenarios, queue: queue}
}

func (s *ServiceImpl) ListReports(ctx context.Context, ownerID string) ([]models.Report, error) {
	if ownerID == "" {
		return nil, apperrors.Unauthorized("authentication required")
	}
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *ServiceImpl) GetReport(ctx context.Context, id uint) (*models.Report, error) {
	return s.repo.GetByID(ctx, id)
}

// RequestReport creates a pending report row and enqueues its generation job.
// The report id keys the job so repeated requests do not double-enqueue.
func (s *ServiceImpl) RequestReport(ctx context.Context, ownerID string, draft ReportDraft) (*models.Report, error) {
	if ownerID == "" {
		return nil, apperrors.Unauthorized("authentication required")
	}
	if strings.TrimSpace(draft.Title) == "" {
		return nil, apperrors.MissingFieldError("title")
	}

	if draft.ScenarioID != nil {
		scenario, err := s.scenarios.GetByID(ctx, *draft.ScenarioID)
		if err != nil {
			return nil, err
		}
		if scenario.UserID != ownerID {
			return nil, apperrors.Forbidden("scenario", "only the owner can reference a scenario")
		}
	}

	report := &models.Report{
		UserID:     ownerID,
		Title:      strings.TrimSpace(draft.Title),
		ScenarioID: draft.ScenarioID,
		Status:     models.ReportStatusPending,
	}
	if err := s.repo.Create(ctx, report); err != nil {
		return nil, err
	}

	_, err := s.queue.EnqueueUniqueJob(ctx, models.JobTypeReportGeneration,
		models.JobPayload{"report_id": report.ID}, "report_id")
	if err != nil {
		// The row stays pending; a later request for the same
		// report id can still enqueue the job.
		log.Printf("[ERROR] Failed to enqueue generation job for report %d: %v", report.ID, err)
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "enqueueing report generation")
	}

	return report, nil
}
