package workers

import (
	"context"
	"fmt"
	"log"

	"github.com/hoaworks/reserve-api/internal/models"
	"github.com/hoaworks/reserve-api/internal/services/insights"
	"github.com/hoaworks/reserve-api/internal/services/jobs"
	"github.com/hoaworks/reserve-api/internal/services/reports"
)

// ComponentLister provides the component inventory for report prompts
type ComponentLister interface {
	List(ctx context.Context) ([]models.Component, error)
}

// ScenarioReader resolves a report's linked funding scenario
type ScenarioReader interface {
	GetByID(ctx context.Context, id uint) (*models.Scenario, error)
}

// ReportProcessor processes report generation jobs
type ReportProcessor struct {
	jobService     jobs.Service
	reportRepo     reports.Repository
	components     ComponentLister
	scenarios      ScenarioReader
	insightService insights.Service
}

// NewReportProcessor creates a new report processor
func NewReportProcessor(
	jobService jobs.Service,
	reportRepo reports.Repository,
	components ComponentLister,
	scenarios ScenarioReader,
	insightService insights.Service,
) *ReportProcessor {
	return &ReportProcessor{
		jobService:     jobService,
		reportRepo:     reportRepo,
		components:     components,
		scenarios:      scenarios,
		insightService: insightService,
	}
}

// CanProcess returns true if this processor can handle the job type
func (p *ReportProcessor) CanProcess(jobType models.JobType) bool {
	return jobType == models.JobTypeReportGeneration
}

// ProcessJob generates the narrative for the report referenced by the job payload
func (p *ReportProcessor) ProcessJob(ctx context.Context, job *models.Job) error {
	if !p.CanProcess(job.Type) {
		return fmt.Errorf("unsupported job type: %s", job.Type)
	}

	reportID, ok := job.GetPayloadUint("report_id")
	if !ok {
		return fmt.Errorf("report_id not found in payload")
	}

	log.Printf("[DEBUG] Processing report generation job %d for report %d", job.ID, reportID)

	report, err := p.reportRepo.GetByID(ctx, reportID)
	if err != nil {
		return fmt.Errorf("getting report %d: %w", reportID, err)
	}

	if report.IsTerminal() {
		log.Printf("[DEBUG] Report %d already %s, completing job %d", reportID, report.Status, job.ID)
		return p.jobService.CompleteJob(ctx, job.ID, models.JobResult{"report_id": reportID, "skipped": true})
	}

	if err := p.reportRepo.SetStatus(ctx, reportID, models.ReportStatusProcessing); err != nil {
		return fmt.Errorf("marking report %d processing: %w", reportID, err)
	}

	components, err := p.components.List(ctx)
	if err != nil {
		p.markFailed(ctx, reportID, err)
		return fmt.Errorf("listing components for report %d: %w", reportID, err)
	}

	var scenario *models.Scenario
	if report.ScenarioID != nil {
		scenario, err = p.scenarios.GetByID(ctx, *report.ScenarioID)
		if err != nil {
			p.markFailed(ctx, reportID, err)
			return fmt.Errorf("getting scenario %d for report %d: %w", *report.ScenarioID, reportID, err)
		}
	}

	narrative, err := p.insightService.ReportNarrative(ctx, report.Title, components, scenario)
	if err != nil {
		p.markFailed(ctx, reportID, err)
		return fmt.Errorf("generating narrative for report %d: %w", reportID, err)
	}

	if err := p.reportRepo.SetCompleted(ctx, reportID, narrative); err != nil {
		return fmt.Errorf("storing narrative for report %d: %w", reportID, err)
	}

	result := models.JobResult{
		"report_id":        reportID,
		"narrative_length": len(narrative),
		"component_count":  len(components),
	}
	if err := p.jobService.CompleteJob(ctx, job.ID, result); err != nil {
		return fmt.Errorf("failed to complete job: %w", err)
	}

	log.Printf("[DEBUG] Report %d generated (%d characters)", reportID, len(narrative))
	return nil
}

func (p *ReportProcessor) markFailed(ctx context.Context, reportID uint, cause error) {
	if err := p.reportRepo.SetFailed(ctx, reportID, cause.Error()); err != nil {
		log.Printf("[ERROR] Failed to mark report %d failed: %v", reportID, err)
	}
}
