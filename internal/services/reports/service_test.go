package reports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hoaworks/reserve-api/internal/models"
	"github.com/hoaworks/reserve-api/internal/services/jobs"
	"github.com/hoaworks/reserve-api/internal/services/scenarios"
	apperrors "github.com/hoaworks/reserve-api/pkg/errors"
)

func setupReportTest(t *testing.T) (Service, jobs.Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Report{}, &models.Scenario{}, &models.Job{}))

	jobService := jobs.NewService(jobs.NewRepository(db))
	service := NewService(NewRepository(db), scenarios.NewRepository(db), jobService)
	return service, jobService, db
}

func TestRequestReport(t *testing.T) {
	ctx := context.Background()
	service, jobService, _ := setupReportTest(t)

	report, err := service.RequestReport(ctx, "owner-1", ReportDraft{Title: "2026 Reserve Study"})
	require.NoError(t, err)
	assert.NotZero(t, report.ID)
	assert.NotEmpty(t, report.UUID)
	assert.Equal(t, models.ReportStatusPending, report.Status)

	job, err := jobService.GetJobForReport(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobTypeReportGeneration, job.Type)
	assert.Equal(t, models.JobStatusPending, job.Status)
}

func TestRequestReportDeduplicatesJob(t *testing.T) {
	ctx := context.Background()
	service, jobService, _ := setupReportTest(t)

	report, err := service.RequestReport(ctx, "owner-1", ReportDraft{Title: "Study"})
	require.NoError(t, err)

	// A second enqueue keyed by the same report id reuses the pending job
	job1, err := jobService.GetJobForReport(ctx, report.ID)
	require.NoError(t, err)
	job2, err := jobService.EnqueueUniqueJob(ctx, models.JobTypeReportGeneration,
		models.JobPayload{"report_id": report.ID}, "report_id")
	require.NoError(t, err)
	assert.Equal(t, job1.ID, job2.ID)
}

func TestRequestReportRequiresTitle(t *testing.T) {
	ctx := context.Background()
	service, _, _ := setupReportTest(t)

	_, err := service.RequestReport(ctx, "owner-1", ReportDraft{Title: "  "})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeMissingField, apperrors.GetCode(err))
}

func TestRequestReportWithScenario(t *testing.T) {
	ctx := context.Background()
	service, _, db := setupReportTest(t)

	scenario := &models.Scenario{UserID: "owner-1", Name: "Baseline"}
	require.NoError(t, db.Create(scenario).Error)

	report, err := service.RequestReport(ctx, "owner-1", ReportDraft{
		Title:      "Scenario Study",
		ScenarioID: &scenario.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, report.ScenarioID)
	assert.Equal(t, scenario.ID, *report.ScenarioID)
}

func TestRequestReportScenarioMissing(t *testing.T) {
	ctx := context.Background()
	service, _, _ := setupReportTest(t)

	missing := uint(999)
	_, err := service.RequestReport(ctx, "owner-1", ReportDraft{
		Title:      "Study",
		ScenarioID: &missing,
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.GetCode(err))
}

func TestRequestReportScenarioNotOwned(t *testing.T) {
	ctx := context.Background()
	service, _, db := setupReportTest(t)

	scenario := &models.Scenario{UserID: "owner-2", Name: "Theirs"}
	require.NoError(t, db.Create(scenario).Error)

	_, err := service.RequestReport(ctx, "owner-1", ReportDraft{
		Title:      "Study",
		ScenarioID: &scenario.ID,
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeForbidden, apperrors.GetCode(err))
}

func TestListReportsNewestFirst(t *testing.T) {
	ctx := context.Background()
	service, _, _ := setupReportTest(t)

	for _, title := range []string{"First", "Second"} {
		_, err := service.RequestReport(ctx, "owner-1", ReportDraft{Title: title})
		require.NoError(t, err)
	}

	reports, err := service.ListReports(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "Second", reports[0].Title)
}

func TestReportLifecycleUpdates(t *testing.T) {
	ctx := context.Background()
	service, _, db := setupReportTest(t)

	report, err := service.RequestReport(ctx, "owner-1", ReportDraft{Title: "Study"})
	require.NoError(t, err)

	repo := NewRepository(db)
	require.NoError(t, repo.SetStatus(ctx, report.ID, models.ReportStatusProcessing))
	require.NoError(t, repo.SetCompleted(ctx, report.ID, "All components are adequately funded."))

	completed, err := service.GetReport(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusCompleted, completed.Status)
	assert.Equal(t, "All components are adequately funded.", completed.Narrative)
	assert.True(t, completed.IsTerminal())

	require.NoError(t, repo.SetFailed(ctx, report.ID, "completion timeout"))
	failed, err := service.GetReport(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusFailed, failed.Status)
	assert.Equal(t, "completion timeout", failed.Error)
}
