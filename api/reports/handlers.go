package reports

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hoaworks/reserve-api/api/types"
	"github.com/hoaworks/reserve-api/internal/services/reports"
)

// ListReports returns a handler for listing the caller's reports
// @Summary List reports
// @Description Get the authenticated user's generated reports, newest first
// @Tags reports
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "List of reports"
// @Failure 401 {object} types.ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /api/v1/reports [get]
func ListReports(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := types.CurrentUserID(c)
		if !ok {
			return
		}

		list, err := deps.ReportService.ListReports(c.Request.Context(), userID)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, gin.H{"reports": list})
	}
}

// GetReport returns a handler for fetching a single report
// @Summary Get report
// @Description Get a report by ID, including its status and narrative once generated
// @Tags reports
// @Accept json
// @Produce json
// @Param id path int true "Report ID"
// @Success 200 {object} models.Report "Report details"
// @Failure 400 {object} types.ErrorResponse "Invalid report ID"
// @Failure 404 {object} types.ErrorResponse "Report not found"
// @Security BearerAuth
// @Router /api/v1/reports/{id} [get]
func GetReport(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		report, err := deps.ReportService.GetReport(c.Request.Context(), id)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, report)
	}
}

// CreateReport returns a handler for requesting narrative generation
// @Summary Request report
// @Description Create a report record and queue narrative generation in the background
// @Tags reports
// @Accept json
// @Produce json
// @Param report body types.CreateReportRequest true "Report request"
// @Success 202 {object} models.Report "Accepted report, generation pending"
// @Failure 400 {object} types.ErrorResponse "Invalid request"
// @Failure 401 {object} types.ErrorResponse "Authentication required"
// @Failure 404 {object} types.ErrorResponse "Referenced scenario not found"
// @Security BearerAuth
// @Router /api/v1/reports [post]
func CreateReport(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := types.CurrentUserID(c)
		if !ok {
			return
		}

		var req types.CreateReportRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		report, err := deps.ReportService.RequestReport(c.Request.Context(), userID, reports.ReportDraft{
			Title:      req.Title,
			ScenarioID: req.ScenarioID,
		})
		if err != nil {
			types.SendError(c, err)
			return
		}

		c.JSON(http.StatusAccepted, report)
	}
}
