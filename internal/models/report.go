package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReportStatus tracks a report through its generation job
type ReportStatus string

const (
	ReportStatusPending    ReportStatus = "pending"
	ReportStatusProcessing ReportStatus = "processing"
	ReportStatusCompleted  ReportStatus = "completed"
	ReportStatusFailed     ReportStatus = "failed"
)

// Report is an LLM-generated reserve-study narrative. Rows are created
// in pending state and filled in by the report_generation worker.
type Report struct {
	gorm.Model
	UUID       string       `json:"uuid" gorm:"uniqueIndex"`
	UserID     string       `json:"user_id" gorm:"not null;index"`
	Title      string       `json:"title" gorm:"not null"`
	ScenarioID *uint        `json:"scenario_id,omitempty" gorm:"index"`
	Status     ReportStatus `json:"status" gorm:"default:pending;index"`
	Narrative  string       `json:"narrative,omitempty" gorm:"type:text"`
	Error      string       `json:"error,omitempty"`
}

// BeforeCreate generates a UUID before creating a new report
func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.UUID == "" {
		r.UUID = uuid.New().String()
	}
	return nil
}

// IsTerminal reports whether the report has finished generating
func (r *Report) IsTerminal() bool {
	return r.Status == ReportStatusCompleted || r.Status == ReportStatusFailed
}

// TableName returns the table name for the Report model
func (Report) TableName() string {
	return "reports"
}
