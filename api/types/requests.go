package types

import "github.com/hoaworks/reserve-api/internal/models"

// PositionRequest carries annotation anchor coordinates
type PositionRequest struct {
	X      float64  `json:"x"`
	Y      float64  `json:"y"`
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`
}

// CreateAnnotationRequest represents a new annotation on a document
type CreateAnnotationRequest struct {
	Content  string          `json:"content"`
	Position PositionRequest `json:"position"`
	Type     string          `json:"type,omitempty" example:"comment"`
	Metadata models.JSONMap  `json:"metadata,omitempty"`
}

// CreateReplyRequest represents a threaded reply to an annotation
type CreateReplyRequest struct {
	Content string `json:"content"`
}

// CreateDocumentRequest registers an uploaded document
type CreateDocumentRequest struct {
	Title       string `json:"title"`
	FileKey     string `json:"file_key"`
	ContentType string `json:"content_type,omitempty"`
	SizeBytes   int64  `json:"size_bytes,omitempty"`
}

// CreatePhotoRequest registers an uploaded site photo
type CreatePhotoRequest struct {
	ObjectKey   string `json:"object_key"`
	Caption     string `json:"caption,omitempty"`
	ContentType string `json:"content_type,omitempty"`
	SizeBytes   int64  `json:"size_bytes,omitempty"`
	ComponentID *uint  `json:"component_id,omitempty"`
}

// ComponentRequest carries reserve component fields for create and update
type ComponentRequest struct {
	Name                 string `json:"name"`
	Category             string `json:"category,omitempty"`
	PlacedInService      int    `json:"placed_in_service,omitempty"`
	UsefulLifeYears      int    `json:"useful_life_years"`
	RemainingLifeYears   int    `json:"remaining_life_years"`
	ReplacementCostCents int64  `json:"replacement_cost_cents"`
	Quantity             int    `json:"quantity,omitempty"`
	Condition            string `json:"condition,omitempty" example:"good"`
	Notes                string `json:"notes,omitempty"`
}

// ScenarioRequest carries funding scenario fields for create and update
type ScenarioRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Parameters  models.JSONMap `json:"parameters,omitempty"`
}

// CreateReportRequest requests narrative generation
type CreateReportRequest struct {
	Title      string `json:"title"`
	ScenarioID *uint  `json:"scenario_id,omitempty"`
}
