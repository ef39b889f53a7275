package scenarios

import (
	"context"

	"github.com/hoaworks/reserve-api/internal/models"
)

// Repository defines the interface for scenario data access
type Repository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]models.Scenario, error)
	GetByID(ctx context.Context, id uint) (*models.Scenario, error)
	Create(ctx context.Context, scenario *models.Scenario) error
	Update(ctx context.Context, scenario *models.Scenario) error
	Delete(ctx context.Context, id uint) error
}

// ScenarioDraft carries the client-supplied fields of a funding scenario
type ScenarioDraft struct {
	Name        string
	Description string
	Parameters  models.JSONMap
}

// Service defines the interface for scenario business logic
type Service interface {
	ListScenarios(ctx context.Context, ownerID string) ([]models.Scenario, error)
	GetScenario(ctx context.Context, id uint) (*models.Scenario, error)
	CreateScenario(ctx context.Context, ownerID string, draft ScenarioDraft) (*models.Scenario, error)
	UpdateScenario(ctx context.Context, id uint, requesterID string, draft ScenarioDraft) (*models.Scenario, error)
	DeleteScenario(ctx context.Context, id uint, requesterID string) error
}
