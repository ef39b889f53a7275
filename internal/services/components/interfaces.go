package components

import (
	"context"

	"github.com/hoaworks/reserve-api/internal/models"
)

// Repository defines the interface for component data access
type Repository interface {
	List(ctx context.Context) ([]models.Component, error)
	GetByID(ctx context.Context, id uint) (*models.Component, error)
	Create(ctx context.Context, component *models.Component) error
	Update(ctx context.Context, component *models.Component) error
	Delete(ctx context.Context, id uint) error
}

// ComponentDraft carries the client-supplied fields of a registry entry
type ComponentDraft struct {
	Name                 string
	Category             string
	PlacedInService      int
	UsefulLifeYears      int
	RemainingLifeYears   int
	ReplacementCostCents int64
	Quantity             int
	Condition            models.ComponentCondition
	Notes                string
}

// Service defines the interface for component business logic
type Service interface {
	ListComponents(ctx context.Context) ([]models.Component, error)
	GetComponent(ctx context.Context, id uint) (*models.Component, error)
	CreateComponent(ctx context.Context, draft ComponentDraft) (*models.Component, error)
	UpdateComponent(ctx context.Context, id uint, draft ComponentDraft) (*models.Component, error)
	DeleteComponent(ctx context.Context, id uint) error
}
