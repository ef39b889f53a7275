package components

import (
	"context"
	"strings"

	"github.com/hoaworks/reserve-api/internal/models"
	apperrors "github.com/hoaworks/reserve-api/pkg/errors"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
}

// NewService creates a new component service
func NewService(repository Repository) Service {
	return &ServiceImpl{repository: repository}
}

// ListComponents returns the asset registry
func (s *ServiceImpl) ListComponents(ctx context.Context) ([]models.Component, error) {
	return s.repository.List(ctx)
}

// GetComponent retrieves a single registry entry
func (s *ServiceImpl) GetComponent(ctx context.Context, id uint) (*models.Component, error) {
	return s.repository.GetByID(ctx, id)
}

func validateDraft(draft ComponentDraft) error {
	if strings.TrimSpace(draft.Name) == "" {
		return apperrors.MissingFieldError("name")
	}
	if draft.UsefulLifeYears <= 0 {
		return apperrors.ValidationError("useful_life_years", "must be positive")
	}
	if draft.RemainingLifeYears < 0 || draft.RemainingLifeYears > draft.UsefulLifeYears {
		return apperrors.ValidationError("remaining_life_years", "must be between 0 and useful_life_years")
	}
	if draft.ReplacementCostCents < 0 {
		return apperrors.ValidationError("replacement_cost_cents", "must not be negative")
	}
	if draft.Condition != "" && !draft.Condition.Valid() {
		return apperrors.ValidationError("condition", "must be one of excellent, good, fair, poor, critical")
	}
	return nil
}

func applyDraft(component *models.Component, draft ComponentDraft) {
	component.Name = draft.Name
	component.Category = draft.Category
	component.PlacedInService = draft.PlacedInService
	component.UsefulLifeYears = draft.UsefulLifeYears
	component.RemainingLifeYears = draft.RemainingLifeYears
	component.ReplacementCostCents = draft.ReplacementCostCents
	component.Quantity = draft.Quantity
	component.Notes = draft.Notes

	if draft.Condition != "" {
		component.Condition = draft.Condition
	} else if component.Condition == "" {
		component.Condition = models.ConditionGood
	}
	if component.Quantity <= 0 {
		component.Quantity = 1
	}
}

// CreateComponent validates and persists a new registry entry
func (s *ServiceImpl) CreateComponent(ctx context.Context, draft ComponentDraft) (*models.Component, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	component := &models.Component{}
	applyDraft(component, draft)

	if err := s.repository.Create(ctx, component); err != nil {
		return nil, err
	}
	return component, nil
}

// UpdateComponent validates and saves changes to an existing entry
func (s *ServiceImpl) UpdateComponent(ctx context.Context, id uint, draft ComponentDraft) (*models.Component, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	component, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyDraft(component, draft)

	if err := s.repository.Update(ctx, component); err != nil {
		return nil, err
	}
	return component, nil
}

// DeleteComponent removes a registry entry
func (s *ServiceImpl) DeleteComponent(ctx context.Context, id uint) error {
	return s.repository.Delete(ctx, id)
}
