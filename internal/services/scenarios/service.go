package scenarios

import (
	"context"
	"strings"

	"github.com/hoaworks/reserve-api/internal/models"
	apperrors "github.com/hoaworks/reserve-api/pkg/errors"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repo Repository
}

// NewService creates a new scenario service
func NewService(repo Repository) Service {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) ListScenarios(ctx context.Context, ownerID string) ([]models.Scenario, error) {
	if ownerID == "" {
		return nil, apperrors.Unauthorized("authentication required")
	}
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *ServiceImpl) GetScenario(ctx context.Context, id uint) (*models.Scenario, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ServiceImpl) CreateScenario(ctx context.Context, ownerID string, draft ScenarioDraft) (*models.Scenario, error) {
	if ownerID == "" {
		return nil, apperrors.Unauthorized("authentication required")
	}
	if strings.TrimSpace(draft.Name) == "" {
		return nil, apperrors.MissingFieldError("name")
	}

	scenario := &models.Scenario{
		UserID:      ownerID,
		Name:        strings.TrimSpace(draft.Name),
		Description: draft.Description,
		Parameters:  draft.Parameters,
	}
	if scenario.Parameters == nil {
		scenario.Parameters = models.JSONMap{}
	}
	if err := s.repo.Create(ctx, scenario); err != nil {
		return nil, err
	}
	return scenario, nil
}

func (s *ServiceImpl) UpdateScenario(ctx context.Context, id uint, requesterID string, draft ScenarioDraft) (*models.Scenario, error) {
	if requesterID == "" {
		return nil, apperrors.Unauthorized("authentication required")
	}
	scenario, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if scenario.UserID != requesterID {
		return nil, apperrors.Forbidden("scenario", "only the owner can modify a scenario")
	}
	if strings.TrimSpace(draft.Name) == "" {
		return nil, apperrors.MissingFieldError("name")
	}

	scenario.Name = strings.TrimSpace(draft.Name)
	scenario.Description = draft.Description
	if draft.Parameters != nil {
		scenario.Parameters = draft.Parameters
	}
	if err := s.repo.Update(ctx, scenario); err != nil {
		return nil, err
	}
	return scenario, nil
}

func (s *ServiceImpl) DeleteScenario(ctx context.Context, id uint, requesterID string) error {
	if requesterID == "" {
		return apperrors.Unauthorized("authentication required")
	}
	scenario, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if scenario.UserID != requesterID {
		return apperrors.Forbidden("scenario", "only the owner can delete a scenario")
	}
	return s.repo.Delete(ctx, id)
}
