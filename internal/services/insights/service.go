package insights

import (
	"context"
	"fmt"
	"strings"

	"github.com/hoaworks/reserve-api/internal/models"
	apperrors "github.com/hoaworks/reserve-api/pkg/errors"
)

// Completer abstracts the chat completion call for testing
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Service generates reserve-study narratives and component insights
type Service interface {
	ComponentInsight(ctx context.Context, component *models.Component) (string, error)
	ReportNarrative(ctx context.Context, title string, components []models.Component, scenario *models.Scenario) (string, error)
}

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	completer Completer
}

// NewService creates a new insight service
func NewService(completer Completer) Service {
	return &ServiceImpl{completer: completer}
}

const systemPrompt = "You are a reserve study analyst for homeowner associations. " +
	"Write clear, factual assessments grounded only in the data provided. " +
	"Use plain language a board member can follow. Do not invent figures."

func (s *ServiceImpl) ComponentInsight(ctx context.Context, component *models.Component) (string, error) {
	if component == nil {
		return "", apperrors.MissingFieldError("component")
	}

	var b strings.Builder
	b.WriteString("Assess the following reserve component and summarize its funding outlook ")
	b.WriteString("in two short paragraphs:\n\n")
	writeComponent(&b, component)

	insight, err := s.completer.Complete(ctx, systemPrompt, b.String())
	if err != nil {
		return "", apperrors.ExternalServiceError("completion", err)
	}
	return insight, nil
}

func (s *ServiceImpl) ReportNarrative(ctx context.Context, title string, components []models.Component, scenario *models.Scenario) (string, error) {
	if len(components) == 0 {
		return "", apperrors.ValidationError("components", "at least one component is required to generate a report")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Write the narrative section of a reserve study report titled %q.\n", title)
	b.WriteString("Cover overall condition, near-term replacement pressure, and funding recommendations.\n\n")
	b.WriteString("Component inventory:\n")
	for i := range components {
		fmt.Fprintf(&b, "\n--- Component %d ---\n", i+1)
		writeComponent(&b, &components[i])
	}

	if scenario != nil {
		fmt.Fprintf(&b, "\nFunding scenario: %s\n", scenario.Name)
		if scenario.Description != "" {
			fmt.Fprintf(&b, "Description: %s\n", scenario.Description)
		}
		for key, value := range scenario.Parameters {
			fmt.Fprintf(&b, "  %s: %v\n", key, value)
		}
	}

	narrative, err := s.completer.Complete(ctx, systemPrompt, b.String())
	if err != nil {
		return "", apperrors.ExternalServiceError("completion", err)
	}
	return narrative, nil
}

func writeComponent(b *strings.Builder, c *models.Component) {
	fmt.Fprintf(b, "Name: %s\n", c.Name)
	if c.Category != "" {
		fmt.Fprintf(b, "Category: %s\n", c.Category)
	}
	if c.PlacedInService > 0 {
		fmt.Fprintf(b, "Placed in service: %d\n", c.PlacedInService)
	}
	fmt.Fprintf(b, "Useful life: %d years\n", c.UsefulLifeYears)
	fmt.Fprintf(b, "Remaining life: %d years\n", c.RemainingLifeYears)
	fmt.Fprintf(b, "Replacement cost: $%.2f\n", float64(c.ReplacementCostCents)/100)
	fmt.Fprintf(b, "Quantity: %d\n", c.Quantity)
	fmt.Fprintf(b, "Condition: %s\n", c.Condition)
	if c.Notes != "" {
		fmt.Fprintf(b, "Notes: %s\n", c.Notes)
	}
}
