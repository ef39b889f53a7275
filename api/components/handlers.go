package components

import (
	"github.com/gin-gonic/gin"

	"github.com/hoaworks/reserve-api/api/types"
	"github.com/hoaworks/reserve-api/internal/models"
	"github.com/hoaworks/reserve-api/internal/services/components"
)

func draftFromRequest(req types.ComponentRequest) components.ComponentDraft {
	return components.ComponentDraft{
		Name:                 req.Name,
		Category:             req.Category,
		PlacedInService:      req.PlacedInService,
		UsefulLifeYears:      req.UsefulLifeYears,
		RemainingLifeYears:   req.RemainingLifeYears,
		ReplacementCostCents: req.ReplacementCostCents,
		Quantity:             req.Quantity,
		Condition:            models.ComponentCondition(req.Condition),
		Notes:                req.Notes,
	}
}

// ListComponents returns a handler for listing the asset registry
// @Summary List components
// @Description Get all components in the asset registry
// @Tags components
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "List of components"
// @Failure 500 {object} types.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/v1/components [get]
func ListComponents(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := deps.ComponentService.ListComponents(c.Request.Context())
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, gin.H{"components": list})
	}
}

// GetComponent returns a handler for fetching a single registry entry
// @Summary Get component
// @Description Get a registry component by ID
// @Tags components
// @Accept json
// @Produce json
// @Param id path int true "Component ID"
// @Success 200 {object} models.Component "Component details"
// @Failure 400 {object} types.ErrorResponse "Invalid component ID"
// @Failure 404 {object} types.ErrorResponse "Component not found"
// @Security BearerAuth
// @Router /api/v1/components/{id} [get]
func GetComponent(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		component, err := deps.ComponentService.GetComponent(c.Request.Context(), id)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, component)
	}
}

// CreateComponent returns a handler for adding a registry entry
// @Summary Create component
// @Description Add a component to the asset registry
// @Tags components
// @Accept json
// @Produce json
// @Param component body types.ComponentRequest true "Component details"
// @Success 201 {object} models.Component "Created component"
// @Failure 400 {object} types.ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /api/v1/components [post]
func CreateComponent(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.ComponentRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		component, err := deps.ComponentService.CreateComponent(c.Request.Context(), draftFromRequest(req))
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendCreated(c, component)
	}
}

// UpdateComponent returns a handler for replacing a registry entry
// @Summary Update component
// @Description Update a registry component's fields
// @Tags components
// @Accept json
// @Produce json
// @Param id path int true "Component ID"
// @Param component body types.ComponentRequest true "Component details"
// @Success 200 {object} models.Component "Updated component"
// @Failure 400 {object} types.ErrorResponse "Invalid request"
// @Failure 404 {object} types.ErrorResponse "Component not found"
// @Security BearerAuth
// @Router /api/v1/components/{id} [put]
func UpdateComponent(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var req types.ComponentRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		component, err := deps.ComponentService.UpdateComponent(c.Request.Context(), id, draftFromRequest(req))
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, component)
	}
}

// DeleteComponent returns a handler for removing a registry entry
// @Summary Delete component
// @Description Remove a component from the asset registry
// @Tags components
// @Accept json
// @Produce json
// @Param id path int true "Component ID"
// @Success 200 {object} types.DeleteResponse "Deletion confirmation"
// @Failure 400 {object} types.ErrorResponse "Invalid component ID"
// @Failure 404 {object} types.ErrorResponse "Component not found"
// @Security BearerAuth
// @Router /api/v1/components/{id} [delete]
func DeleteComponent(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if err := deps.ComponentService.DeleteComponent(c.Request.Context(), id); err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, types.DeleteResponse{Success: true})
	}
}

// GetComponentInsight returns a handler for generating an LLM condition summary
// @Summary Component insight
// @Description Generate a short funding insight for a component
// @Tags components
// @Accept json
// @Produce json
// @Param id path int true "Component ID"
// @Success 200 {object} types.InsightResponse "Generated insight"
// @Failure 400 {object} types.ErrorResponse "Invalid component ID"
// @Failure 404 {object} types.ErrorResponse "Component not found"
// @Failure 502 {object} types.ErrorResponse "Completion service unavailable"
// @Security BearerAuth
// @Router /api/v1/components/{id}/insights [post]
func GetComponentInsight(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		component, err := deps.ComponentService.GetComponent(c.Request.Context(), id)
		if err != nil {
			types.SendError(c, err)
			return
		}

		insight, err := deps.InsightService.ComponentInsight(c.Request.Context(), component)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, types.InsightResponse{Insight: insight})
	}
}
