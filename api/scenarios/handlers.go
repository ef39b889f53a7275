package scenarios

import (
	"github.com/gin-gonic/gin"

	"github.com/hoaworks/reserve-api/api/types"
	"github.com/hoaworks/reserve-api/internal/services/scenarios"
)

// ListScenarios returns a handler for listing the caller's funding scenarios
// @Summary List scenarios
// @Description Get the authenticated user's funding scenarios, newest first
// @Tags scenarios
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "List of scenarios"
// @Failure 401 {object} types.ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /api/v1/scenarios [get]
func ListScenarios(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := types.CurrentUserID(c)
		if !ok {
			return
		}

		list, err := deps.ScenarioService.ListScenarios(c.Request.Context(), userID)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, gin.H{"scenarios": list})
	}
}

// GetScenario returns a handler for fetching a single scenario
// @Summary Get scenario
// @Description Get a funding scenario by ID
// @Tags scenarios
// @Accept json
// @Produce json
// @Param id path int true "Scenario ID"
// @Success 200 {object} models.Scenario "Scenario details"
// @Failure 400 {object} types.ErrorResponse "Invalid scenario ID"
// @Failure 404 {object} types.ErrorResponse "Scenario not found"
// @Security BearerAuth
// @Router /api/v1/scenarios/{id} [get]
func GetScenario(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		scenario, err := deps.ScenarioService.GetScenario(c.Request.Context(), id)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, scenario)
	}
}

// CreateScenario returns a handler for creating a funding scenario
// @Summary Create scenario
// @Description Create a funding scenario owned by the caller
// @Tags scenarios
// @Accept json
// @Produce json
// @Param scenario body types.ScenarioRequest true "Scenario details"
// @Success 201 {object} models.Scenario "Created scenario"
// @Failure 400 {object} types.ErrorResponse "Invalid request"
// @Failure 401 {object} types.ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /api/v1/scenarios [post]
func CreateScenario(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := types.CurrentUserID(c)
		if !ok {
			return
		}

		var req types.ScenarioRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		scenario, err := deps.ScenarioService.CreateScenario(c.Request.Context(), userID, scenarios.ScenarioDraft{
			Name:        req.Name,
			Description: req.Description,
			Parameters:  req.Parameters,
		})
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendCreated(c, scenario)
	}
}

// UpdateScenario returns a handler for updating a funding scenario
// @Summary Update scenario
// @Description Update a funding scenario; only the owner may update
// @Tags scenarios
// @Accept json
// @Produce json
// @Param id path int true "Scenario ID"
// @Param scenario body types.ScenarioRequest true "Scenario details"
// @Success 200 {object} models.Scenario "Updated scenario"
// @Failure 400 {object} types.ErrorResponse "Invalid request"
// @Failure 403 {object} types.ErrorResponse "Not the owner"
// @Failure 404 {object} types.ErrorResponse "Scenario not found"
// @Security BearerAuth
// @Router /api/v1/scenarios/{id} [put]
func UpdateScenario(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		userID, ok := types.CurrentUserID(c)
		if !ok {
			return
		}

		var req types.ScenarioRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		scenario, err := deps.ScenarioService.UpdateScenario(c.Request.Context(), id, userID, scenarios.ScenarioDraft{
			Name:        req.Name,
			Description: req.Description,
			Parameters:  req.Parameters,
		})
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, scenario)
	}
}

// DeleteScenario returns a handler for deleting a funding scenario
// @Summary Delete scenario
// @Description Delete a funding scenario; only the owner may delete
// @Tags scenarios
// @Accept json
// @Produce json
// @Param id path int true "Scenario ID"
// @Success 200 {object} types.DeleteResponse "Deletion confirmation"
// @Failure 400 {object} types.ErrorResponse "Invalid scenario ID"
// @Failure 403 {object} types.ErrorResponse "Not the owner"
// @Failure 404 {object} types.ErrorResponse "Scenario not found"
// @Security BearerAuth
// @Router /api/v1/scenarios/{id} [delete]
func DeleteScenario(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		userID, ok := types.CurrentUserID(c)
		if !ok {
			return
		}

		if err := deps.ScenarioService.DeleteScenario(c.Request.Context(), id, userID); err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, types.DeleteResponse{Success: true})
	}
}
