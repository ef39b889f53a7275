package scenarios

import (
	"github.com/gin-gonic/gin"

	"github.com/hoaworks/reserve-api/api/types"
)

// RegisterRoutes sets up the funding scenario routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", ListScenarios(deps))
	router.POST("", CreateScenario(deps))
	router.GET("/:id", GetScenario(deps))
	router.PUT("/:id", UpdateScenario(deps))
	router.DELETE("/:id", DeleteScenario(deps))
}
