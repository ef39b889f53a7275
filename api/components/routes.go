package components

import (
	"github.com/gin-gonic/gin"

	"github.com/hoaworks/reserve-api/api/types"
)

// RegisterRoutes sets up the asset registry routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", ListComponents(deps))
	router.POST("", CreateComponent(deps))
	router.GET("/:id", GetComponent(deps))
	router.PUT("/:id", UpdateComponent(deps))
	router.DELETE("/:id", DeleteComponent(deps))
	router.POST("/:id/insights", GetComponentInsight(deps))
}
