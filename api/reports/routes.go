package reports

import (
	"github.com/gin-gonic/gin"

	"github.com/hoaworks/reserve-api/api/types"
)

// RegisterRoutes sets up the report routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", ListReports(deps))
	router.POST("", CreateReport(deps))
	router.GET("/:id", GetReport(deps))
}
