package annotations

import (
	"github.com/gin-gonic/gin"

	"github.com/hoaworks/reserve-api/api/types"
)

// RegisterDocumentRoutes registers the document-nested annotation endpoints
func RegisterDocumentRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("/:id/annotations", GetAnnotations(deps))
	router.POST("/:id/annotations", CreateAnnotation(deps))
}

// RegisterRoutes registers the direct annotation endpoints
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("/:id/replies", CreateReply(deps))
	router.DELETE("/:id", DeleteAnnotation(deps))
}
