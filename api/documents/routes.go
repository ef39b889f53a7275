package documents

import (
	"github.com/gin-gonic/gin"

	"github.com/hoaworks/reserve-api/api/types"
)

// RegisterRoutes registers document-related routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", ListDocuments(deps))
	router.POST("", CreateDocument(deps))
	router.GET("/:id", GetDocument(deps))
	router.DELETE("/:id", DeleteDocument(deps))
	router.PUT("/:id/content", UploadContent(deps))
	router.GET("/:id/content", DownloadContent(deps))
}
