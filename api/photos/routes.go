package photos

import (
	"github.com/gin-gonic/gin"

	"github.com/hoaworks/reserve-api/api/types"
)

// RegisterRoutes sets up the gallery photo routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", ListPhotos(deps))
	router.POST("", CreatePhoto(deps))
	router.GET("/:id", GetPhoto(deps))
	router.DELETE("/:id", DeletePhoto(deps))
	router.PUT("/:id/content", UploadContent(deps))
	router.GET("/:id/content", DownloadContent(deps))
}
