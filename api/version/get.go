package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Build variables - these will be set during build time using ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// Get handles version requests
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "Reserve Study API",
			"version":     Version,
			"commit":      GitCommit,
			"build_time":  BuildTime,
			"description": "API for HOA reserve studies, document annotation, and funding reports",
			"status":      "running",
		})
	}
}
