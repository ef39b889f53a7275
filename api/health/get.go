package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hoaworks/reserve-api/api/types"
)

// Get handles health check requests. Besides the database it reports
// the report worker pool and the job queue backlog, so a stuck queue
// shows up here before users notice reports never completing.
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}

		// Add database status
		if deps != nil && deps.DB != nil {
			response["database"] = getDatabaseStatus(deps)
		} else {
			response["database"] = gin.H{"status": "not configured"}
		}

		if deps != nil && deps.WorkerPool != nil {
			status := "stopped"
			if deps.WorkerPool.Running() {
				status = "running"
			}
			response["workers"] = gin.H{
				"status": status,
				"count":  deps.WorkerPool.Size(),
			}
		}

		if deps != nil && deps.JobService != nil {
			if stats, err := deps.JobService.GetQueueStats(c.Request.Context()); err == nil {
				response["jobs"] = stats
			} else {
				response["jobs"] = gin.H{"status": "unavailable"}
			}
		}

		c.JSON(http.StatusOK, response)
	}
}

// getDatabaseStatus returns the database connection status
func getDatabaseStatus(deps *types.Dependencies) gin.H {
	if deps.DB == nil || deps.DB.DB == nil {
		return gin.H{"status": "not configured"}
	}

	if err := deps.DB.HealthCheck(); err != nil {
		return gin.H{"status": "unhealthy", "error": err.Error()}
	}

	return gin.H{"status": "healthy"}
}
