package health

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoaworks/reserve-api/api/types"
	"github.com/hoaworks/reserve-api/internal/database"
	"github.com/hoaworks/reserve-api/internal/models"
	jobsvc "github.com/hoaworks/reserve-api/internal/services/jobs"
	"github.com/hoaworks/reserve-api/internal/services/workers"
	"github.com/hoaworks/reserve-api/pkg/config"
)

func openTestDB(t *testing.T) *database.DB {
	db, err := database.Initialize(config.DatabaseConfig{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		setupDeps  func(t *testing.T) *types.Dependencies
		wantDBStat string
	}{
		{
			name: "healthy with database",
			setupDeps: func(t *testing.T) *types.Dependencies {
				return &types.Dependencies{DB: openTestDB(t)}
			},
			wantDBStat: "healthy",
		},
		{
			name: "without database",
			setupDeps: func(t *testing.T) *types.Dependencies {
				return &types.Dependencies{}
			},
			wantDBStat: "not configured",
		},
		{
			name: "unhealthy with closed database",
			setupDeps: func(t *testing.T) *types.Dependencies {
				db := openTestDB(t)
				sqlDB, err := db.DB.DB()
				require.NoError(t, err)
				require.NoError(t, sqlDB.Close())
				return &types.Dependencies{DB: db}
			},
			wantDBStat: "unhealthy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			Get(tt.setupDeps(t))(c)

			assert.Equal(t, http.StatusOK, w.Code)

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, "ok", response["status"])

			dbStatus, ok := response["database"].(map[string]interface{})
			require.True(t, ok)
			assert.Equal(t, tt.wantDBStat, dbStatus["status"])
		})
	}
}

func TestGetReportsWorkersAndQueue(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db := openTestDB(t)
	require.NoError(t, db.AutoMigrate(&models.Job{}))

	jobService := jobsvc.NewService(jobsvc.NewRepository(db.DB))
	_, err := jobService.EnqueueJob(context.Background(), models.JobTypeReportGeneration,
		models.JobPayload{"report_id": uint(1)})
	require.NoError(t, err)

	pool := workers.NewWorkerPool(jobService, 2, time.Second)

	deps := &types.Dependencies{
		DB:         db,
		JobService: jobService,
		WorkerPool: pool,
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	Get(deps)(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	workerStatus, ok := response["workers"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "stopped", workerStatus["status"])
	assert.Equal(t, float64(2), workerStatus["count"])

	queue, ok := response["jobs"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), queue["pending"])
	assert.Equal(t, float64(0), queue["processing"])
}
