package types

import (
	"github.com/hoaworks/reserve-api/internal/database"
	"github.com/hoaworks/reserve-api/internal/services/annotations"
	"github.com/hoaworks/reserve-api/internal/services/auth"
	"github.com/hoaworks/reserve-api/internal/services/components"
	"github.com/hoaworks/reserve-api/internal/services/documents"
	"github.com/hoaworks/reserve-api/internal/services/insights"
	"github.com/hoaworks/reserve-api/internal/services/jobs"
	"github.com/hoaworks/reserve-api/internal/services/photos"
	"github.com/hoaworks/reserve-api/internal/services/reports"
	"github.com/hoaworks/reserve-api/internal/services/scenarios"
	"github.com/hoaworks/reserve-api/internal/services/storage"
	"github.com/hoaworks/reserve-api/internal/services/users"
	"github.com/hoaworks/reserve-api/internal/services/workers"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB                *database.DB
	AuthService       *auth.Service
	UserService       users.Service
	DocumentService   documents.Service
	AnnotationService annotations.Service
	PhotoService      photos.Service
	ComponentService  components.Service
	ScenarioService   scenarios.Service
	ReportService     reports.Service
	InsightService    insights.Service
	JobService        jobs.Service
	WorkerPool        *workers.WorkerPool
	ObjectStore       storage.ObjectStore
}
