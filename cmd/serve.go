package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hoaworks/reserve-api/api"
	"github.com/hoaworks/reserve-api/api/types"
	"github.com/hoaworks/reserve-api/internal/database"
	"github.com/hoaworks/reserve-api/internal/models"
	componentService "github.com/hoaworks/reserve-api/internal/services/components"
	"github.com/hoaworks/reserve-api/internal/services/insights"
	jobService "github.com/hoaworks/reserve-api/internal/services/jobs"
	reportService "github.com/hoaworks/reserve-api/internal/services/reports"
	scenarioService "github.com/hoaworks/reserve-api/internal/services/scenarios"
	"github.com/hoaworks/reserve-api/internal/services/storage"
	"github.com/hoaworks/reserve-api/internal/services/workers"
	"github.com/hoaworks/reserve-api/pkg/config"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Reserve Study API server with the configured settings.

The server exposes document, annotation, component, scenario, and report
endpoints, and runs background workers for report narrative generation.

Example:
  reserve-api serve
  reserve-api serve --port 9090
  reserve-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Use config values if flags not provided
	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}

	db, err := database.Initialize(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	deps := &types.Dependencies{DB: db}

	if cfg.Storage.Bucket != "" {
		store, err := storage.NewS3Store(cmd.Context(), cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to initialize object storage: %w", err)
		}
		deps.ObjectStore = store
	}

	// Background workers share service instances with the HTTP handlers
	deps.JobService = jobService.NewService(jobService.NewRepository(db.DB))
	deps.InsightService = insights.NewService(insights.NewClient(insights.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}))

	pool := workers.NewWorkerPool(deps.JobService, cfg.Processing.Workers, cfg.Processing.PollInterval)
	pool.RegisterProcessor(workers.NewReportProcessor(
		deps.JobService,
		reportService.NewRepository(db.DB),
		componentService.NewRepository(db.DB),
		scenarioService.NewRepository(db.DB),
		deps.InsightService,
	))
	deps.WorkerPool = pool

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	if err := pool.Start(workerCtx); err != nil {
		return fmt.Errorf("failed to start worker pool: %w", err)
	}
	log.Printf("[DEBUG] Started %d report workers", cfg.Processing.Workers)

	server := api.NewServer(fmt.Sprintf("%s:%d", serverHost, serverPort))
	server.SetDependencies(deps)
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	// Channel to listen for interrupt signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Channel to receive server errors
	serverErr := make(chan error, 1)

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	fmt.Printf("Server is ready to handle requests at %s:%d\n", serverHost, serverPort)

	// Wait for interrupt signal or server error
	select {
	case <-stop:
		fmt.Println("\nShutting down server...")
	case err := <-serverErr:
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		fmt.Println("Shutting down server...")
	}

	stopWorkers()
	pool.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server forced to shutdown: %v\n", err)
		return err
	}

	fmt.Println("Server gracefully stopped")
	return nil
}
