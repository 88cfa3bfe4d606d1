package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hkawai/cardfeature/internal/adminapi"
	"github.com/hkawai/cardfeature/internal/analyzer"
	"github.com/hkawai/cardfeature/internal/config"
	"github.com/hkawai/cardfeature/internal/consistency"
	"github.com/hkawai/cardfeature/internal/database"
	"github.com/hkawai/cardfeature/internal/database/cards"
	"github.com/hkawai/cardfeature/internal/database/overrides"
	http_controllers "github.com/hkawai/cardfeature/internal/http"
	"github.com/hkawai/cardfeature/internal/scheduler"
	"github.com/hkawai/cardfeature/internal/syncer"
	"github.com/hkawai/cardfeature/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop task queue)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting cardfeature v%s", version)

	if cfg.HTTP.GinMode != "" {
		gin.SetMode(cfg.HTTP.GinMode)
	}

	// Initialize database
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	overridesRepo := overrides.NewRepository(db.DB)
	cardsRepo := cards.NewRepository(db.DB)

	// Compile the pattern catalog. A rule that does not compile is a
	// fatal configuration error, not a skippable one.
	table, err := analyzer.DefaultPatternTable()
	if err != nil {
		log.Fatalf("Failed to compile pattern catalog: %v", err)
	}
	textAnalyzer := analyzer.New(table)
	log.Printf("Pattern catalog compiled: %d rules", table.RuleCount())

	checker := consistency.NewChecker(overridesRepo, cardsRepo)

	// Admin backend sync is optional; without a URL the service runs
	// standalone
	var coordinator *syncer.Coordinator
	if cfg.AdminBackend.URL != "" {
		client := adminapi.NewClient(cfg.AdminBackend.URL, cfg.AdminBackend.APIKey, cfg.Sync.Timeout)
		coordinator = syncer.NewCoordinator(overridesRepo, client)
	} else {
		log.Printf("WARNING: ADMIN_BACKEND_URL is not set. Sync endpoints will be disabled.")
	}

	// Initialize task queue if enabled
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled {
		taskCfg := tasks.Config{
			Workers:         cfg.Tasks.Workers,
			ReleaseAfter:    cfg.Tasks.ReleaseAfter,
			CleanupInterval: cfg.Tasks.CleanupInterval,
		}

		taskClient, err = tasks.NewClient(cfg.Database.Path, taskCfg)
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		taskClient.Register(
			tasks.NewReanalyzeAllQueue(textAnalyzer, cardsRepo),
		)

		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)
	}

	// Start the scheduled background sync if configured
	var syncScheduler *scheduler.SyncScheduler
	if coordinator != nil && cfg.Sync.ScheduleEnabled {
		syncScheduler = scheduler.NewSyncScheduler(coordinator, cfg.Sync.Schedule)
		if err := syncScheduler.Start(context.Background()); err != nil {
			log.Fatalf("Failed to start sync scheduler: %v", err)
		}
	}

	routerCfg := http_controllers.RouterConfig{
		Database:           db,
		Analyzer:           textAnalyzer,
		OverrideStore:      overridesRepo,
		CardStore:          cardsRepo,
		ConsistencyChecker: checker,
		TaskClient:         taskClient,
		Version:            version,
	}
	if coordinator != nil {
		routerCfg.SyncCoordinator = coordinator
	}

	router := http_controllers.NewRouter(routerCfg)

	// Shutdown callback for graceful cleanup
	onShutdown := func(ctx context.Context) {
		if syncScheduler != nil {
			syncScheduler.Stop()
		}
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
	}

	if !cfg.HTTP.Enabled {
		// Background-only mode: keep the scheduler and task queue
		// running until a signal arrives
		log.Printf("HTTP server disabled, running in background mode")
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		ctx, cancel := context.WithTimeout(context.Background(),
			time.Duration(cfg.Global.ShutdownTimeoutInSeconds)*time.Second)
		defer cancel()
		onShutdown(ctx)
		return
	}

	Serve(router, cfg, onShutdown)
}
