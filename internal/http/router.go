package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Create controllers with appropriate interfaces
	health := NewHealthController(cfg.Database, cfg.Version)
	overridesController := NewOverridesController(cfg.OverrideStore)
	snapshotController := NewSnapshotController(cfg.OverrideStore)
	analyzeController := NewAnalyzeController(cfg.Analyzer, cfg.CardStore, cfg.OverrideStore, cfg.TaskClient)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Override management endpoints
	router.GET("/api/overrides", overridesController.ListOverrides)
	router.POST("/api/overrides", overridesController.CreateOverride)
	router.GET("/api/overrides/:key", overridesController.GetOverride)
	router.PUT("/api/overrides/:key", overridesController.UpdateOverride)
	router.DELETE("/api/overrides/:key", overridesController.DeleteOverride)

	// Export/import endpoints
	router.GET("/api/export", snapshotController.Export)
	router.POST("/api/import", snapshotController.Import)

	// Analysis endpoints
	router.POST("/api/analyze", analyzeController.Analyze)
	router.POST("/api/cards/analyze", analyzeController.AnalyzeCard)
	router.GET("/api/cards/:key", analyzeController.GetCard)
	router.POST("/api/admin/cards/reanalyze", analyzeController.ReanalyzeAll)

	// Override diagnostics
	if cfg.ConsistencyChecker != nil {
		consistencyController := NewConsistencyController(cfg.ConsistencyChecker)
		router.GET("/api/check-consistency", consistencyController.CheckConsistency)
	}

	// Admin backend sync endpoints
	if cfg.SyncCoordinator != nil {
		syncController := NewSyncController(cfg.SyncCoordinator)
		router.POST("/api/sync/push", syncController.PushSync)
		router.POST("/api/sync/pull", syncController.PullSync)
		router.POST("/api/sync/bidirectional", syncController.BidirectionalSync)
		router.GET("/api/sync/status", syncController.SyncStatus)
	}

	return router
}
