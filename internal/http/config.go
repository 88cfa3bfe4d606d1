package http

import (
	"github.com/hkawai/cardfeature/internal/analyzer"
	"github.com/hkawai/cardfeature/internal/database"
	"github.com/hkawai/cardfeature/internal/tasks"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router. This replaces the long parameter list
// in NewRouter for better maintainability.
type RouterConfig struct {
	// Core dependencies
	Database *database.Database
	Analyzer *analyzer.Analyzer

	// Stores
	OverrideStore OverrideStore
	CardStore     CardStore

	// Override diagnostics
	ConsistencyChecker ConsistencyChecker

	// Admin backend reconciliation (optional)
	SyncCoordinator SyncCoordinator

	// Task queue client (optional)
	TaskClient *tasks.Client

	// Application info
	Version string
}
