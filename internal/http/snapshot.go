package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hkawai/cardfeature/internal/entities"
)

// SnapshotVersion is the schema version stamped on exports. Imports
// with a different major version are rejected.
const SnapshotVersion = "1.0"

// Snapshot is the full-store export/import payload.
type Snapshot struct {
	Overrides  []entities.FeatureOverride `json:"overrides"`
	ExportedAt time.Time                  `json:"exported_at"`
	Version    string                     `json:"version"`
}

// ImportResult reports how an import went, item by item.
type ImportResult struct {
	Imported int      `json:"imported"`
	Errors   []string `json:"errors,omitempty"`
	Success  bool     `json:"success"`
}

type SnapshotController struct {
	store OverrideStore
}

func NewSnapshotController(store OverrideStore) *SnapshotController {
	return &SnapshotController{store: store}
}

// Export returns the full override store as a snapshot
// GET /api/export
func (sc *SnapshotController) Export(c *gin.Context) {
	records, err := sc.store.List()
	if err != nil {
		respondInternalError(c, err, "export overrides")
		return
	}
	c.JSON(http.StatusOK, Snapshot{
		Overrides:  records,
		ExportedAt: time.Now().UTC(),
		Version:    SnapshotVersion,
	})
}

// Import upserts every record from a snapshot; a failing item is
// collected and does not abort its siblings
// POST /api/import
func (sc *SnapshotController) Import(c *gin.Context) {
	var snapshot Snapshot
	if err := c.ShouldBindJSON(&snapshot); err != nil {
		respondBadRequest(c, "invalid snapshot body")
		return
	}
	if snapshot.Version != SnapshotVersion {
		respondBadRequest(c, fmt.Sprintf("unsupported snapshot version %q, want %q", snapshot.Version, SnapshotVersion))
		return
	}

	result := ImportResult{}
	for i := range snapshot.Overrides {
		record := snapshot.Overrides[i]
		record.ID = 0
		if record.Key == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("item %d: missing key", i))
			continue
		}
		if err := sc.store.Upsert(&record); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", record.Key, err))
			continue
		}
		result.Imported++
	}
	result.Success = len(result.Errors) == 0
	c.JSON(http.StatusOK, result)
}
