package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hkawai/cardfeature/internal/syncer"
)

// SyncCoordinator drives the reconciliation operations against the
// remote authoritative store.
type SyncCoordinator interface {
	Push(ctx context.Context) (*syncer.Batch, error)
	Pull(ctx context.Context) (*syncer.Batch, error)
	Bidirectional(ctx context.Context) (*syncer.Batch, *syncer.Batch, error)
	Status(ctx context.Context) (*syncer.Status, error)
}

// SyncResponse is the outcome shape for all sync operations.
type SyncResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	ItemsAffected int    `json:"items_affected"`
	Details       any    `json:"details,omitempty"`
}

// SyncStatusResponse reports local and remote sync state.
type SyncStatusResponse struct {
	Success               bool   `json:"success"`
	AdminBackendConnected bool   `json:"admin_backend_connected"`
	LocalOverridesCount   int64  `json:"local_overrides_count"`
	SyncStatus            string `json:"sync_status"`
}

type SyncController struct {
	coordinator SyncCoordinator
}

func NewSyncController(coordinator SyncCoordinator) *SyncController {
	return &SyncController{coordinator: coordinator}
}

func batchMessage(op string, batch *syncer.Batch) string {
	if batch.Success() {
		return fmt.Sprintf("%s completed: %d items", op, batch.ItemsReceived)
	}
	return fmt.Sprintf("%s completed with %d errors", op, len(batch.Errors))
}

// PushSync pushes all local overrides to the admin backend
// POST /api/sync/push
func (sc *SyncController) PushSync(c *gin.Context) {
	batch, err := sc.coordinator.Push(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusServiceUnavailable, err.Error())
		return
	}
	c.JSON(http.StatusOK, SyncResponse{
		Success:       batch.Success(),
		Message:       batchMessage("push", batch),
		ItemsAffected: batch.ItemsCreated + batch.ItemsUpdated,
		Details:       batch,
	})
}

// PullSync pulls all remote overrides into the local store
// POST /api/sync/pull
func (sc *SyncController) PullSync(c *gin.Context) {
	batch, err := sc.coordinator.Pull(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusServiceUnavailable, err.Error())
		return
	}
	c.JSON(http.StatusOK, SyncResponse{
		Success:       batch.Success(),
		Message:       batchMessage("pull", batch),
		ItemsAffected: batch.ItemsCreated + batch.ItemsUpdated,
		Details:       batch,
	})
}

// BidirectionalSync pulls then pushes, in that fixed order
// POST /api/sync/bidirectional
func (sc *SyncController) BidirectionalSync(c *gin.Context) {
	pull, push, err := sc.coordinator.Bidirectional(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusServiceUnavailable, err.Error())
		return
	}
	c.JSON(http.StatusOK, SyncResponse{
		Success:       pull.Success() && push.Success(),
		Message:       batchMessage("pull", pull) + "; " + batchMessage("push", push),
		ItemsAffected: pull.ItemsCreated + pull.ItemsUpdated + push.ItemsCreated + push.ItemsUpdated,
		Details:       gin.H{"pull": pull, "push": push},
	})
}

// SyncStatus reports local count and remote reachability
// GET /api/sync/status
func (sc *SyncController) SyncStatus(c *gin.Context) {
	status, err := sc.coordinator.Status(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "sync status")
		return
	}

	state := "disconnected"
	if status.AdminBackendConnected {
		state = "ready"
	}
	c.JSON(http.StatusOK, SyncStatusResponse{
		Success:               true,
		AdminBackendConnected: status.AdminBackendConnected,
		LocalOverridesCount:   status.LocalOverridesCount,
		SyncStatus:            state,
	})
}
