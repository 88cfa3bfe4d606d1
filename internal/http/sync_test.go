package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hkawai/cardfeature/internal/syncer"
)

type fakeCoordinator struct {
	pushBatch *syncer.Batch
	pullBatch *syncer.Batch
	status    *syncer.Status
	err       error
}

func (f *fakeCoordinator) Push(ctx context.Context) (*syncer.Batch, error) {
	return f.pushBatch, f.err
}

func (f *fakeCoordinator) Pull(ctx context.Context) (*syncer.Batch, error) {
	return f.pullBatch, f.err
}

func (f *fakeCoordinator) Bidirectional(ctx context.Context) (*syncer.Batch, *syncer.Batch, error) {
	return f.pullBatch, f.pushBatch, f.err
}

func (f *fakeCoordinator) Status(ctx context.Context) (*syncer.Status, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.status, nil
}

func setupSyncTest(coordinator SyncCoordinator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewSyncController(coordinator)

	router := gin.New()
	router.POST("/api/sync/push", controller.PushSync)
	router.POST("/api/sync/pull", controller.PullSync)
	router.POST("/api/sync/bidirectional", controller.BidirectionalSync)
	router.GET("/api/sync/status", controller.SyncStatus)
	return router
}

func TestSyncController_Push(t *testing.T) {
	t.Run("reports per-item counts", func(t *testing.T) {
		router := setupSyncTest(&fakeCoordinator{
			pushBatch: &syncer.Batch{ItemsReceived: 3, ItemsCreated: 2, ItemsUpdated: 1},
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/sync/push", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp SyncResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, 3, resp.ItemsAffected)
	})

	t.Run("partial failure is 200 with success false", func(t *testing.T) {
		router := setupSyncTest(&fakeCoordinator{
			pushBatch: &syncer.Batch{
				ItemsReceived: 3,
				ItemsCreated:  2,
				Errors:        []string{"card-03: rejected"},
			},
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/sync/push", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp SyncResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Contains(t, resp.Message, "1 errors")
	})

	t.Run("operation failure is 503", func(t *testing.T) {
		router := setupSyncTest(&fakeCoordinator{err: errors.New("admin backend unreachable")})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/sync/push", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestSyncController_Bidirectional(t *testing.T) {
	router := setupSyncTest(&fakeCoordinator{
		pullBatch: &syncer.Batch{ItemsReceived: 2, ItemsUpdated: 2},
		pushBatch: &syncer.Batch{ItemsReceived: 5, ItemsCreated: 5},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/sync/bidirectional", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp SyncResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 7, resp.ItemsAffected)
	assert.Contains(t, resp.Message, "pull")
	assert.Contains(t, resp.Message, "push")
}

func TestSyncController_Status(t *testing.T) {
	t.Run("connected backend reports ready", func(t *testing.T) {
		router := setupSyncTest(&fakeCoordinator{
			status: &syncer.Status{AdminBackendConnected: true, LocalOverridesCount: 12},
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/sync/status", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp SyncStatusResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.AdminBackendConnected)
		assert.Equal(t, int64(12), resp.LocalOverridesCount)
		assert.Equal(t, "ready", resp.SyncStatus)
	})

	t.Run("unreachable backend reports disconnected", func(t *testing.T) {
		router := setupSyncTest(&fakeCoordinator{
			status: &syncer.Status{AdminBackendConnected: false, LocalOverridesCount: 12},
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/sync/status", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp SyncStatusResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "disconnected", resp.SyncStatus)
	})
}
