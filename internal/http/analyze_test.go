package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hkawai/cardfeature/internal/analyzer"
	"github.com/hkawai/cardfeature/internal/database"
	"github.com/hkawai/cardfeature/internal/database/cards"
	"github.com/hkawai/cardfeature/internal/database/overrides"
	"github.com/hkawai/cardfeature/internal/entities"
)

func setupAnalyzeTest(t *testing.T) (*gin.Engine, *overrides.Repository, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_analyze_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	table, err := analyzer.DefaultPatternTable()
	require.NoError(t, err)

	overridesRepo := overrides.NewRepository(db.DB)
	cardsRepo := cards.NewRepository(db.DB)
	controller := NewAnalyzeController(analyzer.New(table), cardsRepo, overridesRepo, nil)

	router := gin.New()
	router.POST("/api/analyze", controller.Analyze)
	router.POST("/api/cards/analyze", controller.AnalyzeCard)
	router.GET("/api/cards/:key", controller.GetCard)
	router.POST("/api/admin/cards/reanalyze", controller.ReanalyzeAll)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return router, overridesRepo, cleanup
}

func TestAnalyzeController_Analyze(t *testing.T) {
	t.Run("detects features without persisting", func(t *testing.T) {
		router, _, cleanup := setupAnalyzeTest(t)
		defer cleanup()

		w := postJSON(t, router, "POST", "/api/analyze", gin.H{
			"text":       "カードを１枚引く。",
			"burst_text": "カードを1枚引く",
		})

		require.Equal(t, http.StatusOK, w.Code)

		var resp AnalysisResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp.Features, "ドロー")
		assert.Contains(t, resp.BurstFeatures, "ドロー")
		assert.NotZero(t, resp.Bits1)
		assert.NotZero(t, resp.BurstBits)
	})

	t.Run("rejects missing text", func(t *testing.T) {
		router, _, cleanup := setupAnalyzeTest(t)
		defer cleanup()

		w := postJSON(t, router, "POST", "/api/analyze", gin.H{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAnalyzeController_Cards(t *testing.T) {
	t.Run("persists analysis and serves it back", func(t *testing.T) {
		router, _, cleanup := setupAnalyzeTest(t)
		defer cleanup()

		w := postJSON(t, router, "POST", "/api/cards/analyze", gin.H{
			"key":  "card-001",
			"text": "対戦相手のシグニ1体をバニッシュする。",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		w = httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/cards/card-001", nil)
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var resp CardResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp.Features, "バニッシュ")
		assert.False(t, resp.OverrideApplied)
	})

	t.Run("override takes precedence over rule bits", func(t *testing.T) {
		router, overridesRepo, cleanup := setupAnalyzeTest(t)
		defer cleanup()

		w := postJSON(t, router, "POST", "/api/cards/analyze", gin.H{
			"key":  "card-001",
			"text": "対戦相手のシグニ1体をバニッシュする。",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		// Draw is word1 bit5; the override fully replaces rule bits
		require.NoError(t, overridesRepo.Upsert(&entities.FeatureOverride{
			Key:        "card-001",
			FixedBits1: 1 << 5,
		}))

		w2 := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/cards/card-001", nil)
		router.ServeHTTP(w2, req)
		require.Equal(t, http.StatusOK, w2.Code)

		var resp CardResponse
		require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &resp))
		assert.True(t, resp.OverrideApplied)
		assert.Equal(t, []string{"ドロー"}, resp.Features)
		assert.NotContains(t, resp.Features, "バニッシュ")
	})

	t.Run("missing card returns 404", func(t *testing.T) {
		router, _, cleanup := setupAnalyzeTest(t)
		defer cleanup()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/cards/nothing", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAnalyzeController_ReanalyzeWithoutTaskQueue(t *testing.T) {
	router, _, cleanup := setupAnalyzeTest(t)
	defer cleanup()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/admin/cards/reanalyze", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
