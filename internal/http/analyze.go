package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hkawai/cardfeature/internal/analyzer"
	"github.com/hkawai/cardfeature/internal/consistency"
	"github.com/hkawai/cardfeature/internal/entities"
	"github.com/hkawai/cardfeature/internal/feature"
	"github.com/hkawai/cardfeature/internal/tasks"
)

// CardStore defines database operations for stored card analyses.
type CardStore interface {
	Upsert(card *entities.Card) error
	Get(key string) (*entities.Card, error)
}

// AnalysisResponse is the outcome of analyzing one text.
type AnalysisResponse struct {
	ProcessedText string   `json:"processed_text"`
	Features      []string `json:"features"`
	BurstFeatures []string `json:"burst_features"`
	Bits1         int64    `json:"bits1"`
	Bits2         int64    `json:"bits2"`
	BurstBits     int64    `json:"burst_bits"`
}

// CardResponse is a stored card with the bits actually served for it.
// When an override exists its bits substitute for the rule-derived
// ones.
type CardResponse struct {
	Key             string   `json:"key"`
	ProcessedText   string   `json:"processed_text"`
	Features        []string `json:"features"`
	BurstFeatures   []string `json:"burst_features"`
	Bits1           int64    `json:"bits1"`
	Bits2           int64    `json:"bits2"`
	BurstBits       int64    `json:"burst_bits"`
	OverrideApplied bool     `json:"override_applied"`
}

type AnalyzeController struct {
	analyzer   *analyzer.Analyzer
	cards      CardStore
	overrides  OverrideStore
	taskClient *tasks.Client
}

func NewAnalyzeController(a *analyzer.Analyzer, cards CardStore, overrides OverrideStore, taskClient *tasks.Client) *AnalyzeController {
	return &AnalyzeController{analyzer: a, cards: cards, overrides: overrides, taskClient: taskClient}
}

func (ac *AnalyzeController) analysisOf(text, burstText string) AnalysisResponse {
	res := ac.analyzer.Analyze(text)
	burst := ac.analyzer.AnalyzeBurst(burstText)
	bits1, bits2 := feature.EncodeFeatures(res.Tags)
	return AnalysisResponse{
		ProcessedText: res.ProcessedText,
		Features:      feature.Names(res.Tags),
		BurstFeatures: feature.BurstNames(burst.Tags),
		Bits1:         bits1,
		Bits2:         bits2,
		BurstBits:     feature.EncodeBurst(burst.Tags),
	}
}

// Analyze runs the rule engine over a text without persisting anything
// POST /api/analyze
func (ac *AnalyzeController) Analyze(c *gin.Context) {
	var req struct {
		Text      string `json:"text" binding:"required"`
		BurstText string `json:"burst_text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "text is required")
		return
	}

	c.JSON(http.StatusOK, ac.analysisOf(req.Text, req.BurstText))
}

// AnalyzeCard analyzes a card's rules text and persists the result
// POST /api/cards/analyze
func (ac *AnalyzeController) AnalyzeCard(c *gin.Context) {
	var req struct {
		Key       string `json:"key" binding:"required"`
		Text      string `json:"text"`
		BurstText string `json:"burst_text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "key is required")
		return
	}

	analysis := ac.analysisOf(req.Text, req.BurstText)
	card := &entities.Card{
		Key:           req.Key,
		RawText:       req.Text,
		BurstText:     req.BurstText,
		ProcessedText: analysis.ProcessedText,
		Bits1:         analysis.Bits1,
		Bits2:         analysis.Bits2,
		BurstBits:     analysis.BurstBits,
	}
	if err := ac.cards.Upsert(card); err != nil {
		respondInternalError(c, err, "save card analysis")
		return
	}
	respondCreated(c, ac.cardResponse(card))
}

// GetCard returns a stored card with override precedence applied
// GET /api/cards/:key
func (ac *AnalyzeController) GetCard(c *gin.Context) {
	card, err := ac.cards.Get(c.Param("key"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "card")
			return
		}
		respondInternalError(c, err, "get card")
		return
	}
	c.JSON(http.StatusOK, ac.cardResponse(card))
}

func (ac *AnalyzeController) cardResponse(card *entities.Card) CardResponse {
	var override *entities.FeatureOverride
	if record, err := ac.overrides.Get(card.Key); err == nil {
		override = record
	}

	bits1, bits2, burstBits := consistency.ServedBits(card, override)
	return CardResponse{
		Key:             card.Key,
		ProcessedText:   card.ProcessedText,
		Features:        feature.Names(feature.DecodeFeatures(bits1, bits2)),
		BurstFeatures:   feature.BurstNames(feature.DecodeBurst(burstBits)),
		Bits1:           bits1,
		Bits2:           bits2,
		BurstBits:       burstBits,
		OverrideApplied: override != nil,
	}
}

// ReanalyzeAll enqueues a background re-analysis of every stored card.
// Requires the task queue to be enabled.
// POST /api/admin/cards/reanalyze
func (ac *AnalyzeController) ReanalyzeAll(c *gin.Context) {
	if ac.taskClient == nil {
		respondError(c, http.StatusServiceUnavailable, "task queue is not enabled")
		return
	}

	task := tasks.ReanalyzeAllTask{}
	ids, err := ac.taskClient.Add(task).Save()
	if err != nil {
		respondInternalError(c, err, "enqueue reanalyze task")
		return
	}
	log.Printf("Enqueued ReanalyzeAllTask with ID: %s", ids[0])
	respondAccepted(c, "reanalysis task started", gin.H{"task_id": ids[0]})
}
