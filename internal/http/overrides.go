package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hkawai/cardfeature/internal/entities"
	"github.com/hkawai/cardfeature/internal/feature"
)

// OverrideStore defines database operations for override management.
type OverrideStore interface {
	Upsert(record *entities.FeatureOverride) error
	Get(key string) (*entities.FeatureOverride, error)
	List() ([]entities.FeatureOverride, error)
	Delete(key string) (bool, error)
}

// OverrideRequest is the write shape: feature names, not raw bits.
// Names are resolved against the static tag tables at this boundary,
// so an unknown name is a client error rather than a silent drop.
type OverrideRequest struct {
	Key           string   `json:"key"`
	Features      []string `json:"features"`
	BurstFeatures []string `json:"burst_features"`
	Note          *string  `json:"note"`
}

// OverrideResponse is the public-facing record shape.
type OverrideResponse struct {
	Key           string    `json:"key"`
	Features      []string  `json:"features"`
	BurstFeatures []string  `json:"burst_features"`
	Note          *string   `json:"note,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type OverridesController struct {
	store OverrideStore
}

func NewOverridesController(store OverrideStore) *OverridesController {
	return &OverridesController{store: store}
}

func toOverrideResponse(record *entities.FeatureOverride) OverrideResponse {
	return OverrideResponse{
		Key:           record.Key,
		Features:      feature.Names(feature.DecodeFeatures(record.FixedBits1, record.FixedBits2)),
		BurstFeatures: feature.BurstNames(feature.DecodeBurst(record.FixedBurstBits)),
		Note:          record.Note,
		CreatedAt:     record.CreatedAt,
		UpdatedAt:     record.UpdatedAt,
	}
}

func (oc *OverridesController) recordFromRequest(c *gin.Context, req OverrideRequest) (*entities.FeatureOverride, bool) {
	tags, err := feature.ResolveNames(req.Features)
	if err != nil {
		respondBadRequest(c, err.Error())
		return nil, false
	}
	burstTags, err := feature.ResolveBurstNames(req.BurstFeatures)
	if err != nil {
		respondBadRequest(c, err.Error())
		return nil, false
	}

	bits1, bits2 := feature.EncodeFeatures(tags)
	return &entities.FeatureOverride{
		Key:            req.Key,
		FixedBits1:     bits1,
		FixedBits2:     bits2,
		FixedBurstBits: feature.EncodeBurst(burstTags),
		Note:           req.Note,
	}, true
}

// ListOverrides returns all override records
// GET /api/overrides
func (oc *OverridesController) ListOverrides(c *gin.Context) {
	records, err := oc.store.List()
	if err != nil {
		respondInternalError(c, err, "list overrides")
		return
	}

	responses := make([]OverrideResponse, len(records))
	for i := range records {
		responses[i] = toOverrideResponse(&records[i])
	}
	c.JSON(http.StatusOK, responses)
}

// GetOverride returns a single override record
// GET /api/overrides/:key
func (oc *OverridesController) GetOverride(c *gin.Context) {
	record, err := oc.store.Get(c.Param("key"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "override")
			return
		}
		respondInternalError(c, err, "get override")
		return
	}
	c.JSON(http.StatusOK, toOverrideResponse(record))
}

// CreateOverride upserts an override record
// POST /api/overrides
func (oc *OverridesController) CreateOverride(c *gin.Context) {
	var req OverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	if req.Key == "" {
		respondBadRequest(c, "key is required")
		return
	}

	record, ok := oc.recordFromRequest(c, req)
	if !ok {
		return
	}
	if err := oc.store.Upsert(record); err != nil {
		respondInternalError(c, err, "upsert override")
		return
	}

	stored, err := oc.store.Get(record.Key)
	if err != nil {
		respondInternalError(c, err, "reload override")
		return
	}
	respondCreated(c, toOverrideResponse(stored))
}

// UpdateOverride replaces an existing override record
// PUT /api/overrides/:key
func (oc *OverridesController) UpdateOverride(c *gin.Context) {
	key := c.Param("key")
	if _, err := oc.store.Get(key); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "override")
			return
		}
		respondInternalError(c, err, "get override")
		return
	}

	var req OverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	req.Key = key

	record, ok := oc.recordFromRequest(c, req)
	if !ok {
		return
	}
	if err := oc.store.Upsert(record); err != nil {
		respondInternalError(c, err, "upsert override")
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteOverride removes an override record
// DELETE /api/overrides/:key
func (oc *OverridesController) DeleteOverride(c *gin.Context) {
	existed, err := oc.store.Delete(c.Param("key"))
	if err != nil {
		respondInternalError(c, err, "delete override")
		return
	}
	if !existed {
		respondNotFound(c, "override")
		return
	}
	c.Status(http.StatusNoContent)
}
