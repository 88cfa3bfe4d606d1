package entities

import "time"

// FeatureOverride is a human-entered correction to the rule-derived
// feature bits for one card family. Keyed by the family identifier
// rather than a surrogate id: multiple printings share one rules text
// and must share one correction. One record per key, upsert semantics.
type FeatureOverride struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Key            string    `gorm:"uniqueIndex;size:256" json:"key"`
	FixedBits1     int64     `json:"fixed_bits1"`
	FixedBits2     int64     `json:"fixed_bits2"`
	FixedBurstBits int64     `json:"fixed_burst_bits"`
	Note           *string   `gorm:"size:1024" json:"note,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
