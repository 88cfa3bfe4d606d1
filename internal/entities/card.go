package entities

import "time"

// Card stores the rule-derived analysis of one card family's rules
// text. The encoded bits are the rule engine's output; when a
// FeatureOverride exists for the same key the override's bits are
// served instead.
type Card struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Key           string    `gorm:"uniqueIndex;size:256" json:"key"`
	RawText       string    `json:"raw_text"`
	BurstText     string    `json:"burst_text"`
	ProcessedText string    `json:"processed_text"`
	Bits1         int64     `json:"bits1"`
	Bits2         int64     `json:"bits2"`
	BurstBits     int64     `json:"burst_bits"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
