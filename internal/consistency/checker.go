// Package consistency compares rule-derived feature bits against the
// curated overrides for the same card families.
//
// The comparison is purely diagnostic: overrides always win when
// features are served, the reports only surface where the rule engine
// has drifted from curated truth so a human can fix the rule or accept
// the override.
package consistency

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/hkawai/cardfeature/internal/entities"
)

// OverrideSource lists the curated override records.
type OverrideSource interface {
	List() ([]entities.FeatureOverride, error)
}

// CardSource looks up the stored rule-derived analysis for a key.
type CardSource interface {
	Get(key string) (*entities.Card, error)
}

// Report is the diagnostic comparison for one key. Never persisted,
// recomputed on demand.
type Report struct {
	Key               string `json:"key"`
	RuleBits1         int64  `json:"rule_bits1"`
	RuleBits2         int64  `json:"rule_bits2"`
	RuleBurstBits     int64  `json:"rule_burst_bits"`
	OverrideBits1     int64  `json:"override_bits1"`
	OverrideBits2     int64  `json:"override_bits2"`
	OverrideBurstBits int64  `json:"override_burst_bits"`
	IsConsistent      bool   `json:"is_consistent"`
}

// Checker pairs override records with stored card analyses.
type Checker struct {
	overrides OverrideSource
	cards     CardSource
}

func NewChecker(overrides OverrideSource, cards CardSource) *Checker {
	return &Checker{overrides: overrides, cards: cards}
}

// Check emits one report per override key that also has a stored
// analysis. Keys without one are skipped; neither side is mutated.
func (c *Checker) Check() ([]Report, error) {
	records, err := c.overrides.List()
	if err != nil {
		return nil, fmt.Errorf("list overrides: %w", err)
	}

	reports := make([]Report, 0, len(records))
	for _, o := range records {
		card, err := c.cards.Get(o.Key)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, fmt.Errorf("load card %q: %w", o.Key, err)
		}

		reports = append(reports, Report{
			Key:               o.Key,
			RuleBits1:         card.Bits1,
			RuleBits2:         card.Bits2,
			RuleBurstBits:     card.BurstBits,
			OverrideBits1:     o.FixedBits1,
			OverrideBits2:     o.FixedBits2,
			OverrideBurstBits: o.FixedBurstBits,
			IsConsistent: card.Bits1 == o.FixedBits1 &&
				card.Bits2 == o.FixedBits2 &&
				card.BurstBits == o.FixedBurstBits,
		})
	}
	return reports, nil
}

// ServedBits applies the precedence rule for downstream consumers: an
// override's bits are authoritative, the rule engine's output is the
// default only in its absence.
func ServedBits(card *entities.Card, override *entities.FeatureOverride) (int64, int64, int64) {
	if override != nil {
		return override.FixedBits1, override.FixedBits2, override.FixedBurstBits
	}
	return card.Bits1, card.Bits2, card.BurstBits
}
