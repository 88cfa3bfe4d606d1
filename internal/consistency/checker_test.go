package consistency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/hkawai/cardfeature/internal/entities"
)

type fakeOverrides struct {
	records []entities.FeatureOverride
}

func (f *fakeOverrides) List() ([]entities.FeatureOverride, error) {
	return f.records, nil
}

type fakeCards struct {
	cards map[string]*entities.Card
}

func (f *fakeCards) Get(key string) (*entities.Card, error) {
	card, ok := f.cards[key]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return card, nil
}

func TestCheck(t *testing.T) {
	overrides := &fakeOverrides{records: []entities.FeatureOverride{
		{Key: "agreeing", FixedBits1: 32, FixedBits2: 0, FixedBurstBits: 2},
		{Key: "drifted", FixedBits1: 96, FixedBits2: 4, FixedBurstBits: 0},
		{Key: "unanalyzed", FixedBits1: 1},
	}}
	cards := &fakeCards{cards: map[string]*entities.Card{
		"agreeing": {Key: "agreeing", Bits1: 32, Bits2: 0, BurstBits: 2},
		"drifted":  {Key: "drifted", Bits1: 32, Bits2: 4, BurstBits: 0},
	}}

	checker := NewChecker(overrides, cards)
	reports, err := checker.Check()
	require.NoError(t, err)

	t.Run("keys without a stored analysis are skipped", func(t *testing.T) {
		require.Len(t, reports, 2)
	})

	t.Run("matching bits are consistent", func(t *testing.T) {
		assert.Equal(t, "agreeing", reports[0].Key)
		assert.True(t, reports[0].IsConsistent)
	})

	t.Run("any differing word is inconsistent", func(t *testing.T) {
		assert.Equal(t, "drifted", reports[1].Key)
		assert.False(t, reports[1].IsConsistent)
		assert.Equal(t, int64(32), reports[1].RuleBits1)
		assert.Equal(t, int64(96), reports[1].OverrideBits1)
	})
}

func TestCheckBurstWordOnlyDrift(t *testing.T) {
	checker := NewChecker(
		&fakeOverrides{records: []entities.FeatureOverride{
			{Key: "k", FixedBits1: 1, FixedBurstBits: 4},
		}},
		&fakeCards{cards: map[string]*entities.Card{
			"k": {Key: "k", Bits1: 1, BurstBits: 8},
		}},
	)
	reports, err := checker.Check()
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.False(t, reports[0].IsConsistent)
}

func TestServedBits(t *testing.T) {
	card := &entities.Card{Bits1: 1, Bits2: 2, BurstBits: 3}

	t.Run("override wins when present", func(t *testing.T) {
		override := &entities.FeatureOverride{FixedBits1: 10, FixedBits2: 20, FixedBurstBits: 30}
		b1, b2, bb := ServedBits(card, override)
		assert.Equal(t, int64(10), b1)
		assert.Equal(t, int64(20), b2)
		assert.Equal(t, int64(30), bb)
	})

	t.Run("rule output is the default without an override", func(t *testing.T) {
		b1, b2, bb := ServedBits(card, nil)
		assert.Equal(t, int64(1), b1)
		assert.Equal(t, int64(2), b2)
		assert.Equal(t, int64(3), bb)
	})
}
