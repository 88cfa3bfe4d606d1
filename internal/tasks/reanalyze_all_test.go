package tasks

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hkawai/cardfeature/internal/analyzer"
	"github.com/hkawai/cardfeature/internal/entities"
	"github.com/hkawai/cardfeature/internal/feature"
)

type fakeCardStore struct {
	cards      []entities.Card
	rejectKeys map[string]bool
	upserted   map[string]entities.Card
}

func (f *fakeCardStore) List() ([]entities.Card, error) {
	return f.cards, nil
}

func (f *fakeCardStore) Upsert(card *entities.Card) error {
	if f.rejectKeys[card.Key] {
		return errors.New("store rejected")
	}
	if f.upserted == nil {
		f.upserted = make(map[string]entities.Card)
	}
	f.upserted[card.Key] = *card
	return nil
}

func TestReanalyzeAllProcessor(t *testing.T) {
	table, err := analyzer.DefaultPatternTable()
	require.NoError(t, err)
	a := analyzer.New(table)

	store := &fakeCardStore{
		cards: []entities.Card{
			{Key: "card-01", RawText: "カードを1枚引く。"},
			{Key: "card-02", RawText: "対戦相手のシグニ1体をバニッシュする。"},
		},
	}

	process := ReanalyzeAllProcessor(a, store)
	require.NoError(t, process(context.Background(), ReanalyzeAllTask{}))

	require.Len(t, store.upserted, 2)
	drawn := store.upserted["card-01"]
	tags := feature.DecodeFeatures(drawn.Bits1, drawn.Bits2)
	assert.True(t, tags.Has(feature.Draw))
}

func TestReanalyzeAllProcessorSkipsFailingCard(t *testing.T) {
	table, err := analyzer.DefaultPatternTable()
	require.NoError(t, err)
	a := analyzer.New(table)

	store := &fakeCardStore{
		cards: []entities.Card{
			{Key: "card-01", RawText: "カードを1枚引く。"},
			{Key: "card-02", RawText: "カードを2枚引く。"},
		},
		rejectKeys: map[string]bool{"card-01": true},
	}

	process := ReanalyzeAllProcessor(a, store)
	require.NoError(t, process(context.Background(), ReanalyzeAllTask{}))
	assert.Len(t, store.upserted, 1)
}
