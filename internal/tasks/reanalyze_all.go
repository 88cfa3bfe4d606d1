package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/hkawai/cardfeature/internal/analyzer"
	"github.com/hkawai/cardfeature/internal/entities"
	"github.com/hkawai/cardfeature/internal/feature"
)

// CardStore is the slice of the cards repository the re-analysis task
// needs.
type CardStore interface {
	List() ([]entities.Card, error)
	Upsert(card *entities.Card) error
}

// ReanalyzeAllTask re-runs the rule engine over every stored card.
// Enqueued after the pattern catalog changes so stored bits catch up
// with the new rules.
type ReanalyzeAllTask struct{}

// Config returns the queue configuration for bulk re-analysis tasks.
func (t ReanalyzeAllTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "reanalyze_all_cards",
		MaxAttempts: 1,
		Backoff:     time.Minute,
		Timeout:     30 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// ReanalyzeAllProcessor creates a processor function for ReanalyzeAllTask.
// Cards are processed sequentially; a failing card is counted and
// skipped rather than aborting the run.
func ReanalyzeAllProcessor(a *analyzer.Analyzer, cards CardStore) backlite.QueueProcessor[ReanalyzeAllTask] {
	return func(ctx context.Context, task ReanalyzeAllTask) error {
		stored, err := cards.List()
		if err != nil {
			return fmt.Errorf("list cards: %w", err)
		}

		var updated, failed int
		for i := range stored {
			card := stored[i]
			res := a.Analyze(card.RawText)
			burst := a.AnalyzeBurst(card.BurstText)

			card.ProcessedText = res.ProcessedText
			card.Bits1, card.Bits2 = feature.EncodeFeatures(res.Tags)
			card.BurstBits = feature.EncodeBurst(burst.Tags)

			if err := cards.Upsert(&card); err != nil {
				log.Printf("[TASK ERROR] reanalyze %s: %v", card.Key, err)
				failed++
				continue
			}
			updated++
		}

		log.Printf("[TASK] Re-analysis complete: %d total, %d updated, %d failed",
			len(stored), updated, failed)
		return nil
	}
}

// NewReanalyzeAllQueue creates a backlite queue for bulk re-analysis tasks.
func NewReanalyzeAllQueue(a *analyzer.Analyzer, cards CardStore) backlite.Queue {
	return backlite.NewQueue(ReanalyzeAllProcessor(a, cards))
}
