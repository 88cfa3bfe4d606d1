// Package syncer reconciles the local override store with the remote
// authoritative one.
//
// There is no distributed transaction: convergence is best-effort,
// built from idempotent upserts plus a fixed pull-before-push ordering
// so remote corrections are absorbed before local state is republished.
package syncer

import (
	"context"
	"fmt"
	"log"

	"github.com/hkawai/cardfeature/internal/adminapi"
	"github.com/hkawai/cardfeature/internal/entities"
)

// RemoteClient is the admin backend surface the coordinator needs.
type RemoteClient interface {
	PushOverride(ctx context.Context, item adminapi.OverrideItem) (*adminapi.PushResult, error)
	PullOverrides(ctx context.Context) ([]adminapi.OverrideItem, error)
	Ping(ctx context.Context) error
}

// OverrideStore is the local persistence surface the coordinator needs.
type OverrideStore interface {
	List() ([]entities.FeatureOverride, error)
	Get(key string) (*entities.FeatureOverride, error)
	Upsert(record *entities.FeatureOverride) error
	Count() (int64, error)
}

// Batch is the outcome of one push or pull operation. A per-item
// failure lands in Errors and never aborts the sibling items.
type Batch struct {
	ItemsReceived int      `json:"items_received"`
	ItemsCreated  int      `json:"items_created"`
	ItemsUpdated  int      `json:"items_updated"`
	Errors        []string `json:"errors,omitempty"`
}

// Success reports whether every item in the batch went through.
func (b *Batch) Success() bool {
	return len(b.Errors) == 0
}

// Status is a non-mutating snapshot used for observability.
type Status struct {
	AdminBackendConnected bool  `json:"admin_backend_connected"`
	LocalOverridesCount   int64 `json:"local_overrides_count"`
}

// Coordinator drives the sync operations.
type Coordinator struct {
	store  OverrideStore
	remote RemoteClient
}

func NewCoordinator(store OverrideStore, remote RemoteClient) *Coordinator {
	return &Coordinator{store: store, remote: remote}
}

// Push transmits every local override to the remote store. Enumerating
// the local store is an operation-level failure; transmitting one item
// is not.
func (c *Coordinator) Push(ctx context.Context) (*Batch, error) {
	records, err := c.store.List()
	if err != nil {
		return nil, fmt.Errorf("list local overrides: %w", err)
	}

	batch := &Batch{ItemsReceived: len(records)}
	for _, record := range records {
		result, err := c.remote.PushOverride(ctx, toItem(record))
		if err != nil {
			batch.Errors = append(batch.Errors, fmt.Sprintf("%s: %v", record.Key, err))
			continue
		}
		if result.Created {
			batch.ItemsCreated++
		} else {
			batch.ItemsUpdated++
		}
	}
	log.Printf("Push completed: %d received, %d created, %d updated, %d errors",
		batch.ItemsReceived, batch.ItemsCreated, batch.ItemsUpdated, len(batch.Errors))
	return batch, nil
}

// Pull fetches every remote override and upserts it locally, keeping
// the newer side of each record by updated_at. A remote fetch failure
// leaves local state untouched.
func (c *Coordinator) Pull(ctx context.Context) (*Batch, error) {
	items, err := c.remote.PullOverrides(ctx)
	if err != nil {
		return nil, fmt.Errorf("pull remote overrides: %w", err)
	}

	batch := &Batch{ItemsReceived: len(items)}
	for _, item := range items {
		existing, err := c.store.Get(item.Key)
		if err == nil && !item.UpdatedAt.After(existing.UpdatedAt) {
			// Local copy is at least as new, leave it.
			continue
		}

		record := fromItem(item)
		if err := c.store.Upsert(record); err != nil {
			batch.Errors = append(batch.Errors, fmt.Sprintf("%s: %v", item.Key, err))
			continue
		}
		if existing == nil {
			batch.ItemsCreated++
		} else {
			batch.ItemsUpdated++
		}
	}
	log.Printf("Pull completed: %d received, %d created, %d updated, %d errors",
		batch.ItemsReceived, batch.ItemsCreated, batch.ItemsUpdated, len(batch.Errors))
	return batch, nil
}

// Bidirectional pulls, then pushes, in that fixed order. If the pull
// fails the push is not attempted and zero items are affected.
func (c *Coordinator) Bidirectional(ctx context.Context) (*Batch, *Batch, error) {
	pull, err := c.Pull(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("bidirectional sync aborted: %w", err)
	}
	push, err := c.Push(ctx)
	if err != nil {
		return pull, nil, err
	}
	return pull, push, nil
}

// Status reports local record count and remote reachability.
func (c *Coordinator) Status(ctx context.Context) (*Status, error) {
	count, err := c.store.Count()
	if err != nil {
		return nil, fmt.Errorf("count local overrides: %w", err)
	}
	status := &Status{LocalOverridesCount: count}
	if err := c.remote.Ping(ctx); err != nil {
		log.Printf("Admin backend not reachable: %v", err)
	} else {
		status.AdminBackendConnected = true
	}
	return status, nil
}

func toItem(record entities.FeatureOverride) adminapi.OverrideItem {
	return adminapi.OverrideItem{
		Key:            record.Key,
		FixedBits1:     record.FixedBits1,
		FixedBits2:     record.FixedBits2,
		FixedBurstBits: record.FixedBurstBits,
		Note:           record.Note,
		CreatedAt:      record.CreatedAt,
		UpdatedAt:      record.UpdatedAt,
	}
}

func fromItem(item adminapi.OverrideItem) *entities.FeatureOverride {
	return &entities.FeatureOverride{
		Key:            item.Key,
		FixedBits1:     item.FixedBits1,
		FixedBits2:     item.FixedBits2,
		FixedBurstBits: item.FixedBurstBits,
		Note:           item.Note,
		CreatedAt:      item.CreatedAt,
		UpdatedAt:      item.UpdatedAt,
	}
}
