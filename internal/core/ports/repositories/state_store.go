package repositories

import (
	"context"

	"github.com/credistore/credistore_backend/internal/core/domain"
)

// StateStore is the port over the entity store. Every business mutation is
// expressed as a single Update so no partially-applied state is ever visible
// to readers, even on a concurrent runtime.
type StateStore interface {
	// Snapshot returns a deep copy of the current state for read-only use.
	Snapshot(ctx context.Context) domain.StoreState

	// Update applies mutate to a working copy of the state and swaps it in
	// atomically. If mutate returns an error nothing is applied. The durable
	// write-through happens inside the same critical section; its failure is
	// surfaced via LastPersistError, not through Update's return value.
	Update(ctx context.Context, mutate func(state *domain.StoreState) error) error

	// LastPersistError reports the most recent write-through failure, or nil.
	// It resets on the next successful persist.
	LastPersistError() error
}
