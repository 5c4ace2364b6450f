// Package jsonfile implements the entity store: a mutex-guarded in-memory
// state persisted as one JSON document. The persisted layout is identical to
// the backup/export format, so the two stay bit-compatible.
package jsonfile

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/credistore/credistore_backend/internal/apperrors"
	"github.com/credistore/credistore_backend/internal/core/domain"
	portsrepo "github.com/credistore/credistore_backend/internal/core/ports/repositories"
)

// Store is the single source of truth for products, customers, sales, debts,
// the cash-register working sets and the closure history. All mutations go
// through Update, which applies the whole change and the durable write-through
// under one critical section.
type Store struct {
	mu        sync.RWMutex
	state     domain.StoreState
	persister Persister
	logger    *slog.Logger

	persistErrMu sync.Mutex
	persistErr   error
}

var _ portsrepo.StateStore = (*Store)(nil)

// New creates a store over the given persister, seeded with prior state if
// the persister has any. A nil logger falls back to slog.Default.
func New(persister Persister, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		state:     domain.NewStoreState(),
		persister: persister,
		logger:    logger,
	}
	if persister != nil {
		doc, found, err := persister.Load()
		if err != nil {
			return nil, err
		}
		if found {
			s.state = doc.StoreState.Clone()
			logger.Info("Store state restored from durable storage",
				slog.String("version", doc.Version),
				slog.Int("products", len(s.state.Products)),
				slog.Int("users", len(s.state.Users)))
		}
	}
	return s, nil
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot(_ context.Context) domain.StoreState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Update applies mutate to a working copy and swaps it in atomically. When
// mutate returns an error the state is untouched, which gives every compound
// operation wholesale-abort semantics for free. The write-through runs inside
// the same critical section; a failed write is logged and recorded but does
// not fail the mutation, because the in-memory state stays authoritative.
func (s *Store) Update(_ context.Context, mutate func(state *domain.StoreState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	if err := mutate(&next); err != nil {
		return err
	}
	s.state = next
	s.persistLocked()
	return nil
}

// LastPersistError reports the most recent write-through failure, or nil.
func (s *Store) LastPersistError() error {
	s.persistErrMu.Lock()
	defer s.persistErrMu.Unlock()
	return s.persistErr
}

func (s *Store) persistLocked() {
	if s.persister == nil {
		return
	}
	doc := domain.BackupDocument{
		StoreState: s.state,
		Version:    domain.BackupVersion,
		Timestamp:  time.Now().UTC(),
	}
	err := s.persister.Persist(doc)
	if err != nil {
		err = fmt.Errorf("%w: %w", apperrors.ErrPersistence, err)
	}

	s.persistErrMu.Lock()
	s.persistErr = err
	s.persistErrMu.Unlock()

	if err != nil {
		s.logger.Warn("Durable write-through failed, in-memory state remains authoritative",
			slog.String("error", err.Error()))
	}
}
