package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/credistore/credistore_backend/internal/apperrors"
	"github.com/credistore/credistore_backend/internal/core/domain"
	portsrepo "github.com/credistore/credistore_backend/internal/core/ports/repositories"
	portssvc "github.com/credistore/credistore_backend/internal/core/ports/services"
)

// backupService implements the backup/restore codec. The exported document is
// the same shape the store persists, so backup files and the durable file
// stay bit-compatible.
type backupService struct {
	BaseService
	store portsrepo.StateStore
}

// NewBackupService creates a new BackupService.
func NewBackupService(store portsrepo.StateStore) portssvc.BackupSvcFacade {
	return &backupService{store: store}
}

var _ portssvc.BackupSvcFacade = (*backupService)(nil)

// Export produces a document containing all collections verbatim, a version
// tag and an export timestamp. No partial export is supported.
func (s *backupService) Export(ctx context.Context) (*domain.BackupDocument, error) {
	doc := domain.BackupDocument{
		StoreState: s.store.Snapshot(ctx),
		Version:    domain.BackupVersion,
		Timestamp:  time.Now().UTC(),
	}
	s.LogInfo(ctx, "Backup exported",
		slog.Int("products", len(doc.Products)),
		slog.Int("users", len(doc.Users)),
		slog.Int("sales", len(doc.Sales)),
		slog.Int("debts", len(doc.Debts)))
	return &doc, nil
}

// Import validates the document structure and replaces the store wholesale.
// The products and users collections must be present; anything less fails
// with ErrInvalidFormat and leaves the store untouched. Restore is
// destructive and non-merging. Collections a minimal backup omits (working
// sets, closures) restore as empty.
func (s *backupService) Import(ctx context.Context, raw []byte) error {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidFormat, err)
	}
	if _, ok := keys["products"]; !ok {
		return fmt.Errorf("%w: missing products collection", apperrors.ErrInvalidFormat)
	}
	if _, ok := keys["users"]; !ok {
		return fmt.Errorf("%w: missing users collection", apperrors.ErrInvalidFormat)
	}

	var doc domain.BackupDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidFormat, err)
	}

	next := doc.StoreState
	ensureCollections(&next)

	err := s.store.Update(ctx, func(state *domain.StoreState) error {
		*state = next
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to restore backup: %w", err)
	}

	s.LogInfo(ctx, "Backup imported",
		slog.String("version", doc.Version),
		slog.Int("products", len(next.Products)),
		slog.Int("users", len(next.Users)))
	return nil
}

// ClearAll resets every collection to empty. Irreversible within the store;
// an external backup is the only recovery path.
func (s *backupService) ClearAll(ctx context.Context) error {
	err := s.store.Update(ctx, func(state *domain.StoreState) error {
		*state = domain.NewStoreState()
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to clear store: %w", err)
	}
	s.LogWarn(ctx, "All store data cleared")
	return nil
}

func ensureCollections(state *domain.StoreState) {
	if state.Products == nil {
		state.Products = []domain.Product{}
	}
	if state.Users == nil {
		state.Users = []domain.Customer{}
	}
	if state.Sales == nil {
		state.Sales = []domain.Sale{}
	}
	if state.Debts == nil {
		state.Debts = []domain.Debt{}
	}
	if state.CurrentDaySales == nil {
		state.CurrentDaySales = []domain.Sale{}
	}
	if state.CurrentDayDebts == nil {
		state.CurrentDayDebts = []domain.Debt{}
	}
	if state.Closures == nil {
		state.Closures = []domain.CashClosure{}
	}
}
