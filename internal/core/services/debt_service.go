package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/credistore/credistore_backend/internal/apperrors"
	"github.com/credistore/credistore_backend/internal/core/domain"
	portsrepo "github.com/credistore/credistore_backend/internal/core/ports/repositories"
	portssvc "github.com/credistore/credistore_backend/internal/core/ports/services"
)

// debtService manages the debt ledger.
type debtService struct {
	BaseService
	store portsrepo.StateStore
}

// NewDebtService creates a new DebtService.
func NewDebtService(store portsrepo.StateStore) portssvc.DebtSvcFacade {
	return &debtService{store: store}
}

var _ portssvc.DebtSvcFacade = (*debtService)(nil)

func (s *debtService) ListDebts(ctx context.Context, status *domain.DebtStatus) ([]domain.Debt, error) {
	state := s.store.Snapshot(ctx)
	if status == nil {
		return state.Debts, nil
	}
	filtered := []domain.Debt{}
	for _, d := range state.Debts {
		if d.Status == *status {
			filtered = append(filtered, d)
		}
	}
	return filtered, nil
}

func (s *debtService) GetDebtByID(ctx context.Context, debtUUID string) (*domain.Debt, error) {
	state := s.store.Snapshot(ctx)
	d := state.FindDebt(debtUUID)
	if d == nil {
		return nil, fmt.Errorf("%w: debt %s", apperrors.ErrNotFound, debtUUID)
	}
	return d, nil
}

// UpdateDebtStatus sets the status and refreshes the last-updated timestamp
// on the matching debt. The working-set copy is updated too, so a closure
// taken afterwards archives the debt as it stands. No transition validity is
// checked; any enumerated status may be set from any status.
func (s *debtService) UpdateDebtStatus(ctx context.Context, debtUUID string, status domain.DebtStatus) (*domain.Debt, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown debt status %q", apperrors.ErrValidation, status)
	}

	var updated domain.Debt
	err := s.store.Update(ctx, func(state *domain.StoreState) error {
		d := state.FindDebt(debtUUID)
		if d == nil {
			return fmt.Errorf("%w: debt %s", apperrors.ErrNotFound, debtUUID)
		}
		d.Status = status
		d.UpdatedAt = time.Now().UTC()
		for i := range state.CurrentDayDebts {
			if state.CurrentDayDebts[i].UUID == debtUUID {
				state.CurrentDayDebts[i].Status = d.Status
				state.CurrentDayDebts[i].UpdatedAt = d.UpdatedAt
			}
		}
		updated = *d
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Debt status updated",
		slog.String("debt_id", debtUUID),
		slog.String("status", string(status)))
	return &updated, nil
}
