package services

import (
	"context"

	"github.com/credistore/credistore_backend/internal/core/domain"
)

// DebtSvcFacade exposes the debt ledger. UpdateDebtStatus performs no
// transition validation; any enumerated status may be set from any status.
type DebtSvcFacade interface {
	ListDebts(ctx context.Context, status *domain.DebtStatus) ([]domain.Debt, error)
	GetDebtByID(ctx context.Context, debtUUID string) (*domain.Debt, error)
	UpdateDebtStatus(ctx context.Context, debtUUID string, status domain.DebtStatus) (*domain.Debt, error)
}
