package services

import (
	"context"

	"github.com/credistore/credistore_backend/internal/core/domain"
	"github.com/credistore/credistore_backend/internal/dto"
)

// CheckoutSvcFacade exposes the compound transaction operations. Each call is
// applied as one atomic update to the entity store: either every line resolves
// and the whole operation lands, or nothing changes (wholesale-abort policy).
type CheckoutSvcFacade interface {
	ProcessSale(ctx context.Context, req dto.ProcessSaleRequest) (*domain.Sale, error)
	ProcessDebt(ctx context.Context, req dto.ProcessDebtRequest) (*domain.Debt, error)
	// CloseCashRegister archives the current working sets into a new closure
	// and clears them; apperrors.ErrEmptyClosure when there is nothing open.
	CloseCashRegister(ctx context.Context) (*domain.CashClosure, error)
	CurrentDay(ctx context.Context) ([]domain.Sale, []domain.Debt, error)
	ListClosures(ctx context.Context) ([]domain.CashClosure, error)
}
