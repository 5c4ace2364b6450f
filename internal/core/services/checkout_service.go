package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/credistore/credistore_backend/internal/apperrors"
	"github.com/credistore/credistore_backend/internal/core/domain"
	portsrepo "github.com/credistore/credistore_backend/internal/core/ports/repositories"
	portssvc "github.com/credistore/credistore_backend/internal/core/ports/services"
	"github.com/credistore/credistore_backend/internal/dto"
)

// checkoutService implements the compound transaction operations. It is the
// only place where products, sales and debts are mutated together; every
// operation resolves all of its references up front and applies as a single
// store update, so a failed resolution leaves no partial state behind.
type checkoutService struct {
	BaseService
	store              portsrepo.StateStore
	allowNegativeStock bool
}

// CheckoutServiceOption is a functional option for configuring the checkout service.
type CheckoutServiceOption func(*checkoutService)

// WithNegativeStockPolicy chooses between the legacy "allow oversell" policy
// (stock may go negative) and rejecting with ErrInsufficientStock.
func WithNegativeStockPolicy(allow bool) CheckoutServiceOption {
	return func(s *checkoutService) {
		s.allowNegativeStock = allow
	}
}

// NewCheckoutService creates a new CheckoutService. Negative stock is allowed
// by default, matching the legacy behavior.
func NewCheckoutService(store portsrepo.StateStore, options ...CheckoutServiceOption) portssvc.CheckoutSvcFacade {
	svc := &checkoutService{
		store:              store,
		allowNegativeStock: true,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CheckoutSvcFacade = (*checkoutService)(nil)

// resolveLines resolves every requested line against the catalog inside state,
// builds the denormalized line items, accumulates the total and decrements
// stock. Any unresolved product aborts the whole resolution.
func (s *checkoutService) resolveLines(state *domain.StoreState, lines []dto.SaleLineRequest) ([]domain.SaleItem, decimal.Decimal, error) {
	items := make([]domain.SaleItem, 0, len(lines))
	total := decimal.Zero

	for _, line := range lines {
		product := state.FindProduct(line.ProductUUID)
		if product == nil {
			return nil, decimal.Zero, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, line.ProductUUID)
		}
		if !s.allowNegativeStock && product.Stock < line.Quantity {
			return nil, decimal.Zero, fmt.Errorf("%w: product %s has %d in stock, %d requested",
				apperrors.ErrInsufficientStock, product.UUID, product.Stock, line.Quantity)
		}

		item := domain.SaleItem{
			ProductUUID: product.UUID,
			Name:        product.Name,
			Quantity:    line.Quantity,
			Price:       product.Price,
		}
		items = append(items, item)
		total = total.Add(item.Subtotal())
		product.Stock -= line.Quantity
	}

	return items, total, nil
}

// ProcessSale records a cash sale: denormalized line items at current prices,
// total computed once, stock decremented per line, the sale appended to the
// history and to the current-day working set.
func (s *checkoutService) ProcessSale(ctx context.Context, req dto.ProcessSaleRequest) (*domain.Sale, error) {
	var sale domain.Sale
	err := s.store.Update(ctx, func(state *domain.StoreState) error {
		items, total, err := s.resolveLines(state, req.Items)
		if err != nil {
			return err
		}
		sale = domain.Sale{
			UUID:        uuid.NewString(),
			TotalAmount: total,
			Items:       items,
			CreatedAt:   time.Now().UTC(),
		}
		state.Sales = append(state.Sales, sale)
		state.CurrentDaySales = append(state.CurrentDaySales, sale)
		return nil
	})
	if err != nil {
		s.LogWarn(ctx, "Sale rejected", slog.String("error", err.Error()))
		return nil, err
	}

	s.LogInfo(ctx, "Sale processed",
		slog.String("sale_id", sale.UUID),
		slog.String("total", sale.TotalAmount.String()),
		slog.Int("line_count", len(sale.Items)))
	return &sale, nil
}

// ProcessDebt records a credit sale for a known customer. The customer is
// resolved first; a miss aborts the entire operation with no stock changes.
// The debt embeds a snapshot of the customer so later edits or deletion never
// rewrite the record.
func (s *checkoutService) ProcessDebt(ctx context.Context, req dto.ProcessDebtRequest) (*domain.Debt, error) {
	var debt domain.Debt
	err := s.store.Update(ctx, func(state *domain.StoreState) error {
		customer := state.FindCustomer(req.UserUUID)
		if customer == nil {
			return fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, req.UserUUID)
		}

		items, total, err := s.resolveLines(state, req.Items)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		debt = domain.Debt{
			UUID:      uuid.NewString(),
			User:      *customer,
			Amount:    total,
			Status:    domain.DebtActive,
			DatePay:   req.DatePay,
			Products:  items,
			CreatedAt: now,
			UpdatedAt: now,
		}
		state.Debts = append(state.Debts, debt)
		state.CurrentDayDebts = append(state.CurrentDayDebts, debt)
		return nil
	})
	if err != nil {
		s.LogWarn(ctx, "Debt rejected", slog.String("error", err.Error()))
		return nil, err
	}

	s.LogInfo(ctx, "Debt processed",
		slog.String("debt_id", debt.UUID),
		slog.String("customer_id", debt.User.UUID),
		slog.String("amount", debt.Amount.String()))
	return &debt, nil
}

// CloseCashRegister archives the current working sets into a new closure and
// empties them, all in one indivisible update. Closing with nothing open is
// rejected so no empty closure is ever recorded.
func (s *checkoutService) CloseCashRegister(ctx context.Context) (*domain.CashClosure, error) {
	var closure domain.CashClosure
	err := s.store.Update(ctx, func(state *domain.StoreState) error {
		if len(state.CurrentDaySales) == 0 && len(state.CurrentDayDebts) == 0 {
			return apperrors.ErrEmptyClosure
		}

		closure = domain.CashClosure{
			UUID:  uuid.NewString(),
			Date:  time.Now().UTC(),
			Sales: state.CurrentDaySales,
			Debts: state.CurrentDayDebts,
		}
		state.Closures = append(state.Closures, closure)
		state.CurrentDaySales = []domain.Sale{}
		state.CurrentDayDebts = []domain.Debt{}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Cash register closed",
		slog.String("closure_id", closure.UUID),
		slog.Int("sales", len(closure.Sales)),
		slog.Int("debts", len(closure.Debts)))
	return &closure, nil
}

func (s *checkoutService) CurrentDay(ctx context.Context) ([]domain.Sale, []domain.Debt, error) {
	state := s.store.Snapshot(ctx)
	return state.CurrentDaySales, state.CurrentDayDebts, nil
}

func (s *checkoutService) ListClosures(ctx context.Context) ([]domain.CashClosure, error) {
	state := s.store.Snapshot(ctx)
	return state.Closures, nil
}
