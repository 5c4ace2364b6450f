package services

import (
	"context"
	"time"

	"github.com/credistore/credistore_backend/internal/core/domain"
)

// ReportingSvcFacade exposes the derived views: pure, read-only computations
// over the current store contents, recomputed on every call. All of them
// tolerate empty input sets and return zero/empty results, never an error for
// "nothing to report". The AI assistant's query tools consume this interface.
type ReportingSvcFacade interface {
	PeriodReport(ctx context.Context, date time.Time, granularity domain.ReportGranularity) (*domain.PeriodReport, error)
	LowStockProducts(ctx context.Context, limit int) ([]domain.Product, error)
	InventoryValuation(ctx context.Context) (*domain.InventoryValuation, error)
	DebtSummary(ctx context.Context, status *domain.DebtStatus) ([]domain.DebtStatusCount, error)
	TopSellingProducts(ctx context.Context, limit int) ([]domain.TopProduct, error)
	ProductDetails(ctx context.Context, nameQuery string) ([]domain.Product, error)
	CustomerDebts(ctx context.Context, nameQuery string) ([]domain.CustomerDebtRow, error)
	OverdueDebts(ctx context.Context) ([]domain.CustomerDebtRow, error)
	UpcomingDebts(ctx context.Context, days int) ([]domain.CustomerDebtRow, error)
	ActiveDebts(ctx context.Context, limit int) ([]domain.CustomerDebtRow, error)
}
