package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/credistore/credistore_backend/internal/core/domain"
	portsrepo "github.com/credistore/credistore_backend/internal/core/ports/repositories"
	portssvc "github.com/credistore/credistore_backend/internal/core/ports/services"
)

// reportingService implements the derived views: pure computations over a
// snapshot of the store, recomputed on every call and never cached here.
type reportingService struct {
	BaseService
	store portsrepo.StateStore
}

// NewReportingService creates a new reporting service.
func NewReportingService(store portsrepo.StateStore) portssvc.ReportingSvcFacade {
	return &reportingService{store: store}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// periodBounds returns the [from, to) window for the given date and granularity.
func periodBounds(date time.Time, granularity domain.ReportGranularity) (time.Time, time.Time) {
	if granularity == domain.GranularityMonth {
		from := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
		return from, from.AddDate(0, 1, 0)
	}
	from := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return from, from.AddDate(0, 0, 1)
}

// PeriodReport aggregates cash and credit activity in the window around date.
// Already-closed days are read from the closure history and the open day from
// the current working sets; together they cover the whole trading record.
func (s *reportingService) PeriodReport(ctx context.Context, date time.Time, granularity domain.ReportGranularity) (*domain.PeriodReport, error) {
	if granularity != domain.GranularityMonth {
		granularity = domain.GranularityDay
	}
	from, to := periodBounds(date, granularity)
	state := s.store.Snapshot(ctx)

	var sales []domain.Sale
	var debts []domain.Debt
	for _, c := range state.Closures {
		sales = append(sales, c.Sales...)
		debts = append(debts, c.Debts...)
	}
	sales = append(sales, state.CurrentDaySales...)
	debts = append(debts, state.CurrentDayDebts...)

	report := domain.PeriodReport{
		Granularity:      granularity,
		From:             from,
		To:               to,
		TotalSales:       decimal.Zero,
		TotalCashSales:   decimal.Zero,
		TotalCreditSales: decimal.Zero,
		AverageSale:      decimal.Zero,
		GrossProfit:      decimal.Zero,
	}

	inRange := func(t time.Time) bool {
		return !t.Before(from) && t.Before(to)
	}

	cost := decimal.Zero
	addItems := func(items []domain.SaleItem) {
		for _, item := range items {
			report.UnitsSold += item.Quantity
			// Gross profit uses the product's *current* cost price; line
			// items of products deleted since contribute full price.
			if p := state.FindProduct(item.ProductUUID); p != nil {
				cost = cost.Add(p.CostPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
			}
		}
	}

	for _, sale := range sales {
		if !inRange(sale.CreatedAt) {
			continue
		}
		report.TotalCashSales = report.TotalCashSales.Add(sale.TotalAmount)
		report.TotalTransactions++
		addItems(sale.Items)
	}
	for _, debt := range debts {
		if !inRange(debt.CreatedAt) {
			continue
		}
		report.TotalCreditSales = report.TotalCreditSales.Add(debt.Amount)
		report.TotalTransactions++
		addItems(debt.Products)
	}

	report.TotalSales = report.TotalCashSales.Add(report.TotalCreditSales)
	report.GrossProfit = report.TotalSales.Sub(cost)
	if report.TotalTransactions > 0 {
		report.AverageSale = report.TotalSales.Div(decimal.NewFromInt(int64(report.TotalTransactions))).Round(2)
	}
	return &report, nil
}

// LowStockProducts lists products at or below their minimum threshold.
// A limit of 0 means no limit.
func (s *reportingService) LowStockProducts(ctx context.Context, limit int) ([]domain.Product, error) {
	state := s.store.Snapshot(ctx)
	low := []domain.Product{}
	for _, p := range state.Products {
		if p.IsLowStock() {
			low = append(low, p)
		}
	}
	if limit > 0 && len(low) > limit {
		low = low[:limit]
	}
	return low, nil
}

// InventoryValuation sums the current catalog at cost and at retail.
func (s *reportingService) InventoryValuation(ctx context.Context) (*domain.InventoryValuation, error) {
	state := s.store.Snapshot(ctx)
	valuation := domain.InventoryValuation{
		TotalItems:       len(state.Products),
		TotalCostValue:   decimal.Zero,
		TotalRetailValue: decimal.Zero,
	}
	for _, p := range state.Products {
		qty := decimal.NewFromInt(int64(p.Stock))
		valuation.TotalCostValue = valuation.TotalCostValue.Add(p.CostPrice.Mul(qty))
		valuation.TotalRetailValue = valuation.TotalRetailValue.Add(p.Price.Mul(qty))
	}
	valuation.PotentialProfit = valuation.TotalRetailValue.Sub(valuation.TotalCostValue)
	return &valuation, nil
}

// DebtSummary groups debts by status into counts and outstanding totals.
// With a status filter only that row is returned.
func (s *reportingService) DebtSummary(ctx context.Context, status *domain.DebtStatus) ([]domain.DebtStatusCount, error) {
	state := s.store.Snapshot(ctx)

	order := []domain.DebtStatus{domain.DebtActive, domain.DebtPending, domain.DebtPaid, domain.DebtSettled}
	byStatus := make(map[domain.DebtStatus]*domain.DebtStatusCount, len(order))
	for _, st := range order {
		byStatus[st] = &domain.DebtStatusCount{Status: st, Total: decimal.Zero}
	}
	for _, d := range state.Debts {
		row, ok := byStatus[d.Status]
		if !ok {
			continue
		}
		row.Count++
		row.Total = row.Total.Add(d.Amount)
	}

	rows := []domain.DebtStatusCount{}
	for _, st := range order {
		if status != nil && st != *status {
			continue
		}
		rows = append(rows, *byStatus[st])
	}
	return rows, nil
}

// TopSellingProducts ranks products by units sold across the sale history,
// aggregated by the denormalized item name.
func (s *reportingService) TopSellingProducts(ctx context.Context, limit int) ([]domain.TopProduct, error) {
	if limit <= 0 {
		limit = 5
	}
	state := s.store.Snapshot(ctx)

	counts := map[string]int{}
	for _, sale := range state.Sales {
		for _, item := range sale.Items {
			counts[item.Name] += item.Quantity
		}
	}

	top := make([]domain.TopProduct, 0, len(counts))
	for name, units := range counts {
		top = append(top, domain.TopProduct{Name: name, UnitsSold: units})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].UnitsSold != top[j].UnitsSold {
			return top[i].UnitsSold > top[j].UnitsSold
		}
		return top[i].Name < top[j].Name
	})
	if len(top) > limit {
		top = top[:limit]
	}
	return top, nil
}

// ProductDetails finds catalog products whose name contains the query,
// case-insensitively. An empty query returns the whole catalog.
func (s *reportingService) ProductDetails(ctx context.Context, nameQuery string) ([]domain.Product, error) {
	state := s.store.Snapshot(ctx)
	query := strings.ToLower(nameQuery)

	matches := []domain.Product{}
	for _, p := range state.Products {
		if strings.Contains(strings.ToLower(p.Name), query) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

// CustomerDebts finds active debts whose embedded customer name contains the
// query, case-insensitively.
func (s *reportingService) CustomerDebts(ctx context.Context, nameQuery string) ([]domain.CustomerDebtRow, error) {
	state := s.store.Snapshot(ctx)
	query := strings.ToLower(nameQuery)
	today := time.Now().UTC()

	rows := []domain.CustomerDebtRow{}
	for _, d := range state.Debts {
		if d.Status != domain.DebtActive {
			continue
		}
		if !strings.Contains(strings.ToLower(d.User.Firstname), query) &&
			!strings.Contains(strings.ToLower(d.User.Lastname), query) {
			continue
		}
		row := domain.CustomerDebtRow{
			Customer: d.User.FullName(),
			Amount:   d.Amount,
			DueDate:  d.DatePay,
		}
		if due, ok := d.DueDate(); ok && due.Before(today) {
			row.DaysLate = int(today.Sub(due).Hours() / 24)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// OverdueDebts lists active debts whose due date is before today.
func (s *reportingService) OverdueDebts(ctx context.Context) ([]domain.CustomerDebtRow, error) {
	state := s.store.Snapshot(ctx)
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	rows := []domain.CustomerDebtRow{}
	for _, d := range state.Debts {
		if d.Status != domain.DebtActive {
			continue
		}
		due, ok := d.DueDate()
		if !ok || !due.Before(today) {
			continue
		}
		rows = append(rows, domain.CustomerDebtRow{
			Customer: d.User.FullName(),
			Amount:   d.Amount,
			DueDate:  d.DatePay,
			DaysLate: int(today.Sub(due).Hours() / 24),
		})
	}
	return rows, nil
}

// UpcomingDebts lists active debts due within the next n days.
func (s *reportingService) UpcomingDebts(ctx context.Context, days int) ([]domain.CustomerDebtRow, error) {
	if days <= 0 {
		days = 7
	}
	state := s.store.Snapshot(ctx)
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	future := today.AddDate(0, 0, days)

	rows := []domain.CustomerDebtRow{}
	for _, d := range state.Debts {
		if d.Status != domain.DebtActive {
			continue
		}
		due, ok := d.DueDate()
		if !ok || due.Before(today) || due.After(future) {
			continue
		}
		rows = append(rows, domain.CustomerDebtRow{
			Customer: d.User.FullName(),
			Amount:   d.Amount,
			DueDate:  d.DatePay,
		})
	}
	return rows, nil
}

// ActiveDebts lists active debts up to the given limit.
func (s *reportingService) ActiveDebts(ctx context.Context, limit int) ([]domain.CustomerDebtRow, error) {
	if limit <= 0 {
		limit = 20
	}
	state := s.store.Snapshot(ctx)

	rows := []domain.CustomerDebtRow{}
	for _, d := range state.Debts {
		if d.Status != domain.DebtActive {
			continue
		}
		rows = append(rows, domain.CustomerDebtRow{
			Customer: d.User.FullName(),
			Amount:   d.Amount,
			DueDate:  d.DatePay,
		})
		if len(rows) == limit {
			break
		}
	}
	return rows, nil
}
