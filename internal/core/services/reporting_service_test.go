package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/credistore/credistore_backend/internal/core/domain"
	portsrepo "github.com/credistore/credistore_backend/internal/core/ports/repositories"
	portssvc "github.com/credistore/credistore_backend/internal/core/ports/services"
	"github.com/credistore/credistore_backend/internal/core/services"
)

type ReportingSuite struct {
	suite.Suite
	store   portsrepo.StateStore
	service portssvc.ReportingSvcFacade
}

func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingSuite))
}

func (s *ReportingSuite) SetupTest() {
	s.store = newTestStore(s.T())
	s.service = services.NewReportingService(s.store)
}

func (s *ReportingSuite) TestPeriodReportEmptyStore() {
	report, err := s.service.PeriodReport(context.Background(), time.Now(), domain.GranularityDay)
	s.Require().NoError(err)

	s.True(report.TotalSales.IsZero())
	s.True(report.AverageSale.IsZero())
	s.True(report.GrossProfit.IsZero())
	s.Zero(report.TotalTransactions)
	s.Zero(report.UnitsSold)
}

func (s *ReportingSuite) TestPeriodReportAggregatesClosuresAndWorkingSets() {
	day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	inDay := day.Add(10 * time.Hour)
	otherDay := day.AddDate(0, 0, -3).Add(10 * time.Hour)

	item := domain.SaleItem{ProductUUID: "prod-1", Name: "Arroz", Quantity: 2, Price: decimal.NewFromInt(50)}

	seedState(s.T(), s.store, func(state *domain.StoreState) {
		state.Products = append(state.Products, domain.Product{
			UUID:      "prod-1",
			Name:      "Arroz",
			Price:     decimal.NewFromInt(50),
			CostPrice: decimal.NewFromInt(40),
			Stock:     10,
			Type:      domain.GranosBasicos,
		})
		// One archived sale inside the window, one outside.
		state.Closures = append(state.Closures, domain.CashClosure{
			UUID: "cl-1",
			Date: inDay,
			Sales: []domain.Sale{
				{UUID: "sale-1", TotalAmount: decimal.NewFromInt(100), Items: []domain.SaleItem{item}, CreatedAt: inDay},
				{UUID: "sale-2", TotalAmount: decimal.NewFromInt(100), Items: []domain.SaleItem{item}, CreatedAt: otherDay},
			},
		})
		// An open debt inside the window.
		state.CurrentDayDebts = append(state.CurrentDayDebts, domain.Debt{
			UUID:      "debt-1",
			User:      domain.Customer{UUID: "cust-1", Firstname: "Maria", Lastname: "Lopez"},
			Amount:    decimal.NewFromInt(100),
			Status:    domain.DebtActive,
			DatePay:   "2026-09-01",
			Products:  []domain.SaleItem{item},
			CreatedAt: inDay,
		})
	})

	report, err := s.service.PeriodReport(context.Background(), day, domain.GranularityDay)
	s.Require().NoError(err)

	s.True(report.TotalCashSales.Equal(decimal.NewFromInt(100)), "cash %s", report.TotalCashSales)
	s.True(report.TotalCreditSales.Equal(decimal.NewFromInt(100)))
	s.True(report.TotalSales.Equal(decimal.NewFromInt(200)))
	s.Equal(2, report.TotalTransactions)
	s.Equal(4, report.UnitsSold)
	// 200 revenue minus 4 units at cost 40.
	s.True(report.GrossProfit.Equal(decimal.NewFromInt(40)), "profit %s", report.GrossProfit)
	s.True(report.AverageSale.Equal(decimal.NewFromInt(100)))

	// The month window picks up the out-of-day sale too.
	monthly, err := s.service.PeriodReport(context.Background(), day, domain.GranularityMonth)
	s.Require().NoError(err)
	s.True(monthly.TotalSales.Equal(decimal.NewFromInt(300)))
	s.Equal(3, monthly.TotalTransactions)
}

func (s *ReportingSuite) TestLowStockBoundary() {
	seedState(s.T(), s.store, func(state *domain.StoreState) {
		state.Products = append(state.Products,
			domain.Product{UUID: "p1", Name: "At threshold", Stock: 5, MinStock: 5},
			domain.Product{UUID: "p2", Name: "Above", Stock: 6, MinStock: 5},
			domain.Product{UUID: "p3", Name: "Below", Stock: -1, MinStock: 0},
		)
	})

	low, err := s.service.LowStockProducts(context.Background(), 0)
	s.Require().NoError(err)
	s.Require().Len(low, 2)
	s.Equal("At threshold", low[0].Name)
	s.Equal("Below", low[1].Name)

	limited, err := s.service.LowStockProducts(context.Background(), 1)
	s.Require().NoError(err)
	s.Len(limited, 1)
}

func (s *ReportingSuite) TestInventoryValuation() {
	seedState(s.T(), s.store, func(state *domain.StoreState) {
		state.Products = append(state.Products,
			domain.Product{UUID: "p1", Price: decimal.NewFromInt(50), CostPrice: decimal.NewFromInt(40), Stock: 10},
			domain.Product{UUID: "p2", Price: decimal.NewFromInt(100), CostPrice: decimal.NewFromInt(70), Stock: 2},
		)
	})

	valuation, err := s.service.InventoryValuation(context.Background())
	s.Require().NoError(err)

	s.Equal(2, valuation.TotalItems)
	s.True(valuation.TotalCostValue.Equal(decimal.NewFromInt(540)))
	s.True(valuation.TotalRetailValue.Equal(decimal.NewFromInt(700)))
	s.True(valuation.PotentialProfit.Equal(decimal.NewFromInt(160)))
}

func (s *ReportingSuite) TestDebtSummary() {
	seedState(s.T(), s.store, func(state *domain.StoreState) {
		state.Debts = append(state.Debts,
			domain.Debt{UUID: "d1", Amount: decimal.NewFromInt(100), Status: domain.DebtActive},
			domain.Debt{UUID: "d2", Amount: decimal.NewFromInt(50), Status: domain.DebtActive},
			domain.Debt{UUID: "d3", Amount: decimal.NewFromInt(200), Status: domain.DebtPaid},
		)
	})

	rows, err := s.service.DebtSummary(context.Background(), nil)
	s.Require().NoError(err)
	s.Require().Len(rows, 4)

	s.Equal(domain.DebtActive, rows[0].Status)
	s.Equal(2, rows[0].Count)
	s.True(rows[0].Total.Equal(decimal.NewFromInt(150)))
	s.Equal(domain.DebtPaid, rows[2].Status)
	s.Equal(1, rows[2].Count)
	s.Equal(0, rows[1].Count) // pending
	s.Equal(0, rows[3].Count) // settled

	paid := domain.DebtPaid
	filtered, err := s.service.DebtSummary(context.Background(), &paid)
	s.Require().NoError(err)
	s.Require().Len(filtered, 1)
	s.True(filtered[0].Total.Equal(decimal.NewFromInt(200)))
}

func (s *ReportingSuite) TestTopSellingProducts() {
	seedState(s.T(), s.store, func(state *domain.StoreState) {
		state.Sales = append(state.Sales,
			domain.Sale{UUID: "s1", Items: []domain.SaleItem{
				{Name: "Arroz", Quantity: 3},
				{Name: "Gaseosa", Quantity: 1},
			}},
			domain.Sale{UUID: "s2", Items: []domain.SaleItem{
				{Name: "Arroz", Quantity: 2},
				{Name: "Galletas", Quantity: 4},
			}},
		)
	})

	top, err := s.service.TopSellingProducts(context.Background(), 2)
	s.Require().NoError(err)
	s.Require().Len(top, 2)
	s.Equal("Arroz", top[0].Name)
	s.Equal(5, top[0].UnitsSold)
	s.Equal("Galletas", top[1].Name)
}

func (s *ReportingSuite) TestProductDetails() {
	seedState(s.T(), s.store, func(state *domain.StoreState) {
		state.Products = append(state.Products,
			domain.Product{UUID: "p1", Name: "Leche entera", Type: domain.Lacteos},
			domain.Product{UUID: "p2", Name: "Leche deslactosada", Type: domain.Lacteos},
			domain.Product{UUID: "p3", Name: "Arroz", Type: domain.GranosBasicos},
		)
	})

	matches, err := s.service.ProductDetails(context.Background(), "LECHE")
	s.Require().NoError(err)
	s.Len(matches, 2)

	all, err := s.service.ProductDetails(context.Background(), "")
	s.Require().NoError(err)
	s.Len(all, 3)

	none, err := s.service.ProductDetails(context.Background(), "cafe")
	s.Require().NoError(err)
	s.Empty(none)
}

func (s *ReportingSuite) seedDebtLedger() {
	today := time.Now().UTC()
	overdue := today.AddDate(0, 0, -10).Format("2006-01-02")
	soon := today.AddDate(0, 0, 3).Format("2006-01-02")
	far := today.AddDate(0, 0, 30).Format("2006-01-02")

	seedState(s.T(), s.store, func(state *domain.StoreState) {
		state.Debts = append(state.Debts,
			domain.Debt{
				UUID: "d-overdue", Status: domain.DebtActive, Amount: decimal.NewFromInt(100),
				User: domain.Customer{Firstname: "Maria", Lastname: "Lopez"}, DatePay: overdue,
			},
			domain.Debt{
				UUID: "d-soon", Status: domain.DebtActive, Amount: decimal.NewFromInt(50),
				User: domain.Customer{Firstname: "Juan", Lastname: "Perez"}, DatePay: soon,
			},
			domain.Debt{
				UUID: "d-far", Status: domain.DebtActive, Amount: decimal.NewFromInt(75),
				User: domain.Customer{Firstname: "Ana", Lastname: "Ruiz"}, DatePay: far,
			},
			domain.Debt{
				UUID: "d-paid", Status: domain.DebtPaid, Amount: decimal.NewFromInt(500),
				User: domain.Customer{Firstname: "Maria", Lastname: "Lopez"}, DatePay: overdue,
			},
		)
	})
}

func (s *ReportingSuite) TestOverdueDebts() {
	s.seedDebtLedger()

	rows, err := s.service.OverdueDebts(context.Background())
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal("Maria Lopez", rows[0].Customer)
	s.Equal(10, rows[0].DaysLate)
}

func (s *ReportingSuite) TestUpcomingDebts() {
	s.seedDebtLedger()

	rows, err := s.service.UpcomingDebts(context.Background(), 7)
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal("Juan Perez", rows[0].Customer)

	wide, err := s.service.UpcomingDebts(context.Background(), 60)
	s.Require().NoError(err)
	s.Len(wide, 2)
}

func (s *ReportingSuite) TestCustomerDebtsMatchesCaseInsensitively() {
	s.seedDebtLedger()

	rows, err := s.service.CustomerDebts(context.Background(), "mArIa")
	s.Require().NoError(err)
	// Only the active debt, not the paid one.
	s.Require().Len(rows, 1)
	s.Equal("Maria Lopez", rows[0].Customer)
	s.True(rows[0].Amount.Equal(decimal.NewFromInt(100)))
}

func (s *ReportingSuite) TestActiveDebtsRespectsLimit() {
	s.seedDebtLedger()

	rows, err := s.service.ActiveDebts(context.Background(), 2)
	s.Require().NoError(err)
	s.Len(rows, 2)

	all, err := s.service.ActiveDebts(context.Background(), 20)
	s.Require().NoError(err)
	s.Len(all, 3)
}
