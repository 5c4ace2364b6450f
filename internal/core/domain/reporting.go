package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportGranularity selects the reporting window for a period report.
type ReportGranularity string

const (
	GranularityDay   ReportGranularity = "day"
	GranularityMonth ReportGranularity = "month"
)

// PeriodReport aggregates cash and credit activity within a date window.
// GrossProfit is computed against the *current* product cost price, not the
// cost at time of sale; that staleness is a documented tradeoff.
type PeriodReport struct {
	Granularity       ReportGranularity `json:"granularity"`
	From              time.Time         `json:"from"`
	To                time.Time         `json:"to"`
	TotalSales        decimal.Decimal   `json:"totalSales"`
	TotalCashSales    decimal.Decimal   `json:"totalCashSales"`
	TotalCreditSales  decimal.Decimal   `json:"totalCreditSales"`
	TotalTransactions int               `json:"totalTransactions"`
	AverageSale       decimal.Decimal   `json:"averageSale"`
	UnitsSold         int               `json:"unitsSold"`
	GrossProfit       decimal.Decimal   `json:"grossProfit"`
}

// InventoryValuation sums the current catalog at cost and at retail.
type InventoryValuation struct {
	TotalItems       int             `json:"totalItems"`
	TotalCostValue   decimal.Decimal `json:"totalCostValue"`
	TotalRetailValue decimal.Decimal `json:"totalRetailValue"`
	PotentialProfit  decimal.Decimal `json:"potentialProfit"`
}

// DebtStatusCount is one row of the debt status breakdown.
type DebtStatusCount struct {
	Status DebtStatus      `json:"status"`
	Count  int             `json:"count"`
	Total  decimal.Decimal `json:"total"`
}

// TopProduct is a best-seller row aggregated over historical sale items.
type TopProduct struct {
	Name      string `json:"name"`
	UnitsSold int    `json:"unitsSold"`
}

// CustomerDebtRow is a debt listing row with the embedded customer flattened
// to a display name, used by debt lookups and overdue/upcoming reports.
type CustomerDebtRow struct {
	Customer string          `json:"customer"`
	Amount   decimal.Decimal `json:"amount"`
	DueDate  string          `json:"dueDate"`
	DaysLate int             `json:"daysLate,omitempty"`
}
