package dto

import (
	"time"

	"github.com/credistore/credistore_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaleLineRequest is one product+quantity entry of a checkout request.
type SaleLineRequest struct {
	ProductUUID string `json:"product_uuid" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required,gt=0"`
}

// ProcessSaleRequest defines a cash checkout.
type ProcessSaleRequest struct {
	Items []SaleLineRequest `json:"items" binding:"required,min=1,dive"`
}

// ProcessDebtRequest defines a credit checkout for a known customer.
type ProcessDebtRequest struct {
	UserUUID string            `json:"user_uuid" binding:"required"`
	DatePay  string            `json:"date_pay" binding:"required"` // Due date, YYYY-MM-DD
	Items    []SaleLineRequest `json:"items" binding:"required,min=1,dive"`
}

// SaleResponse mirrors domain.Sale on the wire.
type SaleResponse struct {
	UUID        string            `json:"uuid"`
	TotalAmount decimal.Decimal   `json:"totalAmount"`
	Items       []domain.SaleItem `json:"items"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// ToSaleResponse converts a domain.Sale to its response DTO.
func ToSaleResponse(s *domain.Sale) SaleResponse {
	return SaleResponse{
		UUID:        s.UUID,
		TotalAmount: s.TotalAmount,
		Items:       s.Items,
		CreatedAt:   s.CreatedAt,
	}
}

// ToListSaleResponse converts a slice of sales to response DTOs.
func ToListSaleResponse(sales []domain.Sale) []SaleResponse {
	res := make([]SaleResponse, len(sales))
	for i := range sales {
		res[i] = ToSaleResponse(&sales[i])
	}
	return res
}

// CurrentDayResponse summarizes the open working sets, with the totals the
// cash-closure screen shows before confirming.
type CurrentDayResponse struct {
	Sales       []SaleResponse  `json:"sales"`
	Debts       []DebtResponse  `json:"debts"`
	TotalCash   decimal.Decimal `json:"totalCash"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	TotalDay    decimal.Decimal `json:"totalDay"`
}

// ToCurrentDayResponse builds the current-day summary from the working sets.
func ToCurrentDayResponse(sales []domain.Sale, debts []domain.Debt) CurrentDayResponse {
	totalCash := decimal.Zero
	for _, s := range sales {
		totalCash = totalCash.Add(s.TotalAmount)
	}
	totalCredit := decimal.Zero
	for _, d := range debts {
		totalCredit = totalCredit.Add(d.Amount)
	}
	return CurrentDayResponse{
		Sales:       ToListSaleResponse(sales),
		Debts:       ToListDebtResponse(debts),
		TotalCash:   totalCash,
		TotalCredit: totalCredit,
		TotalDay:    totalCash.Add(totalCredit),
	}
}
