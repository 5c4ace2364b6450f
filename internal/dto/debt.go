package dto

import (
	"time"

	"github.com/credistore/credistore_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateDebtStatusRequest defines a debt status change. Any enumerated status
// is accepted; the core performs no transition validation.
type UpdateDebtStatusRequest struct {
	Status domain.DebtStatus `json:"status" binding:"required,oneof=active pending paid settled"`
}

// DebtResponse mirrors domain.Debt on the wire, embedded customer included.
type DebtResponse struct {
	UUID      string            `json:"uuid"`
	User      CustomerResponse  `json:"user"`
	Amount    decimal.Decimal   `json:"amount"`
	Status    domain.DebtStatus `json:"status"`
	DatePay   string            `json:"date_pay"`
	Products  []domain.SaleItem `json:"products"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// ToDebtResponse converts a domain.Debt to its response DTO.
func ToDebtResponse(d *domain.Debt) DebtResponse {
	return DebtResponse{
		UUID:      d.UUID,
		User:      ToCustomerResponse(&d.User),
		Amount:    d.Amount,
		Status:    d.Status,
		DatePay:   d.DatePay,
		Products:  d.Products,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// ToListDebtResponse converts a slice of debts to response DTOs.
func ToListDebtResponse(debts []domain.Debt) []DebtResponse {
	res := make([]DebtResponse, len(debts))
	for i := range debts {
		res[i] = ToDebtResponse(&debts[i])
	}
	return res
}
