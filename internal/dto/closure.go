package dto

import (
	"time"

	"github.com/credistore/credistore_backend/internal/core/domain"
)

// ClosureResponse mirrors domain.CashClosure on the wire.
type ClosureResponse struct {
	UUID  string         `json:"uuid"`
	Date  time.Time      `json:"date"`
	Sales []SaleResponse `json:"sales"`
	Debts []DebtResponse `json:"debts"`
}

// ToClosureResponse converts a domain.CashClosure to its response DTO.
func ToClosureResponse(c *domain.CashClosure) ClosureResponse {
	return ClosureResponse{
		UUID:  c.UUID,
		Date:  c.Date,
		Sales: ToListSaleResponse(c.Sales),
		Debts: ToListDebtResponse(c.Debts),
	}
}

// ToListClosureResponse converts a slice of closures to response DTOs.
func ToListClosureResponse(closures []domain.CashClosure) []ClosureResponse {
	res := make([]ClosureResponse, len(closures))
	for i := range closures {
		res[i] = ToClosureResponse(&closures[i])
	}
	return res
}
