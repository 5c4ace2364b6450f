package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem is one product+quantity+price line within a Sale or Debt. Name and
// price are denormalized copies taken at checkout time so that later product
// edits or deletions never alter historical records.
type SaleItem struct {
	ProductUUID string          `json:"product_uuid"`
	Name        string          `json:"name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"` // Unit price at time of sale
}

// Subtotal returns price × quantity for the line.
func (i SaleItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Sale is a completed cash transaction. TotalAmount is computed once at
// creation and never recomputed; the record is immutable thereafter.
type Sale struct {
	UUID        string          `json:"uuid"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Items       []SaleItem      `json:"items"`
	CreatedAt   time.Time       `json:"createdAt"`
}
