package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebtStatus is the discrete payment state of a credit sale.
// Only the active→paid transition is produced by the mutation surface;
// pending and settled are valid values kept for forward compatibility with
// the server-backed variant and appear in reporting filters only.
type DebtStatus string

const (
	DebtActive  DebtStatus = "active"
	DebtPending DebtStatus = "pending"
	DebtPaid    DebtStatus = "paid"
	DebtSettled DebtStatus = "settled"
)

// IsValid reports whether s is one of the enumerated statuses.
func (s DebtStatus) IsValid() bool {
	switch s {
	case DebtActive, DebtPending, DebtPaid, DebtSettled:
		return true
	}
	return false
}

// Debt is a credit sale ("fiado") owed by a customer. The customer is an
// embedded snapshot, not a reference, and Amount is fixed at creation; there
// is no partial-payment mechanism.
type Debt struct {
	UUID      string          `json:"uuid"`
	User      Customer        `json:"user"` // Snapshot of the customer at checkout
	Amount    decimal.Decimal `json:"amount"`
	Status    DebtStatus      `json:"status"`
	DatePay   string          `json:"date_pay"` // Due date, YYYY-MM-DD
	Products  []SaleItem      `json:"products"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// DueDate parses the debt's due date. The zero time and false are returned
// when the stored value is not a parseable date.
func (d Debt) DueDate() (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, d.DatePay); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
