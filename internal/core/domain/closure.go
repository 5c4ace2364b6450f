package domain

import "time"

// CashClosure is a frozen snapshot of a trading period. The contained sales
// and debts are copies of the working sets at closure time and are never
// mutated afterwards.
type CashClosure struct {
	UUID  string    `json:"uuid"`
	Date  time.Time `json:"date"`
	Sales []Sale    `json:"sales"`
	Debts []Debt    `json:"debts"`
}
