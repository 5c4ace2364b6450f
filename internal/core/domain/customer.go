package domain

// Customer is a person eligible for credit sales. Debts embed a full copy of
// the customer at creation time, so deleting a customer never rewrites history.
type Customer struct {
	UUID      string `json:"uuid"` // Primary key
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Phone     string `json:"phone"`
}

// FullName returns the display name used by reports.
func (c Customer) FullName() string {
	return c.Firstname + " " + c.Lastname
}
