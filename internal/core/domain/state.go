package domain

import "time"

// BackupVersion tags the serialized document layout.
const BackupVersion = "1.0.0"

// StoreState is the whole entity store: the four canonical collections, the
// cash-register working sets and the closure history. It is the unit of
// atomic update and of (de)serialization.
type StoreState struct {
	Products        []Product     `json:"products"`
	Users           []Customer    `json:"users"`
	Sales           []Sale        `json:"sales"`
	Debts           []Debt        `json:"debts"`
	CurrentDaySales []Sale        `json:"currentDaySales"`
	CurrentDayDebts []Debt        `json:"currentDayDebts"`
	Closures        []CashClosure `json:"closures"`
}

// BackupDocument is the portable export format. It is identical to the
// durable persistence format so the two stay bit-compatible.
type BackupDocument struct {
	StoreState
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

// NewStoreState returns an empty state with non-nil collections, so the
// serialized document always carries the four arrays.
func NewStoreState() StoreState {
	return StoreState{
		Products:        []Product{},
		Users:           []Customer{},
		Sales:           []Sale{},
		Debts:           []Debt{},
		CurrentDaySales: []Sale{},
		CurrentDayDebts: []Debt{},
		Closures:        []CashClosure{},
	}
}

// Clone returns a deep copy of the state. Mutating the copy never affects the
// original, which is what keeps store reads isolated from in-flight updates.
func (s StoreState) Clone() StoreState {
	out := StoreState{
		Products:        make([]Product, len(s.Products)),
		Users:           make([]Customer, len(s.Users)),
		Sales:           make([]Sale, len(s.Sales)),
		Debts:           make([]Debt, len(s.Debts)),
		CurrentDaySales: make([]Sale, len(s.CurrentDaySales)),
		CurrentDayDebts: make([]Debt, len(s.CurrentDayDebts)),
		Closures:        make([]CashClosure, len(s.Closures)),
	}
	for i, p := range s.Products {
		out.Products[i] = cloneProduct(p)
	}
	copy(out.Users, s.Users)
	for i, sale := range s.Sales {
		out.Sales[i] = cloneSale(sale)
	}
	for i, d := range s.Debts {
		out.Debts[i] = cloneDebt(d)
	}
	for i, sale := range s.CurrentDaySales {
		out.CurrentDaySales[i] = cloneSale(sale)
	}
	for i, d := range s.CurrentDayDebts {
		out.CurrentDayDebts[i] = cloneDebt(d)
	}
	for i, c := range s.Closures {
		out.Closures[i] = cloneClosure(c)
	}
	return out
}

func cloneProduct(p Product) Product {
	out := p
	out.Barcodes = make([]Barcode, len(p.Barcodes))
	copy(out.Barcodes, p.Barcodes)
	return out
}

func cloneSale(s Sale) Sale {
	out := s
	out.Items = make([]SaleItem, len(s.Items))
	copy(out.Items, s.Items)
	return out
}

func cloneDebt(d Debt) Debt {
	out := d
	out.Products = make([]SaleItem, len(d.Products))
	copy(out.Products, d.Products)
	return out
}

func cloneClosure(c CashClosure) CashClosure {
	out := c
	out.Sales = make([]Sale, len(c.Sales))
	for i, s := range c.Sales {
		out.Sales[i] = cloneSale(s)
	}
	out.Debts = make([]Debt, len(c.Debts))
	for i, d := range c.Debts {
		out.Debts[i] = cloneDebt(d)
	}
	return out
}

// FindProduct returns a pointer into the state's product slice, or nil.
func (s *StoreState) FindProduct(uuid string) *Product {
	for i := range s.Products {
		if s.Products[i].UUID == uuid {
			return &s.Products[i]
		}
	}
	return nil
}

// FindCustomer returns a pointer into the state's user slice, or nil.
func (s *StoreState) FindCustomer(uuid string) *Customer {
	for i := range s.Users {
		if s.Users[i].UUID == uuid {
			return &s.Users[i]
		}
	}
	return nil
}

// FindDebt returns a pointer into the state's debt slice, or nil.
func (s *StoreState) FindDebt(uuid string) *Debt {
	for i := range s.Debts {
		if s.Debts[i].UUID == uuid {
			return &s.Debts[i]
		}
	}
	return nil
}
