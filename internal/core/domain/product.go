package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductType categorizes a product within the catalog.
type ProductType string

const (
	GranosBasicos ProductType = "granos_basicos"
	Snacks        ProductType = "snacks"
	Bebidas       ProductType = "bebidas"
	Lacteos       ProductType = "lacteos"
)

// Barcode is a single scannable code associated with a product.
type Barcode struct {
	Barcode string `json:"barcode"`
}

// Product is a sellable catalog item. Stock is an integer count and may go
// negative under the legacy "allow oversell" policy.
type Product struct {
	UUID      string          `json:"uuid"` // Primary key, immutable for life
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`      // Unit sale price
	CostPrice decimal.Decimal `json:"cost_price"` // Unit cost price
	Stock     int             `json:"stock"`
	MinStock  int             `json:"min_stock"` // Low-stock threshold
	Type      ProductType     `json:"type"`
	Barcodes  []Barcode       `json:"barcodes"`
	CreatedAt time.Time       `json:"createdAt"`
}

// HasBarcode reports whether the product carries the given code (exact match).
func (p Product) HasBarcode(code string) bool {
	for _, b := range p.Barcodes {
		if b.Barcode == code {
			return true
		}
	}
	return false
}

// IsLowStock reports whether the product is at or below its minimum threshold.
func (p Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}
