package dto

import (
	"time"

	"github.com/credistore/credistore_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines the data needed to create a catalog product.
// A single optional barcode is normalized into the barcode list on creation.
type CreateProductRequest struct {
	Name      string             `json:"name" binding:"required"`
	Price     decimal.Decimal    `json:"price" binding:"required"`
	CostPrice decimal.Decimal    `json:"cost_price"`
	Stock     int                `json:"stock"`
	MinStock  int                `json:"min_stock"`
	Type      domain.ProductType `json:"type" binding:"required,oneof=granos_basicos snacks bebidas lacteos"`
	Barcode   string             `json:"barcode"` // Optional single scanned code
}

// UpdateProductRequest defines the fields allowed in a partial update.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateProductRequest struct {
	Name      *string             `json:"name"`
	Price     *decimal.Decimal    `json:"price"`
	CostPrice *decimal.Decimal    `json:"cost_price"`
	Stock     *int                `json:"stock"`
	MinStock  *int                `json:"min_stock"`
	Type      *domain.ProductType `json:"type" binding:"omitempty,oneof=granos_basicos snacks bebidas lacteos"`
	Barcodes  *[]string           `json:"barcodes"`
}

// ProductResponse mirrors domain.Product on the wire.
type ProductResponse struct {
	UUID      string             `json:"uuid"`
	Name      string             `json:"name"`
	Price     decimal.Decimal    `json:"price"`
	CostPrice decimal.Decimal    `json:"cost_price"`
	Stock     int                `json:"stock"`
	MinStock  int                `json:"min_stock"`
	Type      domain.ProductType `json:"type"`
	Barcodes  []domain.Barcode   `json:"barcodes"`
	CreatedAt time.Time          `json:"createdAt"`
}

// ToProductResponse converts a domain.Product to its response DTO.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		UUID:      p.UUID,
		Name:      p.Name,
		Price:     p.Price,
		CostPrice: p.CostPrice,
		Stock:     p.Stock,
		MinStock:  p.MinStock,
		Type:      p.Type,
		Barcodes:  p.Barcodes,
		CreatedAt: p.CreatedAt,
	}
}

// ToListProductResponse converts a slice of products to response DTOs.
func ToListProductResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i := range products {
		res[i] = ToProductResponse(&products[i])
	}
	return res
}
