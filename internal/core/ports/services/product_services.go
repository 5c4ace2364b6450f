package services

import (
	"context"

	"github.com/credistore/credistore_backend/internal/core/domain"
	"github.com/credistore/credistore_backend/internal/dto"
)

// ProductSvcFacade exposes catalog management plus barcode resolution.
type ProductSvcFacade interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error)
	UpdateProduct(ctx context.Context, productUUID string, req dto.UpdateProductRequest) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productUUID string) error
	GetProductByID(ctx context.Context, productUUID string) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	// FindProductByBarcode resolves a raw scanned string against the catalog
	// by exact match; apperrors.ErrNotFound when no product carries the code.
	FindProductByBarcode(ctx context.Context, code string) (*domain.Product, error)
}
