package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/credistore/credistore_backend/internal/apperrors"
	"github.com/credistore/credistore_backend/internal/core/domain"
	portsrepo "github.com/credistore/credistore_backend/internal/core/ports/repositories"
	portssvc "github.com/credistore/credistore_backend/internal/core/ports/services"
	"github.com/credistore/credistore_backend/internal/dto"
)

// productService manages the product catalog.
type productService struct {
	BaseService
	store portsrepo.StateStore
}

// NewProductService creates a new ProductService.
func NewProductService(store portsrepo.StateStore) portssvc.ProductSvcFacade {
	return &productService{store: store}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

// CreateProduct generates an identifier, normalizes the optional single
// barcode into the barcode list and appends the product to the catalog.
func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	barcodes := []domain.Barcode{}
	if req.Barcode != "" {
		barcodes = append(barcodes, domain.Barcode{Barcode: req.Barcode})
	}
	product := domain.Product{
		UUID:      uuid.NewString(),
		Name:      req.Name,
		Price:     req.Price,
		CostPrice: req.CostPrice,
		Stock:     req.Stock,
		MinStock:  req.MinStock,
		Type:      req.Type,
		Barcodes:  barcodes,
		CreatedAt: time.Now().UTC(),
	}

	err := s.store.Update(ctx, func(state *domain.StoreState) error {
		state.Products = append(state.Products, product)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.LogInfo(ctx, "Product created", slog.String("product_id", product.UUID), slog.String("name", product.Name))
	return &product, nil
}

// UpdateProduct merges the non-nil fields of req into the matching product.
func (s *productService) UpdateProduct(ctx context.Context, productUUID string, req dto.UpdateProductRequest) (*domain.Product, error) {
	var updated domain.Product
	err := s.store.Update(ctx, func(state *domain.StoreState) error {
		p := state.FindProduct(productUUID)
		if p == nil {
			return fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productUUID)
		}
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.Price != nil {
			p.Price = *req.Price
		}
		if req.CostPrice != nil {
			p.CostPrice = *req.CostPrice
		}
		if req.Stock != nil {
			p.Stock = *req.Stock
		}
		if req.MinStock != nil {
			p.MinStock = *req.MinStock
		}
		if req.Type != nil {
			p.Type = *req.Type
		}
		if req.Barcodes != nil {
			barcodes := make([]domain.Barcode, len(*req.Barcodes))
			for i, code := range *req.Barcodes {
				barcodes[i] = domain.Barcode{Barcode: code}
			}
			p.Barcodes = barcodes
		}
		updated = *p
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Product updated", slog.String("product_id", productUUID))
	return &updated, nil
}

// DeleteProduct removes the matching product. Historical sale and debt line
// items keep their denormalized name/price copies, so no cascade is needed.
func (s *productService) DeleteProduct(ctx context.Context, productUUID string) error {
	err := s.store.Update(ctx, func(state *domain.StoreState) error {
		for i := range state.Products {
			if state.Products[i].UUID == productUUID {
				state.Products = append(state.Products[:i], state.Products[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productUUID)
	})
	if err != nil {
		return err
	}

	s.LogInfo(ctx, "Product deleted", slog.String("product_id", productUUID))
	return nil
}

func (s *productService) GetProductByID(ctx context.Context, productUUID string) (*domain.Product, error) {
	state := s.store.Snapshot(ctx)
	p := state.FindProduct(productUUID)
	if p == nil {
		return nil, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productUUID)
	}
	return p, nil
}

func (s *productService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	state := s.store.Snapshot(ctx)
	return state.Products, nil
}

// FindProductByBarcode resolves a raw scanned string by exact match against
// the barcode lists of all products.
func (s *productService) FindProductByBarcode(ctx context.Context, code string) (*domain.Product, error) {
	state := s.store.Snapshot(ctx)
	for i := range state.Products {
		if state.Products[i].HasBarcode(code) {
			return &state.Products[i], nil
		}
	}
	return nil, fmt.Errorf("%w: barcode %s", apperrors.ErrNotFound, code)
}
