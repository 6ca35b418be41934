package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/platform/logger"
	"github.com/phrazzld/storefront-api/internal/store"
)

// ProductService manages the product catalogue.
type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, params domain.NewProductParams) (*domain.Product, error)

	// Update applies patch to the product. Fields not set in patch keep
	// their stored values.
	Update(ctx context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error)

	// Delete removes the product and renumbers the ones after it.
	Delete(ctx context.Context, id int64) error
}

type productService struct {
	products store.ProductStore
	logger   *slog.Logger
}

// NewProductService creates a ProductService.
func NewProductService(products store.ProductStore, logger *slog.Logger) (ProductService, error) {
	if products == nil {
		return nil, errors.New("product service requires a product store")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &productService{
		products: products,
		logger:   logger.With("component", "product_service"),
	}, nil
}

func (s *productService) List(ctx context.Context) ([]domain.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *productService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	return product, nil
}

func (s *productService) Create(ctx context.Context, params domain.NewProductParams) (*domain.Product, error) {
	product, err := domain.NewProduct(params, time.Now())
	if err != nil {
		return nil, err
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("product created", "product_id", product.ID)
	return product, nil
}

func (s *productService) Update(
	ctx context.Context,
	id int64,
	patch domain.ProductPatch,
) (*domain.Product, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}

	patch.Apply(product, time.Now())

	if err := s.products.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product %d: %w", id, err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("product updated", "product_id", id)
	return product, nil
}

func (s *productService) Delete(ctx context.Context, id int64) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}
	return nil
}
