package store

import (
	"context"

	"github.com/phrazzld/storefront-api/internal/domain"
)

// ProductStore defines the interface for product data persistence.
type ProductStore interface {
	// Create inserts product and sets product.ID.
	Create(ctx context.Context, product *domain.Product) error

	// GetByID returns ErrProductNotFound if no product has the given id.
	GetByID(ctx context.Context, id int64) (*domain.Product, error)

	// List returns every product ordered by id.
	List(ctx context.Context) ([]domain.Product, error)

	// Update writes every column of product.
	// Returns ErrProductNotFound if the product does not exist.
	Update(ctx context.Context, product *domain.Product) error

	// Delete removes the product, renumbers higher ids and resets the id
	// sequence inside one transaction.
	// Returns ErrProductNotFound if the product does not exist.
	Delete(ctx context.Context, id int64) error
}
