package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/platform/logger"
	"github.com/phrazzld/storefront-api/internal/store"
)

const productColumns = `id, product_name, category, price, description, stock, image, status, created_at, updated_at`

// PostgresProductStore implements store.ProductStore on PostgreSQL.
type PostgresProductStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresProductStore creates a product store on db. If logger is nil
// the default logger is used.
func NewPostgresProductStore(db *sql.DB, logger *slog.Logger) *PostgresProductStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresProductStore{
		db:     db,
		logger: logger.With(slog.String("component", "product_store")),
	}
}

var _ store.ProductStore = (*PostgresProductStore)(nil)

// Create implements store.ProductStore.Create.
func (s *PostgresProductStore) Create(ctx context.Context, product *domain.Product) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := product.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO products (product_name, category, price, description, stock, image, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query,
		product.ProductName,
		product.Category,
		product.Price,
		product.Description,
		product.Stock,
		product.Image,
		product.Status,
		product.CreatedAt,
		product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		log.Error("failed to create product", slog.String("error", err.Error()))
		return fmt.Errorf("failed to create product: %w", MapError(err))
	}

	log.Info("product created", slog.Int64("product_id", product.ID))
	return nil
}

// GetByID implements store.ProductStore.GetByID.
func (s *PostgresProductStore) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	product, err := scanProduct(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

// List implements store.ProductStore.List.
func (s *PostgresProductStore) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var products []domain.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}
	return products, nil
}

// Update implements store.ProductStore.Update.
func (s *PostgresProductStore) Update(ctx context.Context, product *domain.Product) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := product.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE products
		SET product_name = $1, category = $2, price = $3, description = $4,
		    stock = $5, image = $6, status = $7, updated_at = $8
		WHERE id = $9
	`
	result, err := s.db.ExecContext(ctx, query,
		product.ProductName,
		product.Category,
		product.Price,
		product.Description,
		product.Stock,
		product.Image,
		product.Status,
		product.UpdatedAt,
		product.ID,
	)
	if err != nil {
		log.Error("failed to update product",
			slog.Int64("product_id", product.ID),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to update product: %w", MapError(err))
	}
	return CheckRowsAffected(result, store.ErrProductNotFound)
}

// Delete implements store.ProductStore.Delete.
func (s *PostgresProductStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)
	ctx = logger.WithLogger(ctx, log)

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return deleteAndRenumber(ctx, tx, "products", id, store.ErrProductNotFound)
	})
	if err != nil {
		if !errors.Is(err, store.ErrProductNotFound) {
			log.Error("failed to delete product",
				slog.Int64("product_id", id),
				slog.String("error", err.Error()))
		}
		return err
	}

	log.Info("product deleted", slog.Int64("product_id", id))
	return nil
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID,
		&p.ProductName,
		&p.Category,
		&p.Price,
		&p.Description,
		&p.Stock,
		&p.Image,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
