package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/storefront-api/internal/config"
	"github.com/phrazzld/storefront-api/internal/platform/postgres"
	"github.com/phrazzld/storefront-api/internal/service"
	"github.com/phrazzld/storefront-api/internal/service/auth"
	"github.com/phrazzld/storefront-api/internal/store"
)

// application holds the shared dependencies of the server so they can be
// wired once and released together on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore    store.UserStore
	productStore store.ProductStore

	hasher auth.PasswordHasher
	tokens auth.TokenService

	authService    service.AuthService
	userService    service.UserService
	productService service.ProductService

	// tokenChecker is nil unless auth.enforce_latest_token is set.
	tokenChecker service.TokenChecker
}

// newApplication wires stores, services and auth components on top of an
// established database connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.productStore = postgres.NewPostgresProductStore(db, logger)

	if err := app.initServices(); err != nil {
		return nil, err
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// initServices builds the auth components and services from the stores
// already set on app.
func (app *application) initServices() error {
	cfg := app.config
	var err error

	app.hasher = auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	app.tokens, err = auth.NewTokenService(cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to initialize token service: %w", err)
	}
	app.logger.Info("Token service initialized",
		slog.Int("token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes))

	app.authService, err = service.NewAuthService(app.userStore, app.hasher, app.tokens, app.logger)
	if err != nil {
		return fmt.Errorf("failed to create auth service: %w", err)
	}
	app.userService, err = service.NewUserService(app.userStore, app.logger)
	if err != nil {
		return fmt.Errorf("failed to create user service: %w", err)
	}
	app.productService, err = service.NewProductService(app.productStore, app.logger)
	if err != nil {
		return fmt.Errorf("failed to create product service: %w", err)
	}

	if cfg.Auth.EnforceLatestToken {
		app.tokenChecker = service.NewTokenChecker(app.userStore)
	}
	return nil
}

// Run serves HTTP until ctx is cancelled or a shutdown signal arrives.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", slog.Any("error", err))
		}
	}
	app.logger.Info("Application shutdown completed")
}
