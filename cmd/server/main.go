// Package main implements the entry point for the storefront API server,
// which serves account registration and login together with user and
// product management over HTTP.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/phrazzld/storefront-api/internal/config"
	"github.com/phrazzld/storefront-api/internal/platform/logger"
	"github.com/phrazzld/storefront-api/internal/platform/postgres/migrations"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"Run a database migration command and exit (up, down, status, version, reset)")
	flag.Parse()

	if err := run(context.Background(), *migrateCmd, flag.Args()); err != nil {
		log.Fatalf("storefront-api: %v", err)
	}
}

// run loads configuration, connects to the database and then either runs the
// requested migration command or serves HTTP until shutdown.
func run(ctx context.Context, migrateCmd string, migrateArgs []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	l.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.Bool("enforce_latest_token", cfg.Auth.EnforceLatestToken))

	db, err := setupAppDatabase(ctx, cfg, l)
	if err != nil {
		return err
	}

	if migrateCmd != "" {
		defer closeDB(db, l)
		l.Info("Executing migrations", slog.String("command", migrateCmd))
		return migrations.Run(ctx, db, l, migrateCmd, migrateArgs...)
	}

	if cfg.Database.AutoMigrate {
		if err := migrations.Run(ctx, db, l, "up"); err != nil {
			closeDB(db, l)
			return err
		}
	}

	app, err := newApplication(cfg, l, db)
	if err != nil {
		closeDB(db, l)
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return app.Run(ctx)
}

func closeDB(db *sql.DB, l *slog.Logger) {
	if err := db.Close(); err != nil {
		l.Error("Error closing database connection", slog.Any("error", err))
	}
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-migrate command [args...]]\n", os.Args[0])
		flag.PrintDefaults()
	}
}
