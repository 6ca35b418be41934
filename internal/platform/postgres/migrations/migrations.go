// Package migrations embeds the database schema and runs it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var files embed.FS

// Commands lists the goose commands accepted by Run.
var Commands = []string{"up", "down", "status", "version", "reset"}

// FS returns the embedded migration files.
func FS() embed.FS {
	return files
}

// Run executes the goose command against db using the embedded migrations.
func Run(ctx context.Context, db *sql.DB, logger *slog.Logger, command string, args ...string) error {
	if !isCommand(command) {
		return fmt.Errorf("unknown migration command %q (want one of %s)",
			command, strings.Join(Commands, ", "))
	}
	if logger == nil {
		logger = slog.Default()
	}

	goose.SetBaseFS(files)
	goose.SetLogger(&slogGooseLogger{logger: logger.With(slog.String("component", "migrations"))})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.RunContext(ctx, command, db, ".", args...); err != nil {
		return fmt.Errorf("goose %s failed: %w", command, err)
	}
	return nil
}

func isCommand(command string) bool {
	for _, c := range Commands {
		if c == command {
			return true
		}
	}
	return false
}

// slogGooseLogger adapts goose.Logger to slog. Fatalf logs at error level
// and does not exit; Run returns the error instead.
type slogGooseLogger struct {
	logger *slog.Logger
}

func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
