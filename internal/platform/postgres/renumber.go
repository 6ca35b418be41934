package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/storefront-api/internal/platform/logger"
	"github.com/phrazzld/storefront-api/internal/store"
)

// deleteAndRenumber removes the row with the given id from table, shifts
// every higher id down by one and points the id sequence at MAX(id)+1.
// tx must be a transaction. The table name is never user input.
//
// Returns notFound when no row has the id; the caller's transaction then
// rolls back and nothing is renumbered.
func deleteAndRenumber(ctx context.Context, tx store.DBTX, table string, id int64, notFound error) error {
	log := logger.FromContext(ctx)

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("LOCK TABLE %s IN SHARE ROW EXCLUSIVE MODE", table)); err != nil {
		return fmt.Errorf("failed to lock %s: %w", table, err)
	}

	// The primary key is DEFERRABLE; checking it at commit lets the shift
	// below pass through transient duplicates.
	if _, err := tx.ExecContext(ctx, "SET CONSTRAINTS ALL DEFERRED"); err != nil {
		return fmt.Errorf("failed to defer constraints: %w", err)
	}

	result, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", table), id)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, MapError(err))
	}
	if err := CheckRowsAffected(result, notFound); err != nil {
		return err
	}

	shifted, err := tx.ExecContext(ctx, fmt.Sprintf("UPDATE %s SET id = id - 1 WHERE id > $1", table), id)
	if err != nil {
		return fmt.Errorf("failed to renumber %s: %w", table, MapError(err))
	}

	var maxID int64
	if err := tx.QueryRowContext(ctx, fmt.Sprintf("SELECT COALESCE(MAX(id), 0) FROM %s", table)).Scan(&maxID); err != nil {
		return fmt.Errorf("failed to read max id of %s: %w", table, err)
	}

	if _, err := tx.ExecContext(ctx,
		"SELECT setval(pg_get_serial_sequence($1, 'id'), $2, false)",
		table, maxID+1,
	); err != nil {
		return fmt.Errorf("failed to reset %s id sequence: %w", table, err)
	}

	rows, _ := shifted.RowsAffected()
	log.Debug("renumbered rows after delete",
		slog.String("table", table),
		slog.Int64("deleted_id", id),
		slog.Int64("shifted", rows),
		slog.Int64("next_id", maxID+1))
	return nil
}
