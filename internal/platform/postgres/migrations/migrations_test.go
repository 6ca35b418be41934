package migrations

import (
	"bytes"
	"context"
	"io/fs"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	t.Parallel()

	entries, err := fs.Glob(FS(), "*.sql")
	require.NoError(t, err)
	require.Equal(t, []string{"00001_create_users.sql", "00002_create_products.sql"}, entries)

	for _, name := range entries {
		body, err := fs.ReadFile(FS(), name)
		require.NoError(t, err)
		text := string(body)
		assert.Contains(t, text, "-- +goose Up", name)
		assert.Contains(t, text, "-- +goose Down", name)
		// Renumbering on delete relies on a deferrable primary key.
		assert.Contains(t, text, "DEFERRABLE INITIALLY IMMEDIATE", name)
	}
}

func TestRun_RejectsUnknownCommand(t *testing.T) {
	t.Parallel()

	err := Run(context.Background(), nil, nil, "redo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown migration command "redo"`)
}

func TestSlogGooseLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := &slogGooseLogger{logger: slog.New(slog.NewJSONHandler(&buf, nil))}

	l.Printf("OK   %s\n", "00001_create_users.sql")
	l.Fatalf("failed: %v", "boom")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"level":"INFO"`)
	assert.Contains(t, lines[0], "OK   00001_create_users.sql")
	assert.Contains(t, lines[1], `"level":"ERROR"`)
}
