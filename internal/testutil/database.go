// Package testutil provides shared helpers for tests.
package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/finpulse/finpulse/internal/storage"
)

// SetupTestDB creates an in-memory SQLite database with the full schema
// applied. The database is closed automatically when the test finishes.
func SetupTestDB(t *testing.T) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	require.NoError(t, err, "failed to create test database")

	err = store.Migrate(context.Background())
	require.NoError(t, err, "failed to migrate test database")

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}
