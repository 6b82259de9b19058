// Package dbtest provides an in-memory store with the service schema for tests.
package dbtest

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/crpm-service/internal/pkg/database"
)

// NewSQLite returns a fresh in-memory database with all tables created.
func NewSQLite(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	db, err := database.NewSQLite(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.EnsureSchema(ctx, db, database.DriverSQLite))
	return db
}

// Count returns the number of rows in table.
func Count(t *testing.T, db *sqlx.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.Get(&n, "SELECT COUNT(*) FROM "+table))
	return n
}
