package migrations_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/pkordes/ride-logbook/backend/migrations"
)

// TestSQLiteMigrations runs the SQLite migrations up and back down against an
// in-memory database. The Postgres round trip lives in testutil and needs
// TEST_DATABASE_URL.
func TestSQLiteMigrations(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	results, err := migrations.Up(ctx, db, goose.DialectSQLite3)
	require.NoError(t, err)
	assert.Len(t, results, 2)

	for _, table := range []string{"events", "ride_projections"} {
		assert.True(t, sqliteTableExists(t, db, table), "expected table %q", table)
	}

	_, err = db.ExecContext(ctx, `INSERT INTO events
		(event_id, aggregate_id, aggregate_type, event_type, event_data, occurred_at, version, user_id)
		VALUES ('e1', 'a1', 'Ride', 'RideCreated', '{}', 0, 0, 'u')`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `UPDATE events SET user_id = 'x'`)
	assert.Error(t, err, "events must reject UPDATE")
	_, err = db.ExecContext(ctx, `DELETE FROM events`)
	assert.Error(t, err, "events must reject DELETE")

	provider, err := migrations.NewProvider(db, goose.DialectSQLite3)
	require.NoError(t, err)
	_, err = provider.DownTo(ctx, 0)
	require.NoError(t, err)
	for _, table := range []string{"events", "ride_projections"} {
		assert.False(t, sqliteTableExists(t, db, table), "expected table %q to be dropped", table)
	}
}

func TestNewProvider_UnsupportedDialect(t *testing.T) {
	_, err := migrations.NewProvider(nil, goose.DialectMySQL)
	assert.Error(t, err)
}

func sqliteTableExists(t *testing.T, db *sql.DB, table string) bool {
	t.Helper()
	var n int
	err := db.QueryRowContext(context.Background(),
		`SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&n)
	require.NoError(t, err)
	return n == 1
}
