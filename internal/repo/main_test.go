package repo_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/pkordes/ride-logbook/backend/testutil"
)

// TestMain applies all pending Postgres migrations to the test database so
// individual integration tests never need to think about schema state.
// SQLite tests migrate their own in-memory database and always run.
func TestMain(m *testing.M) {
	if os.Getenv(testutil.DSNEnv) == "" {
		// No test DB configured: Postgres tests skip themselves.
		os.Exit(m.Run())
	}

	if err := testutil.MigratePostgres(context.Background(), os.Getenv(testutil.DSNEnv)); err != nil {
		log.Fatalf("TestMain: run migrations: %v", err)
	}

	os.Exit(m.Run())
}
