package migrations

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

// Up applies every pending migration for dialect to db.
// Supported dialects are goose.DialectPostgres and goose.DialectSQLite3.
func Up(ctx context.Context, db *sql.DB, dialect goose.Dialect) ([]*goose.MigrationResult, error) {
	provider, err := NewProvider(db, dialect)
	if err != nil {
		return nil, err
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return results, fmt.Errorf("migrations.Up: %w", err)
	}
	return results, nil
}

// NewProvider returns a goose provider over the migrations for dialect.
func NewProvider(db *sql.DB, dialect goose.Dialect) (*goose.Provider, error) {
	var fsys fs.FS
	switch dialect {
	case goose.DialectPostgres:
		fsys = Postgres()
	case goose.DialectSQLite3:
		fsys = SQLite()
	default:
		return nil, fmt.Errorf("migrations.NewProvider: unsupported dialect %q", dialect)
	}
	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("migrations.NewProvider: %w", err)
	}
	return provider, nil
}
