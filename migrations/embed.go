// Package migrations embeds the SQL migration files so they can be used
// by the goose programmatic API in tests and server bootstrap.
// Each store driver has its own directory.
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// Postgres returns the Postgres migrations rooted at ".", ready for
// goose.NewProvider(goose.DialectPostgres, ...).
func Postgres() fs.FS { return sub("postgres") }

// SQLite returns the SQLite migrations rooted at ".".
func SQLite() fs.FS { return sub("sqlite") }

func sub(dir string) fs.FS {
	f, err := fs.Sub(files, dir)
	if err != nil {
		// Only reachable if the embed pattern above changes.
		panic("migrations: " + err.Error())
	}
	return f
}
