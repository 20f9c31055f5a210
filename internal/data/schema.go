// internal/data/schema.go
package data

import (
	"context"
	_ "embed"

	"github.com/jmoiron/sqlx"
)

//go:embed schema.sql
var schemaSQL string

// EnsureSchema creates the books, genres, and book_genres tables if they do
// not exist yet. Run once at startup, after the pool is opened.
//
// The UNIQUE constraint on genres.name is load-bearing: genre creation is an
// upsert against it, so two concurrent writes requesting the same new name
// converge on a single row instead of creating duplicates.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schemaSQL)
	return err
}
