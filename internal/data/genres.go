// internal/data/genres.go
// Genre reconciliation: partition the requested genre names into those
// already persisted and those needing creation, then link the combined set
// to the book being written.
package data

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const (
	genresByNameSQL = `SELECT id, name FROM genres WHERE name IN (?)`

	// The no-op DO UPDATE makes RETURNING yield the surviving row's id when a
	// concurrent writer created the same name first.
	upsertGenreSQL = `INSERT INTO genres (id, name) VALUES ($1, $2) ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name RETURNING id`

	insertBookLinkSQL = `INSERT INTO book_genres (book_id, genre_id, position) VALUES ($1, $2, $3)`
)

// dedupeNames returns names with duplicates removed, preserving first-seen
// order. A book's genre set must never contain a name twice.
func dedupeNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	unique := make([]string, 0, len(names))
	for _, name := range names {
		if !seen[name] {
			seen[name] = true
			unique = append(unique, name)
		}
	}
	return unique
}

// mergeGenres combines the persisted genres matching a request with the
// requested names that matched nothing. Existing genres come first in query
// order; each remaining name is appended in request order with a freshly
// generated id. Matching is exact and case-sensitive, no normalization.
func mergeGenres(existing []Genre, requested []string) []Genre {
	known := make(map[string]bool, len(existing))
	for _, genre := range existing {
		known[genre.Name] = true
	}

	combined := make([]Genre, 0, len(requested))
	combined = append(combined, existing...)
	for _, name := range requested {
		if !known[name] {
			combined = append(combined, Genre{ID: uuid.NewString(), Name: name})
		}
	}
	return combined
}

// reconcileGenres resolves the requested genre names against the persisted
// genre set inside tx and returns the combined link targets for the book
// being written.
func reconcileGenres(ctx context.Context, tx *sqlx.Tx, names []string) ([]Genre, error) {
	requested := dedupeNames(names)
	if len(requested) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(genresByNameSQL, requested)
	if err != nil {
		return nil, err
	}

	existing := []Genre{}
	if err := tx.SelectContext(ctx, &existing, tx.Rebind(query), args...); err != nil {
		return nil, err
	}

	return mergeGenres(existing, requested), nil
}

// linkGenres reconciles names and links the resulting genres to bookID with
// connect-or-create semantics: each entry is upserted against the unique
// name constraint and the surviving row is linked at its position. Returns
// the linked names in link order.
func linkGenres(ctx context.Context, tx *sqlx.Tx, bookID string, names []string) ([]string, error) {
	genres, err := reconcileGenres(ctx, tx, names)
	if err != nil {
		return nil, err
	}

	linked := make([]string, 0, len(genres))
	for position, genre := range genres {
		var genreID string
		if err := tx.QueryRowContext(ctx, upsertGenreSQL, genre.ID, genre.Name).Scan(&genreID); err != nil {
			return nil, err
		}
		if _, err := tx.ExecContext(ctx, insertBookLinkSQL, bookID, genreID, position); err != nil {
			return nil, err
		}
		linked = append(linked, genre.Name)
	}
	return linked, nil
}
