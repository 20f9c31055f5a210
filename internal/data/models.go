// internal/data/models.go
package data

import (
	"context"
	"errors"
	"math"

	"github.com/jmoiron/sqlx"
)

// ErrRecordNotFound is returned when an operation references a book id that
// is not present in the store.
var ErrRecordNotFound = errors.New("record not found")

// BookStore is the typed interface the HTTP layer depends on. BookModel is
// the PostgreSQL implementation; tests substitute a stub.
type BookStore interface {
	GetPage(ctx context.Context, filters Filters) (*BookPage, error)
	Get(ctx context.Context, id string) (*Book, error)
	Insert(ctx context.Context, input *BookInput) (*Book, error)
	Update(ctx context.Context, id string, input *BookInput) (*Book, error)
	Delete(ctx context.Context, id string) error
}

// Models groups every store type the application uses.
// It is passed around via applicationDependencies so handlers never touch
// the database handle directly.
type Models struct {
	Books BookStore
}

// NewModels constructs a Models value wired up to the given connection pool.
// Call this once during application startup.
func NewModels(db *sqlx.DB) Models {
	return Models{
		Books: BookModel{DB: db},
	}
}

// Filters holds the search and pagination parameters of a list request.
type Filters struct {
	Search   string // Optional substring matched against title, author, and genre names
	Page     int    // Current page number (1-indexed)
	PageSize int    // Number of records per page
}

// limit returns the SQL LIMIT value derived from PageSize.
func (f Filters) limit() int { return f.PageSize }

// offset returns the SQL OFFSET value derived from Page and PageSize.
func (f Filters) offset() int { return (f.Page - 1) * f.PageSize }

// BookPage is one page of list results together with its pagination counts.
type BookPage struct {
	Page       int     `json:"page"`
	TotalPages int     `json:"totalPages"`
	TotalBooks int     `json:"totalBooks"`
	Books      []*Book `json:"books"`
}

// totalPages computes the page count for totalBooks records at pageSize per
// page, rounding up. Zero records means zero pages.
func totalPages(totalBooks, pageSize int) int {
	if totalBooks == 0 {
		return 0
	}
	return int(math.Ceil(float64(totalBooks) / float64(pageSize)))
}
