// internal/data/books.go
// PostgreSQL implementation of the BookStore interface. The list query is
// built dynamically with goqu; the fixed CRUD statements are plain SQL.
package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // Register the postgres dialect with goqu.
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var dialect = goqu.Dialect("postgres")

const (
	getBookSQL         = `SELECT id, title, author, published_year, stock FROM books WHERE id = $1`
	insertBookSQL      = `INSERT INTO books (id, title, author, published_year, stock) VALUES ($1, $2, $3, $4, $5)`
	updateBookSQL      = `UPDATE books SET title = $1, author = $2, published_year = $3, stock = $4 WHERE id = $5`
	lockBookSQL        = `SELECT id FROM books WHERE id = $1 FOR UPDATE`
	deleteBookSQL      = `DELETE FROM books WHERE id = $1`
	bookGenresSQL      = `SELECT g.name FROM book_genres bg JOIN genres g ON g.id = bg.genre_id WHERE bg.book_id = $1 ORDER BY bg.position`
	genreNameMatchSQL  = `EXISTS (SELECT 1 FROM book_genres bg JOIN genres g ON g.id = bg.genre_id WHERE bg.book_id = books.id AND g.name ILIKE ?)`
	pageGenresSQL      = `SELECT bg.book_id, g.name FROM book_genres bg JOIN genres g ON g.id = bg.genre_id WHERE bg.book_id IN (?) ORDER BY bg.book_id, bg.position`
	deleteBookLinksSQL = `DELETE FROM book_genres WHERE book_id = $1`
)

// BookModel wraps a *sqlx.DB connection pool and provides the store
// operations for book records and their genre links.
type BookModel struct {
	DB *sqlx.DB
}

// searchCondition builds the WHERE clause for a list request: a substring
// match (case-insensitive) against title, author, or any linked genre name,
// combined with OR. An empty search string matches everything.
func searchCondition(search string) []goqu.Expression {
	if search == "" {
		return nil
	}
	pattern := "%" + search + "%"
	return []goqu.Expression{
		goqu.Or(
			goqu.I("books.title").ILike(pattern),
			goqu.I("books.author").ILike(pattern),
			goqu.L(genreNameMatchSQL, pattern),
		),
	}
}

// GetPage retrieves one page of books matching the filters. It counts the
// total matches first, then fetches the page slice in insertion order and
// batch-loads the genre names of every book on the page.
func (m BookModel) GetPage(ctx context.Context, filters Filters) (*BookPage, error) {
	base := dialect.From("books").Where(searchCondition(filters.Search)...)

	countQuery, countArgs, err := base.Select(goqu.COUNT(goqu.Star())).Prepared(true).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build count query: %w", err)
	}

	var totalBooks int
	if err := m.DB.QueryRowxContext(ctx, countQuery, countArgs...).Scan(&totalBooks); err != nil {
		return nil, err
	}

	pageQuery, pageArgs, err := base.
		Select("id", "title", "author", "published_year", "stock").
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Limit(uint(filters.limit())).
		Offset(uint(filters.offset())).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build page query: %w", err)
	}

	rows, err := m.DB.QueryxContext(ctx, pageQuery, pageArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := []*Book{}
	for rows.Next() {
		var book Book
		if err := rows.StructScan(&book); err != nil {
			return nil, err
		}
		book.Genres = []string{}
		books = append(books, &book)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := m.loadPageGenres(ctx, books); err != nil {
		return nil, err
	}

	return &BookPage{
		Page:       filters.Page,
		TotalPages: totalPages(totalBooks, filters.PageSize),
		TotalBooks: totalBooks,
		Books:      books,
	}, nil
}

// loadPageGenres fetches the genre names for every book in books with a
// single query and attaches them in link order.
func (m BookModel) loadPageGenres(ctx context.Context, books []*Book) error {
	if len(books) == 0 {
		return nil
	}

	ids := make([]string, len(books))
	byID := make(map[string]*Book, len(books))
	for i, book := range books {
		ids[i] = book.ID
		byID[book.ID] = book
	}

	query, args, err := sqlx.In(pageGenresSQL, ids)
	if err != nil {
		return err
	}

	rows, err := m.DB.QueryxContext(ctx, m.DB.Rebind(query), args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var bookID, name string
		if err := rows.Scan(&bookID, &name); err != nil {
			return err
		}
		byID[bookID].Genres = append(byID[bookID].Genres, name)
	}
	return rows.Err()
}

// Get retrieves a single book by its id, with genre names in link order.
// Returns ErrRecordNotFound if no book with the given id exists.
func (m BookModel) Get(ctx context.Context, id string) (*Book, error) {
	var book Book
	err := m.DB.QueryRowxContext(ctx, getBookSQL, id).StructScan(&book)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	book.Genres = []string{}
	if err := m.DB.SelectContext(ctx, &book.Genres, bookGenresSQL, id); err != nil {
		return nil, err
	}
	return &book, nil
}

// Insert persists a new book with a freshly generated id, reconciling and
// linking its genres in the same transaction.
func (m BookModel) Insert(ctx context.Context, input *BookInput) (*Book, error) {
	book := &Book{
		ID:            uuid.NewString(),
		Title:         input.Title,
		Author:        input.Author,
		PublishedYear: input.PublishedYear,
		Stock:         input.Stock,
	}

	tx, err := m.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, insertBookSQL, book.ID, book.Title, book.Author, book.PublishedYear, book.Stock)
	if err != nil {
		return nil, err
	}

	book.Genres, err = linkGenres(ctx, tx, book.ID, input.Genres)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return book, nil
}

// Update replaces every scalar field of the book and its entire genre link
// set with the request's values. The row is locked first; if the id is
// absent the transaction is abandoned before any mutation.
func (m BookModel) Update(ctx context.Context, id string, input *BookInput) (*Book, error) {
	tx, err := m.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var lockedID string
	if err := tx.QueryRowContext(ctx, lockBookSQL, id).Scan(&lockedID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	book := &Book{
		ID:            id,
		Title:         input.Title,
		Author:        input.Author,
		PublishedYear: input.PublishedYear,
		Stock:         input.Stock,
	}

	_, err = tx.ExecContext(ctx, updateBookSQL, book.Title, book.Author, book.PublishedYear, book.Stock, id)
	if err != nil {
		return nil, err
	}

	// Clear-and-replace: the previous link set is never merged with the new one.
	if _, err := tx.ExecContext(ctx, deleteBookLinksSQL, id); err != nil {
		return nil, err
	}

	book.Genres, err = linkGenres(ctx, tx, id, input.Genres)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return book, nil
}

// Delete removes the book with the given id. The join rows cascade with the
// book row; genre rows are never deleted. Returns ErrRecordNotFound if no
// matching record exists.
func (m BookModel) Delete(ctx context.Context, id string) error {
	result, err := m.DB.ExecContext(ctx, deleteBookSQL, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
