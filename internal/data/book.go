// Package data provides the data model, request validation, and the
// PostgreSQL-backed store for the book catalog.
package data

import (
	"github.com/adyatma/bookcatalog/internal/validator"
)

// Book represents a single catalog record. Genres holds the linked genre
// names in link order; it is loaded separately from the book row.
type Book struct {
	ID            string   `json:"id" db:"id"`
	Title         string   `json:"title" db:"title"`
	Author        string   `json:"author" db:"author"`
	PublishedYear int      `json:"publishedYear" db:"published_year"`
	Genres        []string `json:"genres" db:"-"`
	Stock         int      `json:"stock" db:"stock"`
}

// Genre is a named tag shared across books through the book_genres join table.
type Genre struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// BookRequest carries the raw fields of a create or update request.
// Required fields are pointers so that an absent field can be told apart
// from one supplied with its zero value; the distinction drives the two
// flavours of "required" message below.
type BookRequest struct {
	Title         *string  `json:"title"`
	Author        *string  `json:"author"`
	PublishedYear *int     `json:"publishedYear"`
	Genres        []string `json:"genres"`
	Stock         *int     `json:"stock"`
}

// BookInput is a fully validated write payload, ready for the store.
type BookInput struct {
	Title         string
	Author        string
	PublishedYear int
	Genres        []string
	Stock         int
}

// Validate checks the request against the write schema: title and author
// present and non-empty, publishedYear within [1000, 9999], genres present
// (an empty array is fine), stock non-negative. Every violation is recorded
// on v in field order.
func (r *BookRequest) Validate(v *validator.Validator) {
	v.Check(r.Title != nil, "title", `"title" is required`)
	if r.Title != nil {
		v.Check(*r.Title != "", "title", "Title is required")
	}

	v.Check(r.Author != nil, "author", `"author" is required`)
	if r.Author != nil {
		v.Check(*r.Author != "", "author", "Author is required")
	}

	v.Check(r.PublishedYear != nil, "publishedYear", `"publishedYear" is required`)
	if r.PublishedYear != nil {
		v.Check(*r.PublishedYear >= 1000, "publishedYear", "Published year must be at least 1000")
		v.Check(*r.PublishedYear <= 9999, "publishedYear", "Published year must be at most 9999")
	}

	v.Check(r.Genres != nil, "genres", `"genres" is required`)

	v.Check(r.Stock != nil, "stock", `"stock" is required`)
	if r.Stock != nil {
		v.Check(*r.Stock >= 0, "stock", "Stock must be a positive integer")
	}
}

// Input converts a validated request into a BookInput.
// Call only after Validate reported no failures.
func (r *BookRequest) Input() *BookInput {
	return &BookInput{
		Title:         *r.Title,
		Author:        *r.Author,
		PublishedYear: *r.PublishedYear,
		Genres:        r.Genres,
		Stock:         *r.Stock,
	}
}
