// cmd/api/handlers.go
// HTTP request handlers for the books resource. Each handler is a method on
// *applicationDependencies so it has access to the logger and the store.
package main

import (
	"errors"
	"net/http"

	"github.com/adyatma/bookcatalog/internal/data"
	"github.com/adyatma/bookcatalog/internal/validator"
)

// readBookRequest decodes and validates a write payload. It writes the
// appropriate 400 response itself and returns nil when the request is bad.
func (app *applicationDependencies) readBookRequest(w http.ResponseWriter, r *http.Request) *data.BookInput {
	var request data.BookRequest

	err := app.readJSON(w, r, &request)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return nil
	}

	v := validator.New()
	request.Validate(v)
	if !v.Valid() {
		app.failedValidationResponse(w, r, v.Message())
		return nil
	}

	return request.Input()
}

// createBookHandler handles POST /api/books.
// It validates the payload, persists a new book together with its reconciled
// genre links, and responds 201 with the created book.
func (app *applicationDependencies) createBookHandler(w http.ResponseWriter, r *http.Request) {
	input := app.readBookRequest(w, r)
	if input == nil {
		return
	}

	book, err := app.models.Books.Insert(r.Context(), input)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, book, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// listBooksHandler handles GET /api/books.
// Query parameters: search (optional substring matched against title, author,
// and genre names), page (default 1), limit (default 10).
func (app *applicationDependencies) listBooksHandler(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	filters := data.Filters{
		Search:   app.readString(qs, "search", ""),
		Page:     app.readInt(qs, "page", 1, 1),
		PageSize: app.readInt(qs, "limit", 10, 1),
	}

	page, err := app.models.Books.GetPage(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, page, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// showBookHandler handles GET /api/books/:id.
// Responds 404 if no book with that id exists.
func (app *applicationDependencies) showBookHandler(w http.ResponseWriter, r *http.Request) {
	id := app.readIDParam(r)

	book, err := app.models.Books.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.bookNotFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, book, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// updateBookHandler handles PUT /api/books/:id.
// The payload must carry the full field set; scalars are replaced
// unconditionally and the genre link set is rebuilt from scratch.
// Responds 404 before any mutation if the book does not exist.
func (app *applicationDependencies) updateBookHandler(w http.ResponseWriter, r *http.Request) {
	id := app.readIDParam(r)

	input := app.readBookRequest(w, r)
	if input == nil {
		return
	}

	book, err := app.models.Books.Update(r.Context(), id, input)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.bookNotFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, book, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// deleteBookHandler handles DELETE /api/books/:id.
// Responds with a confirmation message; 404 if no book with that id exists.
func (app *applicationDependencies) deleteBookHandler(w http.ResponseWriter, r *http.Request) {
	id := app.readIDParam(r)

	err := app.models.Books.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.bookNotFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, map[string]string{"message": "Book deleted successfully"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
