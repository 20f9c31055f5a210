// cmd/api/routes.go
package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// routes registers all HTTP endpoints and returns the configured router
// wrapped in the middleware chain (outermost → innermost):
//
//	recoverPanic → rateLimit → logRequest → router
//
// Current endpoints:
//
//	GET    /api/books        – list books (search + pagination)
//	GET    /api/books/:id    – retrieve a single book by ID
//	POST   /api/books        – create a new book
//	PUT    /api/books/:id    – replace an existing book
//	DELETE /api/books/:id    – delete a book by ID
func (app *applicationDependencies) routes() http.Handler {
	router := httprouter.New()

	// Undefined routes and disallowed methods both surface as "URL not found",
	// which keeps the error envelope uniform across every miss.
	router.NotFound = http.HandlerFunc(app.routeNotFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.routeNotFoundResponse)

	router.HandlerFunc(http.MethodGet, "/api/books", app.listBooksHandler)
	router.HandlerFunc(http.MethodGet, "/api/books/:id", app.showBookHandler)
	router.HandlerFunc(http.MethodPost, "/api/books", app.createBookHandler)
	router.HandlerFunc(http.MethodPut, "/api/books/:id", app.updateBookHandler)
	router.HandlerFunc(http.MethodDelete, "/api/books/:id", app.deleteBookHandler)

	// recoverPanic is outermost so it catches panics from the other
	// middlewares and the router alike.
	return app.recoverPanic(app.rateLimit(app.logRequest(router)))
}
