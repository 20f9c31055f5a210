// cmd/api/errors.go
// All error-response helpers for the application. Every failure a client
// can see goes through errorResponse, so the wire shape is defined in
// exactly one place.
package main

import (
	"log/slog"
	"net/http"
)

// errorMessage is the JSON shape of every error response.
type errorMessage struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// logError logs an internal error at ERROR level with the request method and
// URL for context.
func (app *applicationDependencies) logError(r *http.Request, err error) {
	app.logger.Error(err.Error(),
		slog.String("request_method", r.Method),
		slog.String("request_url", r.URL.String()),
	)
}

// errorResponse sends the error envelope with the given status code and
// message. It is the low-level building block used by the helpers below.
func (app *applicationDependencies) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	data := errorMessage{Status: "error", Message: message, StatusCode: status}
	err := app.writeJSON(w, status, data, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// serverErrorResponse logs a 500-level error and sends a generic message to
// the client. Internal error details are never exposed to clients.
func (app *applicationDependencies) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	app.errorResponse(w, r, http.StatusInternalServerError, "Internal Server Error")
}

// bookNotFoundResponse sends the 404 returned when a referenced book id is
// absent from the store.
func (app *applicationDependencies) bookNotFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, "Book not found")
}

// routeNotFoundResponse sends the 404 returned for requests to undefined
// routes. Wired as the router's NotFound and MethodNotAllowed handler.
func (app *applicationDependencies) routeNotFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, "URL not found")
}

// badRequestResponse sends a 400 Bad Request with the error message from the
// caller. Used for bodies that fail to decode.
func (app *applicationDependencies) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

// failedValidationResponse sends a 400 carrying the combined validation
// message, e.g. `"title" is required, Stock must be a positive integer`.
func (app *applicationDependencies) failedValidationResponse(w http.ResponseWriter, r *http.Request, message string) {
	app.errorResponse(w, r, http.StatusBadRequest, message)
}

// rateLimitExceededResponse sends a 429 Too Many Requests error.
func (app *applicationDependencies) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusTooManyRequests, "Too many requests from this IP, please try again later.")
}
