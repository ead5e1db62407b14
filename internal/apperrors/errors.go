// Package apperrors defines the error taxonomy shared by services and
// handlers. Every client-visible failure is an *Error carrying the HTTP
// status, a short error name and a human-readable message; anything else
// reaching a handler is surfaced as a generic internal server error so
// storage details never leak to callers.
package apperrors

import (
	"errors"
	"net/http"
)

// Error is a client-visible application error
type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"error"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

// New creates a client-visible error
func New(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

var (
	ErrMissingFields = New(http.StatusBadRequest,
		"Missing required fields", "Username and password are required")
	ErrInvalidRole = New(http.StatusBadRequest,
		"Invalid role", `Role must be either "member" or "librarian"`)
	ErrUsernameTaken = New(http.StatusBadRequest,
		"Username already exists", "Please choose a different username")
	ErrMissingCredentials = New(http.StatusBadRequest,
		"Missing credentials", "Username and password are required")
	// Unknown username and wrong password share this error so the two
	// cases cannot be told apart by a caller.
	ErrInvalidCredentials = New(http.StatusUnauthorized,
		"Invalid credentials", "Username or password is incorrect")
	ErrUserNotFound = New(http.StatusNotFound,
		"User not found", "No user found with the given ID")
	ErrBookNotFound = New(http.StatusNotFound,
		"Book not found", "No book found with the given ID")
	ErrStudentNotFound = New(http.StatusNotFound,
		"Student not found", "No student found with the given ID")
	ErrInvalidAvailability = New(http.StatusBadRequest,
		"Invalid availability value", `Availability must be "Y" (available) or "N" (not available)`)
	ErrMissingBookFields = New(http.StatusBadRequest,
		"Missing required fields", "Title and author are required")
	ErrMissingStudentFields = New(http.StatusBadRequest,
		"Missing required fields", "Name and address are required")
	ErrMissingSearchTerm = New(http.StatusBadRequest,
		"Search term is required", "Provide a searchTerm query parameter")
	ErrInvalidID = New(http.StatusBadRequest,
		"Invalid ID", "ID must be a positive integer")
)

// AsError extracts an *Error from err, if any
func AsError(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
