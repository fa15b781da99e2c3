package errs

import (
	"errors"
	"net/http"
)

var (
	ErrInternalServer  = errors.New("Internal server error")
	ErrClient          = errors.New("Bad request")
	ErrInvalidID       = errors.New("Invalid identifier")
	ErrMissingImage    = errors.New("Image file is required")
	ErrMissingEmail    = errors.New("Email is required")
	ErrMissingField    = errors.New("Missing required field")
	ErrInvalidPrice    = errors.New("Price must be a number")
	ErrEmptyBody       = errors.New("Request body is empty")
	ErrNotFound        = errors.New("Resource not found")
	ErrProductNotFound = errors.New("Product Not Found!")
)

// statusTable is checked in order with errors.Is, so wrapped errors keep their status.
var statusTable = []struct {
	err    error
	status int
}{
	{ErrClient, http.StatusBadRequest},
	{ErrInvalidID, http.StatusBadRequest},
	{ErrMissingImage, http.StatusBadRequest},
	{ErrMissingEmail, http.StatusBadRequest},
	{ErrMissingField, http.StatusBadRequest},
	{ErrInvalidPrice, http.StatusBadRequest},
	{ErrEmptyBody, http.StatusBadRequest},
	{ErrNotFound, http.StatusNotFound},
	{ErrProductNotFound, http.StatusNotFound},
	{ErrInternalServer, http.StatusInternalServerError},
}

// StatusCode maps err to the HTTP status it should be answered with.
// Anything unknown is an internal error.
func StatusCode(err error) int {
	for _, entry := range statusTable {
		if errors.Is(err, entry.err) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}

// Message returns the text safe to show to a client. Internal errors never
// expose the underlying cause.
func Message(err error) string {
	if StatusCode(err) >= http.StatusInternalServerError {
		return ErrInternalServer.Error()
	}
	return err.Error()
}
