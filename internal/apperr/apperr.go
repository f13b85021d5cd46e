// Package apperr defines the single error kind handlers return to clients.
//
// An *Error carries the HTTP status to answer with and the message to put in
// the {"error": "..."} body. Anything that is not an *Error is treated as a
// server fault by the HTTP error handler.
package apperr

import (
	"errors"
	"net/http"
)

// Error is an application error with an HTTP status.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// ToMap is the JSON body sent to the client.
func (e *Error) ToMap() map[string]string {
	return map[string]string{"error": e.Message}
}

// New creates an Error; a status outside 4xx/5xx becomes 400.
func New(status int, message string) *Error {
	if status < 400 || status > 599 {
		status = http.StatusBadRequest
	}
	return &Error{Status: status, Message: message}
}

// BadRequest creates a 400 Error.
func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

// NotFound creates a 404 Error.
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
