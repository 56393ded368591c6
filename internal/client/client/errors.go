package client

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable   = errors.New("server unavailable")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrConflict      = errors.New("email already registered")
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnexpectedAPI = errors.New("unexpected server response")
)

// APIError carries the server's status code and error message. It unwraps to
// one of the sentinel errors above.
type APIError struct {
	Status  int
	Message string
	Details string
	kind    error
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Details)
	}
	return e.Message
}

func (e *APIError) Unwrap() error { return e.kind }
