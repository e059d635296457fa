package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrNotFound indicates a requested document was not found (or is owned by
// another user, which is reported identically).
type ErrNotFound struct {
	DocumentID uuid.UUID
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("document not found: %s", e.DocumentID)
}

// ErrPersistence indicates a downstream store write failed. Writes that
// already succeeded in the other store are not rolled back.
type ErrPersistence struct {
	Store string
	Cause error
}

func (e *ErrPersistence) Error() string {
	return fmt.Sprintf("%s store write failed: %v", e.Store, e.Cause)
}

func (e *ErrPersistence) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrNotFound:
		return http.StatusNotFound
	case *ErrPersistence:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
