package models

import (
	"errors"
	"fmt"
)

var (
	// ErrRestaurantNotFound is returned when a restaurant id does not exist
	ErrRestaurantNotFound = errors.New("restaurant not found")
	// ErrPizzaNotFound is returned when a pizza id does not exist
	ErrPizzaNotFound = errors.New("pizza not found")
)

// ValidationErrorsMarker is the first entry of every rejected write response
const ValidationErrorsMarker = "validation errors"

// ValidationError reports a field that failed validation before persistence
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IntegrityError reports a reference to a row that does not exist
type IntegrityError struct {
	Field string
	ID    uint
	Err   error
}

func (e *IntegrityError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s constraint failed: %v", e.Field, e.Err)
	case e.ID == 0:
		return fmt.Sprintf("%s is required and must reference an existing row", e.Field)
	default:
		return fmt.Sprintf("%s %d does not reference an existing row", e.Field, e.ID)
	}
}

func (e *IntegrityError) Unwrap() error {
	return e.Err
}

// IsWriteError reports whether err should be surfaced to the client as a
// rejected write rather than an internal failure.
func IsWriteError(err error) bool {
	var validationErr *ValidationError
	var integrityErr *IntegrityError
	return errors.As(err, &validationErr) || errors.As(err, &integrityErr)
}

// ErrorResponse is the body returned for a single error, such as a 404
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorsResponse is the body returned when a write is rejected
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

// NewErrorResponse creates a new single error body
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// NewErrorsResponse creates the rejected write body: the fixed marker followed by the error detail
func NewErrorsResponse(err error) ErrorsResponse {
	return ErrorsResponse{Errors: []string{ValidationErrorsMarker, err.Error()}}
}
