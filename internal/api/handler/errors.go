package handler

import (
	"net/http"

	"github.com/aspect/anchor/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest   = apierr.CodeInvalidRequest
	CodeAddressOccupied  = apierr.CodeAddressOccupied
	CodeCapacityExceeded = apierr.CodeCapacityExceeded
	CodeRecordNotFound   = apierr.CodeRecordNotFound
	CodeUnauthorized     = apierr.CodeUnauthorized
	CodeSignerRequired   = apierr.CodeSignerRequired
	CodeCorruptAccount   = apierr.CodeCorruptAccount
	CodeInternalError    = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}
