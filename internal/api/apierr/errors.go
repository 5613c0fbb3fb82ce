package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aspect/anchor/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeAddressOccupied  = "ADDRESS_OCCUPIED"
	CodeCapacityExceeded = "CAPACITY_EXCEEDED"
	CodeRecordNotFound   = "RECORD_NOT_FOUND"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeSignerRequired   = "SIGNER_REQUIRED"
	CodeCorruptAccount   = "CORRUPT_ACCOUNT"
	CodeInternalError    = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrAddressOccupied):
		return &httpError{http.StatusConflict, APIError{CodeAddressOccupied, "A record already exists at this address"}}
	case errors.Is(err, model.ErrCapacityExceeded):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeCapacityExceeded, "Record encoding exceeds reserved capacity"}}
	case errors.Is(err, model.ErrRecordNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeRecordNotFound, "Record not found"}}
	case errors.Is(err, model.ErrUnauthorized):
		return &httpError{http.StatusForbidden, APIError{CodeUnauthorized, "Caller is not the record authority"}}
	case errors.Is(err, model.ErrUnknownVariant), errors.Is(err, model.ErrTruncatedInput):
		// Stored bytes no longer decode; surfaced as a server-side fault
		// rather than a default value.
		return &httpError{http.StatusInternalServerError, APIError{CodeCorruptAccount, "Stored account bytes are corrupt"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewSignerRequiredError creates an error for requests missing the signer header
func NewSignerRequiredError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeSignerRequired, "X-Anchor-Signer header required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
