package model

import "errors"

// Common errors used across the application. All are terminal for the
// operation that returns them; nothing in this module retries internally.
var (
	// Record lifecycle errors
	ErrAddressOccupied  = errors.New("address is already occupied")
	ErrCapacityExceeded = errors.New("record encoding exceeds reserved capacity")
	ErrRecordNotFound   = errors.New("record not found")
	ErrUnauthorized     = errors.New("caller is not the record authority")

	// Codec errors. Either of these on a read means corruption or an
	// encoder/decoder version mismatch; the read aborts rather than
	// returning a default value.
	ErrUnknownVariant = errors.New("unknown variant discriminant")
	ErrTruncatedInput = errors.New("truncated input")
)
