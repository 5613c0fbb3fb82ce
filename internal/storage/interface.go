package storage

import (
	"context"

	"github.com/aspect/anchor/internal/model"
)

// Storage defines the interface for account persistence. Values are opaque
// encoded account bytes; all decoding and precondition checking happens in
// the service layer so the authority gate stays in one place.
type Storage interface {
	// SaveAccount writes the account bytes at addr, overwriting any
	// existing value.
	SaveAccount(ctx context.Context, addr model.Address, data []byte) error

	// GetAccount returns the account bytes at addr, or
	// model.ErrRecordNotFound if nothing is stored there.
	GetAccount(ctx context.Context, addr model.Address) ([]byte, error)

	// AccountExists reports whether an account is stored at addr.
	AccountExists(ctx context.Context, addr model.Address) (bool, error)
}
