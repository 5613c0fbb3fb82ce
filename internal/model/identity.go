package model

import (
	"encoding/hex"
	"fmt"
)

// Authority is the 32-byte public identity permitted to mutate a record.
// Equality is byte-exact. Proving control of the key behind it (signature
// verification) is the caller's concern, not this package's.
type Authority [32]byte

// Address is the 32-byte key under which a record account is stored.
type Address [32]byte

// AuthorityFromHex parses a 64-character hex string into an Authority.
func AuthorityFromHex(s string) (Authority, error) {
	var a Authority
	if err := decode32(s, a[:]); err != nil {
		return Authority{}, fmt.Errorf("invalid authority: %w", err)
	}
	return a, nil
}

// AddressFromHex parses a 64-character hex string into an Address.
func AddressFromHex(s string) (Address, error) {
	var a Address
	if err := decode32(s, a[:]); err != nil {
		return Address{}, fmt.Errorf("invalid address: %w", err)
	}
	return a, nil
}

func decode32(s string, dst []byte) error {
	b, err := hex.DecodeString(s)
	if err != nil {
		return err
	}
	if len(b) != 32 {
		return fmt.Errorf("expected 32 bytes, got %d", len(b))
	}
	copy(dst, b)
	return nil
}

func (a Authority) String() string {
	return hex.EncodeToString(a[:])
}

func (a Address) String() string {
	return hex.EncodeToString(a[:])
}
