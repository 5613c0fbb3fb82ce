package codec

import (
	"crypto/sha256"
	"fmt"

	"github.com/aspect/anchor/internal/model"
)

// AccountHeaderSize is the length of the opaque prefix reserved at the front
// of every stored account. Its value identifies the account type to the
// storage collaborator; readers skip it without interpreting it.
const AccountHeaderSize = 8

// DefaultCapacity is the reserved byte budget for a record's encoding,
// excluding the account header. Generous enough for realistic name and car
// model strings (~200 bytes each) plus the fixed fields.
const DefaultCapacity = 2000

// accountTag is the first 8 bytes of SHA-256 of "account:Player".
var accountTag = func() [AccountHeaderSize]byte {
	sum := sha256.Sum256([]byte("account:Player"))
	var tag [AccountHeaderSize]byte
	copy(tag[:], sum[:])
	return tag
}()

// EncodedSize returns the size of p's record encoding, excluding the account
// header. The creation path uses it to reject records whose encoding would
// exceed the reserved capacity.
func EncodedSize(p *model.Player) int {
	size := 32 + 4 + len(p.Name)
	switch p.Location.(type) {
	case model.Point:
		size += 1 + 4 + 4
	default:
		size++
	}
	switch c := p.Car.(type) {
	case model.Suv:
		size += 1 + 4 + len(c.Model) + 4 + 1
	case model.Hatchback:
		size += 1 + 4 + len(c.Model) + 4 + 1
	}
	return size
}

// EncodeAccount encodes p as stored account bytes: the 8-byte header followed
// by authority, name, location and car in declared order.
func EncodeAccount(p *model.Player) ([]byte, error) {
	b := make([]byte, 0, AccountHeaderSize+EncodedSize(p))
	b = append(b, accountTag[:]...)
	b = append(b, p.Authority[:]...)
	b = appendString(b, p.Name)
	b, err := AppendLocation(b, p.Location)
	if err != nil {
		return nil, err
	}
	return AppendCar(b, p.Car)
}

// DecodeAccount decodes stored account bytes back into a record. Trailing
// bytes beyond the encoded fields are ignored; accounts may be padded out to
// their reserved capacity by the storage layer.
func DecodeAccount(b []byte) (*model.Player, error) {
	r := &reader{buf: b}
	if _, err := r.raw(AccountHeaderSize); err != nil {
		return nil, fmt.Errorf("account header: %w", err)
	}
	raw, err := r.raw(32)
	if err != nil {
		return nil, err
	}
	var authority model.Authority
	copy(authority[:], raw)
	name, err := r.str()
	if err != nil {
		return nil, err
	}
	loc, err := readLocation(r)
	if err != nil {
		return nil, err
	}
	car, err := readCar(r)
	if err != nil {
		return nil, err
	}
	return &model.Player{
		Authority: authority,
		Name:      name,
		Location:  loc,
		Car:       car,
	}, nil
}
