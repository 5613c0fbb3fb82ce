// Package codec implements the deterministic binary layout for record
// accounts. Every enum is encoded as a single tag byte (declaration order,
// starting at zero) followed by the arm's fields in declared order. Unsigned
// integers are little-endian fixed width; strings are a u32 length prefix
// followed by UTF-8 bytes.
package codec

import (
	"encoding/binary"

	"github.com/aspect/anchor/internal/model"
)

func appendU32(b []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(b, v)
}

func appendString(b []byte, s string) []byte {
	b = appendU32(b, uint32(len(s)))
	return append(b, s...)
}

// reader consumes a byte slice front to back, tracking the offset so callers
// can report exactly how many bytes a value occupied.
type reader struct {
	buf []byte
	off int
}

func (r *reader) u8() (byte, error) {
	if r.off >= len(r.buf) {
		return 0, model.ErrTruncatedInput
	}
	v := r.buf[r.off]
	r.off++
	return v, nil
}

func (r *reader) u32() (uint32, error) {
	if r.off+4 > len(r.buf) {
		return 0, model.ErrTruncatedInput
	}
	v := binary.LittleEndian.Uint32(r.buf[r.off:])
	r.off += 4
	return v, nil
}

func (r *reader) str() (string, error) {
	n, err := r.u32()
	if err != nil {
		return "", err
	}
	if uint64(r.off)+uint64(n) > uint64(len(r.buf)) {
		return "", model.ErrTruncatedInput
	}
	s := string(r.buf[r.off : r.off+int(n)])
	r.off += int(n)
	return s, nil
}

func (r *reader) raw(n int) ([]byte, error) {
	if r.off+n > len(r.buf) {
		return nil, model.ErrTruncatedInput
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}
