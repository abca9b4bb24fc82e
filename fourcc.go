package fourcc

import (
	"bytes"
	"encoding/binary"
)

// TypeId is the raw four-byte representation underlying a FourCC value.
type TypeId = [4]byte

// FourCC is a four character code.
//
// The zero value is four NUL bytes. Any four bytes form a valid FourCC;
// values are not restricted to printable ASCII.
type FourCC [4]byte

// Zero is the zero FourCC (four NUL bytes).
var Zero FourCC

// New returns the FourCC wrapping the four bytes of id unchanged.
func New(id TypeId) FourCC {
	return FourCC(id)
}

// FromUint32 decomposes n into four bytes in big-endian order. It is the
// exact inverse of Uint32.
func FromUint32(n uint32) FourCC {
	var f FourCC
	binary.BigEndian.PutUint32(f[:], n)
	return f
}

// FromUint32LE is FromUint32 in little-endian order, for formats (RIFF among
// them) that read their tags as little-endian integers. Exact inverse of
// Uint32LE.
func FromUint32LE(n uint32) FourCC {
	var f FourCC
	binary.LittleEndian.PutUint32(f[:], n)
	return f
}

// Parse converts a four character string into a FourCC. The string's byte
// length must be exactly 4; any other length fails with an error satisfying
// errors.Is(err, ErrInvalidLength). The bytes themselves are not validated.
func Parse(s string) (FourCC, error) {
	if len(s) != 4 {
		return Zero, &LengthError{Length: len(s)}
	}
	var f FourCC
	copy(f[:], s)
	return f, nil
}

// Must is Parse for package-level declarations: it panics on invalid input.
func Must(s string) FourCC {
	f, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return f
}

// TypeId returns the raw four bytes.
func (f FourCC) TypeId() TypeId {
	return TypeId(f)
}

// Uint32 composes the four bytes into a 32-bit value in big-endian order.
func (f FourCC) Uint32() uint32 {
	return binary.BigEndian.Uint32(f[:])
}

// Uint32LE composes the four bytes into a 32-bit value in little-endian order.
func (f FourCC) Uint32LE() uint32 {
	return binary.LittleEndian.Uint32(f[:])
}

// String returns the four raw bytes as a string. Non-printable bytes pass
// through unchanged, so Parse(f.String()) == f for every value.
func (f FourCC) String() string {
	return string(f[:])
}

// GoString returns the quoted form used by %#v, e.g. 'RGBA'.
func (f FourCC) GoString() string {
	return "'" + string(f[:]) + "'"
}

// IsValid reports whether all four bytes are printable ASCII (0x20..0x7E).
// Space is accepted: registered codes such as "fmt " and "AVI " pad with
// trailing spaces.
func (f FourCC) IsValid() bool {
	for _, b := range f {
		if b < 0x20 || b > 0x7E {
			return false
		}
	}
	return true
}

// Compare orders FourCC values lexicographically over their four bytes,
// returning -1, 0, or 1.
func (f FourCC) Compare(o FourCC) int {
	return bytes.Compare(f[:], o[:])
}
