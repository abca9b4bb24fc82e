package fourcc

import (
	"errors"
	"fmt"
)

// ErrInvalidLength is the package's sole error condition: text or byte input
// whose length is not exactly 4.
var ErrInvalidLength = errors.New("fourcc: invalid length")

// LengthError reports input of the wrong length. It unwraps to
// ErrInvalidLength so callers can branch with errors.Is.
type LengthError struct {
	Length int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("fourcc: input must be exactly 4 bytes, got %d", e.Length)
}

func (e *LengthError) Unwrap() error { return ErrInvalidLength }

// IsInvalidLength reports whether err is (or wraps) ErrInvalidLength.
func IsInvalidLength(err error) bool { return errors.Is(err, ErrInvalidLength) }
