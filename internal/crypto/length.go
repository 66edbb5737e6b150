package crypto

import (
	"errors"
	"fmt"
)

const MaxLength = 128

var ErrInvalidLength = errors.New("invalid password length")

// LengthError reports a requested length above MaxLength.
type LengthError struct {
	Length int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("password length %d exceeds maximum of %d", e.Length, MaxLength)
}

// Is makes errors.Is(err, ErrInvalidLength) match any *LengthError.
func (e *LengthError) Is(target error) bool {
	return target == ErrInvalidLength
}

// ValidateLength resolves the length to generate. A nil request falls back to
// fallback. Lengths above MaxLength are rejected; there is no lower bound and
// negative values are treated as zero.
func ValidateLength(requested *int, fallback int) (int, error) {
	n := fallback
	if requested != nil {
		n = *requested
	}
	if n > MaxLength {
		return 0, &LengthError{Length: n}
	}
	if n < 0 {
		n = 0
	}
	return n, nil
}
