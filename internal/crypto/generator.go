package crypto

import (
	"crypto/rand"
	"io"
)

// Generator produces passwords from an injected randomness reader. It holds
// no other state, so one Generator backed by crypto/rand may be shared across
// goroutines.
type Generator struct {
	rand io.Reader
}

// NewGenerator returns a Generator reading from r, or from crypto/rand when r is nil.
func NewGenerator(r io.Reader) *Generator {
	if r == nil {
		r = rand.Reader
	}
	return &Generator{rand: r}
}

// Standard returns a password of the given length where every character is
// drawn independently and uniformly from the 70-character standard pool.
func (g *Generator) Standard(length int) (string, error) {
	if length > MaxLength {
		return "", &LengthError{Length: length}
	}
	if length <= 0 {
		return "", nil
	}

	src := NewSource(g.rand)
	defer src.Close()

	result := make([]byte, length)
	for i := range result {
		ch, err := src.Char(standardPool)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	return string(result), nil
}

// shuffle performs a Fisher-Yates shuffle drawing swap indexes from src.
func shuffle(src *Source, data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := src.Int(0, i+1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}
