package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math"
)

// sourceBatch is the number of bytes pulled from the reader per refill.
const sourceBatch = 64

var (
	ErrRandomUnavailable = errors.New("secure random source unavailable")
	ErrInvalidRange      = errors.New("invalid random range")
)

// Source hands out uniformly distributed values from a cryptographically
// secure reader. Bytes are read in batches and a Source is meant to live for
// a single generation call: create it, defer Close, and drop it.
//
// A Source is not safe for concurrent use.
type Source struct {
	r   io.Reader
	buf [sourceBatch]byte
	pos int
}

// NewSource returns a Source reading from r, or from crypto/rand when r is nil.
func NewSource(r io.Reader) *Source {
	if r == nil {
		r = rand.Reader
	}
	return &Source{r: r, pos: sourceBatch}
}

// Byte returns the next random byte.
func (s *Source) Byte() (byte, error) {
	if s.pos == len(s.buf) {
		if _, err := io.ReadFull(s.r, s.buf[:]); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrRandomUnavailable, err)
		}
		s.pos = 0
	}
	b := s.buf[s.pos]
	s.buf[s.pos] = 0
	s.pos++
	return b, nil
}

// Char returns a character chosen uniformly from pool. Bytes falling in the
// tail that would bias the modulo reduction are discarded and redrawn.
func (s *Source) Char(pool string) (byte, error) {
	n := len(pool)
	if n == 0 || n > 256 {
		return 0, ErrInvalidRange
	}
	limit := 256 - 256%n
	for {
		b, err := s.Byte()
		if err != nil {
			return 0, err
		}
		if int(b) < limit {
			return pool[int(b)%n], nil
		}
	}
}

// Int returns a uniform integer in [lo, hi). It draws 4 bytes per attempt,
// masks them to a non-negative 31-bit value and rejects the biased tail.
func (s *Source) Int(lo, hi int) (int, error) {
	if hi <= lo || hi-lo > math.MaxInt32 {
		return 0, ErrInvalidRange
	}
	n := uint32(hi - lo)
	const span = uint32(1) << 31
	limit := span - span%n
	for {
		var v uint32
		for range 4 {
			b, err := s.Byte()
			if err != nil {
				return 0, err
			}
			v = v<<8 | uint32(b)
		}
		v &= math.MaxInt32
		if v < limit {
			return lo + int(v%n), nil
		}
	}
}

// Close wipes any buffered bytes. The Source refills on next use.
func (s *Source) Close() {
	clear(s.buf[:])
	s.pos = len(s.buf)
}
