// Package ranges locates the part of a string that matched a pattern.
package ranges

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRange = errors.New("invalid range")
	ErrOutOfBounds  = errors.New("range out of bounds")
)

// Range is an immutable half-open interval [start, end) of byte offsets.
// The zero value is not a valid range.
type Range struct {
	start int
	end   int
}

func New(start, end int) (Range, error) {
	if start < 0 {
		return Range{}, fmt.Errorf("%w: start index %d is negative", ErrInvalidRange, start)
	}

	if start >= end {
		return Range{}, fmt.Errorf("%w: end index %d is not greater than start index %d", ErrInvalidRange, end, start)
	}

	return Range{start: start, end: end}, nil
}

func MustNew(start, end int) Range {
	r, err := New(start, end)
	if err != nil {
		panic(err)
	}

	return r
}

func (r Range) Start() int { return r.start }
func (r Range) End() int   { return r.end }
func (r Range) Len() int   { return r.end - r.start }

// IsZero reports whether r is the zero Range, the only invalid value a
// caller can hold.
func (r Range) IsZero() bool {
	return r == Range{}
}

func (r Range) Slice(s string) (string, error) {
	if r.end > len(s) {
		return "", r.outOfBounds(len(s))
	}

	return s[r.start:r.end], nil
}

// Bytes returns the part of b covered by r. A nil b yields nil.
func (r Range) Bytes(b []byte) ([]byte, error) {
	if b == nil {
		return nil, nil
	}

	if r.end > len(b) {
		return nil, r.outOfBounds(len(b))
	}

	return b[r.start:r.end], nil
}

func (r Range) outOfBounds(length int) error {
	return fmt.Errorf("%w: %s exceeds length %d", ErrOutOfBounds, r, length)
}

// Compare orders ranges by start, then by end.
func (r Range) Compare(other Range) int {
	switch {
	case r.start < other.start:
		return -1
	case r.start > other.start:
		return 1
	case r.end < other.end:
		return -1
	case r.end > other.end:
		return 1
	default:
		return 0
	}
}

func Less(a, b Range) bool {
	return a.Compare(b) < 0
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.start, r.end)
}
