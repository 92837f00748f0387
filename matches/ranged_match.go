package matches

import (
	"errors"

	"github.com/google/btree"

	"github.com/pivotal-cf/fuss/ranges"
)

var ErrNilMatch = errors.New("cannot associate ranges with a nil match")

const rangeSetDegree = 8

// RangedMatch decorates a Match with the ranges of the item that matched.
// Range data is optional: a match built without ranges reports them as
// absent, which is not the same as an empty set.
type RangedMatch[T any] struct {
	match  Match[T]
	ranges *btree.BTreeG[ranges.Range]
	merged []ranges.Range
}

func NewRangedMatch[T any](match Match[T]) (RangedMatch[T], error) {
	if match == nil {
		return RangedMatch[T]{}, ErrNilMatch
	}

	return RangedMatch[T]{match: match}, nil
}

// WithRanges builds a RangedMatch carrying rs. Duplicates are collapsed and
// zero ranges are dropped.
func WithRanges[T any](match Match[T], rs ...ranges.Range) (RangedMatch[T], error) {
	if match == nil {
		return RangedMatch[T]{}, ErrNilMatch
	}

	set := btree.NewG[ranges.Range](rangeSetDegree, ranges.Less)
	for _, r := range rs {
		if r.IsZero() {
			continue
		}
		set.ReplaceOrInsert(r)
	}

	m := RangedMatch[T]{
		match:  match,
		ranges: set,
	}
	m.merged = ranges.Merge(m.sortedRanges())

	return m, nil
}

func ItemWithRanges[T any](item T, score int, rs ...ranges.Range) RangedMatch[T] {
	m, _ := WithRanges[T](NewWithScore(item, score), rs...)
	return m
}

func (m RangedMatch[T]) Match() Match[T] { return m.match }

func (m RangedMatch[T]) Item() T {
	var zero T
	if m.match == nil {
		return zero
	}
	return m.match.Item()
}

func (m RangedMatch[T]) Score() int {
	if m.match == nil {
		return 0
	}
	return m.match.Score()
}

// Ranges returns the distinct ranges in ascending order. The second result
// is false when the match carries no range data.
func (m RangedMatch[T]) Ranges() ([]ranges.Range, bool) {
	if m.ranges == nil {
		return nil, false
	}

	return m.sortedRanges(), true
}

// MergedRanges returns the ranges with touching neighbours fused together.
func (m RangedMatch[T]) MergedRanges() ([]ranges.Range, bool) {
	if m.ranges == nil {
		return nil, false
	}

	merged := make([]ranges.Range, len(m.merged))
	copy(merged, m.merged)

	return merged, true
}

func (m RangedMatch[T]) sortedRanges() []ranges.Range {
	sorted := make([]ranges.Range, 0, m.ranges.Len())
	m.ranges.Ascend(func(r ranges.Range) bool {
		sorted = append(sorted, r)
		return true
	})

	return sorted
}
