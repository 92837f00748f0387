// Package matches pairs matched items with their scores and, optionally,
// the ranges where they matched.
package matches

type Match[T any] interface {
	Item() T
	Score() int
}

type DefaultMatch[T any] struct {
	item  T
	score int
}

func New[T any](item T) DefaultMatch[T] {
	return DefaultMatch[T]{item: item}
}

func NewWithScore[T any](item T, score int) DefaultMatch[T] {
	return DefaultMatch[T]{item: item, score: score}
}

func (m DefaultMatch[T]) Item() T    { return m.item }
func (m DefaultMatch[T]) Score() int { return m.score }
