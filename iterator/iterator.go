// Package iterator provides the pull-style sequence interface and the
// small set of constructors every engine builds on.
package iterator

import "errors"

// ErrConcurrentModification is reported by a sequence whose owning
// structure was structurally mutated after the sequence was created.
// The remaining output of such a sequence is undefined and withheld.
var ErrConcurrentModification = errors.New("iterator: concurrent modification during traversal")

// Iterator is a lazy, finite, forward-only sequence of values.
//
// Usage:
//
//	for it.Next() {
//		v := it.Value()
//		...
//	}
//	if err := it.Err(); err != nil { ... }
type Iterator[T any] interface {
	// Next advances to the next element, reporting whether one exists.
	// Once Next returns false it keeps returning false.
	Next() bool

	// Value returns the element Next advanced to.
	// Repeatable without side effects; undefined before the first Next.
	Value() T

	// Err returns the error that terminated the sequence, or nil on
	// normal exhaustion.
	Err() error
}

// Collect drains it into a slice, preserving sequence order.
// Returns the elements pulled so far alongside any terminal error.
func Collect[T any](it Iterator[T]) ([]T, error) {
	var out []T
	for it.Next() {
		out = append(out, it.Value())
	}

	return out, it.Err()
}

// FromSlice wraps s in an Iterator. The slice is not copied; callers
// must not mutate it while the sequence is being consumed.
func FromSlice[T any](s []T) Iterator[T] {
	return &sliceIter[T]{s: s, pos: -1}
}

type sliceIter[T any] struct {
	s   []T
	pos int
}

func (i *sliceIter[T]) Next() bool {
	if i.pos+1 >= len(i.s) {
		return false
	}
	i.pos++

	return true
}

func (i *sliceIter[T]) Value() T { return i.s[i.pos] }

func (i *sliceIter[T]) Err() error { return nil }

// Empty returns an Iterator with no elements (null-object pattern for
// APIs that must return a sequence even when nothing matches).
func Empty[T any]() Iterator[T] { return emptyIter[T]{} }

type emptyIter[T any] struct{}

func (emptyIter[T]) Next() bool { return false }

func (emptyIter[T]) Value() T { var zero T; return zero }

func (emptyIter[T]) Err() error { return nil }

// Failed returns an Iterator that yields nothing and reports err.
// Useful when sequence construction itself fails.
func Failed[T any](err error) Iterator[T] { return &failedIter[T]{err: err} }

type failedIter[T any] struct{ err error }

func (*failedIter[T]) Next() bool { return false }

func (*failedIter[T]) Value() T { var zero T; return zero }

func (i *failedIter[T]) Err() error { return i.err }
