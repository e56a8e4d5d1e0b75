package math

import "golang.org/x/exp/constraints"

// Pair is an unordered pair of ordered values. The smaller value is
// always stored first, so two pairs built from the same values in
// either order compare equal and hash identically as map keys.
type Pair[T constraints.Ordered] struct {
	A, B T
}

// NewPair returns the normalized pair of a and b.
func NewPair[T constraints.Ordered](a, b T) Pair[T] {
	if b < a {
		a, b = b, a
	}
	return Pair[T]{A: a, B: b}
}

// First returns the smaller value.
func (p Pair[T]) First() T {
	return p.A
}

// Second returns the larger value.
func (p Pair[T]) Second() T {
	return p.B
}
