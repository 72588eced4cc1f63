// Package interval implements half-open range algebra.
//
// A [Range] denotes [Lo, Hi): Lo is included and Hi is excluded. Ranges are
// not validated; a range with Lo >= Hi is empty by convention. Every binary
// operation first orders its operands by lower bound (see [Normalize]), so
// results never depend on argument order.
//
// Ranges that only touch at a shared boundary, such as [0, 2) and [2, 3), do
// not overlap and have no intersection, but they do touch and their union is
// [0, 3).
package interval

import (
	"cmp"
	"fmt"

	"github.com/gogpu/nd/scalar"
)

// Range is the half-open interval [Lo, Hi).
type Range[T cmp.Ordered] struct {
	Lo T // Inclusive lower bound
	Hi T // Exclusive upper bound
}

// New creates the range [lo, hi).
func New[T cmp.Ordered](lo, hi T) Range[T] {
	return Range[T]{Lo: lo, Hi: hi}
}

// String returns the range as "[lo, hi)".
func (r Range[T]) String() string {
	return fmt.Sprintf("[%v, %v)", r.Lo, r.Hi)
}

// IsEmpty reports whether the range contains no values.
func (r Range[T]) IsEmpty() bool {
	return r.Lo >= r.Hi
}

// Contains reports whether x lies in [Lo, Hi).
func (r Range[T]) Contains(x T) bool {
	return x >= r.Lo && x < r.Hi
}

// Normalize orders a and b so that a.Lo <= b.Lo.
func Normalize[T cmp.Ordered](a, b Range[T]) (Range[T], Range[T]) {
	if a.Lo > b.Lo {
		return b, a
	}
	return a, b
}

// Intersection returns the overlap of r and o.
// Ranges that only share a boundary have no intersection.
func (r Range[T]) Intersection(o Range[T]) (Range[T], bool) {
	a, b := Normalize(r, o)
	if a.Hi <= b.Lo {
		return Range[T]{}, false
	}
	return Range[T]{Lo: b.Lo, Hi: min(a.Hi, b.Hi)}, true
}

// Union returns the single range covering r and o.
// It reports false when a gap separates them.
func (r Range[T]) Union(o Range[T]) (Range[T], bool) {
	a, b := Normalize(r, o)
	if a.Hi < b.Lo {
		return Range[T]{}, false
	}
	return Range[T]{Lo: a.Lo, Hi: max(a.Hi, b.Hi)}, true
}

// Overlaps reports whether r and o share at least one value.
// It holds exactly when Intersection succeeds.
func (r Range[T]) Overlaps(o Range[T]) bool {
	return r.Hi > o.Lo && r.Lo < o.Hi
}

// Touches reports whether r and o overlap or share a boundary.
func (r Range[T]) Touches(o Range[T]) bool {
	return r.Hi >= o.Lo && r.Lo <= o.Hi
}

// Dominates reports whether r contains all of o.
func (r Range[T]) Dominates(o Range[T]) bool {
	return r.Lo <= o.Lo && r.Hi >= o.Hi
}

// Nested reports whether one of a and b contains the other. It is a single
// sign test, (b.Lo-a.Lo)*(b.Hi-a.Hi) <= 0, equivalent to
// a.Dominates(b) || b.Dominates(a) when the products do not overflow.
func Nested[T scalar.Signed](a, b Range[T]) bool {
	return (b.Lo-a.Lo)*(b.Hi-a.Hi) <= 0
}

// Universal returns [Infimum, Supremum) of T, the range of everything.
// For floats this is [-Inf, +Inf).
func Universal[T scalar.Scalar]() Range[T] {
	return Range[T]{Lo: scalar.Infimum[T](), Hi: scalar.Supremum[T]()}
}

// IsUniversal reports whether r equals Universal[T]().
func IsUniversal[T scalar.Scalar](r Range[T]) bool {
	return scalar.IsInfimum(r.Lo) && scalar.IsSupremum(r.Hi)
}

// Len returns Hi - Lo, or zero for empty ranges.
func Len[T scalar.Scalar](r Range[T]) T {
	if r.IsEmpty() {
		return 0
	}
	return r.Hi - r.Lo
}
