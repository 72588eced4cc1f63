package interval

import (
	"cmp"
	"strings"

	"github.com/gogpu/nd/scalar"
	"github.com/gogpu/nd/vec"
)

// Box is an axis-aligned region: one half-open range per axis.
type Box[T cmp.Ordered] []Range[T]

// BoxOf returns the box spanning [lo, hi) on every axis.
// It panics if lo and hi differ in arity.
func BoxOf[T scalar.Scalar](lo, hi vec.Vec[T]) Box[T] {
	if lo.Dims() != hi.Dims() {
		panic("interval: box corners differ in arity")
	}
	b := make(Box[T], lo.Dims())
	for i := range b {
		b[i] = Range[T]{Lo: lo.At(i), Hi: hi.At(i)}
	}
	return b
}

// String returns the per-axis ranges joined by " x ".
func (b Box[T]) String() string {
	parts := make([]string, len(b))
	for i, r := range b {
		parts[i] = r.String()
	}
	return strings.Join(parts, " x ")
}

// IsEmpty reports whether any axis is empty.
func (b Box[T]) IsEmpty() bool {
	for _, r := range b {
		if r.IsEmpty() {
			return true
		}
	}
	return false
}

// Overlaps reports whether b and o overlap on every axis.
func (b Box[T]) Overlaps(o Box[T]) bool {
	if len(b) != len(o) {
		return false
	}
	for i := range b {
		if !b[i].Overlaps(o[i]) {
			return false
		}
	}
	return true
}

// Intersection returns the region shared by b and o.
func (b Box[T]) Intersection(o Box[T]) (Box[T], bool) {
	if len(b) != len(o) {
		return nil, false
	}
	out := make(Box[T], len(b))
	for i := range b {
		r, ok := b[i].Intersection(o[i])
		if !ok {
			return nil, false
		}
		out[i] = r
	}
	return out, true
}

// Bound returns the smallest box containing both b and o.
func (b Box[T]) Bound(o Box[T]) (Box[T], bool) {
	if len(b) != len(o) {
		return nil, false
	}
	out := make(Box[T], len(b))
	for i := range b {
		out[i] = Range[T]{Lo: min(b[i].Lo, o[i].Lo), Hi: max(b[i].Hi, o[i].Hi)}
	}
	return out, true
}

// Dominates reports whether b contains all of o.
func (b Box[T]) Dominates(o Box[T]) bool {
	if len(b) != len(o) {
		return false
	}
	for i := range b {
		if !b[i].Dominates(o[i]) {
			return false
		}
	}
	return true
}

// ContainsPoint reports whether p lies inside b.
func ContainsPoint[T scalar.Scalar](b Box[T], p vec.Vec[T]) bool {
	if len(b) != p.Dims() {
		return false
	}
	for i, r := range b {
		if !r.Contains(p.At(i)) {
			return false
		}
	}
	return true
}

// Corners returns the inclusive lower and exclusive upper corners of b.
func Corners[T scalar.Scalar](b Box[T]) (lo, hi vec.Vec[T]) {
	los := make([]T, len(b))
	his := make([]T, len(b))
	for i, r := range b {
		los[i], his[i] = r.Lo, r.Hi
	}
	return vec.New(los...), vec.New(his...)
}
