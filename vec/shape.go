package vec

import (
	"fmt"

	"github.com/gogpu/nd"
	"github.com/gogpu/nd/scalar"
)

// Shape is a vector read as per-axis extents. It implements the addressing
// contract [nd.Linear] for coordinates of the same scalar type, with axis 0
// varying fastest.
//
// Shape and Vec share their representation; convert with [Vec.AsShape] and
// [Shape.Vec].
type Shape[T scalar.Scalar] Vec[T]

var _ nd.Linear[Vec[int]] = Shape[int]{}

// AsShape reinterprets v as extents.
func (v Vec[T]) AsShape() Shape[T] {
	return Shape[T](v)
}

// Vec returns the extents as a plain vector.
func (s Shape[T]) Vec() Vec[T] {
	return Vec[T](s)
}

// Dims returns the number of axes.
func (s Shape[T]) Dims() int {
	return s.n
}

// Extent returns the size of axis i.
func (s Shape[T]) Extent(i int) T {
	return s.Vec().At(i)
}

// Cells returns the number of addressable cells, or false if an extent is
// not a positive integer or the product overflows int.
func (s Shape[T]) Cells() (int, bool) {
	if s.n == 0 {
		return 0, false
	}
	cells := 1
	for i := range s.n {
		e, ok := scalar.Convert[int](s.c[i])
		if !ok || e <= 0 {
			return 0, false
		}
		if cells > scalar.Supremum[int]()/e {
			return 0, false
		}
		cells *= e
	}
	return cells, true
}

// Strides returns the offset step of each axis: 1 for axis 0 and the
// running product of the preceding extents for the rest. Strides are only
// meaningful when Cells succeeds; past an extent that is not a positive int,
// or once the product overflows, the remaining strides are zero.
func (s Shape[T]) Strides() Vec[int] {
	out := Vec[int]{n: s.n}
	step := 1
	for i := range s.n {
		out.c[i] = step
		e, ok := scalar.Convert[int](s.c[i])
		if !ok || e <= 0 {
			step = 0
			continue
		}
		if step, ok = scalar.CheckedMul(step, e); !ok {
			step = 0
		}
	}
	return out
}

// String returns the extents in the form "[3x2]".
func (s Shape[T]) String() string {
	str := "["
	for i := range s.n {
		if i > 0 {
			str += "x"
		}
		str += fmt.Sprint(s.c[i])
	}
	return str + "]"
}

// IndexUnchecked returns the mixed-radix offset of c without bounds checks.
// It reports false when c has a different arity, a component or extent
// cannot be represented as an int, or the offset overflows int.
func (s Shape[T]) IndexUnchecked(c Vec[T]) (int, bool) {
	if c.n != s.n || s.n == 0 {
		return 0, false
	}
	offset := 0
	for j := s.n - 1; j >= 0; j-- {
		e, ok := scalar.Convert[int](s.c[j])
		if !ok {
			return 0, false
		}
		x, ok := scalar.Convert[int](c.c[j])
		if !ok {
			return 0, false
		}
		if offset, ok = scalar.CheckedMul(offset, e); !ok {
			return 0, false
		}
		if offset, ok = scalar.CheckedAdd(offset, x); !ok {
			return 0, false
		}
	}
	return offset, true
}

// Unindex returns the coordinate at offset, peeling one axis at a time with
// remainder and quotient in ascending axis order.
func (s Shape[T]) Unindex(offset int) (Vec[T], bool) {
	cells, ok := s.Cells()
	if !ok || offset < 0 || offset >= cells {
		return Vec[T]{}, false
	}
	out := Vec[T]{n: s.n}
	for j := range s.n {
		e := int(s.c[j])
		out.c[j] = T(offset % e)
		offset /= e
	}
	return out, true
}

// InBounds reports whether c addresses a cell of s. The shape itself must
// be addressable (see Cells) and every component of c must be an integer in
// [0, extent). Under those conditions the offset always fits an int, so
// Index succeeds exactly when InBounds holds.
func (s Shape[T]) InBounds(c Vec[T]) bool {
	if c.n != s.n {
		return false
	}
	if _, ok := s.Cells(); !ok {
		return false
	}
	for j := range s.n {
		x, ok := scalar.Convert[int](c.c[j])
		if !ok || x < 0 || x >= int(s.c[j]) {
			return false
		}
	}
	return true
}

// Index returns the offset of c, or false when c is out of bounds.
func (s Shape[T]) Index(c Vec[T]) (int, bool) {
	return nd.Index[Vec[T]](s, c)
}

// Neighbors returns the neighbors of c that lie inside s.
func (s Shape[T]) Neighbors(c Vec[T]) []Vec[T] {
	return nd.Neighbors[Vec[T]](s, c)
}

// Grow returns the shape with every extent increased by by.
func (s Shape[T]) Grow(by T) Shape[T] {
	return s.Vec().Map(func(e T) T { return e + by }).AsShape()
}
