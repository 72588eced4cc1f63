package array

import (
	"github.com/gogpu/nd"
	"github.com/gogpu/nd/scalar"
	"github.com/gogpu/nd/vec"
)

// View addresses an array with coordinates of scalar type S. Coordinates
// that do not convert to int are out of bounds, and offsets whose coordinate
// does not fit S cannot be unindexed.
type View[T any, S scalar.Scalar] struct {
	a *Array[T]
}

var _ nd.Linear[vec.Vec[uint8]] = View[int, uint8]{}

// As returns a view of a addressed by Vec[S]. The view shares a's buffer.
//
//	cell, ok := array.As[int16](grid).Get(vec.XY[int16](3, 4))
func As[S scalar.Scalar, T any](a *Array[T]) View[T, S] {
	return View[T, S]{a: a}
}

// Array returns the underlying array.
func (v View[T, S]) Array() *Array[T] {
	return v.a
}

// IndexUnchecked returns the offset of c without a bounds check.
func (v View[T, S]) IndexUnchecked(c vec.Vec[S]) (int, bool) {
	ic, err := vec.Convert[int](c)
	if err != nil {
		return 0, false
	}
	return v.a.shape.IndexUnchecked(ic)
}

// Unindex returns the coordinate of offset, or false if it does not fit S.
func (v View[T, S]) Unindex(offset int) (vec.Vec[S], bool) {
	ic, ok := v.a.shape.Unindex(offset)
	if !ok {
		return vec.Vec[S]{}, false
	}
	c, err := vec.Convert[S](ic)
	if err != nil {
		return vec.Vec[S]{}, false
	}
	return c, true
}

// InBounds reports whether c addresses a cell.
func (v View[T, S]) InBounds(c vec.Vec[S]) bool {
	ic, err := vec.Convert[int](c)
	return err == nil && v.a.shape.InBounds(ic)
}

// Get returns the value at c, or false if c is out of bounds.
func (v View[T, S]) Get(c vec.Vec[S]) (T, bool) {
	i, ok := nd.Index[vec.Vec[S]](v, c)
	if !ok {
		var zero T
		return zero, false
	}
	return v.a.data[i], true
}

// Ptr returns a pointer to the cell at c, or nil if c is out of bounds.
func (v View[T, S]) Ptr(c vec.Vec[S]) *T {
	i, ok := nd.Index[vec.Vec[S]](v, c)
	if !ok {
		return nil
	}
	return &v.a.data[i]
}

// Set stores x at c and reports whether c was in bounds.
func (v View[T, S]) Set(c vec.Vec[S], x T) bool {
	p := v.Ptr(c)
	if p == nil {
		return false
	}
	*p = x
	return true
}

// Neighbors returns the axis neighbors of c that lie inside the array.
// Steps that would leave the range of S are never produced.
func (v View[T, S]) Neighbors(c vec.Vec[S]) []vec.Vec[S] {
	return nd.Neighbors[vec.Vec[S]](v, c)
}
