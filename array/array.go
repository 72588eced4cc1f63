// Package array provides a dense N-dimensional array addressed by integer
// coordinate vectors.
//
// An [Array] owns one flat buffer holding the product of its extents. Axis 0
// varies fastest: the cell at coordinate c lives at offset sum(c[k]*stride[k])
// with stride[0] = 1 and stride[k] = stride[k-1]*extent[k-1].
//
// Shape violations at construction time are reported as errors (or panics
// from the Must forms). Per-coordinate accessors never panic; they report
// absence through a bool or a nil pointer instead.
//
// Arrays are not safe for concurrent mutation.
package array

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gogpu/nd"
	"github.com/gogpu/nd/interval"
	"github.com/gogpu/nd/scalar"
	"github.com/gogpu/nd/vec"
)

// Common errors for array operations.
var (
	// ErrInvalidExtent is returned when an extent is not a positive int or
	// the cell count overflows.
	ErrInvalidExtent = errors.New("array: invalid extent")

	// ErrDataLength is returned when a buffer does not hold exactly one value
	// per cell.
	ErrDataLength = errors.New("array: data length does not match extents")

	// ErrArity is returned when a vector argument has the wrong number of axes.
	ErrArity = errors.New("array: arity mismatch")
)

// Array is a dense N-dimensional array of T.
type Array[T any] struct {
	data    []T
	shape   vec.Shape[int]
	strides vec.Vec[int]
}

var _ nd.Linear[vec.Vec[int]] = (*Array[int])(nil)

// shapeOf validates extents and returns them as an int shape with its cell
// count.
func shapeOf[S scalar.Scalar](extents vec.Vec[S]) (vec.Shape[int], int, error) {
	ints, err := vec.Convert[int](extents)
	if err != nil {
		return vec.Shape[int]{}, 0, fmt.Errorf("%w: %v: %w", ErrInvalidExtent, extents, err)
	}
	shape := ints.AsShape()
	cells, ok := shape.Cells()
	if !ok {
		return vec.Shape[int]{}, 0, fmt.Errorf("%w: %v", ErrInvalidExtent, extents)
	}
	return shape, cells, nil
}

func build[T any](shape vec.Shape[int], data []T) *Array[T] {
	return &Array[T]{data: data, shape: shape, strides: shape.Strides()}
}

// New creates an array with the given extents, every cell set to fill.
// Extents may use any scalar type; each must convert to a positive int.
func New[T any, S scalar.Scalar](extents vec.Vec[S], fill T) (*Array[T], error) {
	shape, cells, err := shapeOf(extents)
	if err != nil {
		nd.Logger().Debug("array: rejected extents", "extents", extents.String(), "err", err)
		return nil, err
	}
	data := make([]T, cells)
	for i := range data {
		data[i] = fill
	}
	return build(shape, data), nil
}

// MustNew is like New but panics on invalid extents.
func MustNew[T any, S scalar.Scalar](extents vec.Vec[S], fill T) *Array[T] {
	a, err := New(extents, fill)
	if err != nil {
		panic(err)
	}
	return a
}

// New2 creates a width x height array.
func New2[T any](width, height int, fill T) (*Array[T], error) {
	return New(vec.XY(width, height), fill)
}

// New3 creates a width x height x depth array.
func New3[T any](width, height, depth int, fill T) (*Array[T], error) {
	return New(vec.XYZ(width, height, depth), fill)
}

// FromSlice creates an array over data, which must hold exactly one value
// per cell in axis-0-fastest order. The array takes ownership of data.
func FromSlice[T any, S scalar.Scalar](extents vec.Vec[S], data []T) (*Array[T], error) {
	shape, cells, err := shapeOf(extents)
	if err != nil {
		return nil, err
	}
	if len(data) != cells {
		return nil, fmt.Errorf("%w: got %d values for %v", ErrDataLength, len(data), shape)
	}
	return build(shape, data), nil
}

// MustFromSlice is like FromSlice but panics on invalid input.
func MustFromSlice[T any, S scalar.Scalar](extents vec.Vec[S], data []T) *Array[T] {
	a, err := FromSlice(extents, data)
	if err != nil {
		panic(err)
	}
	return a
}

// Dims returns the number of axes.
func (a *Array[T]) Dims() int {
	return a.shape.Dims()
}

// Extents returns the size of every axis.
func (a *Array[T]) Extents() vec.Vec[int] {
	return a.shape.Vec()
}

// Shape returns the extents as an addressing shape.
func (a *Array[T]) Shape() vec.Shape[int] {
	return a.shape
}

// Strides returns the linear offset step of every axis.
func (a *Array[T]) Strides() vec.Vec[int] {
	return a.strides
}

// Width returns the extent of axis 0.
func (a *Array[T]) Width() int {
	return a.shape.Extent(0)
}

// Height returns the extent of axis 1. It panics on 1D arrays.
func (a *Array[T]) Height() int {
	return a.shape.Extent(1)
}

// Depth returns the extent of axis 2. It panics on arrays with fewer than
// three axes.
func (a *Array[T]) Depth() int {
	return a.shape.Extent(2)
}

// Len returns the number of cells.
func (a *Array[T]) Len() int {
	return len(a.data)
}

// Data returns the backing buffer in axis-0-fastest order.
func (a *Array[T]) Data() []T {
	return a.data
}

// Bounds returns [0, extent) on every axis.
func (a *Array[T]) Bounds() interval.Box[int] {
	return interval.BoxOf(vec.Splat(a.Dims(), 0), a.Extents())
}

// Clone returns a deep copy of a's buffer with the same extents.
func (a *Array[T]) Clone() *Array[T] {
	return build(a.shape, slices.Clone(a.data))
}

// IndexUnchecked returns the offset of c without a bounds check.
func (a *Array[T]) IndexUnchecked(c vec.Vec[int]) (int, bool) {
	return a.shape.IndexUnchecked(c)
}

// Unindex returns the coordinate of a linear offset.
func (a *Array[T]) Unindex(offset int) (vec.Vec[int], bool) {
	return a.shape.Unindex(offset)
}

// InBounds reports whether c addresses a cell of a.
func (a *Array[T]) InBounds(c vec.Vec[int]) bool {
	return a.shape.InBounds(c)
}

// Get returns the value at c, or false if c is out of bounds.
func (a *Array[T]) Get(c vec.Vec[int]) (T, bool) {
	i, ok := nd.Index[vec.Vec[int]](a, c)
	if !ok {
		var zero T
		return zero, false
	}
	return a.data[i], true
}

// Ptr returns a pointer to the cell at c, or nil if c is out of bounds.
func (a *Array[T]) Ptr(c vec.Vec[int]) *T {
	i, ok := nd.Index[vec.Vec[int]](a, c)
	if !ok {
		return nil
	}
	return &a.data[i]
}

// Set stores v at c and reports whether c was in bounds.
func (a *Array[T]) Set(c vec.Vec[int], v T) bool {
	p := a.Ptr(c)
	if p == nil {
		return false
	}
	*p = v
	return true
}

// GetLinear returns the value at a trusted offset.
func (a *Array[T]) GetLinear(i int) T {
	return a.data[i]
}

// PtrLinear returns a pointer to the cell at a trusted offset.
func (a *Array[T]) PtrLinear(i int) *T {
	return &a.data[i]
}

// SetLinear stores v at a trusted offset.
func (a *Array[T]) SetLinear(i int, v T) {
	a.data[i] = v
}

// Neighbors returns the axis neighbors of c that lie inside a.
func (a *Array[T]) Neighbors(c vec.Vec[int]) []vec.Vec[int] {
	return nd.Neighbors[vec.Vec[int]](a, c)
}

// Map returns a new array with f applied to every cell. The extents and
// strides are unchanged.
func Map[T, U any](a *Array[T], f func(T) U) *Array[U] {
	data := make([]U, len(a.data))
	for i, v := range a.data {
		data[i] = f(v)
	}
	return &Array[U]{data: data, shape: a.shape, strides: a.strides}
}
