package array

import (
	"fmt"

	"github.com/gogpu/nd"
	"github.com/gogpu/nd/vec"
)

// Resize returns a new array with the given extents. Each destination cell d
// takes the source value at d - offset when that lies inside a, and fill
// otherwise. The receiver is not modified.
func (a *Array[T]) Resize(extents vec.Vec[int], fill T, offset vec.Vec[int]) (*Array[T], error) {
	if extents.Dims() != a.Dims() || offset.Dims() != a.Dims() {
		return nil, fmt.Errorf("%w: resize %v by %v on %v", ErrArity, extents, offset, a.shape)
	}
	out, err := New(extents, fill)
	if err != nil {
		return nil, err
	}
	nd.Logger().Debug("array: resize", "from", a.shape.String(), "to", out.shape.String(), "offset", offset.String())

	for i := range out.data {
		d, _ := out.shape.Unindex(i)
		if v, ok := a.Get(d.Sub(offset)); ok {
			out.data[i] = v
		}
	}
	return out, nil
}

// Pad returns a new array grown by padding cells on both sides of every axis,
// with the existing contents centered and the margin set to fill. A negative
// padding crops instead.
func (a *Array[T]) Pad(padding int, fill T) (*Array[T], error) {
	return a.Resize(a.shape.Grow(2*padding).Vec(), fill, vec.Splat(a.Dims(), padding))
}

// Scroll drops the first n hyperplanes along the last axis, moves the rest
// toward the origin and fills the freed planes at the far end. For a 2D array
// this shifts rows up by n. Values of n outside [0, extent] are clamped.
func (a *Array[T]) Scroll(n int, fill T) {
	last := a.shape.Extent(a.Dims() - 1)
	if n < 0 || n > last {
		nd.Logger().Warn("array: scroll clamped", "n", n, "extent", last)
		n = min(max(n, 0), last)
	}
	plane := len(a.data) / last
	copy(a.data, a.data[n*plane:])
	for i := len(a.data) - n*plane; i < len(a.data); i++ {
		a.data[i] = fill
	}
}
