// Package line rasterizes straight lines between integer coordinates of any
// arity.
//
// [Points] walks the generalized Bresenham line: the axis with the largest
// displacement advances on every step and each other axis keeps its own error
// term. Both endpoints are always included.
package line

import (
	"iter"

	"github.com/gogpu/nd/scalar"
	"github.com/gogpu/nd/vec"
)

// Points returns the cells on the line from "from" to "to", inclusive.
//
// When bounds is non-nil, only cells inside bounds are yielded; the walk
// itself is unchanged, so a clipped line keeps the shape of the full one.
// The sequence is finite and can be ranged over more than once.
//
// It panics if from and to differ in arity.
func Points(from, to vec.Vec[int], bounds *vec.Shape[int]) iter.Seq[vec.Vec[int]] {
	if from.Dims() != to.Dims() {
		panic("line: endpoints differ in arity")
	}
	return func(yield func(vec.Vec[int]) bool) {
		n := from.Dims()
		var delta, step, errs [vec.MaxDims]int
		major := 0
		for i := range n {
			delta[i] = scalar.AbsDiff(from.At(i), to.At(i))
			step[i] = 1
			if to.At(i) < from.At(i) {
				step[i] = -1
			}
			if delta[i] > delta[major] {
				major = i
			}
		}
		span := delta[major]
		for i := range n {
			errs[i] = 2*delta[i] - span
		}

		p := from
		for k := 0; ; k++ {
			if bounds == nil || bounds.InBounds(p) {
				if !yield(p) {
					return
				}
			}
			if k == span {
				return
			}
			for i := range n {
				if i == major {
					p = p.With(i, p.At(i)+step[i])
					continue
				}
				if errs[i] >= 0 {
					p = p.With(i, p.At(i)+step[i])
					errs[i] -= 2 * span
				}
				errs[i] += 2 * delta[i]
			}
		}
	}
}

// Len returns the number of cells on the unclipped line from "from" to
// "to": the largest per-axis displacement plus one.
func Len(from, to vec.Vec[int]) int {
	return from.Zip(to, scalar.AbsDiff[int]).Fold(func(acc, x int) int { return max(acc, x) }) + 1
}
