package array

import (
	"iter"

	"github.com/gogpu/nd/line"
	"github.com/gogpu/nd/vec"
)

// Rasterizer turns two endpoints into the cells between them. With non-nil
// bounds it must only yield cells inside bounds. [line.Points] is the
// default.
type Rasterizer func(from, to vec.Vec[int], bounds *vec.Shape[int]) iter.Seq[vec.Vec[int]]

// DrawLine sets every cell on the line from "from" to "to" to v and returns
// the number of cells written. When bounded is false the rasterizer is not
// clipped and cells outside the array are skipped by Set. It panics if from
// and to differ in arity.
func (a *Array[T]) DrawLine(from, to vec.Vec[int], bounded bool, v T) int {
	return a.DrawLineWith(line.Points, from, to, bounded, v)
}

// DrawLineWith is like DrawLine but uses r to pick the cells.
func (a *Array[T]) DrawLineWith(r Rasterizer, from, to vec.Vec[int], bounded bool, v T) int {
	var bounds *vec.Shape[int]
	if bounded {
		bounds = &a.shape
	}
	n := 0
	for p := range r(from, to, bounds) {
		if a.Set(p, v) {
			n++
		}
	}
	return n
}

// LineValues yields the values of the cells on the line from "from" to "to"
// that lie inside the array.
func (a *Array[T]) LineValues(from, to vec.Vec[int]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := range line.Points(from, to, &a.shape) {
			v, _ := a.Get(p)
			if !yield(v) {
				return
			}
		}
	}
}
