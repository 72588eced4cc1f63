package array

import (
	"iter"

	"github.com/gogpu/nd/vec"
)

// All iterates over every cell in ascending linear order.
func (a *Array[T]) All() iter.Seq2[vec.Vec[int], T] {
	return func(yield func(vec.Vec[int], T) bool) {
		for i, v := range a.data {
			c, _ := a.shape.Unindex(i)
			if !yield(c, v) {
				return
			}
		}
	}
}

// FindFunc returns the coordinate of the first cell, in ascending linear
// order, for which match returns true.
func (a *Array[T]) FindFunc(match func(T) bool) (vec.Vec[int], bool) {
	for i, v := range a.data {
		if match(v) {
			return a.shape.Unindex(i)
		}
	}
	return vec.Vec[int]{}, false
}

// FindLastFunc returns the coordinate of the last cell, in ascending linear
// order, for which match returns true.
func (a *Array[T]) FindLastFunc(match func(T) bool) (vec.Vec[int], bool) {
	for i := len(a.data) - 1; i >= 0; i-- {
		if match(a.data[i]) {
			return a.shape.Unindex(i)
		}
	}
	return vec.Vec[int]{}, false
}

// FindAllFunc returns the coordinates of every matching cell in ascending
// linear order.
func (a *Array[T]) FindAllFunc(match func(T) bool) []vec.Vec[int] {
	var out []vec.Vec[int]
	for i, v := range a.data {
		if match(v) {
			c, _ := a.shape.Unindex(i)
			out = append(out, c)
		}
	}
	return out
}

// Find returns the coordinate of the first cell equal to v.
func Find[T comparable](a *Array[T], v T) (vec.Vec[int], bool) {
	return a.FindFunc(func(x T) bool { return x == v })
}

// FindLast returns the coordinate of the last cell equal to v.
func FindLast[T comparable](a *Array[T], v T) (vec.Vec[int], bool) {
	return a.FindLastFunc(func(x T) bool { return x == v })
}

// FindAll returns the coordinates of every cell equal to v.
func FindAll[T comparable](a *Array[T], v T) []vec.Vec[int] {
	return a.FindAllFunc(func(x T) bool { return x == v })
}

// ReplaceAll sets every cell equal to from to to and returns how many
// cells changed.
func ReplaceAll[T comparable](a *Array[T], from, to T) int {
	n := 0
	for i, v := range a.data {
		if v == from {
			a.data[i] = to
			n++
		}
	}
	return n
}
