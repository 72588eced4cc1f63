// Package vec provides fixed-arity coordinate vectors.
//
// A [Vec] holds between 1 and [MaxDims] components of one scalar type. The
// arity is chosen at construction and never changes; every operation returns
// a new vector. Vectors are comparable with == and can be used as map keys.
//
// The same algebra describes shapes. [Shape] is a distinct type so that an
// extent descriptor is never passed where a position was intended.
package vec

import (
	"fmt"
	"strings"

	"github.com/gogpu/nd/scalar"
)

// MaxDims is the largest arity a vector can have.
const MaxDims = 8

// Vec is an immutable tuple of scalar components.
type Vec[T scalar.Scalar] struct {
	n int
	c [MaxDims]T
}

// New creates a vector from explicit components.
// It panics if len(c) is zero or greater than MaxDims.
func New[T scalar.Scalar](c ...T) Vec[T] {
	checkDims(len(c))
	var v Vec[T]
	v.n = len(c)
	copy(v.c[:], c)
	return v
}

// Splat creates an n-dimensional vector with every component set to x.
func Splat[T scalar.Scalar](n int, x T) Vec[T] {
	checkDims(n)
	v := Vec[T]{n: n}
	for i := range n {
		v.c[i] = x
	}
	return v
}

// XY is a convenience function to create a 2D vector.
func XY[T scalar.Scalar](x, y T) Vec[T] {
	return Vec[T]{n: 2, c: [MaxDims]T{x, y}}
}

// XYZ is a convenience function to create a 3D vector.
func XYZ[T scalar.Scalar](x, y, z T) Vec[T] {
	return Vec[T]{n: 3, c: [MaxDims]T{x, y, z}}
}

// XYZW is a convenience function to create a 4D vector.
func XYZW[T scalar.Scalar](x, y, z, w T) Vec[T] {
	return Vec[T]{n: 4, c: [MaxDims]T{x, y, z, w}}
}

func checkDims(n int) {
	if n < 1 || n > MaxDims {
		panic(fmt.Sprintf("vec: arity %d outside [1, %d]", n, MaxDims))
	}
}

func (v Vec[T]) mustMatch(w Vec[T]) {
	if v.n != w.n {
		panic(fmt.Sprintf("vec: arity mismatch %d != %d", v.n, w.n))
	}
}

// Dims returns the number of components.
func (v Vec[T]) Dims() int {
	return v.n
}

// At returns component i. It panics if i is not in [0, Dims()).
func (v Vec[T]) At(i int) T {
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("vec: component %d out of range [0, %d)", i, v.n))
	}
	return v.c[i]
}

// With returns a copy of v with component i replaced by x.
func (v Vec[T]) With(i int, x T) Vec[T] {
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("vec: component %d out of range [0, %d)", i, v.n))
	}
	v.c[i] = x
	return v
}

// Components returns the components as a new slice.
func (v Vec[T]) Components() []T {
	out := make([]T, v.n)
	copy(out, v.c[:v.n])
	return out
}

// X returns component 0.
func (v Vec[T]) X() T { return v.At(0) }

// Y returns component 1.
func (v Vec[T]) Y() T { return v.At(1) }

// Z returns component 2.
func (v Vec[T]) Z() T { return v.At(2) }

// W returns component 3.
func (v Vec[T]) W() T { return v.At(3) }

// String returns the vector as "(c0, c1, ...)".
func (v Vec[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i := range v.n {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, v.c[i])
	}
	sb.WriteByte(')')
	return sb.String()
}

// Map applies f to every component.
func (v Vec[T]) Map(f func(T) T) Vec[T] {
	for i := range v.n {
		v.c[i] = f(v.c[i])
	}
	return v
}

// Fold reduces the components to one value. Component 0 is the seed and f is
// applied in ascending component order, so f need not be associative.
func (v Vec[T]) Fold(f func(acc, x T) T) T {
	acc := v.At(0)
	for i := 1; i < v.n; i++ {
		acc = f(acc, v.c[i])
	}
	return acc
}

// Zip combines v and w component by component.
// It panics if the arities differ.
func (v Vec[T]) Zip(w Vec[T], f func(a, b T) T) Vec[T] {
	v.mustMatch(w)
	for i := range v.n {
		v.c[i] = f(v.c[i], w.c[i])
	}
	return v
}

// All reports whether pred holds for every component.
func (v Vec[T]) All(pred func(T) bool) bool {
	for i := range v.n {
		if !pred(v.c[i]) {
			return false
		}
	}
	return true
}
