package vec

import (
	"fmt"
	"math"

	"github.com/gogpu/nd/scalar"
)

// Add returns the componentwise sum of v and w.
func (v Vec[T]) Add(w Vec[T]) Vec[T] {
	v.AddAssign(w)
	return v
}

// Sub returns the componentwise difference v - w.
func (v Vec[T]) Sub(w Vec[T]) Vec[T] {
	v.SubAssign(w)
	return v
}

// Scale returns the vector scaled by s.
func (v Vec[T]) Scale(s T) Vec[T] {
	v.ScaleAssign(s)
	return v
}

// AddAssign adds w to v in place.
func (v *Vec[T]) AddAssign(w Vec[T]) {
	v.mustMatch(w)
	for i := range v.n {
		v.c[i] += w.c[i]
	}
}

// SubAssign subtracts w from v in place.
func (v *Vec[T]) SubAssign(w Vec[T]) {
	v.mustMatch(w)
	for i := range v.n {
		v.c[i] -= w.c[i]
	}
}

// ScaleAssign scales v by s in place.
func (v *Vec[T]) ScaleAssign(s T) {
	for i := range v.n {
		v.c[i] *= s
	}
}

// Dot returns the inner product of v and w.
func (v Vec[T]) Dot(w Vec[T]) T {
	v.mustMatch(w)
	var sum T
	for i := range v.n {
		sum += v.c[i] * w.c[i]
	}
	return sum
}

// Min returns the componentwise minimum of v and w.
func (v Vec[T]) Min(w Vec[T]) Vec[T] {
	return v.Zip(w, func(a, b T) T { return min(a, b) })
}

// Max returns the componentwise maximum of v and w.
func (v Vec[T]) Max(w Vec[T]) Vec[T] {
	return v.Zip(w, func(a, b T) T { return max(a, b) })
}

// Sum returns the sum of all components.
func (v Vec[T]) Sum() T {
	return v.Fold(func(acc, x T) T { return acc + x })
}

// Product returns the product of all components.
func (v Vec[T]) Product() T {
	return v.Fold(func(acc, x T) T { return acc * x })
}

// Manhattan returns the sum of absolute componentwise differences.
func (v Vec[T]) Manhattan(w Vec[T]) T {
	return v.Zip(w, scalar.AbsDiff[T]).Sum()
}

// DistanceSq returns the squared Euclidean distance between v and w.
// No square root is taken.
func (v Vec[T]) DistanceSq(w Vec[T]) T {
	d := v.Zip(w, scalar.AbsDiff[T])
	return d.Dot(d)
}

// Winding returns the 2D cross product v.x*w.y - v.y*w.x.
// Its sign tells on which side of v the vector w lies.
// It panics unless both vectors are 2D.
func (v Vec[T]) Winding(w Vec[T]) T {
	v.must2D()
	w.must2D()
	return v.c[0]*w.c[1] - v.c[1]*w.c[0]
}

func (v Vec[T]) must2D() {
	if v.n != 2 {
		panic(fmt.Sprintf("vec: 2D operation on %d-dimensional vector", v.n))
	}
}

// Perp returns v rotated 90 degrees counter-clockwise: (-y, x).
// It panics unless v is 2D.
func Perp[T scalar.Signed](v Vec[T]) Vec[T] {
	v.must2D()
	return XY(-v.c[1], v.c[0])
}

// Length returns the Euclidean magnitude of v.
func Length[T scalar.Float](v Vec[T]) T {
	return T(math.Sqrt(float64(v.Dot(v))))
}

// Normalize returns the unit vector in the direction of v. When the
// magnitude is at or below the machine epsilon of T the zero vector of the
// same arity is returned instead.
func Normalize[T scalar.Float](v Vec[T]) Vec[T] {
	l := Length(v)
	if l > scalar.Epsilon[T]() {
		return v.Scale(1 / l)
	}
	return v.Scale(0)
}
