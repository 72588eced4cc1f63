package scalar

import (
	"fmt"
	"math"
)

// Convert converts x to U and reports whether the value survived unchanged.
//
// Widening conversions always succeed. Narrowing conversions fail when x is
// outside the range of U, when a negative value would become unsigned, or when
// a float carries a fractional part that an integer cannot hold. Float to
// float conversions succeed when the value is exactly representable; NaN and
// infinities convert between float types.
func Convert[U, T Scalar](x T) (U, bool) {
	if IsFloat[T]() && !IsFloat[U]() {
		f := float64(x)
		if math.IsNaN(f) || !fitsInteger[U](f) {
			return 0, false
		}
	}
	if IsFloat[T]() && IsFloat[U]() {
		f := float64(x)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return U(x), true
		}
	}
	if !IsFloat[T]() && IsFloat[U]() {
		// Every integer lies within the range of every float type; only
		// precision can be lost, which the round trip below detects.
		u := U(x)
		if !fitsInteger[T](float64(u)) {
			return 0, false
		}
		return u, T(u) == x
	}

	u := U(x)
	if T(u) != x || (x < 0) != (u < 0) {
		return 0, false
	}
	return u, true
}

// MustConvert is like [Convert] but panics when the value does not fit.
func MustConvert[U, T Scalar](x T) U {
	u, ok := Convert[U](x)
	if !ok {
		panic(fmt.Errorf("scalar: convert %v to %d-bit type: %w", x, Bits[U](), ErrOutOfRange))
	}
	return u
}

// fitsInteger reports whether f lies within the range of the integer type I.
func fitsInteger[I Scalar](f float64) bool {
	b := Bits[I]()
	if IsSigned[I]() {
		limit := math.Ldexp(1, b-1)
		return f >= -limit && f < limit
	}
	return f > -1 && f < math.Ldexp(1, b)
}
