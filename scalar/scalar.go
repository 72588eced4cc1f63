// Package scalar provides the numeric capabilities shared by nd vectors,
// arrays and intervals.
//
// Every helper is written once against the [Scalar] constraint instead of
// once per concrete type. Properties of the instantiated type (float or
// integer, signedness, bit width) are derived at run time from the type
// itself, so custom types such as `type Meters int32` behave like their
// underlying type.
package scalar

import (
	"errors"
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// ErrOutOfRange is returned when a value does not fit the target type.
var ErrOutOfRange = errors.New("scalar: value out of range")

// Scalar is a constraint for the types that nd vectors and intervals can hold.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Signed is a constraint for scalars that support negation without wrapping.
type Signed interface {
	constraints.Signed | constraints.Float
}

// Float is a constraint for floating-point scalars.
type Float interface {
	constraints.Float
}

// Zero returns the additive identity of T.
func Zero[T Scalar]() T {
	return 0
}

// One returns the multiplicative identity of T.
func One[T Scalar]() T {
	return 1
}

// IsFloat reports whether T is a floating-point type.
func IsFloat[T Scalar]() bool {
	var one T = 1
	return one/2 != 0
}

// IsSigned reports whether T can represent negative values.
func IsSigned[T Scalar]() bool {
	var zero T
	return zero-1 < zero
}

// Bits returns the width of T in bits.
func Bits[T Scalar]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// Infimum returns the smallest value representable by T.
// Floats return negative infinity.
func Infimum[T Scalar]() T {
	switch {
	case IsFloat[T]():
		return T(math.Inf(-1))
	case !IsSigned[T]():
		return 0
	default:
		return T(int64(-1) << (Bits[T]() - 1))
	}
}

// Supremum returns the largest value representable by T.
// Floats return positive infinity.
func Supremum[T Scalar]() T {
	switch {
	case IsFloat[T]():
		return T(math.Inf(1))
	case !IsSigned[T]():
		return T(^uint64(0) >> (64 - Bits[T]()))
	default:
		return T(int64(1)<<(Bits[T]()-1) - 1)
	}
}

// IsInfimum reports whether x equals Infimum[T]().
func IsInfimum[T Scalar](x T) bool {
	return x == Infimum[T]()
}

// IsSupremum reports whether x equals Supremum[T]().
func IsSupremum[T Scalar](x T) bool {
	return x == Supremum[T]()
}

// Epsilon returns the machine epsilon of a floating-point type.
func Epsilon[T Float]() T {
	if Bits[T]() == 32 {
		return T(math.Nextafter32(1, 2) - 1)
	}
	return T(math.Nextafter(1, 2) - 1)
}

// Abs returns the absolute value of x.
// For the minimum value of a signed integer type the result wraps to x itself;
// use [CheckedAbs] to detect that case.
func Abs[T Scalar](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// CheckedAbs returns the absolute value of x and false if it is not representable.
func CheckedAbs[T Scalar](x T) (T, bool) {
	a := Abs(x)
	if a < 0 {
		return x, false
	}
	return a, true
}

// AbsDiff returns |a - b| without intermediate wrapping for unsigned types.
func AbsDiff[T Scalar](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}

// CheckedAdd returns x + y and false if the sum overflows T.
func CheckedAdd[T Scalar](x, y T) (T, bool) {
	s := x + y
	if IsFloat[T]() {
		return s, true
	}
	if (y > 0 && s < x) || (y < 0 && s > x) {
		return x, false
	}
	return s, true
}

// CheckedSub returns x - y and false if the difference overflows T.
func CheckedSub[T Scalar](x, y T) (T, bool) {
	d := x - y
	if IsFloat[T]() {
		return d, true
	}
	if (y > 0 && d > x) || (y < 0 && d < x) {
		return x, false
	}
	return d, true
}

// CheckedMul returns x * y and false if the product overflows T.
func CheckedMul[T Scalar](x, y T) (T, bool) {
	p := x * y
	if IsFloat[T]() || x == 0 || y == 0 {
		return p, true
	}
	if p/y != x || (IsSigned[T]() && x == Infimum[T]() && y+1 == 0) {
		return x, false
	}
	return p, true
}

// Inc returns x + 1 and false on overflow.
func Inc[T Scalar](x T) (T, bool) {
	return CheckedAdd(x, 1)
}

// Dec returns x - 1 and false on underflow.
func Dec[T Scalar](x T) (T, bool) {
	return CheckedSub(x, 1)
}
