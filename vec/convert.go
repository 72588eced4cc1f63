package vec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/nd/scalar"
)

// Convert converts every component of v to U.
// Widening conversions always succeed. If any component does not fit U the
// whole conversion fails with an error wrapping [scalar.ErrOutOfRange].
func Convert[U, T scalar.Scalar](v Vec[T]) (Vec[U], error) {
	out := Vec[U]{n: v.n}
	for i := range v.n {
		u, ok := scalar.Convert[U](v.c[i])
		if !ok {
			return Vec[U]{}, fmt.Errorf("vec: component %d (%v): %w", i, v.c[i], scalar.ErrOutOfRange)
		}
		out.c[i] = u
	}
	return out, nil
}

// MustConvert is like [Convert] but panics when a component does not fit.
// Use it where the caller has established that the conversion is lossless.
func MustConvert[U, T scalar.Scalar](v Vec[T]) Vec[U] {
	out, err := Convert[U](v)
	if err != nil {
		panic(err)
	}
	return out
}

// Parse parses a comma-separated list of components such as "3, 4".
// Integers are parsed in base 10; whitespace around components is ignored.
func Parse[T scalar.Scalar](s string) (Vec[T], error) {
	fields := strings.Split(s, ",")
	if len(fields) > MaxDims {
		return Vec[T]{}, fmt.Errorf("vec: parse %q: %d components exceed %d", s, len(fields), MaxDims)
	}
	v := Vec[T]{n: len(fields)}
	for i, f := range fields {
		f = strings.TrimSpace(f)
		x, err := parseComponent[T](f)
		if err != nil {
			return Vec[T]{}, fmt.Errorf("vec: parse %q: component %d: %w", s, i, err)
		}
		v.c[i] = x
	}
	return v, nil
}

func parseComponent[T scalar.Scalar](f string) (T, error) {
	bits := scalar.Bits[T]()
	switch {
	case scalar.IsFloat[T]():
		x, err := strconv.ParseFloat(f, bits)
		return T(x), err
	case scalar.IsSigned[T]():
		x, err := strconv.ParseInt(f, 10, bits)
		return T(x), err
	default:
		x, err := strconv.ParseUint(f, 10, bits)
		return T(x), err
	}
}
