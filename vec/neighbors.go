package vec

import "github.com/gogpu/nd/scalar"

// Neighbors returns the axis-aligned neighbors of v: for each axis in order,
// the coordinate one step up followed by the one step down. A step that would
// overflow or underflow T is left out, so an unsigned component at zero has
// no lower neighbor on that axis.
func (v Vec[T]) Neighbors() []Vec[T] {
	out := make([]Vec[T], 0, 2*v.n)
	for i := range v.n {
		if up, ok := scalar.Inc(v.c[i]); ok {
			out = append(out, v.With(i, up))
		}
		if down, ok := scalar.Dec(v.c[i]); ok {
			out = append(out, v.With(i, down))
		}
	}
	return out
}

// StepRight returns v moved one unit along +x, or false if x would overflow.
// The Step methods panic unless v is 2D.
func (v Vec[T]) StepRight() (Vec[T], bool) { return v.step(0, scalar.Inc[T]) }

// StepUp returns v moved one unit along +y, or false if y would overflow.
func (v Vec[T]) StepUp() (Vec[T], bool) { return v.step(1, scalar.Inc[T]) }

// StepLeft returns v moved one unit along -x, or false if x would underflow.
func (v Vec[T]) StepLeft() (Vec[T], bool) { return v.step(0, scalar.Dec[T]) }

// StepDown returns v moved one unit along -y, or false if y would underflow.
func (v Vec[T]) StepDown() (Vec[T], bool) { return v.step(1, scalar.Dec[T]) }

func (v Vec[T]) step(axis int, move func(T) (T, bool)) (Vec[T], bool) {
	v.must2D()
	x, ok := move(v.c[axis])
	if !ok {
		return Vec[T]{}, false
	}
	return v.With(axis, x), true
}
