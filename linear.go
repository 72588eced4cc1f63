package nd

// Linear is implemented by shape-bearing values that address a flat buffer
// with coordinates of type I.
//
// Implementations must keep IndexUnchecked and Unindex mutually inverse: for
// every coordinate c with InBounds(c), Unindex(IndexUnchecked(c)) == c, and
// for every offset o in [0, cells), IndexUnchecked(Unindex(o)) == o.
type Linear[I any] interface {
	// IndexUnchecked returns the linear offset of i without checking that i
	// lies inside the shape. The offset of an out-of-range coordinate is
	// meaningless; only Index guards buffer access.
	IndexUnchecked(i I) (int, bool)

	// Unindex returns the coordinate stored at offset.
	// It reports false for offsets outside [0, cells).
	Unindex(offset int) (I, bool)

	// InBounds reports whether every component of i lies in [0, extent).
	InBounds(i I) bool
}

// Neighborer is implemented by coordinate types that can enumerate their
// unconstrained neighbors, independent of any shape.
type Neighborer[I any] interface {
	Neighbors() []I
}

// Index returns the linear offset of i in s, or false when i is out of bounds.
// It is the only entry point that should be used before touching a buffer.
func Index[I any](s Linear[I], i I) (int, bool) {
	if !s.InBounds(i) {
		return 0, false
	}
	return s.IndexUnchecked(i)
}

// Neighbors returns the neighbors of i that lie inside s, in the order
// produced by i.Neighbors().
func Neighbors[I Neighborer[I]](s Linear[I], i I) []I {
	all := i.Neighbors()
	in := all[:0]
	for _, n := range all {
		if s.InBounds(n) {
			in = append(in, n)
		}
	}
	return in
}
