package interval

import (
	"math"
	"testing"

	"github.com/gogpu/nd/vec"
)

type pairCase struct {
	name                 string
	a, b                 Range[int]
	union, inter         Range[int]
	hasUnion, hasInter   bool
	overlaps, touches    bool
	aDomB, bDomA, nested bool
}

var pairCases = []pairCase{
	{
		name: "abab", a: New(0, 2), b: New(1, 3),
		union: New(0, 3), hasUnion: true, inter: New(1, 2), hasInter: true,
		overlaps: true, touches: true,
	},
	{
		name: "abba", a: New(0, 3), b: New(1, 2),
		union: New(0, 3), hasUnion: true, inter: New(1, 2), hasInter: true,
		overlaps: true, touches: true, aDomB: true, nested: true,
	},
	{
		name: "aabb", a: New(0, 1), b: New(2, 3),
	},
	{
		name: "abx", a: New(0, 2), b: New(1, 2),
		union: New(0, 2), hasUnion: true, inter: New(1, 2), hasInter: true,
		overlaps: true, touches: true, aDomB: true, nested: true,
	},
	{
		name: "xab", a: New(0, 3), b: New(0, 2),
		union: New(0, 3), hasUnion: true, inter: New(0, 2), hasInter: true,
		overlaps: true, touches: true, aDomB: true, nested: true,
	},
	{
		name: "axb", a: New(0, 2), b: New(2, 3),
		union: New(0, 3), hasUnion: true,
		touches: true,
	},
	{
		name: "equal", a: New(4, 9), b: New(4, 9),
		union: New(4, 9), hasUnion: true, inter: New(4, 9), hasInter: true,
		overlaps: true, touches: true, aDomB: true, bDomA: true, nested: true,
	},
}

func TestRange_Pairs(t *testing.T) {
	for _, tt := range pairCases {
		t.Run(tt.name, func(t *testing.T) {
			for _, order := range [][2]Range[int]{{tt.a, tt.b}, {tt.b, tt.a}} {
				x, y := order[0], order[1]

				u, ok := x.Union(y)
				if ok != tt.hasUnion || (ok && u != tt.union) {
					t.Errorf("%v.Union(%v) = %v, %v, want %v, %v", x, y, u, ok, tt.union, tt.hasUnion)
				}
				in, ok := x.Intersection(y)
				if ok != tt.hasInter || (ok && in != tt.inter) {
					t.Errorf("%v.Intersection(%v) = %v, %v, want %v, %v", x, y, in, ok, tt.inter, tt.hasInter)
				}
				if got := x.Overlaps(y); got != tt.overlaps {
					t.Errorf("%v.Overlaps(%v) = %v, want %v", x, y, got, tt.overlaps)
				}
				if got := x.Touches(y); got != tt.touches {
					t.Errorf("%v.Touches(%v) = %v, want %v", x, y, got, tt.touches)
				}
				if got := Nested(x, y); got != tt.nested {
					t.Errorf("Nested(%v, %v) = %v, want %v", x, y, got, tt.nested)
				}
				if x.Overlaps(y) != ok {
					t.Errorf("Overlaps(%v, %v) disagrees with Intersection", x, y)
				}
			}
			if got := tt.a.Dominates(tt.b); got != tt.aDomB {
				t.Errorf("%v.Dominates(%v) = %v, want %v", tt.a, tt.b, got, tt.aDomB)
			}
			if got := tt.b.Dominates(tt.a); got != tt.bDomA {
				t.Errorf("%v.Dominates(%v) = %v, want %v", tt.b, tt.a, got, tt.bDomA)
			}
		})
	}
}

func TestRange_Properties(t *testing.T) {
	var ranges []Range[int]
	for lo := -2; lo <= 3; lo++ {
		for hi := lo + 1; hi <= 4; hi++ {
			ranges = append(ranges, New(lo, hi))
		}
	}
	for _, a := range ranges {
		for _, b := range ranges {
			u1, ok1 := a.Union(b)
			u2, ok2 := b.Union(a)
			if u1 != u2 || ok1 != ok2 {
				t.Errorf("Union not symmetric for %v, %v", a, b)
			}
			i1, ok1 := a.Intersection(b)
			i2, ok2 := b.Intersection(a)
			if i1 != i2 || ok1 != ok2 {
				t.Errorf("Intersection not symmetric for %v, %v", a, b)
			}
			if a.Overlaps(b) != ok1 {
				t.Errorf("Overlaps(%v, %v) = %v, Intersection ok = %v", a, b, a.Overlaps(b), ok1)
			}
			if a.Dominates(b) && b.Dominates(a) && a != b {
				t.Errorf("mutual domination of distinct %v, %v", a, b)
			}
			if Nested(a, b) != (a.Dominates(b) || b.Dominates(a)) {
				t.Errorf("Nested(%v, %v) = %v disagrees with Dominates", a, b, Nested(a, b))
			}
		}
	}
}

func TestRange_Basics(t *testing.T) {
	r := New(2, 5)
	if r.String() != "[2, 5)" {
		t.Errorf("String() = %q", r.String())
	}
	if !r.Contains(2) || r.Contains(5) || r.Contains(1) {
		t.Error("Contains() does not honor half-open bounds")
	}
	if Len(r) != 3 || Len(New(5, 2)) != 0 {
		t.Errorf("Len() = %d, %d", Len(r), Len(New(5, 2)))
	}
	if !New(3, 3).IsEmpty() || r.IsEmpty() {
		t.Error("IsEmpty() mismatch")
	}
	a, b := Normalize(New(4, 6), New(1, 2))
	if a != New(1, 2) || b != New(4, 6) {
		t.Errorf("Normalize() = %v, %v", a, b)
	}
}

func TestUniversal(t *testing.T) {
	if got := Universal[int8](); got != New[int8](math.MinInt8, math.MaxInt8) {
		t.Errorf("Universal[int8]() = %v", got)
	}
	if got := Universal[uint16](); got != New[uint16](0, math.MaxUint16) {
		t.Errorf("Universal[uint16]() = %v", got)
	}
	f := Universal[float64]()
	if !math.IsInf(f.Lo, -1) || !math.IsInf(f.Hi, 1) {
		t.Errorf("Universal[float64]() = %v", f)
	}
	if !IsUniversal(Universal[int]()) || IsUniversal(New(0, 10)) {
		t.Error("IsUniversal() mismatch")
	}
	if !Universal[int]().Dominates(New(-100, 100)) {
		t.Error("Universal range does not dominate a finite range")
	}
}

func TestBox(t *testing.T) {
	a := BoxOf(vec.XY(0, 0), vec.XY(4, 4))
	b := BoxOf(vec.XY(2, 3), vec.XY(6, 5))
	if !a.Overlaps(b) {
		t.Error("Overlaps() = false")
	}
	in, ok := a.Intersection(b)
	if !ok || in.String() != "[2, 4) x [3, 4)" {
		t.Errorf("Intersection() = %v, %v", in, ok)
	}
	bound, ok := a.Bound(b)
	if !ok || bound.String() != "[0, 6) x [0, 5)" {
		t.Errorf("Bound() = %v, %v", bound, ok)
	}
	if !bound.Dominates(a) || !bound.Dominates(b) || a.Dominates(b) {
		t.Error("Dominates() mismatch")
	}

	touching := BoxOf(vec.XY(4, 0), vec.XY(8, 4))
	if a.Overlaps(touching) {
		t.Error("boxes sharing an edge overlap")
	}
	if _, ok := a.Intersection(touching); ok {
		t.Error("boxes sharing an edge intersect")
	}

	if !ContainsPoint(a, vec.XY(0, 3)) || ContainsPoint(a, vec.XY(4, 0)) {
		t.Error("ContainsPoint() does not honor half-open bounds")
	}
	lo, hi := Corners(b)
	if lo != vec.XY(2, 3) || hi != vec.XY(6, 5) {
		t.Errorf("Corners() = %v, %v", lo, hi)
	}
	if !BoxOf(vec.XY(0, 0), vec.XY(0, 3)).IsEmpty() {
		t.Error("IsEmpty() = false for a flat box")
	}
}
