package array

import (
	"bytes"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"github.com/gogpu/nd"
	"github.com/gogpu/nd/interval"
	"github.com/gogpu/nd/vec"
)

func TestNew(t *testing.T) {
	a, err := New(vec.XY(3, 2), 0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if a.Len() != 6 || a.Width() != 3 || a.Height() != 2 || a.Dims() != 2 {
		t.Errorf("New() = %d cells, %dx%d, %d axes", a.Len(), a.Width(), a.Height(), a.Dims())
	}
	if got := a.Strides(); got != vec.XY(1, 3) {
		t.Errorf("Strides() = %v, want (1, 3)", got)
	}

	b, err := New3(2, 3, 4, "x")
	if err != nil {
		t.Fatalf("New3() error = %v", err)
	}
	if got := b.Strides(); got != vec.XYZ(1, 2, 6) {
		t.Errorf("Strides() = %v, want (1, 2, 6)", got)
	}
	if b.Depth() != 4 {
		t.Errorf("Depth() = %d, want 4", b.Depth())
	}

	if c, err := New(vec.XY[uint8](4, 4), 1.5); err != nil || c.Len() != 16 {
		t.Errorf("New(uint8 extents) = %v, %v", c, err)
	}
}

func TestNew_InvalidExtents(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"zero", func() error { _, err := New(vec.XY(3, 0), 0); return err }()},
		{"negative", func() error { _, err := New(vec.XY(-1, 2), 0); return err }()},
		{"too large", func() error { _, err := New(vec.XY[uint64](1<<63, 4), 0); return err }()},
		{"overflow", func() error { _, err := New(vec.XYZ(1<<30, 1<<30, 1<<30), 0); return err }()},
		{"New2", func() error { _, err := New2(0, 0, 0); return err }()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, ErrInvalidExtent) {
				t.Errorf("error = %v, want ErrInvalidExtent", tt.err)
			}
		})
	}
}

func TestMustNew_Panics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrInvalidExtent) {
			t.Errorf("MustNew() panic = %v, want ErrInvalidExtent", r)
		}
	}()
	MustNew(vec.New(0), 0)
}

func TestFromSlice(t *testing.T) {
	data := []int{1, 2, 3, 4, 5, 6}
	a, err := FromSlice(vec.XY(3, 2), data)
	if err != nil {
		t.Fatalf("FromSlice() error = %v", err)
	}
	if v, _ := a.Get(vec.XY(2, 1)); v != 6 {
		t.Errorf("Get((2, 1)) = %d, want 6", v)
	}
	if v, _ := a.Get(vec.XY(0, 1)); v != 4 {
		t.Errorf("Get((0, 1)) = %d, want 4", v)
	}

	if _, err := FromSlice(vec.XY(3, 3), data); !errors.Is(err, ErrDataLength) {
		t.Errorf("FromSlice(short data) error = %v, want ErrDataLength", err)
	}
}

// Array of extents (3,2) with one cell set.
func TestGetSet(t *testing.T) {
	a := MustNew(vec.XY(3, 2), 0)
	if !a.Set(vec.XY(1, 1), 9) {
		t.Fatal("Set((1, 1)) = false")
	}
	if v, ok := a.Get(vec.XY(1, 1)); !ok || v != 9 {
		t.Errorf("Get((1, 1)) = %d, %v, want 9", v, ok)
	}
	if _, ok := a.Get(vec.XY(3, 3)); ok {
		t.Error("Get((3, 3)) ok = true, want false")
	}
	if a.Set(vec.XY(-1, 0), 1) {
		t.Error("Set((-1, 0)) = true, want false")
	}
	if a.Ptr(vec.XYZ(0, 0, 0)) != nil {
		t.Error("Ptr() with wrong arity is not nil")
	}

	*a.Ptr(vec.XY(2, 0)) = 7
	if a.GetLinear(2) != 7 {
		t.Errorf("GetLinear(2) = %d, want 7", a.GetLinear(2))
	}
	a.SetLinear(5, 3)
	*a.PtrLinear(0) = 1
	if v, _ := a.Get(vec.XY(2, 1)); v != 3 {
		t.Errorf("Get((2, 1)) = %d, want 3", v)
	}
	if got := a.Data(); !slices.Equal(got, []int{1, 0, 7, 0, 9, 3}) {
		t.Errorf("Data() = %v", got)
	}
}

func TestLinearContract(t *testing.T) {
	a := MustNew(vec.XYZ(3, 2, 2), 0)
	for i := range a.Len() {
		c, ok := a.Unindex(i)
		if !ok || !a.InBounds(c) {
			t.Fatalf("Unindex(%d) = %v, %v", i, c, ok)
		}
		if back, ok := a.IndexUnchecked(c); !ok || back != i {
			t.Errorf("IndexUnchecked(Unindex(%d)) = %d, %v", i, back, ok)
		}
	}
}

func TestNeighbors(t *testing.T) {
	a := MustNew(vec.XY(3, 3), 0)
	if got := a.Neighbors(vec.XY(2, 2)); !slices.Equal(got, []vec.Vec[int]{vec.XY(1, 2), vec.XY(2, 1)}) {
		t.Errorf("Neighbors((2, 2)) = %v", got)
	}
	if got := a.Neighbors(vec.XY(1, 1)); len(got) != 4 {
		t.Errorf("Neighbors((1, 1)) = %v, want 4", got)
	}
}

func TestView(t *testing.T) {
	a := MustNew(vec.XY(4, 3), 0)
	v := As[uint8](a)
	if !v.Set(vec.XY[uint8](3, 2), 5) {
		t.Fatal("Set() = false")
	}
	if got, _ := a.Get(vec.XY(3, 2)); got != 5 {
		t.Errorf("view write not visible: Get() = %d", got)
	}
	if _, ok := v.Get(vec.XY[uint8](4, 0)); ok {
		t.Error("Get((4, 0)) ok = true")
	}
	if got := v.Neighbors(vec.XY[uint8](0, 0)); len(got) != 2 {
		t.Errorf("Neighbors(origin) = %v, want 2", got)
	}
	if c, ok := v.Unindex(11); !ok || c != vec.XY[uint8](3, 2) {
		t.Errorf("Unindex(11) = %v, %v", c, ok)
	}
	if v.Array() != a {
		t.Error("Array() does not return the viewed array")
	}

	big := MustNew(vec.New(300), 0)
	if _, ok := As[uint8](big).Unindex(299); ok {
		t.Error("Unindex(299) ok = true for uint8 coordinates")
	}
	if p := As[int64](big).Ptr(vec.New[int64](299)); p == nil {
		t.Error("Ptr((299)) = nil for int64 coordinates")
	}
}

func TestResize_RoundTrip(t *testing.T) {
	a := MustFromSlice(vec.XY(3, 2), []int{1, 2, 3, 4, 5, 6})
	offset := vec.XY(2, 1)
	grown, err := a.Resize(vec.XY(6, 5), -1, offset)
	if err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	for c, v := range a.All() {
		if got, _ := grown.Get(c.Add(offset)); got != v {
			t.Errorf("grown.Get(%v) = %d, want %d", c.Add(offset), got, v)
		}
	}
	back, err := grown.Resize(a.Extents(), 0, vec.XY(-2, -1))
	if err != nil {
		t.Fatalf("Resize() back error = %v", err)
	}
	if !slices.Equal(back.Data(), a.Data()) {
		t.Errorf("round trip = %v, want %v", back.Data(), a.Data())
	}
	if !slices.Equal(a.Data(), []int{1, 2, 3, 4, 5, 6}) {
		t.Error("Resize() modified the receiver")
	}

	if _, err := a.Resize(vec.XYZ(1, 1, 1), 0, vec.XYZ(0, 0, 0)); !errors.Is(err, ErrArity) {
		t.Errorf("Resize(3D) error = %v, want ErrArity", err)
	}
	if _, err := a.Resize(vec.XY(0, 1), 0, vec.XY(0, 0)); !errors.Is(err, ErrInvalidExtent) {
		t.Errorf("Resize(zero extent) error = %v, want ErrInvalidExtent", err)
	}
}

// Array of extents (2,2) filled with 5, padded by 1 with fill -1.
func TestPad(t *testing.T) {
	a := MustNew(vec.XY(2, 2), 5)
	p, err := a.Pad(1, -1)
	if err != nil {
		t.Fatalf("Pad() error = %v", err)
	}
	if p.Extents() != vec.XY(4, 4) {
		t.Fatalf("Extents() = %v, want (4, 4)", p.Extents())
	}
	for c, v := range p.All() {
		edge := c.X() == 0 || c.X() == 3 || c.Y() == 0 || c.Y() == 3
		want := 5
		if edge {
			want = -1
		}
		if v != want {
			t.Errorf("Get(%v) = %d, want %d", c, v, want)
		}
	}

	if _, err := a.Pad(-1, 0); !errors.Is(err, ErrInvalidExtent) {
		t.Errorf("Pad(-1) on 2x2 error = %v, want ErrInvalidExtent", err)
	}
}

func TestMap(t *testing.T) {
	a := MustNew(vec.XYZ(2, 3, 4), 2)
	m := Map(a, func(v int) string { return string(rune('a' + v)) })
	if m.Extents() != a.Extents() || m.Strides() != a.Strides() {
		t.Errorf("Map() shape = %v %v, want %v %v", m.Extents(), m.Strides(), a.Extents(), a.Strides())
	}
	if v, _ := m.Get(vec.XYZ(1, 2, 3)); v != "c" {
		t.Errorf("Map() cell = %q, want %q", v, "c")
	}
}

func TestClone(t *testing.T) {
	a := MustNew(vec.XY(2, 2), 1)
	b := a.Clone()
	b.Set(vec.XY(0, 0), 9)
	if v, _ := a.Get(vec.XY(0, 0)); v != 1 {
		t.Error("Clone() shares the buffer")
	}
}

func TestBounds(t *testing.T) {
	a := MustNew(vec.XYZ(3, 2, 5), 0)
	want := interval.Box[int]{interval.New(0, 3), interval.New(0, 2), interval.New(0, 5)}
	if got := a.Bounds(); !slices.Equal(got, want) {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}

func TestScroll(t *testing.T) {
	a := MustFromSlice(vec.XY(2, 3), []int{1, 2, 3, 4, 5, 6})
	a.Scroll(1, 0)
	if !slices.Equal(a.Data(), []int{3, 4, 5, 6, 0, 0}) {
		t.Errorf("Scroll(1) = %v", a.Data())
	}
	a.Scroll(10, 7)
	if !slices.Equal(a.Data(), []int{7, 7, 7, 7, 7, 7}) {
		t.Errorf("Scroll(10) = %v", a.Data())
	}
}

func TestNew_LogsRejectedExtents(t *testing.T) {
	var buf bytes.Buffer
	nd.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer nd.SetLogger(nil)

	if _, err := New(vec.XY(2, -3), 0); err == nil {
		t.Fatal("New((2, -3)) error = nil")
	}
	if !strings.Contains(buf.String(), "rejected extents") {
		t.Errorf("log output = %q, want rejected extents message", buf.String())
	}
}
