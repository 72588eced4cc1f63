package array

import (
	"github.com/gogpu/nd/interval"
	"github.com/gogpu/nd/vec"
)

// Slot selects the cells of one axis in a block fill: a single index or
// every index.
type Slot struct {
	index int
	every bool
}

// Every selects every index of an axis.
var Every = Slot{every: true}

// Fixed selects the single index i.
func Fixed(i int) Slot {
	return Slot{index: i}
}

// FillBlock sets every cell selected by slots, one per axis, to v. For
// example, on a 3D array
//
//	a.FillBlock([]array.Slot{array.Every, array.Fixed(3), array.Every}, v)
//
// fills the plane y = 3. It reports false without writing anything when the
// slot count differs from Dims or a fixed index is out of range.
func (a *Array[T]) FillBlock(slots []Slot, v T) bool {
	if len(slots) != a.Dims() {
		return false
	}
	box := make(interval.Box[int], len(slots))
	for k, s := range slots {
		extent := a.shape.Extent(k)
		if s.every {
			box[k] = interval.New(0, extent)
			continue
		}
		if s.index < 0 || s.index >= extent {
			return false
		}
		box[k] = interval.New(s.index, s.index+1)
	}
	a.fill(box, v)
	return true
}

// FillBox sets every cell of a inside box to v and returns the number of
// cells written. Parts of box outside the array are ignored.
func (a *Array[T]) FillBox(box interval.Box[int], v T) int {
	clipped, ok := a.Bounds().Intersection(box)
	if !ok || clipped.IsEmpty() {
		return 0
	}
	return a.fill(clipped, v)
}

// fill writes v to every cell of box, which must lie inside the array and
// be non-empty. The walk is an odometer over the box with axis 0 turning
// fastest, so consecutive writes are adjacent in memory.
func (a *Array[T]) fill(box interval.Box[int], v T) int {
	n := len(box)
	var pos [vec.MaxDims]int
	offset := 0
	for k, r := range box {
		pos[k] = r.Lo
		offset += r.Lo * a.strides.At(k)
	}
	written := 0
	for {
		a.data[offset] = v
		written++

		k := 0
		for ; k < n; k++ {
			stride := a.strides.At(k)
			if pos[k]+1 < box[k].Hi {
				pos[k]++
				offset += stride
				break
			}
			offset -= (pos[k] - box[k].Lo) * stride
			pos[k] = box[k].Lo
		}
		if k == n {
			return written
		}
	}
}
