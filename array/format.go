package array

import (
	"fmt"
	"strings"
)

// String renders the array as text. A 1D array is its cells concatenated; a
// 2D array is one line per row. Higher ranks print each 2D slice under a
// "slice = (0, 0, k)" header naming the coordinate of its first cell.
//
// Cells of type rune (and therefore int32) print as characters; everything
// else uses the fmt default format.
func (a *Array[T]) String() string {
	var sb strings.Builder
	if a.Dims() == 1 {
		for _, v := range a.data {
			sb.WriteString(cell(v))
		}
		return sb.String()
	}

	w, h := a.Width(), a.Height()
	for i := 0; i < len(a.data); {
		if a.Dims() > 2 {
			c, _ := a.shape.Unindex(i)
			fmt.Fprintf(&sb, "slice = %v\n", c)
		}
		for range h {
			for range w {
				sb.WriteString(cell(a.data[i]))
				i++
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func cell(v any) string {
	if r, ok := v.(rune); ok {
		return string(r)
	}
	return fmt.Sprint(v)
}
