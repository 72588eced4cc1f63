package array

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-text/typesetting/segmenter"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/nd"
	"github.com/gogpu/nd/vec"
)

// Text-grid errors.
var (
	// ErrEmptyGrid is returned when the input holds no lines.
	ErrEmptyGrid = errors.New("array: empty text grid")

	// ErrRaggedGrid is returned when lines differ in width.
	ErrRaggedGrid = errors.New("array: ragged text grid")
)

// maxLine bounds the length of a single grid line.
const maxLine = 1 << 20

// ReadRunes reads a character grid with one row per line. Each line is
// normalized to NFC before it is split into runes, so a precomposed and a
// decomposed accent occupy the same single cell. A trailing "\r" is dropped.
// Every line must have the same width.
//
// The result has extents (width, height) with (0, 0) at the first rune of
// the first line.
func ReadRunes(r io.Reader) (*Array[rune], error) {
	return readGrid(r, func(line []rune) []rune { return line })
}

// MustReadRunes is like ReadRunes but panics on error.
func MustReadRunes(r io.Reader) *Array[rune] {
	a, err := ReadRunes(r)
	if err != nil {
		panic(err)
	}
	return a
}

// ReadGraphemes is like ReadRunes but splits each line into extended
// grapheme clusters, so a flag, an emoji sequence joined by ZWJ or a base
// letter with several combining marks takes one cell. Line widths are
// compared in clusters.
func ReadGraphemes(r io.Reader) (*Array[string], error) {
	var seg segmenter.Segmenter
	return readGrid(r, func(line []rune) []string {
		if len(line) == 0 {
			return nil
		}
		seg.Init(line)
		var cells []string
		for it := seg.GraphemeIterator(); it.Next(); {
			cells = append(cells, string(it.Grapheme().Text))
		}
		return cells
	})
}

// MustReadGraphemes is like ReadGraphemes but panics on error.
func MustReadGraphemes(r io.Reader) *Array[string] {
	a, err := ReadGraphemes(r)
	if err != nil {
		panic(err)
	}
	return a
}

// readGrid scans r line by line and splits each NFC-normalized line into
// cells.
func readGrid[T any](r io.Reader, split func([]rune) []T) (*Array[T], error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLine)

	var data []T
	width, height := 0, 0
	for sc.Scan() {
		row := split([]rune(norm.NFC.String(strings.TrimSuffix(sc.Text(), "\r"))))
		if height == 0 {
			width = len(row)
		} else if len(row) != width {
			return nil, fmt.Errorf("%w: line %d has width %d, want %d", ErrRaggedGrid, height+1, len(row), width)
		}
		data = append(data, row...)
		height++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("array: read text grid: %w", err)
	}
	if height == 0 || width == 0 {
		return nil, ErrEmptyGrid
	}
	nd.Logger().Debug("array: read text grid", "width", width, "height", height)
	return FromSlice(vec.XY(width, height), data)
}
