// Command ndgrid reads a character grid, pads it, draws lines across it and
// prints the result. It can also export the grid as PNG or JSON.
//
//	ndgrid -input maze.txt -pad 1 -line 0,0:9,4 -png maze.png -scale 8
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/nd"
	"github.com/gogpu/nd/array"
	"github.com/gogpu/nd/vec"
)

type segment struct {
	from, to vec.Vec[int]
}

func parseSegment(s string) (segment, error) {
	a, b, ok := strings.Cut(s, ":")
	if !ok {
		return segment{}, fmt.Errorf("line %q: want from:to", s)
	}
	from, err := vec.Parse[int](a)
	if err != nil {
		return segment{}, fmt.Errorf("line %q: %w", s, err)
	}
	to, err := vec.Parse[int](b)
	if err != nil {
		return segment{}, fmt.Errorf("line %q: %w", s, err)
	}
	return segment{from: from, to: to}, nil
}

func main() {
	var (
		input   = flag.String("input", "", "grid file (default stdin)")
		pad     = flag.Int("pad", 0, "cells of padding on every side")
		fill    = flag.String("fill", ".", "padding character")
		ink     = flag.String("ink", "*", "line character")
		bounded = flag.Bool("bounded", true, "clip lines to the grid")
		pngOut  = flag.String("png", "", "write the grid as a PNG image")
		scale   = flag.Int("scale", 8, "pixels per cell in the PNG image")
		jsonOut = flag.String("json", "", "write the grid as JSON")
		verbose = flag.Bool("v", false, "debug logging")
	)
	var segments []segment
	flag.Func("line", "line from:to in grid coordinates, e.g. 0,0:5,3 (repeatable)", func(s string) error {
		seg, err := parseSegment(s)
		if err == nil {
			segments = append(segments, seg)
		}
		return err
	})
	flag.Parse()

	if *verbose {
		nd.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var r io.Reader = os.Stdin
	if *input != "" {
		f, err := os.Open(*input)
		if err != nil {
			log.Fatalf("Failed to open input: %v", err)
		}
		defer func() {
			_ = f.Close()
		}()
		r = f
	}

	grid, err := array.ReadRunes(r)
	if err != nil {
		log.Fatalf("Failed to read grid: %v", err)
	}

	fillRune, inkRune := firstRune(*fill), firstRune(*ink)
	if *pad != 0 {
		if grid, err = grid.Pad(*pad, fillRune); err != nil {
			log.Fatalf("Failed to pad: %v", err)
		}
	}
	for _, seg := range segments {
		n := grid.DrawLine(seg.from, seg.to, *bounded, inkRune)
		nd.Logger().Debug("ndgrid: line drawn", "from", seg.from.String(), "to", seg.to.String(), "cells", n)
	}

	fmt.Print(grid)

	if *pngOut != "" {
		if err := writePNG(*pngOut, grid, fillRune, inkRune, *scale); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Grid saved to %s (%s)\n", *pngOut, grid.Shape())
	}
	if *jsonOut != "" {
		b, err := json.Marshal(grid)
		if err != nil {
			log.Fatalf("Failed to encode: %v", err)
		}
		if err := os.WriteFile(*jsonOut, b, 0o644); err != nil { //nolint:gosec // output is not sensitive
			log.Fatalf("Failed to save: %v", err)
		}
	}
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}

func writePNG(path string, grid *array.Array[rune], fill, ink rune, scale int) error {
	palette := func(r rune) color.Color {
		switch r {
		case fill, ' ':
			return color.White
		case ink:
			return color.RGBA{R: 0xe0, G: 0x30, B: 0x30, A: 0xff}
		default:
			return color.Black
		}
	}
	img, err := array.Image(grid, palette, array.WithScale(scale))
	if err != nil {
		return err
	}

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, img)
}
