package array

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// ErrNotPlanar is returned when a 2D-only operation is given an array of
// another rank.
var ErrNotPlanar = errors.New("array: array is not 2D")

// ImageOption configures Image.
//
// Example:
//
//	img, err := array.Image(grid, palette, array.WithScale(8))
type ImageOption func(*imageOptions)

type imageOptions struct {
	scale  int
	scaler xdraw.Scaler
}

func defaultImageOptions() imageOptions {
	return imageOptions{
		scale:  1,
		scaler: xdraw.NearestNeighbor,
	}
}

// WithScale makes every cell n x n pixels. Values below 1 are treated as 1.
func WithScale(n int) ImageOption {
	return func(o *imageOptions) {
		o.scale = max(n, 1)
	}
}

// WithScaler sets the scaler used when the scale is above 1. The default,
// xdraw.NearestNeighbor, keeps cell edges sharp; xdraw.CatmullRom or
// xdraw.ApproxBiLinear smooth them.
func WithScaler(s xdraw.Scaler) ImageOption {
	return func(o *imageOptions) {
		if s != nil {
			o.scaler = s
		}
	}
}

// Image renders a 2D array with one pixel per cell, colored by palette.
// Cell (x, y) maps to pixel (x, y), so row 0 is the top of the image.
func Image[T any](a *Array[T], palette func(T) color.Color, opts ...ImageOption) (*image.RGBA, error) {
	if a.Dims() != 2 {
		return nil, fmt.Errorf("%w: got %d axes", ErrNotPlanar, a.Dims())
	}
	o := defaultImageOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w, h := a.Width(), a.Height()
	src := image.NewRGBA(image.Rect(0, 0, w, h))
	for i, v := range a.data {
		src.Set(i%w, i/w, palette(v))
	}
	if o.scale == 1 {
		return src, nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, w*o.scale, h*o.scale))
	o.scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}
