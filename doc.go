// Package nd provides spatial indexing for dense N-dimensional data.
//
// # Overview
//
// nd maps fixed-arity coordinates to linear offsets into a flat buffer and
// back. The mapping is the addressing contract described by [Linear]; every
// shape-bearing type in the module implements it.
//
// # Packages
//
// The module is organized into:
//   - nd: the addressing contract ([Linear], [Index], [Neighbors]) and logging
//   - scalar: numeric capabilities (checked arithmetic, infimum/supremum, conversion)
//   - vec: coordinate vectors (vec.Vec) and shapes (vec.Shape)
//   - array: the dense N-dimensional container (array.Array)
//   - interval: half-open range algebra for bounding-box reasoning
//   - line: the N-dimensional line rasterizer used by array.DrawLine
//
// # Quick Start
//
//	a := array.MustNew(vec.New(3, 2), 0)
//	a.Set(vec.New(1, 1), 9)
//	v, ok := a.Get(vec.New(1, 1)) // 9, true
//	_, ok = a.Get(vec.New(3, 3))  // 0, false
//
// # Memory Layout
//
// Axis 0 varies fastest: for extents (e0, e1, ..., en) the strides are
// (1, e0, e0*e1, ...). A 2D array is therefore stored row by row with x as
// axis 0 and y as axis 1.
//
// # Concurrency
//
// Everything is synchronous. Arrays require external synchronization for
// writes; vectors and ranges are plain values.
package nd

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
