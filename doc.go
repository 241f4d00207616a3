// Package grid provides 2D coordinate-keyed containers and small geometry
// utilities for Go.
//
// # Overview
//
// grid is a Pure Go utility library designed to integrate with the GoGPU
// ecosystem. It provides insertion-ordered containers keyed by (x, y)
// coordinate pairs — a map (Map2D) and a set (Set2D) — built on a small
// immutable 2D vector value type (Vec), plus point-in-shape predicates and
// 4x4 matrix helpers.
//
// # Quick Start
//
//	import "github.com/gogpu/grid"
//
//	// Track values by cell coordinate, in insertion order.
//	m := grid.NewMap2D[string]()
//	m.Set(3, 4, "tower").Set(0, 0, "spawn")
//
//	for p, v := range m.All() {
//	    fmt.Println(p, v) // (3, 4) tower, then (0, 0) spawn
//	}
//
//	// Occupancy as a set of coordinates.
//	s := grid.NewSet2D()
//	s.AddXY(1, 2)
//
// # Containers
//
// Map2D keeps a two-level index from x to y to value. Iteration walks x
// keys in the order they were first introduced, then y keys in their
// first-insertion order within each x bucket. Re-setting an existing key
// never changes its position. Set2D is a thin facade over a Map2D whose
// stored value is the element itself.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Coordinates are float64 for compatibility with the geometry predicates,
// but container keys are intended to be integers; equality is exact per
// axis and floating-point keys are not normalized in any way.
//
// # Serialization
//
// Vec marshals to a [x, y] pair, Map2D to ordered [x, y, value] triples,
// and Set2D to ordered [x, y] pairs. Unmarshaling is the left inverse of
// marshaling for each form.
package grid

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
