// Package slicer turns a triangle mesh, a model matrix, and a slicing
// plane into a dense occupancy mask on the same grid the fluid solver
// uses, so a 3D obstacle can drive a 2D simulation's boundary.
package slicer

import "gonum.org/v1/gonum/spatial/r3"

// Triangle is three vertex positions in mesh-local space.
type Triangle struct {
	A, B, C r3.Vec
}
