package slicer

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// degenerateAreaEps is the xy-area threshold below which a clipped
// triangle's projection is treated as an edge-on sliver rather than a
// real footprint.
const degenerateAreaEps = 1e-9

// Slicer voxelizes a mesh against a slab into a dense W*H occupancy mask
// on the same grid a FluidSolver uses, so a 3D obstacle can drive a 2D
// simulation's boundary without either package depending on the other.
// Coverage is computed per clipped triangle, so disjoint or concave
// cross-sections come out correctly; the one gap is a face that's
// edge-on to the projection (a box's side wall when sliced through its
// middle), which contributes no area of its own and is patched by a
// convex-hull merge — see Capture's doc for the exact contract.
type Slicer struct {
	w, h int
}

// New returns a Slicer sized to a W x H grid (W, H >= 4, matching the
// fluid package's own precondition so the two stay interchangeable).
func New(w, h int) (*Slicer, error) {
	if w < 4 || h < 4 {
		return nil, fmt.Errorf("slicer: grid dimensions must be >= 4, got %dx%d", w, h)
	}
	return &Slicer{w: w, h: h}, nil
}

// Width returns the mask width in cells.
func (s *Slicer) Width() int { return s.w }

// Height returns the mask height in cells.
func (s *Slicer) Height() int { return s.h }

// Capture drains mesh once, transforms every triangle by M, and clips
// each against the slab [z-thickness/2, z+thickness/2]. A clipped
// triangle whose xy projection has non-negligible area is rasterized
// into the mask on its own: a cell is 1.0 iff some triangle's xy
// footprint covers its center, so meshes with disjoint or concave
// cross-sections are handled correctly.
//
// A clipped triangle that projects to a degenerate, near-zero-area
// sliver — a face edge-on to the xy plane, such as a box's side wall
// when sliced straight through its middle — carries no area to
// rasterize on its own. Those slivers' vertices are merged into a
// single convex hull and rasterized as one extra region, which
// reconstructs a convex solid's true cross-section (the one case the
// per-triangle rule can't cover) at the cost of potentially bridging
// the gap between two genuinely disjoint, purely edge-on slivers.
//
// Capture never fails: triangles with a non-finite transformed vertex
// are silently skipped, and an empty or slab-missing mesh yields an
// all-zero mask.
func (s *Slicer) Capture(mesh MeshSource, m Mat4, z, thickness float32) []float32 {
	var triangles []Triangle
	mesh.Triangles()(func(tri Triangle) bool {
		triangles = append(triangles, tri)
		return true
	})

	mask := make([]float32, s.w*s.h)
	if len(triangles) == 0 {
		return mask
	}

	zLo := float64(z) - float64(thickness)/2
	zHi := float64(z) + float64(thickness)/2

	polys, slivers := s.clipTriangles(triangles, m, zLo, zHi)

	for _, poly := range polys {
		s.rasterizePolygon(mask, poly)
	}
	if hull := convexHull(slivers); len(hull) >= 3 {
		s.rasterizePolygon(mask, hull)
	}

	return mask
}

// clipTriangles transforms and clips every triangle against the slab
// concurrently (triangles are independent of one another), splitting the
// surviving xy footprints into real polygons and degenerate slivers by
// area. Each worker accumulates its own local results; they're merged
// under a mutex since there's no shared mask to race on at this stage.
func (s *Slicer) clipTriangles(triangles []Triangle, m Mat4, zLo, zHi float64) (polys [][]r2.Vec, slivers []r2.Vec) {
	workers := runtime.GOMAXPROCS(0)
	if workers > len(triangles) {
		workers = len(triangles)
	}
	chunk := (len(triangles) + workers - 1) / workers

	var mu sync.Mutex
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > len(triangles) {
			end = len(triangles)
		}
		if start >= end {
			break
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			var localPolys [][]r2.Vec
			var localSlivers []r2.Vec
			for i := lo; i < hi; i++ {
				poly := clippedPolygon(triangles[i], m, zLo, zHi)
				if poly == nil {
					continue
				}
				if math.Abs(polygonArea(poly)) > degenerateAreaEps {
					localPolys = append(localPolys, poly)
				} else {
					localSlivers = append(localSlivers, poly...)
				}
			}
			mu.Lock()
			polys = append(polys, localPolys...)
			slivers = append(slivers, localSlivers...)
			mu.Unlock()
		}(start, end)
	}
	wg.Wait()
	return polys, slivers
}

// rasterizePolygon sets every mask cell whose center falls inside poly.
// Rows are independent of one another, so they're spread across a
// worker pool; separate calls to rasterizePolygon never run concurrently
// with one another, so there's no race between polygons.
func (s *Slicer) rasterizePolygon(mask []float32, poly []r2.Vec) {
	if len(poly) < 3 {
		return
	}
	minX, minY, maxX, maxY := polygonBounds(poly, s.w, s.h)
	parallelRange(minY, maxY+1, func(j int) {
		cy := float64(j) + 0.5
		for i := minX; i <= maxX; i++ {
			cx := float64(i) + 0.5
			if pointInPolygon(cx, cy, poly) {
				mask[i+j*s.w] = 1
			}
		}
	})
}

// clippedPolygon transforms a triangle by m, clips it against the slab,
// and returns the xy projection of whatever vertices survive, or nil if
// the triangle lies entirely outside the slab or has a non-finite
// transformed vertex.
func clippedPolygon(tri Triangle, m Mat4, zLo, zHi float64) []r2.Vec {
	va := m.MulVec(tri.A)
	vb := m.MulVec(tri.B)
	vc := m.MulVec(tri.C)

	if !finiteVec(va) || !finiteVec(vb) || !finiteVec(vc) {
		return nil
	}

	poly := clipAgainstSlab(va, vb, vc, zLo, zHi)
	if len(poly) == 0 {
		return nil
	}
	return projectXY(poly)
}

func finiteVec(p r3.Vec) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsNaN(p.Z) &&
		!math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0) && !math.IsInf(p.Z, 0)
}
