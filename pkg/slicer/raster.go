package slicer

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// projectXY drops the z component of each vertex, producing the polygon's
// xy footprint.
func projectXY(poly []r3.Vec) []r2.Vec {
	out := make([]r2.Vec, len(poly))
	for i, p := range poly {
		out[i] = r2.Vec{X: p.X, Y: p.Y}
	}
	return out
}

// polygonBounds returns the integer cell-column/row bounding box that
// could possibly contain the polygon, clamped to [0, w) x [0, h).
func polygonBounds(poly []r2.Vec, w, h int) (minX, minY, maxX, maxY int) {
	if len(poly) == 0 {
		return 0, 0, -1, -1
	}
	minXf, minYf := poly[0].X, poly[0].Y
	maxXf, maxYf := poly[0].X, poly[0].Y
	for _, p := range poly[1:] {
		if p.X < minXf {
			minXf = p.X
		}
		if p.X > maxXf {
			maxXf = p.X
		}
		if p.Y < minYf {
			minYf = p.Y
		}
		if p.Y > maxYf {
			maxYf = p.Y
		}
	}
	minX = clampInt(int(minXf), 0, w-1)
	maxX = clampInt(int(maxXf), 0, w-1)
	minY = clampInt(int(minYf), 0, h-1)
	maxY = clampInt(int(maxYf), 0, h-1)
	return
}

// polygonArea returns the signed area of poly via the shoelace formula.
// A triangle clipped edge-on to the xy projection yields a polygon whose
// vertices are collinear, giving an area of (near) zero.
func polygonArea(poly []r2.Vec) float64 {
	n := len(poly)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// pointInPolygon tests whether (x, y) lies inside the convex polygon poly
// using a top-left-inclusive fill rule: a point exactly on a top or left
// edge counts as inside, on a bottom or right edge counts as outside. This
// keeps adjacent triangles from double-covering or leaving gaps at shared
// edges and makes the fill deterministic for points exactly on an edge.
func pointInPolygon(x, y float64, poly []r2.Vec) bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	inside := false
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]

		if edgeCrosses(a, b, x, y) {
			inside = !inside
		}
	}
	return inside
}

// edgeCrosses implements the standard half-open scanline crossing test
// (edge from a to b crosses the horizontal ray to the right of (x, y)),
// with the top-left tie-break baked into the half-open y-range.
func edgeCrosses(a, b r2.Vec, x, y float64) bool {
	if (a.Y <= y) == (b.Y <= y) {
		return false
	}
	t := (y - a.Y) / (b.Y - a.Y)
	xCross := a.X + t*(b.X-a.X)
	return xCross > x
}

// convexHull returns the convex hull of points in counter-clockwise
// order, via the monotone chain construction. slicer.go calls this only
// on the vertices of degenerate, edge-on slivers (real-area footprints
// are rasterized per triangle without going through here): a face
// that's edge-on to the xy projection contributes no area on its own,
// and what makes its solid whole again is the hull of every edge-on
// face's corners. This assumes those slivers together bound a convex
// region, true for the airfoil and scaled-primitive obstacles this
// package targets, but it will bridge the gap between two genuinely
// disjoint edge-on slivers rather than leave them separate.
func convexHull(points []r2.Vec) []r2.Vec {
	pts := dedupeSorted(points)
	if len(pts) < 3 {
		return pts
	}

	cross := func(o, a, b r2.Vec) float64 {
		return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
	}

	lower := make([]r2.Vec, 0, len(pts))
	for _, p := range pts {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	upper := make([]r2.Vec, 0, len(pts))
	for i := len(pts) - 1; i >= 0; i-- {
		p := pts[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}

func dedupeSorted(points []r2.Vec) []r2.Vec {
	sorted := make([]r2.Vec, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})
	out := make([]r2.Vec, 0, len(sorted))
	for i, p := range sorted {
		if i == 0 || p != sorted[i-1] {
			out = append(out, p)
		}
	}
	return out
}
