package slicer

import "gonum.org/v1/gonum/spatial/r3"

// clipAgainstSlab clips a triangle (given as three world-space vertices)
// against the slab zLo <= z <= zHi using two passes of Sutherland-Hodgman
// half-space clipping, one per z-plane. It returns the resulting convex
// polygon (up to 5 vertices for a triangle against two planes; fewer if
// the triangle grazes a plane edge-on) or nil if the triangle lies
// entirely outside the slab.
func clipAgainstSlab(v0, v1, v2 r3.Vec, zLo, zHi float64) []r3.Vec {
	poly := []r3.Vec{v0, v1, v2}

	poly = clipHalfSpace(poly, func(p r3.Vec) float64 { return p.Z - zLo })
	if len(poly) == 0 {
		return nil
	}
	poly = clipHalfSpace(poly, func(p r3.Vec) float64 { return zHi - p.Z })
	if len(poly) == 0 {
		return nil
	}
	return poly
}

// clipHalfSpace clips a convex polygon against the half-space dist(p) >=
// 0, where dist is a signed distance-like function whose sign determines
// inside/outside. Vertices exactly on the plane (dist == 0) are kept.
func clipHalfSpace(poly []r3.Vec, dist func(r3.Vec) float64) []r3.Vec {
	if len(poly) == 0 {
		return nil
	}
	var out []r3.Vec
	n := len(poly)
	for i := 0; i < n; i++ {
		cur := poly[i]
		next := poly[(i+1)%n]
		curDist := dist(cur)
		nextDist := dist(next)

		if curDist >= 0 {
			out = append(out, cur)
		}
		if (curDist >= 0) != (nextDist >= 0) {
			t := curDist / (curDist - nextDist)
			out = append(out, lerpVec(cur, next, t))
		}
	}
	return out
}

func lerpVec(a, b r3.Vec, t float64) r3.Vec {
	return r3.Vec{
		X: a.X + t*(b.X-a.X),
		Y: a.Y + t*(b.Y-a.Y),
		Z: a.Z + t*(b.Z-a.Z),
	}
}
