package fluid

import "math"

// defaultThickness is the NACA 00xx thickness parameter used by
// InitObstacle.
const defaultThickness = 0.15

// InitObstacle rasterizes a symmetric NACA 00xx airfoil, chord-aligned
// along the horizontal centerline, as the solid mask, using the default
// thickness ratio.
func (f *FluidSolver) InitObstacle() {
	f.InitObstacleWithThickness(defaultThickness)
}

// InitObstacleWithThickness rasterizes the same airfoil shape as
// InitObstacle but with a caller-chosen thickness ratio t, letting callers
// compare flow separation across airfoil profiles without writing a mask
// by hand.
func (f *FluidSolver) InitObstacleWithThickness(t float32) {
	g := f.grid
	chord := float32(g.W) / 4
	leadingEdge := float32(g.W) / 3
	centerY := float32(g.H) * 0.5

	for j := 0; j < g.H; j++ {
		for i := 0; i < g.W; i++ {
			idx := g.Idx(i, j)

			x := (float32(i) - leadingEdge) / chord
			inside := false
			if x >= 0 && x <= 1 {
				half := nacaHalfThickness(x, t)
				dy := (float32(j) - centerY) / chord
				if dy >= -half && dy <= half {
					inside = true
				}
			}

			if inside {
				f.solid[idx] = 1
			} else {
				f.solid[idx] = 0
			}
		}
	}
	f.clearSolidVelocity()
}

// nacaHalfThickness evaluates the standard NACA 00xx half-thickness
// polynomial at chord fraction x for thickness ratio t.
func nacaHalfThickness(x, t float32) float32 {
	fx := float64(x)
	ft := float64(t)
	y := 5 * ft * (0.2969*math.Sqrt(fx) - 0.1260*fx - 0.3516*fx*fx + 0.2843*fx*fx*fx - 0.1015*fx*fx*fx*fx)
	return float32(y)
}

// SetObstacleMask replaces the solid mask wholesale from an externally
// supplied occupancy grid, typically produced by package slicer. mask must
// have exactly Width()*Height() entries; any other length is a silent
// no-op, matching the source this was adapted from. Values are normalized
// to exactly 0 or 1.
func (f *FluidSolver) SetObstacleMask(mask []float32) bool {
	if len(mask) != f.grid.N {
		return false
	}
	for idx, v := range mask {
		if v > 0 {
			f.solid[idx] = 1
		} else {
			f.solid[idx] = 0
		}
	}
	f.clearSolidVelocity()
	return true
}

// clearSolidVelocity zeroes velocity at every solid cell in both the
// current and previous-step buffers. Clearing only the current slot would
// let a stale previous-step value leak back in on the very next swap at
// the start of Step, reanimating flow inside a cell that is now solid.
func (f *FluidSolver) clearSolidVelocity() {
	for idx, s := range f.solid {
		if s > 0 {
			f.vx[idx] = 0
			f.vy[idx] = 0
			f.vxPrev[idx] = 0
			f.vyPrev[idx] = 0
		}
	}
}
