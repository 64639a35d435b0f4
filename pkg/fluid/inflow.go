package fluid

import "math"

// InflowDriver applies one of the two mutually exclusive inflow modes
// after each step: a wind-tunnel inlet on the left wall, or surface-normal
// displacement flow off the obstacle surface.
type InflowDriver struct {
	grid *Grid
}

// frontalSpeed is the fixed emission speed used by frontal-source inflow.
const frontalSpeed = 2.0

// Apply injects velocity and dye according to frontal. Rows (wind-tunnel
// mode) and cells (frontal mode) are independent of one another, so both
// loops run across a worker pool.
func (d *InflowDriver) Apply(vx, vy, dye, solid []float32, inflowVelocity float32, frontal bool) {
	if frontal {
		d.applyFrontal(vx, vy, dye, solid)
		return
	}
	d.applyWindTunnel(vx, vy, dye, inflowVelocity)
}

func (d *InflowDriver) applyWindTunnel(vx, vy, dye []float32, inflowVelocity float32) {
	g := d.grid
	loBand := 0.45 * float32(g.H)
	hiBand := 0.55 * float32(g.H)

	parallelRange(1, g.H-1, func(j int) {
		vx[g.Idx(0, j)] = inflowVelocity
		vx[g.Idx(1, j)] = inflowVelocity
		vy[g.Idx(0, j)] = 0
		vy[g.Idx(1, j)] = 0

		fj := float32(j)
		if fj > loBand && fj < hiBand {
			dye[g.Idx(0, j)] = 1.0
			dye[g.Idx(1, j)] = 1.0
		} else {
			dye[g.Idx(0, j)] = 0
		}
	})
}

func (d *InflowDriver) applyFrontal(vx, vy, dye, solid []float32) {
	g := d.grid

	parallelRange(1, g.H-1, func(j int) {
		for i := 1; i < g.W-1; i++ {
			idx := g.Idx(i, j)
			if solid[idx] > 0 {
				continue
			}

			var nx, ny float32
			isBoundary := false
			if solid[g.Idx(i-1, j)] > 0 {
				nx += 1
				isBoundary = true
			}
			if solid[g.Idx(i+1, j)] > 0 {
				nx -= 1
				isBoundary = true
			}
			if solid[g.Idx(i, j-1)] > 0 {
				ny += 1
				isBoundary = true
			}
			if solid[g.Idx(i, j+1)] > 0 {
				ny -= 1
				isBoundary = true
			}
			if !isBoundary {
				continue
			}

			length := float32(math.Sqrt(float64(nx*nx + ny*ny)))
			if length == 0 {
				continue
			}
			nx /= length
			ny /= length

			vx[idx] = nx * frontalSpeed
			vy[idx] = ny * frontalSpeed
			dye[idx] = 1.0
		}
	})
}
