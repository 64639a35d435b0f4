package fluid

// Advector performs semi-Lagrangian advection: trace each destination cell
// backward through the velocity field and bilinearly sample the source
// field at the traced point.
type Advector struct {
	grid     *Grid
	boundary *BoundaryOps
}

// Advect writes dest[i,j] = source sampled at the backtraced position for
// every interior fluid cell, zeroes dest at solid cells, and reapplies the
// field's boundary kind afterward. Rows are independent of one another, so
// they're spread across a worker pool.
func (a *Advector) Advect(kind BoundaryKind, dest, source, vx, vy, solid []float32, dt float32) {
	g := a.grid
	dtx := dt * float32(g.W-2)
	dty := dt * float32(g.H-2)

	parallelRange(1, g.H-1, func(j int) {
		for i := 1; i < g.W-1; i++ {
			idx := g.Idx(i, j)
			if solid[idx] > 0 {
				dest[idx] = 0
				continue
			}

			x := float32(i) - dtx*vx[idx]
			y := float32(j) - dty*vy[idx]

			x = clampf(x, 0.5, float32(g.W)-1.5)
			y = clampf(y, 0.5, float32(g.H)-1.5)

			dest[idx] = bilerp(source, g, x, y)
		}
	})

	a.boundary.Apply(kind, dest)
}
