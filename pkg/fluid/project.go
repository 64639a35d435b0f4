package fluid

// Projector removes the divergent component of the velocity field via a
// discrete Helmholtz decomposition: compute divergence, solve the
// resulting pressure Poisson equation by Gauss-Seidel relaxation, then
// subtract the pressure gradient from velocity.
type Projector struct {
	grid     *Grid
	boundary *BoundaryOps
}

// Project mutates vx, vy, pressure and divergence in place. The solid-
// neighbor substitution in steps B and C yields zero normal velocity at
// the fluid/solid interface (free-slip tangentially); the right-wall
// Dirichlet pressure combined with left-wall inflow is what drives
// steady-state flow through the tunnel.
func (p *Projector) Project(vx, vy, pressure, divergence, solid []float32, iterations int) {
	g := p.grid
	h := float32(1) / float32(g.W)

	for j := 1; j < g.H-1; j++ {
		for i := 1; i < g.W-1; i++ {
			idx := g.Idx(i, j)
			if solid[idx] > 0 {
				divergence[idx] = 0
				pressure[idx] = 0
				continue
			}
			divergence[idx] = -0.5 * h * (vx[g.Idx(i+1, j)] - vx[g.Idx(i-1, j)] +
				vy[g.Idx(i, j+1)] - vy[g.Idx(i, j-1)])
			pressure[idx] = 0
		}
	}
	p.boundary.Apply(Scalar, divergence)
	p.boundary.Apply(Pressure, pressure)

	for iter := 0; iter < iterations; iter++ {
		for j := 1; j < g.H-1; j++ {
			for i := 1; i < g.W-1; i++ {
				idx := g.Idx(i, j)
				if solid[idx] > 0 {
					continue
				}
				pl, pr, pb, pt := p.neumannNeighbors(pressure, solid, i, j)
				pressure[idx] = (divergence[idx] + pl + pr + pb + pt) / 4
			}
		}
		p.boundary.Apply(Pressure, pressure)
	}

	for j := 1; j < g.H-1; j++ {
		for i := 1; i < g.W-1; i++ {
			idx := g.Idx(i, j)
			if solid[idx] > 0 {
				vx[idx] = 0
				vy[idx] = 0
				continue
			}
			pl, pr, pb, pt := p.neumannNeighbors(pressure, solid, i, j)
			vx[idx] -= 0.5 * (pr - pl) / h
			vy[idx] -= 0.5 * (pt - pb) / h
		}
	}

	p.boundary.Apply(VelocityX, vx)
	p.boundary.Apply(VelocityY, vy)
}

// neumannNeighbors returns the four pressure neighbors of (i,j), replacing
// any solid neighbor's value with the center value so the discrete normal
// gradient into solid is zero.
func (p *Projector) neumannNeighbors(pressure, solid []float32, i, j int) (pl, pr, pb, pt float32) {
	g := p.grid
	center := pressure[g.Idx(i, j)]

	pl = pressure[g.Idx(i-1, j)]
	if solid[g.Idx(i-1, j)] > 0 {
		pl = center
	}
	pr = pressure[g.Idx(i+1, j)]
	if solid[g.Idx(i+1, j)] > 0 {
		pr = center
	}
	pb = pressure[g.Idx(i, j-1)]
	if solid[g.Idx(i, j-1)] > 0 {
		pb = center
	}
	pt = pressure[g.Idx(i, j+1)]
	if solid[g.Idx(i, j+1)] > 0 {
		pt = center
	}
	return
}
