package fluid

// Diffuser approximates dest ~= (I - dt*rate*L)^-1 source via Gauss-Seidel
// relaxation over the 5-point Laplacian L, reading and writing dest in
// place within a sweep. This is deliberately not pure Jacobi: the sweep
// sees its own partial updates, which is what the reference solver's
// observable dynamics depend on.
type Diffuser struct {
	grid     *Grid
	boundary *BoundaryOps
}

// Diffuse runs `iterations` relaxation sweeps of dest against source,
// applying the boundary rule for kind after every sweep. Sweeps are
// sequential and row-major: a sweep must see the previous cell's
// already-updated value for the Gauss-Seidel behavior to match.
func (d *Diffuser) Diffuse(kind BoundaryKind, dest, source, solid []float32, rate, dt float32, iterations int) {
	g := d.grid
	a := dt * rate * float32(g.W-2) * float32(g.H-2)

	for iter := 0; iter < iterations; iter++ {
		for j := 1; j < g.H-1; j++ {
			for i := 1; i < g.W-1; i++ {
				idx := g.Idx(i, j)
				if solid[idx] > 0 {
					continue
				}

				nl := dest[g.Idx(i-1, j)]
				nr := dest[g.Idx(i+1, j)]
				nb := dest[g.Idx(i, j-1)]
				nt := dest[g.Idx(i, j+1)]

				if kind == Scalar {
					if solid[g.Idx(i-1, j)] > 0 {
						nl = dest[idx]
					}
					if solid[g.Idx(i+1, j)] > 0 {
						nr = dest[idx]
					}
					if solid[g.Idx(i, j-1)] > 0 {
						nb = dest[idx]
					}
					if solid[g.Idx(i, j+1)] > 0 {
						nt = dest[idx]
					}
				} else {
					if solid[g.Idx(i-1, j)] > 0 {
						nl = 0
					}
					if solid[g.Idx(i+1, j)] > 0 {
						nr = 0
					}
					if solid[g.Idx(i, j-1)] > 0 {
						nb = 0
					}
					if solid[g.Idx(i, j+1)] > 0 {
						nt = 0
					}
				}

				dest[idx] = (source[idx] + a*(nl+nr+nb+nt)) / (1 + 4*a)
			}
		}
		d.boundary.Apply(kind, dest)
	}
}
