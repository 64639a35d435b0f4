package fluid

// BoundaryKind selects which wall-boundary rule BoundaryOps applies to a
// field. The source this package is adapted from used integer tags
// (0, 1, 2, 3); those are replaced here with a named enum because the
// Pressure case is load-bearing (its right-wall Dirichlet 0 is what makes
// this a wind tunnel rather than a closed box) and must never be collapsed
// with Scalar.
type BoundaryKind int

const (
	Scalar BoundaryKind = iota
	VelocityX
	VelocityY
	Pressure
)

// BoundaryOps enforces domain-wall boundary conditions on a field after
// every relaxation sweep and after advection.
type BoundaryOps struct {
	grid *Grid
}

// NewBoundaryOps returns boundary handling bound to grid.
func NewBoundaryOps(grid *Grid) *BoundaryOps {
	return &BoundaryOps{grid: grid}
}

// Apply enforces the wall rule for kind on field, then fixes up the four
// domain corners as the mean of their two nearest edge cells.
func (b *BoundaryOps) Apply(kind BoundaryKind, field []float32) {
	g := b.grid

	for i := 1; i < g.W-1; i++ {
		top := field[g.Idx(i, 1)]
		bottom := field[g.Idx(i, g.H-2)]
		if kind == VelocityY {
			// No-slip: the wall-normal component reverses sign across the wall.
			field[g.Idx(i, 0)] = -top
			field[g.Idx(i, g.H-1)] = -bottom
		} else {
			field[g.Idx(i, 0)] = top
			field[g.Idx(i, g.H-1)] = bottom
		}
	}

	for j := 1; j < g.H-1; j++ {
		field[g.Idx(0, j)] = field[g.Idx(1, j)]
		if kind == Pressure {
			// Dirichlet outflow: the pressure sink that drives the tunnel.
			field[g.Idx(g.W-1, j)] = 0
		} else {
			field[g.Idx(g.W-1, j)] = field[g.Idx(g.W-2, j)]
		}
	}

	field[g.Idx(0, 0)] = 0.5 * (field[g.Idx(1, 0)] + field[g.Idx(0, 1)])
	field[g.Idx(0, g.H-1)] = 0.5 * (field[g.Idx(1, g.H-1)] + field[g.Idx(0, g.H-2)])
	field[g.Idx(g.W-1, 0)] = 0.5 * (field[g.Idx(g.W-2, 0)] + field[g.Idx(g.W-1, 1)])
	field[g.Idx(g.W-1, g.H-1)] = 0.5 * (field[g.Idx(g.W-2, g.H-1)] + field[g.Idx(g.W-1, g.H-2)])
}
