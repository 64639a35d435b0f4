package fluid

import "testing"

func TestAdvectZeroVelocityIsIdentity(t *testing.T) {
	g, _ := NewGrid(8, 8)
	b := NewBoundaryOps(g)
	a := &Advector{grid: g, boundary: b}
	solid := g.NewField()
	vx := g.NewField()
	vy := g.NewField()

	source := g.NewField()
	for j := 1; j < g.H-1; j++ {
		for i := 1; i < g.W-1; i++ {
			source[g.Idx(i, j)] = float32(i + j)
		}
	}
	dest := g.NewField()
	a.Advect(Scalar, dest, source, vx, vy, solid, 0.016)

	for j := 1; j < g.H-1; j++ {
		for i := 1; i < g.W-1; i++ {
			idx := g.Idx(i, j)
			if got, want := dest[idx], source[idx]; got != want {
				t.Errorf("Advect zero-velocity at (%d,%d) = %v, want %v", i, j, got, want)
			}
		}
	}
}

func TestAdvectZeroesSolidCells(t *testing.T) {
	g, _ := NewGrid(8, 8)
	b := NewBoundaryOps(g)
	a := &Advector{grid: g, boundary: b}
	solid := g.NewField()
	solid[g.Idx(4, 4)] = 1
	vx := g.NewField()
	vy := g.NewField()
	source := g.NewField()
	for i := range source {
		source[i] = 1
	}
	dest := g.NewField()
	a.Advect(Scalar, dest, source, vx, vy, solid, 0.016)

	if got := dest[g.Idx(4, 4)]; got != 0 {
		t.Errorf("solid cell dest = %v, want 0", got)
	}
}

func TestAdvectUniformFlowShiftsField(t *testing.T) {
	g, _ := NewGrid(16, 8)
	b := NewBoundaryOps(g)
	a := &Advector{grid: g, boundary: b}
	solid := g.NewField()
	vx := g.NewField()
	vy := g.NewField()
	for i := range vx {
		vx[i] = 1
	}

	source := g.NewField()
	source[g.Idx(5, 4)] = 1
	dest := g.NewField()
	dt := float32(1.0) / float32(g.W-2)
	a.Advect(Scalar, dest, source, vx, vy, solid, dt)

	// Backtrace moves the sample point one cell to the left of the
	// destination, so the spike at x=5 should appear shifted to x=6.
	if got := dest[g.Idx(6, 4)]; got < 0.9 {
		t.Errorf("shifted spike at (6,4) = %v, want close to 1", got)
	}
}
