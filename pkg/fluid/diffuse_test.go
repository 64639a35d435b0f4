package fluid

import "testing"

func TestDiffuseZeroRateIsIdentity(t *testing.T) {
	g, _ := NewGrid(8, 8)
	b := NewBoundaryOps(g)
	d := &Diffuser{grid: g, boundary: b}
	solid := g.NewField()
	source := g.NewField()
	for j := 1; j < g.H-1; j++ {
		for i := 1; i < g.W-1; i++ {
			source[g.Idx(i, j)] = float32(i * j)
		}
	}
	dest := g.NewField()
	copy(dest, source)
	d.Diffuse(Scalar, dest, source, solid, 0, 0.016, 20)

	for j := 1; j < g.H-1; j++ {
		for i := 1; i < g.W-1; i++ {
			idx := g.Idx(i, j)
			if got, want := dest[idx], source[idx]; got != want {
				t.Errorf("zero-rate diffuse at (%d,%d) = %v, want %v", i, j, got, want)
			}
		}
	}
}

func TestDiffuseSmoothsASpike(t *testing.T) {
	g, _ := NewGrid(10, 10)
	b := NewBoundaryOps(g)
	d := &Diffuser{grid: g, boundary: b}
	solid := g.NewField()
	source := g.NewField()
	source[g.Idx(5, 5)] = 100
	dest := g.NewField()
	copy(dest, source)
	d.Diffuse(Scalar, dest, source, solid, 0.2, 0.016, 20)

	if dest[g.Idx(5, 5)] >= 100 {
		t.Errorf("center did not lose mass: %v", dest[g.Idx(5, 5)])
	}
	if dest[g.Idx(4, 5)] <= 0 {
		t.Errorf("neighbor did not gain mass: %v", dest[g.Idx(4, 5)])
	}
}

func TestDiffuseSkipsSolidCells(t *testing.T) {
	g, _ := NewGrid(8, 8)
	b := NewBoundaryOps(g)
	d := &Diffuser{grid: g, boundary: b}
	solid := g.NewField()
	solid[g.Idx(3, 3)] = 1
	source := g.NewField()
	source[g.Idx(3, 3)] = 42
	dest := g.NewField()
	copy(dest, source)
	d.Diffuse(Scalar, dest, source, solid, 0.2, 0.016, 5)

	if got := dest[g.Idx(3, 3)]; got != 42 {
		t.Errorf("solid cell value changed to %v, want unchanged 42", got)
	}
}
