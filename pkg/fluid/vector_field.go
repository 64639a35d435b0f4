package fluid

// VectorField is a read-only snapshot of the velocity field over the grid.
type VectorField struct {
	grid   *Grid
	vx, vy []float32
}

// Value returns the (x, y) velocity component pair at cell (x, y).
func (v VectorField) Value(x, y int) (float32, float32) {
	idx := v.grid.Idx(x, y)
	return v.vx[idx], v.vy[idx]
}

// RawX returns the underlying x-component slice in row-major order.
func (v VectorField) RawX() []float32 { return v.vx }

// RawY returns the underlying y-component slice in row-major order.
func (v VectorField) RawY() []float32 { return v.vy }

func (f *FluidSolver) snapshotVector(vx, vy []float32) VectorField {
	cx := make([]float32, len(vx))
	cy := make([]float32, len(vy))
	copy(cx, vx)
	copy(cy, vy)
	return VectorField{grid: f.grid, vx: cx, vy: cy}
}
