package fluid

// ScalarField is a read-only snapshot of a single scalar quantity over the
// grid, returned by accessors that shouldn't hand out the solver's live,
// swap-rotated backing slice.
type ScalarField struct {
	grid *Grid
	data []float32
}

// Value returns the field value at cell (x, y), clamped to the grid like
// every other lookup in this package.
func (s ScalarField) Value(x, y int) float32 {
	return s.data[s.grid.Idx(x, y)]
}

// Raw returns the underlying slice in row-major x + y*W order.
func (s ScalarField) Raw() []float32 {
	return s.data
}

func (f *FluidSolver) snapshotScalar(data []float32) ScalarField {
	copied := make([]float32, len(data))
	copy(copied, data)
	return ScalarField{grid: f.grid, data: copied}
}
