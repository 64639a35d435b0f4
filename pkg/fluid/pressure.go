package fluid

// PressureField returns a copied snapshot of the current pressure field.
func (f *FluidSolver) PressureField() ScalarField {
	return f.snapshotScalar(f.pressure)
}
