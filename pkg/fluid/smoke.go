package fluid

// DyeField returns a copied snapshot of the current dye density field.
func (f *FluidSolver) DyeField() ScalarField {
	return f.snapshotScalar(f.dye)
}
