// Package fluid implements a grid-based Eulerian solver for 2D
// incompressible flow: velocity, pressure, and a passive dye scalar,
// advanced by Jacobi/Gauss-Seidel viscosity diffusion, semi-Lagrangian
// advection, and Jacobi/Gauss-Seidel pressure projection around a solid
// obstacle mask.
package fluid

// FluidSolver owns every field and orchestrates one time-step. It is
// single-threaded and cooperative: Step runs to completion before
// returning and does not suspend.
type FluidSolver struct {
	grid      *Grid
	boundary  *BoundaryOps
	advector  *Advector
	diffuser  *Diffuser
	projector *Projector
	inflow    *InflowDriver

	vx, vxPrev           []float32
	vy, vyPrev           []float32
	pressure, divergence []float32
	dye, dyePrev         []float32
	solid                []float32

	// Viscosity is the diffusion coefficient applied to velocity.
	Viscosity float32
	// Diffusion is the diffusion coefficient applied to the dye scalar.
	Diffusion float32
	// InflowVelocity is the left-wall injected x-velocity in wind-tunnel
	// inflow mode.
	InflowVelocity float32
	// Iterations is the number of Gauss-Seidel sweeps used by both
	// Diffuse and Project.
	Iterations int
	// FrontalSource selects the inflow mode: false = wind-tunnel inlet,
	// true = surface-normal displacement flow off the obstacle.
	FrontalSource bool
}

// New allocates a solver over a W x H grid (W, H >= 4), zero-initializes
// every field, and rasterizes the built-in NACA airfoil as the initial
// obstacle.
func New(w, h int) (*FluidSolver, error) {
	grid, err := NewGrid(w, h)
	if err != nil {
		return nil, err
	}
	boundary := NewBoundaryOps(grid)

	f := &FluidSolver{
		grid:      grid,
		boundary:  boundary,
		advector:  &Advector{grid: grid, boundary: boundary},
		diffuser:  &Diffuser{grid: grid, boundary: boundary},
		projector: &Projector{grid: grid, boundary: boundary},
		inflow:    &InflowDriver{grid: grid},

		vx: grid.NewField(), vxPrev: grid.NewField(),
		vy: grid.NewField(), vyPrev: grid.NewField(),
		pressure: grid.NewField(), divergence: grid.NewField(),
		dye: grid.NewField(), dyePrev: grid.NewField(),
		solid: grid.NewField(),

		Viscosity:      1.33e-4,
		Diffusion:      0.0,
		InflowVelocity: 1.6,
		Iterations:     40,
		FrontalSource:  false,
	}
	f.InitObstacle()
	return f, nil
}

// Width returns the grid width in cells.
func (f *FluidSolver) Width() int { return f.grid.W }

// Height returns the grid height in cells.
func (f *FluidSolver) Height() int { return f.grid.H }

// VX returns the current horizontal velocity field. Callers must not
// assume pointer stability across Step calls: fields are swapped, not
// copied, between steps.
func (f *FluidSolver) VX() []float32 { return f.vx }

// VY returns the current vertical velocity field. Same pointer-stability
// caveat as VX.
func (f *FluidSolver) VY() []float32 { return f.vy }

// Pressure returns the current pressure field.
func (f *FluidSolver) Pressure() []float32 { return f.pressure }

// Dye returns the current dye density field.
func (f *FluidSolver) Dye() []float32 { return f.dye }

// Solid returns the current obstacle occupancy mask.
func (f *FluidSolver) Solid() []float32 { return f.solid }

// Step advances the simulation by dt, performing in order: diffuse
// velocity, project, advect velocity, project, diffuse dye, advect dye,
// apply inflow. The double swap before each advection step is deliberate:
// Diffuse writes into what was the "current" slot, the swap makes that the
// "previous" slot, and Advect reads from it into a fresh current slot.
func (f *FluidSolver) Step(dt float32) {
	f.vx, f.vxPrev = f.vxPrev, f.vx
	f.vy, f.vyPrev = f.vyPrev, f.vy

	f.diffuser.Diffuse(VelocityX, f.vx, f.vxPrev, f.solid, f.Viscosity, dt, f.Iterations)
	f.diffuser.Diffuse(VelocityY, f.vy, f.vyPrev, f.solid, f.Viscosity, dt, f.Iterations)

	f.projector.Project(f.vx, f.vy, f.pressure, f.divergence, f.solid, f.Iterations)

	f.vx, f.vxPrev = f.vxPrev, f.vx
	f.vy, f.vyPrev = f.vyPrev, f.vy

	f.advector.Advect(VelocityX, f.vx, f.vxPrev, f.vxPrev, f.vyPrev, f.solid, dt)
	f.advector.Advect(VelocityY, f.vy, f.vyPrev, f.vxPrev, f.vyPrev, f.solid, dt)

	f.projector.Project(f.vx, f.vy, f.pressure, f.divergence, f.solid, f.Iterations)

	f.dye, f.dyePrev = f.dyePrev, f.dye
	f.diffuser.Diffuse(Scalar, f.dye, f.dyePrev, f.solid, f.Diffusion, dt, f.Iterations)

	f.dye, f.dyePrev = f.dyePrev, f.dye
	// Dye rides the corrected (post-projection) velocity, unlike velocity
	// advection which reads the pre-projection _prev buffers above.
	f.advector.Advect(Scalar, f.dye, f.dyePrev, f.vx, f.vy, f.solid, dt)

	f.inflow.Apply(f.vx, f.vy, f.dye, f.solid, f.InflowVelocity, f.FrontalSource)
}

// MaxDivergence returns the maximum absolute discrete divergence across
// all fluid cells, useful for observing the bounded-drift property Project
// leaves behind rather than treating it as an error condition.
func (f *FluidSolver) MaxDivergence() float32 {
	g := f.grid
	var maxDiv float32
	for j := 1; j < g.H-1; j++ {
		for i := 1; i < g.W-1; i++ {
			idx := g.Idx(i, j)
			if f.solid[idx] > 0 {
				continue
			}
			div := f.vx[g.Idx(i+1, j)] - f.vx[g.Idx(i-1, j)] +
				f.vy[g.Idx(i, j+1)] - f.vy[g.Idx(i, j-1)]
			if div < 0 {
				div = -div
			}
			if div > maxDiv {
				maxDiv = div
			}
		}
	}
	return maxDiv
}
