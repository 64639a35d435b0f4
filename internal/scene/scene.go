// Package scene pairs a FluidSolver with a Slicer so a re-slice request
// — capture a mesh against a new plane, then install the result as the
// solver's obstacle mask — is one call instead of two.
package scene

import (
	"github.com/jsommer/windtunnel/pkg/fluid"
	"github.com/jsommer/windtunnel/pkg/slicer"
)

// Scene owns one solver and one slicer sized to the same grid.
type Scene struct {
	Solver *fluid.FluidSolver
	Slicer *slicer.Slicer
}

// New constructs a Scene with a solver and slicer both sized to W x H.
func New(w, h int) (*Scene, error) {
	solver, err := fluid.New(w, h)
	if err != nil {
		return nil, err
	}
	slc, err := slicer.New(w, h)
	if err != nil {
		return nil, err
	}
	return &Scene{Solver: solver, Slicer: slc}, nil
}

// Reslice captures mesh against the plane (m, z, thickness) and installs
// the resulting mask as the solver's obstacle, returning whatever
// SetObstacleMask returns. A mismatched grid size between Solver and
// Slicer would make that false; Scene's constructor prevents that by
// sizing both from the same W, H, so this effectively always succeeds
// for a Scene built via New.
func (s *Scene) Reslice(mesh slicer.MeshSource, m slicer.Mat4, z, thickness float32) bool {
	mask := s.Slicer.Capture(mesh, m, z, thickness)
	return s.Solver.SetObstacleMask(mask)
}
