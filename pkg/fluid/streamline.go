package fluid

// Point is a 2D position in grid-cell coordinates.
type Point struct {
	X, Y float32
}

// Streamline traces a massless particle through the current velocity
// field for up to steps sub-steps of size dt using second-order
// Runge-Kutta (midpoint) integration, stopping early if the particle
// leaves the grid or enters a solid cell. The returned slice always
// includes the starting point.
func (f *FluidSolver) Streamline(x0, y0 float32, steps int, dt float32) []Point {
	g := f.grid
	path := make([]Point, 1, steps+1)
	path[0] = Point{X: x0, Y: y0}

	x, y := x0, y0
	for s := 0; s < steps; s++ {
		if x < 0.5 || x > float32(g.W)-1.5 || y < 0.5 || y > float32(g.H)-1.5 {
			break
		}
		if f.solid[g.Idx(int(x), int(y))] > 0 {
			break
		}

		k1x := bilerp(f.vx, g, x, y)
		k1y := bilerp(f.vy, g, x, y)

		midX := clampf(x+0.5*dt*k1x, 0.5, float32(g.W)-1.5)
		midY := clampf(y+0.5*dt*k1y, 0.5, float32(g.H)-1.5)
		k2x := bilerp(f.vx, g, midX, midY)
		k2y := bilerp(f.vy, g, midX, midY)

		x += dt * k2x
		y += dt * k2y

		path = append(path, Point{X: x, Y: y})
	}
	return path
}
