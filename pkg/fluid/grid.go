package fluid

import "fmt"

// Grid describes a fixed W x H row-major layout shared by every field the
// solver owns. idx(x, y) clamps out-of-range coordinates to the nearest
// edge cell rather than failing, so the numerical kernels can read i-1/i+1
// and j-1/j+1 neighbors at the domain edges without branching.
type Grid struct {
	W, H int
	N    int
}

// NewGrid validates W and H and returns the shared grid descriptor.
func NewGrid(w, h int) (*Grid, error) {
	if w < 4 || h < 4 {
		return nil, fmt.Errorf("fluid: grid dimensions must be >= 4, got %dx%d", w, h)
	}
	return &Grid{W: w, H: h, N: w * h}, nil
}

// Idx maps a (possibly out-of-range) cell coordinate to a flat field index,
// clamping x to [0, W-1] and y to [0, H-1].
func (g *Grid) Idx(x, y int) int {
	if x < 0 {
		x = 0
	} else if x > g.W-1 {
		x = g.W - 1
	}
	if y < 0 {
		y = 0
	} else if y > g.H-1 {
		y = g.H - 1
	}
	return x + y*g.W
}

// NewField allocates a zero-initialized flat field of length N.
func (g *Grid) NewField() []float32 {
	return make([]float32, g.N)
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// bilerp samples field at the fractional cell coordinate (x, y) using
// bilinear interpolation between the four surrounding cell centers.
func bilerp(field []float32, g *Grid, x, y float32) float32 {
	x0 := int(x)
	y0 := int(y)
	x1 := x0 + 1
	y1 := y0 + 1

	sx := x - float32(x0)
	sy := y - float32(y0)

	v00 := field[g.Idx(x0, y0)]
	v10 := field[g.Idx(x1, y0)]
	v01 := field[g.Idx(x0, y1)]
	v11 := field[g.Idx(x1, y1)]

	return (1-sx)*(1-sy)*v00 + sx*(1-sy)*v10 + (1-sx)*sy*v01 + sx*sy*v11
}
