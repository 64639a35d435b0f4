package slicer

import "gonum.org/v1/gonum/spatial/r3"

// Mat4 is a row-major 4x4 affine-or-linear matrix. No repo in the
// reference pack carries a lightweight fixed-size matrix type for this;
// gonum's mat.Dense is general-purpose and disproportionate for 16 known
// elements, so this is the minimal type satisfying the model-matrix
// contract.
type Mat4 [16]float64

// Identity returns the 4x4 identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate returns the affine translation matrix by (x, y, z).
func Translate(x, y, z float64) Mat4 {
	m := Identity()
	m[3] = x
	m[7] = y
	m[11] = z
	return m
}

// Scale returns the linear scaling matrix by (x, y, z).
func Scale(x, y, z float64) Mat4 {
	m := Identity()
	m[0] = x
	m[5] = y
	m[10] = z
	return m
}

// Mul returns m * other, composing transformations so that (m.Mul(other))
// applied to a point first applies other, then m.
func (m Mat4) Mul(other Mat4) Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[row*4+k] * other[k*4+col]
			}
			out[row*4+col] = sum
		}
	}
	return out
}

// MulVec applies m to point p as a homogeneous coordinate with w = 1.
func (m Mat4) MulVec(p r3.Vec) r3.Vec {
	x := m[0]*p.X + m[1]*p.Y + m[2]*p.Z + m[3]
	y := m[4]*p.X + m[5]*p.Y + m[6]*p.Z + m[7]
	z := m[8]*p.X + m[9]*p.Y + m[10]*p.Z + m[11]
	return r3.Vec{X: x, Y: y, Z: z}
}
