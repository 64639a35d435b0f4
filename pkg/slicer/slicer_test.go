package slicer

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

// unitCube returns the 12 triangles of a unit cube centered at the
// origin, spanning [-0.5, 0.5] on every axis.
func unitCube() TriangleList {
	v := func(x, y, z float64) r3.Vec { return r3.Vec{X: x, Y: y, Z: z} }

	// 8 corners.
	c := [8]r3.Vec{
		v(-0.5, -0.5, -0.5), v(0.5, -0.5, -0.5), v(0.5, 0.5, -0.5), v(-0.5, 0.5, -0.5),
		v(-0.5, -0.5, 0.5), v(0.5, -0.5, 0.5), v(0.5, 0.5, 0.5), v(-0.5, 0.5, 0.5),
	}
	quad := func(a, b, cc, d int) []Triangle {
		return []Triangle{
			{A: c[a], B: c[b], C: c[cc]},
			{A: c[a], B: c[cc], C: c[d]},
		}
	}
	var tris TriangleList
	tris = append(tris, quad(0, 1, 2, 3)...) // bottom (-z)
	tris = append(tris, quad(4, 5, 6, 7)...) // top (+z)
	tris = append(tris, quad(0, 1, 5, 4)...) // -y side
	tris = append(tris, quad(3, 2, 6, 7)...) // +y side
	tris = append(tris, quad(0, 3, 7, 4)...) // -x side
	tris = append(tris, quad(1, 2, 6, 5)...) // +x side
	return tris
}

func TestSlicerRejectsUndersizedGrid(t *testing.T) {
	if _, err := New(3, 10); err == nil {
		t.Fatalf("expected error for undersized grid")
	}
}

func TestSlicerRectangularPrism(t *testing.T) {
	w, h := 40, 40
	s, err := New(w, h)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	cube := unitCube()
	m := Translate(float64(w)/2, float64(h)/2, 0).Mul(Scale(10, 10, 10))

	mask := s.Capture(cube, m, 0, 2)

	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			cx := float64(i) + 0.5
			cy := float64(j) + 0.5
			wantInside := cx >= float64(w)/2-5 && cx <= float64(w)/2+5 &&
				cy >= float64(h)/2-5 && cy <= float64(h)/2+5
			got := mask[i+j*w] > 0
			if got != wantInside {
				t.Fatalf("cell (%d,%d): got %v, want inside=%v", i, j, got, wantInside)
			}
		}
	}
}

func TestSlicerMissOutsideSlab(t *testing.T) {
	w, h := 40, 40
	s, _ := New(w, h)
	cube := unitCube()
	m := Translate(float64(w)/2, float64(h)/2, 0).Mul(Scale(10, 10, 10))

	mask := s.Capture(cube, m, 100, 2)

	for idx, v := range mask {
		if v != 0 {
			t.Fatalf("mask[%d] = %v, want 0 (slab miss)", idx, v)
		}
	}
}

func TestSlicerEmptyMeshIsAllZero(t *testing.T) {
	s, _ := New(20, 20)
	mask := s.Capture(TriangleList{}, Identity(), 0, 1)
	for idx, v := range mask {
		if v != 0 {
			t.Fatalf("mask[%d] = %v, want 0 for empty mesh", idx, v)
		}
	}
	if len(mask) != 400 {
		t.Fatalf("mask length = %d, want 400", len(mask))
	}
}

func TestSlicerOutputIsOnlyZeroOrOne(t *testing.T) {
	w, h := 30, 30
	s, _ := New(w, h)
	cube := unitCube()
	m := Translate(float64(w)/2, float64(h)/2, 0).Mul(Scale(8, 8, 8))
	mask := s.Capture(cube, m, 0, 2)

	for idx, v := range mask {
		if v != 0 && v != 1 {
			t.Fatalf("mask[%d] = %v, not 0 or 1", idx, v)
		}
	}
}

func TestSlicerDeterministic(t *testing.T) {
	w, h := 30, 30
	s, _ := New(w, h)
	cube := unitCube()
	m := Translate(float64(w)/2, float64(h)/2, 0).Mul(Scale(8, 8, 8))

	first := s.Capture(cube, m, 0, 2)
	second := s.Capture(cube, m, 0, 2)

	if len(first) != len(second) {
		t.Fatalf("length mismatch: %d vs %d", len(first), len(second))
	}
	for idx := range first {
		if first[idx] != second[idx] {
			t.Fatalf("mask[%d] differs across runs: %v vs %v", idx, first[idx], second[idx])
		}
	}
}

func TestSlicerSkipsNonFiniteVertices(t *testing.T) {
	s, _ := New(10, 10)
	nan := r3.Vec{X: posInf(), Y: 0, Z: 0}
	tris := TriangleList{
		{A: nan, B: r3.Vec{X: 1, Y: 0, Z: 0}, C: r3.Vec{X: 0, Y: 1, Z: 0}},
	}
	mask := s.Capture(tris, Identity(), 0, 1)
	for idx, v := range mask {
		if v != 0 {
			t.Fatalf("mask[%d] = %v, want 0 (triangle with non-finite vertex must be skipped)", idx, v)
		}
	}
}

func posInf() float64 {
	var zero float64
	return 1 / zero
}

func TestSlicerDegenerateTriangleContributesNothing(t *testing.T) {
	s, _ := New(10, 10)
	p := r3.Vec{X: 5, Y: 5, Z: 0}
	tris := TriangleList{{A: p, B: p, C: p}}
	mask := s.Capture(tris, Identity(), 0, 1)
	for idx, v := range mask {
		if v != 0 {
			t.Fatalf("mask[%d] = %v, want 0 for degenerate triangle", idx, v)
		}
	}
}
