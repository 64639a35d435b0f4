package scene

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/jsommer/windtunnel/pkg/slicer"
)

func cubeMesh() slicer.TriangleList {
	v := func(x, y, z float64) r3.Vec { return r3.Vec{X: x, Y: y, Z: z} }
	c := [8]r3.Vec{
		v(-0.5, -0.5, -0.5), v(0.5, -0.5, -0.5), v(0.5, 0.5, -0.5), v(-0.5, 0.5, -0.5),
		v(-0.5, -0.5, 0.5), v(0.5, -0.5, 0.5), v(0.5, 0.5, 0.5), v(-0.5, 0.5, 0.5),
	}
	quad := func(a, b, cc, d int) []slicer.Triangle {
		return []slicer.Triangle{
			{A: c[a], B: c[b], C: c[cc]},
			{A: c[a], B: c[cc], C: c[d]},
		}
	}
	var tris slicer.TriangleList
	tris = append(tris, quad(0, 1, 2, 3)...)
	tris = append(tris, quad(4, 5, 6, 7)...)
	tris = append(tris, quad(0, 1, 5, 4)...)
	tris = append(tris, quad(3, 2, 6, 7)...)
	tris = append(tris, quad(0, 3, 7, 4)...)
	tris = append(tris, quad(1, 2, 6, 5)...)
	return tris
}

func TestResliceMatchesDirectCapture(t *testing.T) {
	w, h := 40, 40
	sc, err := New(w, h)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	mesh := cubeMesh()
	m := slicer.Translate(float64(w)/2, float64(h)/2, 0).Mul(slicer.Scale(10, 10, 10))

	direct := sc.Slicer.Capture(mesh, m, 0, 2)

	if ok := sc.Reslice(mesh, m, 0, 2); !ok {
		t.Fatalf("Reslice reported failure")
	}

	got := sc.Solver.Solid()
	if len(got) != len(direct) {
		t.Fatalf("length mismatch: %d vs %d", len(got), len(direct))
	}
	for idx := range direct {
		gotSolid := got[idx] > 0
		wantSolid := direct[idx] > 0
		if gotSolid != wantSolid {
			t.Fatalf("cell %d: solid=%v, want %v", idx, gotSolid, wantSolid)
		}
	}
}

func TestResliceClearsVelocityAtNewObstacleCells(t *testing.T) {
	w, h := 40, 40
	sc, err := New(w, h)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < 5; i++ {
		sc.Solver.Step(0.016)
	}
	mesh := cubeMesh()
	m := slicer.Translate(float64(w)/2, float64(h)/2, 0).Mul(slicer.Scale(10, 10, 10))
	sc.Reslice(mesh, m, 0, 2)

	vx := sc.Solver.VX()
	vy := sc.Solver.VY()
	for idx, s := range sc.Solver.Solid() {
		if s > 0 && (vx[idx] != 0 || vy[idx] != 0) {
			t.Fatalf("solid cell %d retained velocity after Reslice: vx=%v vy=%v", idx, vx[idx], vy[idx])
		}
	}
}
