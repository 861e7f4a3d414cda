// srtomo - straight-ray seismic travel-time tomography
// Copyright (C) 2026  The srtomo authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package srtomo

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// quadMesh returns a 2×2 mesh over (0,0)-(20,20) with 10×10 cells.
func quadMesh(t *testing.T) *SquareMesh {
	t.Helper()
	m, err := NewSquareMesh(rect.Rect{LLx: 0, LLy: 0, URx: 20, URy: 20}, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestAssemblerDense(t *testing.T) {
	m := quadMesh(t)
	rays := []Ray{
		{Src: vec.Vec2{X: -5, Y: 5}, Rec: vec.Vec2{X: 25, Y: 5}},   // horizontal, lower row
		{Src: vec.Vec2{X: 0, Y: 0}, Rec: vec.Vec2{X: 20, Y: 20}},   // main diagonal
		{Src: vec.Vec2{X: 15, Y: -5}, Rec: vec.Vec2{X: 15, Y: 25}}, // vertical, right column
	}

	var a Assembler
	g, err := a.Dense(m, rays)
	if err != nil {
		t.Fatal(err)
	}

	if r, c := g.Dims(); r != 3 || c != 4 {
		t.Fatalf("Dims: got %d×%d, want 3×4", r, c)
	}

	d := math.Sqrt(200) // diagonal of one 10×10 cell
	want := [][]float64{
		{10, 10, 0, 0},
		{d, 0, 0, d},
		{0, 10, 0, 10},
	}
	for i, w := range want {
		row := mat.Row(nil, i, g)
		if !floats.EqualApprox(row, w, 1e-12) {
			t.Errorf("row %d: got %v, want %v", i, row, w)
		}
	}
}

// flatMesh wraps a SquareMesh but hides its Crossing method, forcing the
// assembler down the full-scan path.
type flatMesh struct {
	m *SquareMesh
}

func (f flatMesh) Len() int             { return f.m.Len() }
func (f flatMesh) Cell(i int) rect.Rect { return f.m.Cell(i) }

func TestAssemblerFullScanMatchesCrossing(t *testing.T) {
	m := quadMesh(t)
	rays := CrossWell(-1, 21, 0, 20, 3, 3)

	var a Assembler
	fast, err := a.Dense(m, rays)
	if err != nil {
		t.Fatal(err)
	}
	slow, err := a.Dense(flatMesh{m}, rays)
	if err != nil {
		t.Fatal(err)
	}
	if !mat.EqualApprox(fast, slow, 1e-15) {
		t.Error("narrowed and full-scan assembly disagree")
	}
}

func TestAssemblerSparseMatchesDense(t *testing.T) {
	m := quadMesh(t)
	rays := CrossWell(-1, 21, 0, 20, 4, 4)

	var a Assembler
	dense, err := a.Dense(m, rays)
	if err != nil {
		t.Fatal(err)
	}
	sp, err := a.Sparse(m, rays)
	if err != nil {
		t.Fatal(err)
	}

	for i := range rays {
		for j := range m.Len() {
			if got, want := sp.Get(i, j), dense.At(i, j); got != want {
				t.Fatalf("entry (%d,%d): sparse %g, dense %g", i, j, got, want)
			}
		}
	}
}

func TestAssemblerWorkersAgree(t *testing.T) {
	m, err := NewSquareMesh(rect.Rect{LLx: 0, LLy: 0, URx: 64, URy: 64}, 8, 8)
	if err != nil {
		t.Fatal(err)
	}
	rays := CrossWell(-1, 65, 0, 64, 6, 6)

	serial := Assembler{Workers: 1}
	parallel := Assembler{Workers: 8}

	g1, err := serial.Dense(m, rays)
	if err != nil {
		t.Fatal(err)
	}
	g2, err := parallel.Dense(m, rays)
	if err != nil {
		t.Fatal(err)
	}
	if !mat.Equal(g1, g2) {
		t.Error("serial and parallel assembly disagree")
	}
}

func TestAssemblerAmbiguous(t *testing.T) {
	m, err := NewSquareMesh(rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10}, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	rays := []Ray{
		{Src: vec.Vec2{X: -5, Y: 5}, Rec: vec.Vec2{X: 15, Y: 5}},   // fine
		{Src: vec.Vec2{X: 0.1, Y: 0}, Rec: vec.Vec2{X: 3.1, Y: 9}}, // source on edge, roundoff
	}

	var a Assembler
	g, err := a.Dense(m, rays)
	if err == nil {
		t.Fatal("expected ambiguity error")
	}

	var amb *AmbiguousError
	if !errors.As(err, &amb) {
		t.Fatalf("error %v is not an AmbiguousError", err)
	}
	if amb.Ray != 1 || amb.Cell != 0 {
		t.Errorf("got ray %d cell %d, want ray 1 cell 0", amb.Ray, amb.Cell)
	}

	// The matrix is still usable: the good ray keeps its entry, the
	// ambiguous one stays zero.
	if got := g.At(0, 0); got != 10 {
		t.Errorf("entry (0,0): got %g, want 10", got)
	}
	if got := g.At(1, 0); got != 0 {
		t.Errorf("entry (1,0): got %g, want 0", got)
	}
}

func TestAssemblerToleranceResolvesAmbiguity(t *testing.T) {
	m, err := NewSquareMesh(rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10}, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	rays := []Ray{
		{Src: vec.Vec2{X: 0.1, Y: 0}, Rec: vec.Vec2{X: 3.1, Y: 9}},
	}

	a := Assembler{Kernel: Kernel{Tol: 1e-9}}
	g, err := a.Dense(m, rays)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := g.At(0, 0), math.Sqrt(90); math.Abs(got-want) > 1e-9 {
		t.Errorf("entry (0,0): got %g, want %g", got, want)
	}
}

func TestAssemblerEmptyInput(t *testing.T) {
	m := quadMesh(t)
	var a Assembler
	if _, err := a.Dense(m, nil); err == nil {
		t.Error("no rays: expected error")
	}
}

func TestPredict(t *testing.T) {
	m := quadMesh(t)
	rays := []Ray{
		{Src: vec.Vec2{X: -5, Y: 5}, Rec: vec.Vec2{X: 25, Y: 5}},
		{Src: vec.Vec2{X: 15, Y: -5}, Rec: vec.Vec2{X: 15, Y: 25}},
	}

	var a Assembler
	g, err := a.Dense(m, rays)
	if err != nil {
		t.Fatal(err)
	}

	slowness := []float64{0.01, 0.02, 0.03, 0.04}
	times, err := Predict(g, slowness)
	if err != nil {
		t.Fatal(err)
	}

	want := []float64{
		10*0.01 + 10*0.02, // lower row crossing
		10*0.02 + 10*0.04, // right column crossing
	}
	if !floats.EqualApprox(times, want, 1e-12) {
		t.Errorf("times: got %v, want %v", times, want)
	}

	if _, err := Predict(g, slowness[:3]); err == nil {
		t.Error("short slowness: expected error")
	}

	observed := []float64{0.35, 0.55}
	res := Residuals(observed, times)
	wantRes := []float64{observed[0] - want[0], observed[1] - want[1]}
	if !floats.EqualApprox(res, wantRes, 1e-12) {
		t.Errorf("residuals: got %v, want %v", res, wantRes)
	}
}

func TestCrossWellLayout(t *testing.T) {
	rays := CrossWell(-1, 21, 0, 20, 2, 3)
	if len(rays) != 6 {
		t.Fatalf("got %d rays, want 6", len(rays))
	}
	for i, r := range rays {
		if r.Src.X != -1 || r.Rec.X != 21 {
			t.Errorf("ray %d: wells at x=%g and x=%g", i, r.Src.X, r.Rec.X)
		}
		if r.Src.Y < 0 || r.Src.Y > 20 || r.Rec.Y < 0 || r.Rec.Y > 20 {
			t.Errorf("ray %d: endpoint outside the y extent", i)
		}
	}
	if rays[0].Src.Y != 5 || rays[0].Rec.Y != 10.0/3 {
		t.Errorf("first ray at src y=%g rec y=%g", rays[0].Src.Y, rays[0].Rec.Y)
	}
}
