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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Ray is a directed straight segment from a source to a receiver.
// Either endpoint may lie inside, on the boundary of, or outside any
// given cell; the two may also coincide.
type Ray struct {
	Src vec.Vec2
	Rec vec.Vec2
}

// Kind classifies the outcome of a kernel evaluation.
type Kind int

const (
	// NoCrossing means the ray misses the cell, or touches it in fewer
	// than two distinct points (for example grazing a corner). This is a
	// legitimate, frequent outcome, not an error.
	NoCrossing Kind = iota

	// Crossed means the ray passes through the cell; Result.Time holds
	// the in-cell path length scaled by slowness.
	Crossed

	// Ambiguous means more than two distinct crossing points survived
	// filtering. A well-formed convex cell and a non-degenerate line
	// cannot intersect in more than two points, so this signals a
	// numerically degenerate geometry, typically a source or receiver
	// sitting exactly on a cell edge with an inexactly representable
	// slope. Callers must treat the matrix entry as invalid rather than
	// as a zero-length path.
	Ambiguous
)

// Result is the outcome of one kernel evaluation. Time is meaningful
// only when Kind is Crossed.
type Result struct {
	Kind Kind
	Time float64
}

// Kernel computes per-(ray, cell) travel-time contributions. The zero
// value is ready to use and reproduces the classical exact-equality
// behaviour. A Kernel is stateless; evaluations for different (ray, cell)
// pairs are independent and may run concurrently.
type Kernel struct {
	// Tol is the distance below which two candidate crossing points are
	// merged during de-duplication. Zero compares coordinates for exact
	// equality, which classifies some edge-touching geometries as
	// Ambiguous that a positive tolerance would resolve to a measured
	// length. Changing Tol can therefore change which geometries count
	// as Ambiguous; pick a value small relative to the cell size.
	Tol float64
}

// TravelTime returns the travel time accumulated by the ray inside the
// cell, scaled by slowness. The cell must satisfy LLx ≤ URx and
// LLy ≤ URy; the kernel does not normalize. Slowness is a plain linear
// scale factor and is not sign-checked.
//
// The computation is closed-form: the ray's supporting line is
// intersected with the four cell boundary lines, the ray's own endpoints
// are added as candidates (a source or receiver inside the cell bounds
// the in-cell sub-segment), candidates outside the closed cell or outside
// the ray's bounding rectangle are discarded, duplicates are merged, and
// the distance between the two surviving points gives the path length.
func (k Kernel) TravelTime(cell rect.Rect, slowness float64, ray Ray) Result {
	minx := min(ray.Src.X, ray.Rec.X)
	maxx := max(ray.Src.X, ray.Rec.X)
	miny := min(ray.Src.Y, ray.Rec.Y)
	maxy := max(ray.Src.Y, ray.Rec.Y)

	// The ray cannot cross a cell outside the rectangle that has the
	// ray path as a diagonal.
	if cell.URx < minx || cell.LLx > maxx || cell.URy < miny || cell.LLy > maxy {
		return Result{Kind: NoCrossing}
	}

	var cand [6]vec.Vec2
	var n int
	switch {
	case ray.Rec.X == ray.Src.X:
		// Vertical ray: the endpoints plus the horizontal cell edges,
		// all at the ray's x. The slope/intercept form would divide by
		// zero here.
		x := ray.Rec.X
		cand[0] = vec.Vec2{X: x, Y: ray.Rec.Y}
		cand[1] = vec.Vec2{X: x, Y: ray.Src.Y}
		cand[2] = vec.Vec2{X: x, Y: cell.LLy}
		cand[3] = vec.Vec2{X: x, Y: cell.URy}
		n = 4

	case ray.Rec.Y == ray.Src.Y:
		// Horizontal ray, symmetric to the vertical case.
		y := ray.Rec.Y
		cand[0] = vec.Vec2{X: ray.Rec.X, Y: y}
		cand[1] = vec.Vec2{X: ray.Src.X, Y: y}
		cand[2] = vec.Vec2{X: cell.LLx, Y: y}
		cand[3] = vec.Vec2{X: cell.URx, Y: y}
		n = 4

	default:
		// General ray: intersect y = a·x + b with the four boundary
		// lines, then add the endpoints so that a source or receiver
		// inside the cell is accounted for.
		a := (ray.Rec.Y - ray.Src.Y) / (ray.Rec.X - ray.Src.X)
		b := ray.Src.Y - a*ray.Src.X
		cand[0] = vec.Vec2{X: cell.LLx, Y: a*cell.LLx + b}
		cand[1] = vec.Vec2{X: cell.URx, Y: a*cell.URx + b}
		cand[2] = vec.Vec2{X: (cell.LLy - b) / a, Y: cell.LLy}
		cand[3] = vec.Vec2{X: (cell.URy - b) / a, Y: cell.URy}
		cand[4] = ray.Src
		cand[5] = ray.Rec
		n = 6
	}

	// Keep candidates that lie in both the closed cell and the ray's
	// bounding rectangle, dropping repeats. The bounding-rectangle check
	// rejects intersections with the supporting line that fall outside
	// the physical segment.
	var pts [6]vec.Vec2
	inside := 0
	for i := range n {
		p := cand[i]
		if p.X < cell.LLx || p.X > cell.URx || p.Y < cell.LLy || p.Y > cell.URy {
			continue
		}
		if p.X < minx || p.X > maxx || p.Y < miny || p.Y > maxy {
			continue
		}
		dup := false
		for j := range inside {
			if k.coincide(pts[j], p) {
				dup = true
				break
			}
		}
		if !dup {
			pts[inside] = p
			inside++
		}
	}

	switch {
	case inside < 2:
		return Result{Kind: NoCrossing}
	case inside > 2:
		return Result{Kind: Ambiguous}
	}
	return Result{
		Kind: Crossed,
		Time: pts[1].Sub(pts[0]).Length() * slowness,
	}
}

// coincide reports whether two accepted crossing points are the same
// point under the kernel's tolerance.
func (k Kernel) coincide(p, q vec.Vec2) bool {
	if k.Tol == 0 {
		return p.X == q.X && p.Y == q.Y
	}
	return q.Sub(p).Length() <= k.Tol
}

// Straight evaluates the zero-value kernel and encodes the outcome in a
// single scalar: 0 for no crossing, -1 for ambiguous geometry, and the
// positive travel time otherwise. It exists for callers porting matrix
// loops written against the sentinel-coded convention; new code should
// use [Kernel.TravelTime] and inspect Result.Kind.
func Straight(cell rect.Rect, slowness float64, ray Ray) float64 {
	switch res := (Kernel{}).TravelTime(cell, slowness, ray); res.Kind {
	case Crossed:
		return res.Time
	case Ambiguous:
		return -1
	default:
		return 0
	}
}
