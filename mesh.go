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
	"fmt"
	"iter"
	"math"

	"seehuhn.de/go/geom/rect"
)

// Mesh is implemented by grid providers. Every returned cell must be an
// axis-aligned rectangle with LLx ≤ URx and LLy ≤ URy; the kernel relies
// on this invariant and does not re-check it.
type Mesh interface {
	// Len is the total number of cells.
	Len() int

	// Cell returns cell i, for 0 ≤ i < Len().
	Cell(i int) rect.Rect
}

// crosser is implemented by meshes that can narrow down the set of cells
// a given ray could plausibly cross. The assembler uses it to skip the
// bulk of the grid for short rays.
type crosser interface {
	Crossing(ray Ray) iter.Seq[int]
}

// SquareMesh is a regular ny×nx grid of identical rectangular cells
// covering a bounding rectangle. Cells are indexed row-major with x
// varying fastest: cell 0 is the lower-left corner, cell nx-1 the
// lower-right.
type SquareMesh struct {
	bounds rect.Rect
	ny, nx int
	dy, dx float64
}

var _ Mesh = (*SquareMesh)(nil)

// NewSquareMesh returns a mesh dividing bounds into ny rows and nx
// columns. The shape must be positive and the bounds non-empty.
func NewSquareMesh(bounds rect.Rect, ny, nx int) (*SquareMesh, error) {
	if ny < 1 || nx < 1 {
		return nil, fmt.Errorf("srtomo: mesh shape %d×%d must be positive", ny, nx)
	}
	if bounds.URx <= bounds.LLx || bounds.URy <= bounds.LLy {
		return nil, fmt.Errorf("srtomo: mesh bounds (%g,%g)-(%g,%g) are empty",
			bounds.LLx, bounds.LLy, bounds.URx, bounds.URy)
	}
	return &SquareMesh{
		bounds: bounds,
		ny:     ny,
		nx:     nx,
		dy:     (bounds.URy - bounds.LLy) / float64(ny),
		dx:     (bounds.URx - bounds.LLx) / float64(nx),
	}, nil
}

// Len returns the total number of cells, ny×nx.
func (m *SquareMesh) Len() int { return m.ny * m.nx }

// Shape returns the number of rows and columns.
func (m *SquareMesh) Shape() (ny, nx int) { return m.ny, m.nx }

// Bounds returns the rectangle covered by the mesh.
func (m *SquareMesh) Bounds() rect.Rect { return m.bounds }

// Cell returns cell i as an axis-aligned rectangle.
func (m *SquareMesh) Cell(i int) rect.Rect {
	ix := i % m.nx
	iy := i / m.nx
	return rect.Rect{
		LLx: m.bounds.LLx + float64(ix)*m.dx,
		LLy: m.bounds.LLy + float64(iy)*m.dy,
		URx: m.bounds.LLx + float64(ix+1)*m.dx,
		URy: m.bounds.LLy + float64(iy+1)*m.dy,
	}
}

// Crossing yields, in index order, every cell whose rectangle overlaps
// the bounding box of the ray. Cells outside this set can never receive
// a travel-time contribution, so a matrix assembly loop only needs to
// visit the yielded indices.
func (m *SquareMesh) Crossing(ray Ray) iter.Seq[int] {
	return func(yield func(int) bool) {
		minx := min(ray.Src.X, ray.Rec.X)
		maxx := max(ray.Src.X, ray.Rec.X)
		miny := min(ray.Src.Y, ray.Rec.Y)
		maxy := max(ray.Src.Y, ray.Rec.Y)

		if maxx < m.bounds.LLx || minx > m.bounds.URx ||
			maxy < m.bounds.LLy || miny > m.bounds.URy {
			return
		}

		// Closed cells share their edges, so a bound falling exactly on
		// a grid line belongs to the cells on both sides of it.
		ix0, ix1 := span(minx-m.bounds.LLx, maxx-m.bounds.LLx, m.dx, m.nx)
		iy0, iy1 := span(miny-m.bounds.LLy, maxy-m.bounds.LLy, m.dy, m.ny)

		for iy := iy0; iy <= iy1; iy++ {
			base := iy * m.nx
			for ix := ix0; ix <= ix1; ix++ {
				if !yield(base + ix) {
					return
				}
			}
		}
	}
}

// span returns the range of grid indices whose closed cells of width d
// overlap the interval [lo, hi], clamped to [0, n).
func span(lo, hi, d float64, n int) (i0, i1 int) {
	i0 = int(math.Ceil(lo/d)) - 1
	i1 = int(math.Floor(hi / d))
	i0 = min(max(i0, 0), n-1)
	i1 = min(max(i1, 0), n-1)
	return i0, i1
}
