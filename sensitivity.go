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
	"fmt"
	"runtime"
	"slices"

	"github.com/ctessum/sparse"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// AmbiguousError reports a (ray, cell) pair whose geometry produced more
// than two crossing points. The corresponding matrix entry is left zero;
// the caller decides whether to skip the entry, drop the ray, or perturb
// the coordinates and reassemble.
type AmbiguousError struct {
	Ray  int
	Cell int
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("srtomo: ambiguous geometry for ray %d in cell %d", e.Ray, e.Cell)
}

// entry is one nonzero element of a sensitivity matrix row.
type entry struct {
	cell   int
	length float64
}

// Assembler builds travel-time sensitivity matrices. Rows correspond to
// rays, columns to mesh cells, and each entry is the path length of the
// ray inside the cell (the kernel evaluated with unit slowness, since
// the derivative of travel time with respect to cell slowness is the
// in-cell length).
//
// Rays are processed in parallel, one task per ray, each writing only
// its own pre-allocated row; evaluations have no ordering dependency, so
// no further coordination is needed. Create one instance and reuse it:
// internal buffers grow as needed but never shrink.
//
// An Assembler is not safe for concurrent use.
type Assembler struct {
	// Kernel evaluates the per-(ray, cell) contribution.
	Kernel Kernel

	// Workers caps the number of concurrent per-ray tasks.
	// Zero means GOMAXPROCS.
	Workers int

	rows [][]entry // per-ray entry buckets, reused across calls
}

// Dense assembles the sensitivity matrix for the given mesh and rays as
// a dense matrix with len(rays) rows and mesh.Len() columns.
//
// Entries whose geometry is ambiguous are left zero; every such entry is
// reported in the returned error as an [AmbiguousError], joined with
// errors.Join. The matrix is complete and valid for all other entries
// even when the error is non-nil.
func (a *Assembler) Dense(mesh Mesh, rays []Ray) (*mat.Dense, error) {
	if err := a.assemble(mesh, rays); err != nil {
		return nil, err
	}
	ambErr := a.ambiguities(rays)
	g := mat.NewDense(len(rays), mesh.Len(), nil)
	for i, row := range a.rows[:len(rays)] {
		for _, e := range row {
			g.Set(i, e.cell, e.length)
		}
	}
	return g, ambErr
}

// Sparse assembles the same matrix as [Assembler.Dense] in sparse form.
// For realistic surveys each ray crosses O(nx+ny) of the nx·ny cells, so
// the sparse form is the economical one on large grids.
func (a *Assembler) Sparse(mesh Mesh, rays []Ray) (*sparse.SparseArray, error) {
	if err := a.assemble(mesh, rays); err != nil {
		return nil, err
	}
	ambErr := a.ambiguities(rays)
	g := sparse.ZerosSparse(len(rays), mesh.Len())
	for i, row := range a.rows[:len(rays)] {
		for _, e := range row {
			g.Set(e.length, i, e.cell)
		}
	}
	return g, ambErr
}

// assemble fans out one task per ray and fills a.rows with the nonzero
// entries of each row. Ambiguous entries are recorded with length -1 and
// separated out later by ambiguities.
func (a *Assembler) assemble(mesh Mesh, rays []Ray) error {
	if len(rays) == 0 {
		return errors.New("srtomo: no rays")
	}
	if mesh.Len() == 0 {
		return errors.New("srtomo: empty mesh")
	}

	a.rows = slices.Grow(a.rows[:0], len(rays))[:len(rays)]

	workers := a.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i := range rays {
		g.Go(func() error {
			row := a.rows[i][:0]
			visit := func(j int) bool {
				res := a.Kernel.TravelTime(mesh.Cell(j), 1, rays[i])
				switch res.Kind {
				case Crossed:
					row = append(row, entry{cell: j, length: res.Time})
				case Ambiguous:
					row = append(row, entry{cell: j, length: -1})
				}
				return true
			}
			if c, ok := mesh.(crosser); ok {
				for j := range c.Crossing(rays[i]) {
					visit(j)
				}
			} else {
				for j := range mesh.Len() {
					visit(j)
				}
			}
			a.rows[i] = row
			return nil
		})
	}
	return g.Wait()
}

// ambiguities strips the ambiguous markers out of the assembled rows and
// returns them as a joined error, or nil if there were none.
func (a *Assembler) ambiguities(rays []Ray) error {
	var errs []error
	for i := range rays {
		kept := a.rows[i][:0]
		for _, e := range a.rows[i] {
			if e.length < 0 {
				errs = append(errs, &AmbiguousError{Ray: i, Cell: e.cell})
			} else {
				kept = append(kept, e)
			}
		}
		a.rows[i] = kept
	}
	return errors.Join(errs...)
}
