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

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"seehuhn.de/go/geom/vec"
)

// CrossWell lays out a cross-borehole survey: nsrc sources evenly spaced
// down the vertical line x = left between y0 and y1, nrec receivers down
// x = right, and one ray per source/receiver pair. Sources and receivers
// sit at the midpoints of equal subdivisions of [y0, y1].
func CrossWell(left, right, y0, y1 float64, nsrc, nrec int) []Ray {
	rays := make([]Ray, 0, nsrc*nrec)
	for i := range nsrc {
		src := vec.Vec2{
			X: left,
			Y: y0 + (float64(i)+0.5)*(y1-y0)/float64(nsrc),
		}
		for j := range nrec {
			rec := vec.Vec2{
				X: right,
				Y: y0 + (float64(j)+0.5)*(y1-y0)/float64(nrec),
			}
			rays = append(rays, Ray{Src: src, Rec: rec})
		}
	}
	return rays
}

// Predict computes the travel times t = G·s predicted by a sensitivity
// matrix for a per-cell slowness model, one time per ray.
func Predict(g *mat.Dense, slowness []float64) ([]float64, error) {
	nrays, ncells := g.Dims()
	if len(slowness) != ncells {
		return nil, fmt.Errorf("srtomo: slowness has %d entries for %d cells",
			len(slowness), ncells)
	}
	t := make([]float64, nrays)
	v := mat.NewVecDense(nrays, t)
	v.MulVec(g, mat.NewVecDense(ncells, slowness))
	return t, nil
}

// Residuals returns observed − predicted, element-wise. Both slices must
// have the same length.
func Residuals(observed, predicted []float64) []float64 {
	r := make([]float64, len(observed))
	copy(r, observed)
	floats.Sub(r, predicted)
	return r
}
