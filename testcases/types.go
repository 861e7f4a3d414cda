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

// Package testcases provides named ray/cell geometries together with the
// travel-time result the zero-value kernel must produce for them. The
// cases are shared by the package tests and benchmarks.
package testcases

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"github.com/seismo-go/srtomo"
)

// TestCase defines a single kernel evaluation.
type TestCase struct {
	Name     string // lowercase a-z, 0-9 and _ only
	Cell     rect.Rect
	Slowness float64
	Ray      srtomo.Ray
	Want     srtomo.Result
}

// cell is a helper to create a rectangle from its corner coordinates.
func cell(x1, y1, x2, y2 float64) rect.Rect {
	return rect.Rect{LLx: x1, LLy: y1, URx: x2, URy: y2}
}

// ray is a helper to create a ray from source and receiver coordinates.
func ray(sx, sy, rx, ry float64) srtomo.Ray {
	return srtomo.Ray{
		Src: vec.Vec2{X: sx, Y: sy},
		Rec: vec.Vec2{X: rx, Y: ry},
	}
}

// crossed is a helper for the expected result of a crossing ray.
func crossed(time float64) srtomo.Result {
	return srtomo.Result{Kind: srtomo.Crossed, Time: time}
}
