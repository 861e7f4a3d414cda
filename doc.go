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

// Package srtomo builds travel-time sensitivity matrices for straight-ray
// seismic tomography on gridded 2D media.
//
// The core of the package is a ray/cell kernel: given an axis-aligned
// rectangular cell, a slowness value and a straight ray between a source
// and a receiver, [Kernel.TravelTime] returns the travel time accumulated
// by the ray inside that cell. [Assembler] evaluates the kernel once per
// (ray, cell) pair over a [Mesh] and collects the in-cell path lengths
// into a sensitivity matrix, which a linear inversion can then use to
// recover per-cell slowness from observed travel times.
package srtomo
