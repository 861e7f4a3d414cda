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

package srtomo_test

import (
	"fmt"
	"maps"
	"slices"
	"testing"

	"seehuhn.de/go/geom/rect"

	"github.com/seismo-go/srtomo"

	"github.com/seismo-go/srtomo/testcases"
)

// BenchmarkKernel measures the raw per-(ray, cell) cost across all the
// named geometries, including the cheap bounding-box rejections.
func BenchmarkKernel(b *testing.B) {
	var cases []testcases.TestCase
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		cases = append(cases, testcases.All[category]...)
	}

	var k srtomo.Kernel
	var sink srtomo.Result
	b.ReportAllocs()
	for b.Loop() {
		for _, tc := range cases {
			sink = k.TravelTime(tc.Cell, tc.Slowness, tc.Ray)
		}
	}
	_ = sink
}

// benchSurvey builds an n×n mesh with a cross-well survey of n rays per
// well down each side.
func benchSurvey(b *testing.B, n int) (*srtomo.SquareMesh, []srtomo.Ray) {
	b.Helper()
	extent := float64(10 * n)
	m, err := srtomo.NewSquareMesh(rect.Rect{LLx: 0, LLy: 0, URx: extent, URy: extent}, n, n)
	if err != nil {
		b.Fatal(err)
	}
	return m, srtomo.CrossWell(-1, extent+1, 0, extent, n, n)
}

// BenchmarkAssembleDense and BenchmarkAssembleSparse compare the two
// matrix representations on the same survey; a single srtomo.Assembler is
// reused so steady-state buffer reuse is what gets measured.
func BenchmarkAssembleDense(b *testing.B) {
	for _, n := range []int{8, 32} {
		b.Run(fmt.Sprintf("%dx%d", n, n), func(b *testing.B) {
			m, rays := benchSurvey(b, n)
			var a srtomo.Assembler
			b.ResetTimer()
			b.ReportAllocs()
			for b.Loop() {
				if _, err := a.Dense(m, rays); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkAssembleSparse(b *testing.B) {
	for _, n := range []int{8, 32} {
		b.Run(fmt.Sprintf("%dx%d", n, n), func(b *testing.B) {
			m, rays := benchSurvey(b, n)
			var a srtomo.Assembler
			b.ResetTimer()
			b.ReportAllocs()
			for b.Loop() {
				if _, err := a.Sparse(m, rays); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
