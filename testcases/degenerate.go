package testcases

import "github.com/seismo-go/srtomo"

var degenerateCases = []TestCase{
	{
		Name:     "point_ray_inside",
		Cell:     cell(0, 0, 10, 10),
		Slowness: 1,
		Ray:      ray(5, 5, 5, 5),
		Want:     srtomo.Result{Kind: srtomo.NoCrossing},
	},
	{
		Name:     "point_ray_outside",
		Cell:     cell(0, 0, 10, 10),
		Slowness: 1,
		Ray:      ray(20, 20, 20, 20),
		Want:     srtomo.Result{Kind: srtomo.NoCrossing},
	},
	{
		// The source sits exactly on the bottom edge and the slope 3
		// intercept is not exactly representable: recomputing the
		// source through the y=0 edge crossing lands one ulp to the
		// right, so three distinct points survive exact-equality
		// de-duplication.
		Name:     "source_on_edge_roundoff",
		Cell:     cell(0, 0, 10, 10),
		Slowness: 1,
		Ray:      ray(0.1, 0, 3.1, 9),
		Want:     srtomo.Result{Kind: srtomo.Ambiguous},
	},
	{
		// Zero-width cell, still a valid rectangle under the
		// LLx ≤ URx invariant.
		Name:     "zero_width_cell",
		Cell:     cell(5, 0, 5, 10),
		Slowness: 1,
		Ray:      ray(5, -5, 5, 15),
		Want:     crossed(10),
	},
}
