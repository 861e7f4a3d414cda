package testcases

import "github.com/seismo-go/srtomo"

var rejectCases = []TestCase{
	{
		Name:     "disjoint_boxes",
		Cell:     cell(0, 0, 10, 10),
		Slowness: 1,
		Ray:      ray(20, 20, 30, 30),
		Want:     srtomo.Result{Kind: srtomo.NoCrossing},
	},
	{
		Name:     "left_of_cell",
		Cell:     cell(0, 0, 10, 10),
		Slowness: 1,
		Ray:      ray(-20, 5, -10, 5),
		Want:     srtomo.Result{Kind: srtomo.NoCrossing},
	},
	{
		Name:     "above_cell",
		Cell:     cell(0, 0, 10, 10),
		Slowness: 1,
		Ray:      ray(5, 11, 5, 30),
		Want:     srtomo.Result{Kind: srtomo.NoCrossing},
	},
	{
		// Bounding boxes overlap, but the supporting line passes the
		// cell on the upper-left side.
		Name:     "boxes_overlap_line_misses",
		Cell:     cell(0, 0, 10, 10),
		Slowness: 1,
		Ray:      ray(-5, 6, 5, 20),
		Want:     srtomo.Result{Kind: srtomo.NoCrossing},
	},
	{
		// The ray touches the cell only at the corner (0,10); a single
		// crossing point is no path.
		Name:     "corner_graze",
		Cell:     cell(0, 0, 10, 10),
		Slowness: 1,
		Ray:      ray(-5, 5, 5, 15),
		Want:     srtomo.Result{Kind: srtomo.NoCrossing},
	},
}
