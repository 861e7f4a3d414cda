package testcases

import "math"

var endpointCases = []TestCase{
	{
		// The source sits strictly inside the cell; the contribution is
		// the distance from the source to the exit point (10,6).
		Name:     "source_inside",
		Cell:     cell(0, 0, 10, 10),
		Slowness: 1,
		Ray:      ray(4, 4, 16, 8),
		Want:     crossed(math.Sqrt(40)),
	},
	{
		Name:     "receiver_inside",
		Cell:     cell(0, 0, 10, 10),
		Slowness: 1,
		Ray:      ray(16, 8, 4, 4),
		Want:     crossed(math.Sqrt(40)),
	},
	{
		Name:     "both_inside",
		Cell:     cell(0, 0, 10, 10),
		Slowness: 1,
		Ray:      ray(2, 3, 8, 7),
		Want:     crossed(math.Sqrt(52)),
	},
	{
		Name:     "source_inside_horizontal",
		Cell:     cell(0, 0, 10, 10),
		Slowness: 2,
		Ray:      ray(5, 5, 15, 5),
		Want:     crossed(10),
	},
	{
		// The source sits exactly on the left edge with an exactly
		// representable slope, so the edge crossing recomputes to the
		// identical point and de-duplication collapses it.
		Name:     "source_on_edge_exact",
		Cell:     cell(0, 0, 10, 10),
		Slowness: 1,
		Ray:      ray(0, 5, 20, 10),
		Want:     crossed(math.Sqrt(106.25)),
	},
}
