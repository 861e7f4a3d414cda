package testcases

import "math"

var obliqueCases = []TestCase{
	{
		Name:     "diagonal_through",
		Cell:     cell(0, 0, 10, 10),
		Slowness: 1,
		Ray:      ray(-5, -5, 15, 15),
		Want:     crossed(math.Sqrt(200)),
	},
	{
		// Enters and leaves exactly at opposite corners; each corner is
		// computed both as an x-edge and a y-edge crossing, and the
		// duplicates must collapse.
		Name:     "antidiagonal_corner_to_corner",
		Cell:     cell(0, 0, 10, 10),
		Slowness: 1,
		Ray:      ray(-2, 12, 12, -2),
		Want:     crossed(math.Sqrt(200)),
	},
	{
		// Slope 4, entering through the bottom edge at (2.5,0) and
		// leaving through the top edge at (5,10).
		Name:     "steep_partial",
		Cell:     cell(0, 0, 10, 10),
		Slowness: 1,
		Ray:      ray(2, -2, 6, 14),
		Want:     crossed(math.Sqrt(106.25)),
	},
	{
		Name:     "diagonal_scaled",
		Cell:     cell(0, 0, 10, 10),
		Slowness: 2.5,
		Ray:      ray(-5, -5, 15, 15),
		Want:     crossed(2.5 * math.Sqrt(200)),
	},
}
