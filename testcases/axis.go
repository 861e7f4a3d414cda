package testcases

var axisCases = []TestCase{
	{
		Name:     "horizontal_through",
		Cell:     cell(0, 0, 10, 10),
		Slowness: 2,
		Ray:      ray(-5, 5, 15, 5),
		Want:     crossed(20),
	},
	{
		Name:     "horizontal_reversed",
		Cell:     cell(0, 0, 10, 10),
		Slowness: 2,
		Ray:      ray(15, 5, -5, 5),
		Want:     crossed(20),
	},
	{
		Name:     "horizontal_clipped",
		Cell:     cell(0, 0, 10, 10),
		Slowness: 1,
		Ray:      ray(-5, 5, 4, 5),
		Want:     crossed(4),
	},
	{
		Name:     "horizontal_along_edge",
		Cell:     cell(0, 0, 10, 10),
		Slowness: 1,
		Ray:      ray(-5, 0, 15, 0),
		Want:     crossed(10),
	},
	{
		Name:     "vertical_through",
		Cell:     cell(0, 0, 10, 10),
		Slowness: 0.5,
		Ray:      ray(5, -5, 5, 15),
		Want:     crossed(5),
	},
	{
		Name:     "vertical_clipped",
		Cell:     cell(0, 0, 10, 10),
		Slowness: 1,
		Ray:      ray(5, 5, 5, 15),
		Want:     crossed(5),
	},
	{
		Name:     "vertical_inside",
		Cell:     cell(0, 0, 10, 10),
		Slowness: 1,
		Ray:      ray(5, 2, 5, 8),
		Want:     crossed(6),
	},
}
