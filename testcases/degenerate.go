package testcases

// degenerateCases have zero area. Nothing must be drawn for these.
var degenerateCases = []TestCase{
	{
		Name:     "collinear_diagonal",
		Vertices: tri(0, 0, 5, 5, 10, 10),
		Colors:   rgb,
		Width:    16,
		Height:   16,
	},
	{
		Name:     "collinear_horizontal",
		Vertices: tri(2, 7, 9, 7, 14, 7),
		Colors:   rgb,
		Width:    16,
		Height:   16,
	},
	{
		Name:     "collinear_vertical",
		Vertices: tri(7, 2, 7, 14, 7, 9),
		Colors:   rgb,
		Width:    16,
		Height:   16,
	},
	{
		Name:     "repeated_vertex",
		Vertices: tri(3, 3, 3, 3, 12, 9),
		Colors:   rgb,
		Width:    16,
		Height:   16,
	},
	{
		Name:     "single_point",
		Vertices: tri(5, 5, 5, 5, 5, 5),
		Colors:   rgb,
		Width:    16,
		Height:   16,
	},
}
