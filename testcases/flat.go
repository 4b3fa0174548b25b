package testcases

// flatCases have an edge which is parallel to one of the axes.
var flatCases = []TestCase{
	{
		Name:     "flat_top",
		Vertices: tri(0, 0, 10, 0, 5, 10),
		Colors:   rgb,
		Width:    16,
		Height:   16,
	},
	{
		Name:     "flat_bottom",
		Vertices: tri(5, 0, 0, 10, 10, 10),
		Colors:   rgb,
		Width:    16,
		Height:   16,
	},
	{
		Name:     "flat_top_wide",
		Vertices: tri(4, 8, 60, 8, 30, 56),
		Colors:   rgb,
		Width:    64,
		Height:   64,
	},
	{
		Name:     "flat_bottom_wide",
		Vertices: tri(30, 8, 4, 56, 60, 56),
		Colors:   rgb,
		Width:    64,
		Height:   64,
	},
	{
		Name:     "vertical_left",
		Vertices: tri(8, 8, 8, 56, 56, 32),
		Colors:   rgb,
		Width:    64,
		Height:   64,
	},
	{
		Name:     "vertical_right",
		Vertices: tri(56, 8, 56, 56, 8, 32),
		Colors:   rgb,
		Width:    64,
		Height:   64,
	},
}
