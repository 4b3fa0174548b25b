package testcases

var basicCases = []TestCase{
	{
		Name:     "right_angle",
		Vertices: tri(0, 0, 10, 0, 0, 10),
		Colors:   rgb,
		Width:    16,
		Height:   16,
	},
	{
		Name:     "acute",
		Vertices: tri(10, 50, 32, 10, 54, 50),
		Colors:   rgb,
		Width:    64,
		Height:   64,
	},
	{
		Name:     "obtuse",
		Vertices: tri(4, 40, 60, 30, 20, 50),
		Colors:   rgb,
		Width:    64,
		Height:   64,
	},
	{
		Name:     "middle_vertex_left",
		Vertices: tri(40, 5, 5, 30, 50, 58),
		Colors:   [3]RGB{white, red, blue},
		Width:    64,
		Height:   64,
	},
	{
		Name:     "middle_vertex_right",
		Vertices: tri(20, 5, 58, 30, 10, 58),
		Colors:   [3]RGB{lime, white, red},
		Width:    64,
		Height:   64,
	},
	{
		Name:     "sliver",
		Vertices: tri(2, 2, 61, 10, 60, 12),
		Colors:   rgb,
		Width:    64,
		Height:   64,
	},
	{
		Name:     "single_pixel",
		Vertices: tri(7, 7, 8, 7, 7, 8),
		Colors:   rgb,
		Width:    16,
		Height:   16,
	},
}
