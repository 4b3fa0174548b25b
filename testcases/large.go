package testcases

// largeCases cover many scanlines and wide rows, including the scene of the
// original demo: an 800×600 canvas split along its diagonal.
var largeCases = []TestCase{
	{
		Name:     "large_acute",
		Vertices: tri(40, 470, 256, 30, 480, 400),
		Colors:   rgb,
		Width:    512,
		Height:   512,
	},
	{
		Name:     "large_canvas_diagonal",
		Vertices: tri(0, 599, 799, 599, 799, 0),
		Colors:   rgb,
		Width:    800,
		Height:   600,
	},
	{
		Name:     "large_partly_outside",
		Vertices: tri(-100, 100, 612, 250, 200, 700),
		Colors:   [3]RGB{white, blue, red},
		Width:    512,
		Height:   512,
	},
}
