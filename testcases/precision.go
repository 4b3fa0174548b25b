// seehuhn.de/go/gouraud - a shaded triangle rasteriser
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

package testcases

import "seehuhn.de/go/geom/vec"

var precisionCases = []TestCase{
	// Subpixel vertex positions. These are truncated to the pixel grid
	// for scan conversion, but not for colour interpolation.
	{
		Name:     "subpixel_offset_00",
		Vertices: offsetTriangle(0.0),
		Colors:   rgb,
		Width:    64,
		Height:   64,
	},
	{
		Name:     "subpixel_offset_25",
		Vertices: offsetTriangle(0.25),
		Colors:   rgb,
		Width:    64,
		Height:   64,
	},
	{
		Name:     "subpixel_offset_50",
		Vertices: offsetTriangle(0.5),
		Colors:   rgb,
		Width:    64,
		Height:   64,
	},
	{
		Name:     "subpixel_offset_75",
		Vertices: offsetTriangle(0.75),
		Colors:   rgb,
		Width:    64,
		Height:   64,
	},

	// Nearly collinear, but with positive area.
	{
		Name:     "needle",
		Vertices: tri(3.5, 3.5, 60.25, 60.5, 31.9, 32.1),
		Colors:   rgb,
		Width:    64,
		Height:   64,
	},

	// All vertices white: interpolation must not leave [0, 1].
	{
		Name:     "white_fractional",
		Vertices: tri(3.7, 11.2, 58.9, 4.4, 27.3, 59.6),
		Colors:   [3]RGB{white, white, white},
		Width:    64,
		Height:   64,
	},
}

// offsetTriangle returns a fixed triangle shifted by d in both directions.
func offsetTriangle(d float64) [3]vec.Vec2 {
	return tri(12+d, 8+d, 52+d, 20+d, 24+d, 54+d)
}
