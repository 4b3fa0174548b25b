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

import "seehuhn.de/go/geom/matrix"

var ctmCases = []TestCase{
	// ========================================
	// Scaling
	// ========================================
	{
		Name:     "scale_2x",
		Vertices: tri(0, 0, 20, 4, 8, 20),
		Colors:   rgb,
		Width:    64,
		Height:   64,
		CTM:      matrix.Scale(2, 2).Translate(10, 10),
	},
	{
		Name:     "scale_half",
		Vertices: tri(0, 0, 100, 20, 30, 110),
		Colors:   rgb,
		Width:    64,
		Height:   64,
		CTM:      matrix.Scale(0.5, 0.5).Translate(4, 4),
	},
	{
		Name:     "scale_mirror_y",
		Vertices: tri(0, 0, 40, 10, 15, 40),
		Colors:   rgb,
		Width:    64,
		Height:   64,
		CTM:      matrix.Scale(1, -1).Translate(10, 54),
	},

	// ========================================
	// Rotation
	// ========================================
	{
		Name:     "rotate_45deg",
		Vertices: tri(-20, -10, 20, -10, 0, 20),
		Colors:   rgb,
		Width:    64,
		Height:   64,
		CTM:      matrix.RotateDeg(45).Translate(32, 32),
	},
	{
		Name:     "rotate_90deg",
		Vertices: tri(-20, -10, 20, -10, 0, 20),
		Colors:   rgb,
		Width:    64,
		Height:   64,
		CTM:      matrix.RotateDeg(90).Translate(32, 32),
	},

	// ========================================
	// Translation off the canvas (the sink drops outside pixels)
	// ========================================
	{
		Name:     "translate_partly_outside",
		Vertices: tri(0, 0, 40, 10, 10, 40),
		Colors:   rgb,
		Width:    64,
		Height:   64,
		CTM:      matrix.Identity.Translate(-12, 36),
	},
}
