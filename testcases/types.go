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

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name     string        // lowercase a-z and _ only
	Vertices [3]vec.Vec2   // the triangle, in user space
	Colors   [3]RGB        // one colour per vertex
	Width    int           // canvas width in pixels
	Height   int           // canvas height in pixels
	CTM      matrix.Matrix // transformation matrix (zero-value means no transform)
}

// RGB is a vertex colour with channels in [0, 1].
type RGB struct {
	R, G, B float64
}

// Commonly used vertex colours.
var (
	red   = RGB{R: 1}
	lime  = RGB{G: 1}
	blue  = RGB{B: 1}
	white = RGB{R: 1, G: 1, B: 1}
)

// rgb is the default colour assignment: red, lime and blue.
var rgb = [3]RGB{red, lime, blue}

// Device returns the vertices of tc in device space.
func (tc TestCase) Device() [3]vec.Vec2 {
	if tc.CTM == (matrix.Matrix{}) {
		return tc.Vertices
	}
	var res [3]vec.Vec2
	for i, p := range tc.Vertices {
		res[i] = vec.Vec2{
			X: tc.CTM[0]*p.X + tc.CTM[2]*p.Y + tc.CTM[4],
			Y: tc.CTM[1]*p.X + tc.CTM[3]*p.Y + tc.CTM[5],
		}
	}
	return res
}

// Inside reports whether all vertices, in device space, lie in
// [0, Width-1] × [0, Height-1].
func (tc TestCase) Inside() bool {
	for _, p := range tc.Device() {
		if !(p.X >= 0 && p.X <= float64(tc.Width-1) && p.Y >= 0 && p.Y <= float64(tc.Height-1)) {
			return false
		}
	}
	return true
}

// Degenerate reports whether the triangle has zero area.
func (tc TestCase) Degenerate() bool {
	v := tc.Device()
	a := v[1].Sub(v[0])
	b := v[2].Sub(v[0])
	return a.X*b.Y-a.Y*b.X == 0
}

// tri is a helper to create a vertex triple.
func tri(x1, y1, x2, y2, x3, y3 float64) [3]vec.Vec2 {
	return [3]vec.Vec2{{X: x1, Y: y1}, {X: x2, Y: y2}, {X: x3, Y: y3}}
}
