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

package gouraud

import (
	"cmp"
	"math"
	"math/rand/v2"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Triangle is a triangle with a colour attached to each corner.
// The order of the corners is irrelevant for drawing.
type Triangle struct {
	V [3]vec.Vec2
	C [3]Color
}

// Area returns twice the area of the triangle.
func (t *Triangle) Area() float64 {
	return math.Abs(cross(t.V[1].Sub(t.V[0]), t.V[2].Sub(t.V[0])))
}

// Randomize moves the corners to uniformly distributed positions in
// [0, maxWidth) × [0, maxHeight).
func (t *Triangle) Randomize(rng *rand.Rand, maxWidth, maxHeight float64) {
	for i := range t.V {
		t.V[i] = vec.Vec2{X: rng.Float64() * maxWidth, Y: rng.Float64() * maxHeight}
	}
}

// RandomizeColors assigns a random colour to every corner.
func (t *Triangle) RandomizeColors(rng *rand.Rand) {
	for i := range t.C {
		t.C[i] = RandomColor(rng)
	}
}

// Draw fills the triangle into s. See [DrawTriangle].
func (t *Triangle) Draw(s Sink) {
	sh, ok := newShader(t.V, t.C)
	if !ok {
		return
	}
	sh.scan(func(y, xl, xr int) {
		for x := xl; x <= xr; x++ {
			s.SetPixel(x, y, sh.at(x, y))
		}
	})
}

// DrawTriangle fills the closed triangle (v1, v2, v3) into s. The colour
// of each pixel is obtained by barycentric interpolation of c1, c2 and c3,
// clamped to [0, 1].
//
// Vertex coordinates are truncated to integers to find the covered
// pixels. Pixels are written row by row, from top to bottom and from left
// to right within a row. Degenerate triangles (zero area, or vertices
// which are not finite) produce no output. No clipping is performed: the
// sink decides what to do with pixels outside its bounds.
//
// DrawTriangle keeps no state between calls and can be used concurrently
// on different sinks.
func DrawTriangle(s Sink, v1, v2, v3 vec.Vec2, c1, c2, c3 Color) {
	t := Triangle{
		V: [3]vec.Vec2{v1, v2, v3},
		C: [3]Color{c1, c2, c3},
	}
	t.Draw(s)
}

// corner is a triangle vertex together with its colour.
type corner struct {
	p vec.Vec2
	c Color
}

func compareCorners(a, b corner) int {
	if c := cmp.Compare(a.p.Y, b.p.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.p.X, b.p.X)
}

// shader holds a triangle with its corners sorted by y (then x), together
// with the quantities needed for scan conversion and colour interpolation.
type shader struct {
	v1, v2, v3 corner

	x1, y1 int // corners on the pixel grid
	x2, y2 int
	x3, y3 int

	area float64 // twice the triangle area, always > 0
}

// newShader prepares a triangle for drawing. The second return value is
// false if nothing should be drawn.
func newShader(pts [3]vec.Vec2, cols [3]Color) (shader, bool) {
	for _, p := range pts {
		if !(math.Abs(p.X) <= maxCoordinate && math.Abs(p.Y) <= maxCoordinate) {
			if debugEnabled() {
				Logger().Debug("skipping triangle with out of range vertex",
					"v1", pts[0], "v2", pts[1], "v3", pts[2])
			}
			return shader{}, false
		}
	}

	cs := [3]corner{{pts[0], cols[0]}, {pts[1], cols[1]}, {pts[2], cols[2]}}
	slices.SortFunc(cs[:], compareCorners)

	s := shader{
		v1: cs[0], v2: cs[1], v3: cs[2],
		x1: int(cs[0].p.X), y1: int(cs[0].p.Y),
		x2: int(cs[1].p.X), y2: int(cs[1].p.Y),
		x3: int(cs[2].p.X), y3: int(cs[2].p.Y),
	}
	s.area = math.Abs(cross(s.v2.p.Sub(s.v1.p), s.v3.p.Sub(s.v1.p)))
	if s.area == 0 {
		if debugEnabled() {
			Logger().Debug("skipping degenerate triangle",
				"v1", pts[0], "v2", pts[1], "v3", pts[2])
		}
		return shader{}, false
	}
	return s, true
}

// scan calls span for every row of pixels covered by the triangle, with
// the inclusive x range of the row.
func (s *shader) scan(span func(y, xl, xr int)) {
	x1, y1 := s.x1, s.y1
	x2, y2 := s.x2, s.y2
	x3, y3 := s.x3, s.y3

	// Upper part, with the flat side at y2. Row y2 itself is drawn with
	// the lower part. The loop body is not reached if y1 == y2, so the
	// divisors are non-zero.
	for y := y1; y < y2; y++ {
		l := (x2-x1)*(y-y1)/(y2-y1) + x1 // edge 1-2
		r := (x3-x1)*(y-y1)/(y3-y1) + x1 // edge 1-3
		if l > r {
			l, r = r, l
		}
		span(y, l, r)
	}

	if y3 == y2 || y3 == y1 {
		return
	}
	for y := y2; y <= y3; y++ {
		l := (x3-x2)*(y-y2)/(y3-y2) + x2 // edge 2-3
		r := (x3-x1)*(y-y1)/(y3-y1) + x1 // edge 1-3
		if l > r {
			l, r = r, l
		}
		span(y, l, r)
	}
}

// at returns the interpolated colour at pixel (x, y).
func (s *shader) at(x, y int) Color {
	p := vec.Vec2{X: float64(x), Y: float64(y)}

	w1 := math.Abs(cross(p.Sub(s.v2.p), s.v3.p.Sub(s.v2.p))) / s.area
	w2 := math.Abs(cross(p.Sub(s.v1.p), s.v3.p.Sub(s.v1.p))) / s.area
	w3 := math.Abs(cross(p.Sub(s.v1.p), s.v2.p.Sub(s.v1.p))) / s.area

	c1, c2, c3 := s.v1.c, s.v2.c, s.v3.c
	return Color{
		R: w1*c1.R + w2*c2.R + w3*c3.R,
		G: w1*c1.G + w2*c2.G + w3*c3.G,
		B: w1*c1.B + w2*c2.B + w3*c3.B,
	}.Clamp()
}

// cross returns the z-component of the cross product of a and b.
func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// maxCoordinate bounds the absolute value of vertex coordinates.
// Triangles with vertices further out are skipped, which keeps the
// integer scanline arithmetic free of overflow.
const maxCoordinate = 1 << 20
