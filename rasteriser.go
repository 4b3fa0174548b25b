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
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Rasteriser converts shaded triangles to rows of pixel colours.
// The caller creates one instance and reuses it for many triangles.
// The internal row buffer grows as needed but never shrinks, so that
// drawing allocates nothing in steady state.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM is the current transformation matrix (user space to device
	// space). It is applied to the vertices before scan conversion, so
	// colours are interpolated in device space. The zero matrix is
	// treated as the identity.
	CTM matrix.Matrix

	row []Color // colours of the current scanline; reused as output
}

// NewRasteriser returns a Rasteriser with the identity transformation.
func NewRasteriser() *Rasteriser {
	return &Rasteriser{CTM: matrix.Identity}
}

// Reset restores the default transformation. Internal buffers are kept.
func (r *Rasteriser) Reset() {
	r.CTM = matrix.Identity
	r.row = r.row[:0]
}

// Fill scan converts t. The emit callback receives the colours of one
// row at a time, starting at pixel (xMin, y). Rows are emitted from top
// to bottom. The slice argument is valid only during the call.
func (r *Rasteriser) Fill(t *Triangle, emit func(y, xMin int, row []Color)) {
	var dev [3]vec.Vec2
	for i, p := range t.V {
		dev[i] = r.transform(p)
	}

	sh, ok := newShader(dev, t.C)
	if !ok {
		return
	}
	sh.scan(func(y, xl, xr int) {
		n := xr - xl + 1
		r.row = slices.Grow(r.row[:0], n)[:n]
		for i := range r.row {
			r.row[i] = sh.at(xl+i, y)
		}
		emit(y, xl, r.row)
	})
}

// Draw fills t into s.
func (r *Rasteriser) Draw(s Sink, t *Triangle) {
	r.Fill(t, func(y, xMin int, row []Color) {
		for i, c := range row {
			s.SetPixel(xMin+i, y, c)
		}
	})
}

// transform maps p from user space to device space.
func (r *Rasteriser) transform(p vec.Vec2) vec.Vec2 {
	m := r.CTM
	if m == (matrix.Matrix{}) {
		return p
	}
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}
