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
	"image"
	"image/draw"

	"seehuhn.de/go/geom/rect"
)

// Sink receives the pixels produced by the rasteriser.
//
// The rasteriser does not clip. Implementations decide what happens to
// pixels outside their bounds; all sinks in this package drop them.
type Sink interface {
	SetPixel(x, y int, c Color)
}

// SinkFunc adapts an ordinary function to the [Sink] interface.
type SinkFunc func(x, y int, c Color)

// SetPixel calls f(x, y, c).
func (f SinkFunc) SetPixel(x, y int, c Color) {
	f(x, y, c)
}

// ImageSink writes pixels to an arbitrary [draw.Image].
type ImageSink struct {
	Img draw.Image
}

// SetPixel implements the [Sink] interface.
func (s ImageSink) SetPixel(x, y int, c Color) {
	if !image.Pt(x, y).In(s.Img.Bounds()) {
		return
	}
	s.Img.Set(x, y, c)
}

// RGBASink writes pixels directly into the pixel buffer of an
// [image.RGBA], using the packed 8-bit form of the colours.
type RGBASink struct {
	img *image.RGBA
}

// NewRGBASink returns a sink which draws into img.
func NewRGBASink(img *image.RGBA) *RGBASink {
	return &RGBASink{img: img}
}

// SetPixel implements the [Sink] interface.
func (s *RGBASink) SetPixel(x, y int, c Color) {
	if !image.Pt(x, y).In(s.img.Rect) {
		return
	}
	argb := c.ARGB()
	i := s.img.PixOffset(x, y)
	pix := s.img.Pix[i : i+4 : i+4]
	pix[0] = uint8(argb >> 16)
	pix[1] = uint8(argb >> 8)
	pix[2] = uint8(argb)
	pix[3] = 0xff
}

// ARGBBuffer is a canvas of packed 0xAARRGGBB pixels in row-major order.
type ARGBBuffer struct {
	Pix    []uint32
	Stride int // distance between vertically adjacent pixels
	Width  int
	Height int
}

// NewARGBBuffer allocates a transparent black buffer of the given size.
func NewARGBBuffer(width, height int) *ARGBBuffer {
	return &ARGBBuffer{
		Pix:    make([]uint32, width*height),
		Stride: width,
		Width:  width,
		Height: height,
	}
}

// SetPixel implements the [Sink] interface.
func (b *ARGBBuffer) SetPixel(x, y int, c Color) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return
	}
	b.Pix[y*b.Stride+x] = c.ARGB()
}

// At returns the packed pixel at (x, y), or 0 outside the buffer.
func (b *ARGBBuffer) At(x, y int) uint32 {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return 0
	}
	return b.Pix[y*b.Stride+x]
}

// Clip returns a sink which forwards to s the pixels whose integer
// coordinates lie in [clip.LLx, clip.URx) × [clip.LLy, clip.URy).
// All other pixels are dropped.
func Clip(s Sink, clip rect.Rect) Sink {
	return &clipSink{next: s, clip: clip}
}

type clipSink struct {
	next Sink
	clip rect.Rect
}

func (c *clipSink) SetPixel(x, y int, col Color) {
	fx, fy := float64(x), float64(y)
	if fx < c.clip.LLx || fx >= c.clip.URx || fy < c.clip.LLy || fy >= c.clip.URy {
		return
	}
	c.next.SetPixel(x, y, col)
}
