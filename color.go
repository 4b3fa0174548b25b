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
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Color is an opaque RGB colour. Channels are nominally in the range [0, 1].
//
// Color implements [image/color.Color], so it can be passed directly to
// the Set method of a [draw.Image].
type Color struct {
	R, G, B float64
}

// Frequently used colours.
var (
	Black = Color{}
	White = Color{R: 1, G: 1, B: 1}
	Red   = Color{R: 1}
	Lime  = Color{G: 1}
	Blue  = Color{B: 1}
)

// ErrBadColor is returned by [ParseHex] for malformed colour strings.
var ErrBadColor = errors.New("invalid colour")

// Clamp returns c with every channel clamped to [0, 1].
// NaN channels become 0.
func (c Color) Clamp() Color {
	return Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
}

// ARGB returns the clamped colour packed as 0xAARRGGBB with full alpha.
func (c Color) ARGB() uint32 {
	return 0xff<<24 | to8(c.R)<<16 | to8(c.G)<<8 | to8(c.B)
}

// RGBA implements the [image/color.Color] interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return to16(c.R), to16(c.G), to16(c.B), 0xffff
}

// Hex returns the colour in the form "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%06x", c.ARGB()&0xffffff)
}

func (c Color) String() string {
	return c.Hex()
}

// ParseHex parses a colour in the form "#rrggbb" or "#rgb".
// The leading '#' is optional.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return Color{}, fmt.Errorf("%q: %w", s, ErrBadColor)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%q: %w", s, ErrBadColor)
	}
	return Color{
		R: float64(v>>16&0xff) / 255,
		G: float64(v>>8&0xff) / 255,
		B: float64(v&0xff) / 255,
	}, nil
}

// RandomColor returns a colour with uniformly distributed channels.
func RandomColor(rng *rand.Rand) Color {
	return Color{R: rng.Float64(), G: rng.Float64(), B: rng.Float64()}
}

// clamp01 clamps v to [0, 1], mapping NaN to 0.
func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func to8(v float64) uint32 {
	return uint32(math.Round(clamp01(v) * 0xff))
}

func to16(v float64) uint32 {
	return uint32(math.Round(clamp01(v) * 0xffff))
}
