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

// Package scene reads shaded triangles from SVG files.
//
// Every <polygon> element with exactly three points becomes one triangle.
// Vertex colours are taken from a "data-colors" attribute holding three
// hex colours separated by spaces, for example
//
//	<polygon points="0,0 10,0 0,10" data-colors="#f00 #0f0 #00f"/>
//
// If this attribute is missing, a plain hex "fill" attribute colours all
// three vertices. Without either, the vertices are red, lime and blue.
//
// This is not a full SVG implementation: transforms, styles and other
// shapes are ignored.
package scene

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/gouraud"
)

var (
	// ErrNoTriangles is returned if a document contains no polygons.
	ErrNoTriangles = errors.New("no triangles found")

	// ErrBadPoints is returned for polygons which do not have exactly
	// three valid points.
	ErrBadPoints = errors.New("polygon is not a triangle")
)

// ParseSVG reads the triangles from an SVG document.
func ParseSVG(r io.Reader) ([]gouraud.Triangle, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, fmt.Errorf("parsing SVG: %w", err)
	}

	polygons := root.FindAll("polygon")
	if len(polygons) == 0 {
		return nil, ErrNoTriangles
	}

	res := make([]gouraud.Triangle, 0, len(polygons))
	for i, el := range polygons {
		t, err := triangle(el.Attributes)
		if err != nil {
			return nil, fmt.Errorf("polygon %d: %w", i, err)
		}
		res = append(res, t)
	}
	return res, nil
}

// LoadFile reads the triangles from the named SVG file.
func LoadFile(name string) ([]gouraud.Triangle, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseSVG(f)
}

func triangle(attrs map[string]string) (gouraud.Triangle, error) {
	var t gouraud.Triangle

	pts, err := parsePoints(attrs["points"])
	if err != nil {
		return t, err
	}
	t.V = pts

	t.C = [3]gouraud.Color{gouraud.Red, gouraud.Lime, gouraud.Blue}
	if s, ok := attrs["data-colors"]; ok {
		fields := strings.Fields(s)
		if len(fields) != 3 {
			return t, fmt.Errorf("data-colors %q: need 3 colours, got %d", s, len(fields))
		}
		for i, f := range fields {
			t.C[i], err = gouraud.ParseHex(f)
			if err != nil {
				return t, err
			}
		}
	} else if s, ok := attrs["fill"]; ok && strings.HasPrefix(strings.TrimSpace(s), "#") {
		c, err := gouraud.ParseHex(s)
		if err != nil {
			return t, err
		}
		t.C = [3]gouraud.Color{c, c, c}
	}
	return t, nil
}

// parsePoints parses an SVG points list. Coordinates may be separated by
// commas, white space, or both.
func parsePoints(s string) ([3]vec.Vec2, error) {
	var res [3]vec.Vec2

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) != 6 {
		return res, fmt.Errorf("%d coordinates: %w", len(fields), ErrBadPoints)
	}

	var xy [6]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return res, fmt.Errorf("coordinate %q: %w", f, ErrBadPoints)
		}
		xy[i] = v
	}
	for i := range res {
		res[i] = vec.Vec2{X: xy[2*i], Y: xy[2*i+1]}
	}
	return res, nil
}
