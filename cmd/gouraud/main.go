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

// Command gouraud draws shaded triangles into a PNG file.
//
// Without arguments it draws the lower right half of the canvas, with red,
// lime and blue corners. The triangles can instead be read from the
// polygons of an SVG file, or chosen at random.
package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"gopkg.in/alecthomas/kingpin.v2"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/gouraud"
	"seehuhn.de/go/gouraud/scene"
)

var (
	width   = kingpin.Flag("width", "Canvas width in pixels.").Default("800").Int()
	height  = kingpin.Flag("height", "Canvas height in pixels.").Default("600").Int()
	random  = kingpin.Flag("random", "Draw N random triangles.").Short('n').Default("0").Int()
	seed    = kingpin.Flag("seed", "Random seed for --random.").Default("1").Uint64()
	svgFile = kingpin.Flag("svg", "Read triangles from the polygons of an SVG file.").ExistingFile()
	output  = kingpin.Flag("output", "Output PNG file (default: a random name).").Short('o').String()
	overlay = kingpin.Flag("overlay", "Draw triangle outlines and colour labels.").Bool()
	preview = kingpin.Flag("preview", "Show the image in the terminal.").Bool()
	verbose = kingpin.Flag("verbose", "Enable debug logging.").Short('v').Bool()
)

func main() {
	kingpin.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	gouraud.SetLogger(logger)

	if *width <= 0 || *height <= 0 {
		kingpin.Fatalf("invalid canvas size %dx%d", *width, *height)
	}

	tris, err := loadTriangles(*svgFile, *random, *seed, *width, *height)
	kingpin.FatalIfError(err, "loading triangles")

	img := image.NewRGBA(image.Rect(0, 0, *width, *height))
	render(img, tris)
	listTriangles(os.Stdout, tris)
	if *overlay {
		drawOverlay(img, tris)
	}

	name := *output
	if name == "" {
		petname.NonDeterministicMode()
		name = petname.Generate(2, "-") + ".png"
	}
	kingpin.FatalIfError(savePNG(name, img), "writing %s", name)
	logger.Info("image written", "file", name, "triangles", len(tris))

	if *preview {
		imgcat.CatFile(name, os.Stdout)
	}
}

// loadTriangles returns the triangles to draw: from svgPath if set,
// otherwise n random triangles if n > 0, otherwise the default triangle.
func loadTriangles(svgPath string, n int, seed uint64, w, h int) ([]gouraud.Triangle, error) {
	switch {
	case svgPath != "":
		return scene.LoadFile(svgPath)
	case n < 0:
		return nil, fmt.Errorf("invalid triangle count %d", n)
	case n > 0:
		return randomTriangles(n, seed, w, h), nil
	default:
		return []gouraud.Triangle{defaultTriangle(w, h)}, nil
	}
}

// defaultTriangle covers the lower right half of a w×h canvas.
func defaultTriangle(w, h int) gouraud.Triangle {
	fw, fh := float64(w), float64(h)
	return gouraud.Triangle{
		V: [3]vec.Vec2{{X: 0, Y: fh}, {X: fw, Y: fh}, {X: fw, Y: 0}},
		C: [3]gouraud.Color{gouraud.Red, gouraud.Lime, gouraud.Blue},
	}
}

func randomTriangles(n int, seed uint64, w, h int) []gouraud.Triangle {
	rng := rand.New(rand.NewPCG(seed, seed))
	res := make([]gouraud.Triangle, n)
	for i := range res {
		res[i].Randomize(rng, float64(w), float64(h))
		res[i].RandomizeColors(rng)
	}
	return res
}

// render draws the triangles in order, later ones on top.
func render(img *image.RGBA, tris []gouraud.Triangle) {
	r := gouraud.NewRasteriser()
	sink := gouraud.NewRGBASink(img)
	for i := range tris {
		r.Draw(sink, &tris[i])
	}
}

// listTriangles prints the vertices and colours of every triangle.
func listTriangles(w io.Writer, tris []gouraud.Triangle) {
	names := []func(any) aurora.Value{aurora.Red, aurora.Green, aurora.Blue}
	for i, t := range tris {
		fmt.Fprintf(w, "%s", aurora.Cyan(fmt.Sprintf("triangle %d:", i)))
		for j := range t.V {
			label := fmt.Sprintf("(%.1f, %.1f) %s", t.V[j].X, t.V[j].Y, t.C[j].Hex())
			fmt.Fprintf(w, " %s", names[j](label))
		}
		fmt.Fprintln(w)
	}
}

func savePNG(name string, img image.Image) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
