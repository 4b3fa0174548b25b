package gouraud

import (
	"fmt"
	"image"
	"image/color"
	"maps"
	"slices"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/gouraud/testcases"
)

// BenchmarkDrawTriangle benchmarks filling a shaded triangle into an
// image.RGBA.
func BenchmarkDrawTriangle(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			dst := image.NewRGBA(image.Rect(0, 0, size, size))
			sink := NewRGBASink(dst)
			v1, v2, v3 := benchTriangle(size)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				DrawTriangle(sink, v1, v2, v3, Red, Lime, Blue)
			}
		})
	}
}

// BenchmarkRasteriser benchmarks the row based interface, reusing one
// Rasteriser for all iterations.
func BenchmarkRasteriser(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := NewRasteriser()
			v1, v2, v3 := benchTriangle(size)
			tri := &Triangle{V: [3]vec.Vec2{v1, v2, v3}, C: [3]Color{Red, Lime, Blue}}

			// No-op emit callback - we're measuring rasterisation, not compositing
			emit := func(y, xMin int, row []Color) {}

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Fill(tri, emit)
			}
		})
	}
}

// BenchmarkVectorTriangle benchmarks x/image/vector filling the same
// triangle with a solid colour, as a point of comparison.
func BenchmarkVectorTriangle(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewRGBA(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.RGBA{R: 255, A: 255})
			v1, v2, v3 := benchTriangle(size)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(size, size)
				r.MoveTo(float32(v1.X), float32(v1.Y))
				r.LineTo(float32(v2.X), float32(v2.Y))
				r.LineTo(float32(v3.X), float32(v3.Y))
				r.ClosePath()
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkAll measures steady-state performance by reusing a single
// Rasteriser across all test cases.
func BenchmarkAll(b *testing.B) {
	var cases []testcases.TestCase
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		cases = append(cases, testcases.All[category]...)
	}
	tris := make([]*Triangle, len(cases))
	for i, tc := range cases {
		tris[i] = triangleOf(tc)
	}

	r := NewRasteriser()
	emit := func(y, xMin int, row []Color) {}

	b.ResetTimer()
	for b.Loop() {
		for i, tc := range cases {
			r.CTM = tc.CTM
			r.Fill(tris[i], emit)
		}
	}
}

// benchTriangle returns a triangle covering about 40% of a size×size canvas.
func benchTriangle(size int) (v1, v2, v3 vec.Vec2) {
	s := float64(size)
	return vec.Vec2{X: 0.1 * s, Y: 0.9 * s},
		vec.Vec2{X: 0.5 * s, Y: 0.05 * s},
		vec.Vec2{X: 0.95 * s, Y: 0.8 * s}
}
