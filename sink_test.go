package gouraud

import (
	"image"
	"image/color"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestRGBASink(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	s := NewRGBASink(img)

	s.SetPixel(1, 2, Color{R: 1, G: 0.5, B: 0})
	s.SetPixel(-1, 0, White)
	s.SetPixel(4, 0, White)
	s.SetPixel(0, 3, White)

	assert.Equal(t, color.RGBA{R: 255, G: 128, B: 0, A: 255}, img.RGBAAt(1, 2))
	n := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			n++
		}
	}
	assert.Equal(t, 1, n, "only one pixel should be written")
}

func TestRGBASinkOffsetBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 10, 20, 20))
	s := NewRGBASink(img)

	s.SetPixel(0, 0, White)
	s.SetPixel(10, 10, Red)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(10, 10))
}

func TestImageSink(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	s := ImageSink{Img: img}

	s.SetPixel(2, 2, Blue)
	s.SetPixel(3, 3, Red) // dropped

	assert.Equal(t, color.NRGBA{B: 255, A: 255}, img.NRGBAAt(2, 2))
	assert.Equal(t, color.NRGBA{}, img.NRGBAAt(0, 0))
}

func TestARGBBuffer(t *testing.T) {
	buf := NewARGBBuffer(5, 4)
	require.Len(t, buf.Pix, 20)

	buf.SetPixel(4, 3, Lime)
	buf.SetPixel(5, 3, Red)
	buf.SetPixel(-1, 0, Red)

	assert.Equal(t, uint32(0xff00ff00), buf.At(4, 3))
	assert.Equal(t, uint32(0), buf.At(5, 3))
	assert.Equal(t, uint32(0), buf.At(0, 0))
}

func TestClip(t *testing.T) {
	var got []image.Point
	s := Clip(SinkFunc(func(x, y int, c Color) {
		got = append(got, image.Pt(x, y))
	}), rect.Rect{LLx: 2, LLy: 3, URx: 5, URy: 6})

	for y := range 10 {
		for x := range 10 {
			s.SetPixel(x, y, White)
		}
	}

	require.Len(t, got, 9)
	for _, p := range got {
		assert.True(t, p.X >= 2 && p.X < 5 && p.Y >= 3 && p.Y < 6, "pixel %v outside clip", p)
	}
}

// TestDrawOutsideSink draws a triangle which extends beyond the canvas.
// Only the visible part must be stored.
func TestDrawOutsideSink(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	DrawTriangle(NewRGBASink(img), vec.Vec2{X: -20, Y: -20}, vec.Vec2{X: 40, Y: -5}, vec.Vec2{X: 5, Y: 40}, Red, Lime, Blue)

	assert.Equal(t, uint8(255), img.RGBAAt(0, 0).A)
	assert.Equal(t, uint8(255), img.RGBAAt(15, 0).A)
}

func TestDebugLogging(t *testing.T) {
	var buf strings.Builder
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	DrawTriangle(SinkFunc(func(x, y int, c Color) {}),
		vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 5, Y: 5}, vec.Vec2{X: 10, Y: 10},
		Red, Lime, Blue)

	assert.Contains(t, buf.String(), "degenerate triangle")

	SetLogger(nil)
	assert.False(t, debugEnabled())
}
