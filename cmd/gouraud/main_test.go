package main

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/gouraud"
)

func TestLoadTrianglesDefault(t *testing.T) {
	tris, err := loadTriangles("", 0, 1, 800, 600)
	require.NoError(t, err)
	require.Len(t, tris, 1)
	assert.Equal(t, 800.0, tris[0].V[1].X)
	assert.Equal(t, 600.0, tris[0].V[1].Y)
	assert.Equal(t, [3]gouraud.Color{gouraud.Red, gouraud.Lime, gouraud.Blue}, tris[0].C)
}

func TestLoadTrianglesRandom(t *testing.T) {
	a, err := loadTriangles("", 5, 42, 100, 50)
	require.NoError(t, err)
	require.Len(t, a, 5)
	for _, tri := range a {
		for _, p := range tri.V {
			assert.True(t, p.X >= 0 && p.X < 100 && p.Y >= 0 && p.Y < 50, "vertex %v outside canvas", p)
		}
	}

	b, err := loadTriangles("", 5, 42, 100, 50)
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed must give the same triangles")

	_, err = loadTriangles("", -1, 42, 100, 50)
	assert.Error(t, err)
}

func TestLoadTrianglesSVG(t *testing.T) {
	name := filepath.Join(t.TempDir(), "in.svg")
	svg := `<svg><polygon points="1,1 20,2 5,18" fill="#808080"/></svg>`
	require.NoError(t, os.WriteFile(name, []byte(svg), 0644))

	tris, err := loadTriangles(name, 3, 1, 32, 32)
	require.NoError(t, err)
	require.Len(t, tris, 1)
	assert.Equal(t, "#808080", tris[0].C[2].Hex())
}

// TestRender checks the default scene: the lower right half of the canvas
// is filled, with the corner colours at the corners.
func TestRender(t *testing.T) {
	const w, h = 80, 60
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	render(img, []gouraud.Triangle{defaultTriangle(w, h)})

	assert.Equal(t, uint8(0), img.RGBAAt(0, 0).A, "upper left corner must be empty")
	assert.Equal(t, uint8(255), img.RGBAAt(w-1, h-1).A)

	// (w-1, 1) is next to the blue corner
	c := img.RGBAAt(w-1, 1)
	assert.Greater(t, c.B, uint8(200))
	assert.Less(t, c.R, uint8(50))
}

func TestListTriangles(t *testing.T) {
	var buf strings.Builder
	listTriangles(&buf, []gouraud.Triangle{defaultTriangle(8, 6)})
	out := buf.String()
	assert.Contains(t, out, "triangle 0:")
	assert.Contains(t, out, "#ff0000")
	assert.Contains(t, out, "#00ff00")
	assert.Contains(t, out, "#0000ff")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestLabelAnchor(t *testing.T) {
	ax, ay := labelAnchor(10, 10, 100, 100)
	assert.Less(t, ax, 0.0)
	assert.Greater(t, ay, 1.0)

	ax, ay = labelAnchor(90, 90, 100, 100)
	assert.Greater(t, ax, 1.0)
	assert.Less(t, ay, 0.0)
}

func TestOverlayAndSave(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	tris := []gouraud.Triangle{defaultTriangle(64, 48)}
	render(img, tris)
	drawOverlay(img, tris)

	name := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, savePNG(name, img))

	f, err := os.Open(name)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}
