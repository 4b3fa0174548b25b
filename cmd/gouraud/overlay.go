package main

import (
	"image"

	"github.com/fogleman/gg"

	"seehuhn.de/go/gouraud"
)

// markerRadius is the radius of the vertex markers, in pixels.
const markerRadius = 3

// drawOverlay outlines the triangles and labels every vertex with its
// colour in hex notation.
func drawOverlay(img *image.RGBA, tris []gouraud.Triangle) {
	dc := gg.NewContextForRGBA(img)
	w, h := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())

	dc.SetLineWidth(1)
	for _, t := range tris {
		dc.MoveTo(t.V[0].X, t.V[0].Y)
		dc.LineTo(t.V[1].X, t.V[1].Y)
		dc.LineTo(t.V[2].X, t.V[2].Y)
		dc.ClosePath()
		dc.SetRGB(0, 0, 0)
		dc.Stroke()

		for i, p := range t.V {
			c := t.C[i]
			dc.DrawCircle(p.X, p.Y, markerRadius)
			dc.SetRGB(c.R, c.G, c.B)
			dc.FillPreserve()
			dc.SetRGB(0, 0, 0)
			dc.Stroke()

			ax, ay := labelAnchor(p.X, p.Y, w, h)
			dc.SetRGB(1, 1, 1)
			dc.DrawStringAnchored(c.Hex(), p.X, p.Y, ax, ay)
		}
	}
}

// labelAnchor chooses the text anchor for a label at (x, y), so that the
// label extends towards the centre of a w×h canvas.
func labelAnchor(x, y, w, h float64) (ax, ay float64) {
	ax, ay = -0.2, 1.2
	if x > w/2 {
		ax = 1.2
	}
	if y > h/2 {
		ay = -0.2
	}
	return ax, ay
}
