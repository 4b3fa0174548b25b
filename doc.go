// Package gouraud fills triangles with colours interpolated between their
// corners (Gouraud shading).
//
// [DrawTriangle] is the simplest entry point: it writes one triangle to a
// [Sink]. A [Rasteriser] additionally applies a transformation matrix and
// delivers whole scanlines.
package gouraud

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
