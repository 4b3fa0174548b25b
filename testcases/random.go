package testcases

import (
	"math/rand/v2"

	"seehuhn.de/go/geom/vec"
)

// Random returns n triangles with random vertices inside a width×height
// canvas and random vertex colours. The same seed always gives the same
// test cases. Names are "tri_a", "tri_b", and so on.
func Random(seed uint64, n, width, height int) []TestCase {
	rng := rand.New(rand.NewPCG(seed, seed))

	res := make([]TestCase, 0, n)
	for i := range n {
		tc := TestCase{
			Name:   "tri_" + letters(i),
			Width:  width,
			Height: height,
		}
		for j := range tc.Vertices {
			tc.Vertices[j] = vec.Vec2{
				X: rng.Float64() * float64(width-1),
				Y: rng.Float64() * float64(height-1),
			}
		}
		for j := range tc.Colors {
			tc.Colors[j] = RGB{R: rng.Float64(), G: rng.Float64(), B: rng.Float64()}
		}
		res = append(res, tc)
	}
	return res
}

// letters converts i to a base-26 name: a, b, ..., z, ba, bb, ...
func letters(i int) string {
	var buf []byte
	for {
		buf = append(buf, byte('a'+i%26))
		i /= 26
		if i == 0 {
			break
		}
	}
	for l, r := 0, len(buf)-1; l < r; l, r = l+1, r-1 {
		buf[l], buf[r] = buf[r], buf[l]
	}
	return string(buf)
}
