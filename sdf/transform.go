package sdf

import (
	"math"

	"github.com/ahlab/gridroute/grid"
)

// Transform computes the exact Euclidean distance from every cell of g to
// the nearest Obstacle cell, returned as a row-major array matching the
// grid's shape. Obstacle cells map to 0; a grid with no obstacles maps to
// +Inf everywhere.
//
// The result is a pure function of the grid's obstacle mask: identical
// masks always yield identical fields.
// Complexity: O(W×H) time and memory.
func Transform(g *grid.Grid) []float64 {
	w, h := g.Width(), g.Height()
	cells := g.Cells()

	// Seed squared distances: 0 at obstacles, +Inf elsewhere.
	d := make([]float64, w*h)
	for i, t := range cells {
		if t == grid.Obstacle {
			d[i] = 0
		} else {
			d[i] = math.Inf(1)
		}
	}

	// Scratch buffers shared by both passes.
	side := max(w, h)
	f := make([]float64, side)
	out := make([]float64, side)
	v := make([]int, side)
	z := make([]float64, side+1)

	// Pass 1: squared distance transform down each column.
	for c := 0; c < w; c++ {
		for r := 0; r < h; r++ {
			f[r] = d[r*w+c]
		}
		dt1d(f[:h], out[:h], v[:h], z[:h+1])
		for r := 0; r < h; r++ {
			d[r*w+c] = out[r]
		}
	}

	// Pass 2: squared distance transform along each row, then sqrt.
	for r := 0; r < h; r++ {
		copy(f[:w], d[r*w:(r+1)*w])
		dt1d(f[:w], out[:w], v[:w], z[:w+1])
		for c := 0; c < w; c++ {
			d[r*w+c] = math.Sqrt(out[c])
		}
	}

	return d
}

// dt1d computes the 1D squared-distance transform of the sampled function f
// into out, using the lower envelope of parabolas (Felzenszwalb &
// Huttenlocher, 2012). v holds the parabola apexes of the envelope, z the
// boundaries between their domains.
//
// +Inf samples carry no parabola and are skipped; if every sample is +Inf
// the scan line has no obstacle influence and out stays +Inf throughout.
func dt1d(f, out []float64, v []int, z []float64) {
	n := len(f)
	k := -1 // index of the rightmost parabola in the envelope
	for q := 0; q < n; q++ {
		if math.IsInf(f[q], 1) {
			continue
		}
		if k < 0 {
			k = 0
			v[0] = q
			z[0] = math.Inf(-1)
			z[1] = math.Inf(1)

			continue
		}
		s := intersect(f, q, v[k])
		for s <= z[k] {
			k--
			s = intersect(f, q, v[k])
		}
		k++
		v[k] = q
		z[k] = s
		z[k+1] = math.Inf(1)
	}

	if k < 0 {
		// No finite sample in this line: distances stay infinite.
		for q := 0; q < n; q++ {
			out[q] = math.Inf(1)
		}

		return
	}

	k = 0
	for q := 0; q < n; q++ {
		for z[k+1] < float64(q) {
			k++
		}
		dq := float64(q - v[k])
		out[q] = dq*dq + f[v[k]]
	}
}

// intersect returns the horizontal position where the parabola rooted at q
// overtakes the one rooted at p. Both samples are finite by construction.
func intersect(f []float64, q, p int) float64 {
	fq := float64(q)
	fp := float64(p)

	return ((f[q] + fq*fq) - (f[p] + fp*fp)) / (2*fq - 2*fp)
}
