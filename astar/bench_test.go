package astar_test

import (
	"math/rand"
	"testing"

	"github.com/ahlab/gridroute/astar"
	"github.com/ahlab/gridroute/grid"
)

// benchGrid builds an n×n grid with ~5% random obstacles, keeping the
// corners free so the corner-to-corner route stays valid.
func benchGrid(b *testing.B, n int) *astar.Engine {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	g, err := grid.New(n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if rng.Intn(20) == 0 {
				_ = g.Set(r, c, grid.Obstacle)
			}
		}
	}
	_ = g.Set(0, 0, grid.Free)
	_ = g.Set(n-1, n-1, grid.Free)

	eng, err := astar.NewEngine(g)
	if err != nil {
		b.Fatalf("setup NewEngine failed: %v", err)
	}
	eng.Field().Values() // warm the cache; measure the search alone

	return eng
}

// BenchmarkSearch_256 measures a corner-to-corner search on a 256×256 grid
// with the default clearance weight.
// Complexity: O(N log N) over expanded cells.
func BenchmarkSearch_256(b *testing.B) {
	eng := benchGrid(b, 256)
	start := grid.Coord{Row: 0, Col: 0}
	goal := grid.Coord{Row: 255, Col: 255}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = eng.Search(start, goal)
	}
}

// BenchmarkSearch_Diagonal_256 measures the same route under 8-connectivity.
func BenchmarkSearch_Diagonal_256(b *testing.B) {
	eng := benchGrid(b, 256)
	start := grid.Coord{Row: 0, Col: 0}
	goal := grid.Coord{Row: 255, Col: 255}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = eng.Search(start, goal, astar.WithDiagonal())
	}
}
