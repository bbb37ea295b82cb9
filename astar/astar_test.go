// Package astar_test validates the search engine: the §-scenario grids
// (straight runs, walls, iteration caps), endpoint validation, determinism,
// and the clearance bias of the SDF penalty.
package astar_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahlab/gridroute/astar"
	"github.com/ahlab/gridroute/grid"
)

// newEngine builds a width×height engine or fails the test.
func newEngine(t *testing.T, width, height int) (*grid.Grid, *astar.Engine) {
	t.Helper()
	g, err := grid.New(width, height)
	require.NoError(t, err)
	eng, err := astar.NewEngine(g)
	require.NoError(t, err)

	return g, eng
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestNewEngine_NilGrid(t *testing.T) {
	_, err := astar.NewEngine(nil)
	assert.True(t, errors.Is(err, astar.ErrNilGrid))
}

func TestSearch_InvalidEndpoints(t *testing.T) {
	g, eng := newEngine(t, 10, 10)
	require.NoError(t, g.Set(4, 4, grid.Obstacle))
	require.NoError(t, g.Set(5, 5, grid.Surface))

	cases := []struct {
		name        string
		start, goal grid.Coord
	}{
		{"StartOutOfBounds", grid.Coord{Row: -1, Col: 0}, grid.Coord{Row: 1, Col: 1}},
		{"GoalOutOfBounds", grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 10, Col: 10}},
		{"StartOnObstacle", grid.Coord{Row: 4, Col: 4}, grid.Coord{Row: 0, Col: 0}},
		{"GoalOnSurface", grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 5, Col: 5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := eng.Search(tc.start, tc.goal)
			assert.True(t, errors.Is(err, astar.ErrInvalidEndpoint), "got %v", err)
		})
	}
}

func TestOptions_PanicOnInvalid(t *testing.T) {
	assert.Panics(t, func() { astar.WithSDFWeight(-0.1)(&astar.Options{}) })
	assert.Panics(t, func() { astar.WithEpsilon(0)(&astar.Options{}) })
	assert.Panics(t, func() { astar.WithMaxIterations(0)(&astar.Options{}) })
}

// ------------------------------------------------------------------------
// 2. Scenario grids
// ------------------------------------------------------------------------

// TestSearch_Manhattan10x10: empty grid, 4-connected, zero weight — the
// corner-to-corner path has Manhattan length: 19 cells, 18 unit edges.
func TestSearch_Manhattan10x10(t *testing.T) {
	_, eng := newEngine(t, 10, 10)

	res, err := eng.Search(grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 9, Col: 9},
		astar.WithSDFWeight(0))
	require.NoError(t, err)
	require.Equal(t, astar.Found, res.Outcome)
	assert.Len(t, res.Path, 19)
	assert.InDelta(t, 18.0, res.Cost, 1e-9)
	assert.Equal(t, grid.Coord{Row: 0, Col: 0}, res.Path[0])
	assert.Equal(t, grid.Coord{Row: 9, Col: 9}, res.Path[len(res.Path)-1])
}

// TestSearch_Diagonal10x10: same grid under 8-connectivity — the straight
// diagonal, 10 cells at √2 per edge.
func TestSearch_Diagonal10x10(t *testing.T) {
	_, eng := newEngine(t, 10, 10)

	res, err := eng.Search(grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 9, Col: 9},
		astar.WithSDFWeight(0), astar.WithDiagonal())
	require.NoError(t, err)
	require.Equal(t, astar.Found, res.Outcome)
	assert.Len(t, res.Path, 10)
	assert.InDelta(t, 9*math.Sqrt2, res.Cost, 1e-9)
}

// TestSearch_StartEqualsGoal returns a single-cell path without entering
// the loop — even a one-pop budget is untouched.
func TestSearch_StartEqualsGoal(t *testing.T) {
	_, eng := newEngine(t, 5, 5)

	at := grid.Coord{Row: 2, Col: 3}
	res, err := eng.Search(at, at, astar.WithMaxIterations(1))
	require.NoError(t, err)
	assert.Equal(t, astar.Found, res.Outcome)
	assert.Equal(t, []grid.Coord{at}, res.Path)
	assert.Zero(t, res.Expanded)
	assert.Zero(t, res.Cost)
}

// TestSearch_WallExhaustion: a full-height wall with no gap separates the
// endpoints — the frontier empties and the outcome is NoPath, not an error.
func TestSearch_WallExhaustion(t *testing.T) {
	g, eng := newEngine(t, 10, 10)
	g.FillRect(0, 5, 9, 5, grid.Obstacle)

	res, err := eng.Search(grid.Coord{Row: 5, Col: 0}, grid.Coord{Row: 5, Col: 9})
	require.NoError(t, err)
	assert.Equal(t, astar.NoPath, res.Outcome)
	assert.Nil(t, res.Path)
	assert.Positive(t, res.Expanded, "the reachable half must have been explored")
}

// TestSearch_IterationCap: a one-pop budget on a non-trivial search yields
// LimitReached — distinguishable from exhaustion.
func TestSearch_IterationCap(t *testing.T) {
	_, eng := newEngine(t, 10, 10)

	res, err := eng.Search(grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 9, Col: 9},
		astar.WithMaxIterations(1))
	require.NoError(t, err)
	assert.Equal(t, astar.LimitReached, res.Outcome)
	assert.Nil(t, res.Path)
	assert.Equal(t, 1, res.Expanded)
}

// TestSearch_AroundObstacle: the path detours and never crosses a
// non-walkable cell; every hop is a legal 4-connected move.
func TestSearch_AroundObstacle(t *testing.T) {
	g, eng := newEngine(t, 10, 10)
	g.FillRect(2, 5, 7, 5, grid.Obstacle)

	res, err := eng.Search(grid.Coord{Row: 5, Col: 0}, grid.Coord{Row: 5, Col: 9})
	require.NoError(t, err)
	require.Equal(t, astar.Found, res.Outcome)

	for i, at := range res.Path {
		ct, err := g.CellAt(at)
		require.NoError(t, err)
		assert.True(t, ct.Walkable(), "path crosses %v (%v)", at, ct)
		if i > 0 {
			prev := res.Path[i-1]
			dr, dc := at.Row-prev.Row, at.Col-prev.Col
			assert.Equal(t, 1, dr*dr+dc*dc, "illegal 4-connected hop %v→%v", prev, at)
		}
	}
}

// ------------------------------------------------------------------------
// 3. Cost semantics and determinism
// ------------------------------------------------------------------------

// TestSearch_ZeroWeightIsGeometric: with SDFWeight=0 the reported cost is
// exactly the number of unit edges, independent of the distance field.
func TestSearch_ZeroWeightIsGeometric(t *testing.T) {
	g, eng := newEngine(t, 12, 12)
	g.FillRect(3, 0, 3, 8, grid.Obstacle)

	res, err := eng.Search(grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 11, Col: 0},
		astar.WithSDFWeight(0))
	require.NoError(t, err)
	require.Equal(t, astar.Found, res.Outcome)
	assert.InDelta(t, float64(len(res.Path)-1), res.Cost, 1e-9)
}

// TestSearch_Determinism: identical inputs yield byte-identical results,
// across repeated calls on one engine and across fresh engines.
func TestSearch_Determinism(t *testing.T) {
	layout := func(t *testing.T) *astar.Engine {
		t.Helper()
		g, eng := newEngine(t, 16, 16)
		g.FillRect(4, 2, 4, 12, grid.Obstacle)
		g.FillRect(10, 5, 14, 5, grid.Obstacle)

		return eng
	}
	start := grid.Coord{Row: 0, Col: 0}
	goal := grid.Coord{Row: 15, Col: 15}

	eng := layout(t)
	first, err := eng.Search(start, goal, astar.WithDiagonal())
	require.NoError(t, err)
	require.Equal(t, astar.Found, first.Outcome)

	again, err := eng.Search(start, goal, astar.WithDiagonal())
	require.NoError(t, err)
	assert.Equal(t, first, again, "same engine, same inputs")

	fresh, err := layout(t).Search(start, goal, astar.WithDiagonal())
	require.NoError(t, err)
	assert.Equal(t, first, fresh, "fresh engine, same inputs")
}

// TestSearch_WeightPrefersClearance: on a fixed layout, a heavier SDF
// weight yields a path with at least the minimum clearance of the light
// path and strictly larger clearance in aggregate.
func TestSearch_WeightPrefersClearance(t *testing.T) {
	g, eng := newEngine(t, 20, 20)
	g.FillRect(8, 0, 8, 14, grid.Obstacle)
	field := eng.Field().Values()

	start := grid.Coord{Row: 0, Col: 0}
	goal := grid.Coord{Row: 19, Col: 0}

	hug, err := eng.Search(start, goal, astar.WithSDFWeight(0))
	require.NoError(t, err)
	require.Equal(t, astar.Found, hug.Outcome)

	wide, err := eng.Search(start, goal, astar.WithSDFWeight(5))
	require.NoError(t, err)
	require.Equal(t, astar.Found, wide.Outcome)

	clearance := func(path []grid.Coord) (min, avg float64) {
		min = math.Inf(1)
		for _, at := range path {
			d := field[at.Row*g.Width()+at.Col]
			if d < min {
				min = d
			}
			avg += d
		}

		return min, avg / float64(len(path))
	}

	hugMin, hugAvg := clearance(hug.Path)
	wideMin, wideAvg := clearance(wide.Path)
	assert.GreaterOrEqual(t, wideMin, hugMin)
	assert.Greater(t, wideAvg, hugAvg, "aggregate clearance must grow with the weight")
}

// TestDefaultOptions pins the documented defaults.
func TestDefaultOptions(t *testing.T) {
	opts := astar.DefaultOptions()
	assert.False(t, opts.AllowDiagonal)
	assert.Equal(t, 0.5, opts.SDFWeight)
	assert.Equal(t, 0.1, opts.Epsilon)
	assert.Equal(t, 1_000_000, opts.MaxIterations)
}
