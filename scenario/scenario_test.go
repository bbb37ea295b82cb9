package scenario_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahlab/gridroute/astar"
	"github.com/ahlab/gridroute/grid"
	"github.com/ahlab/gridroute/scenario"
)

const fullScenario = `
grid {
  width  = 12
  height = 10
}

fill {
  rect = [2, 2, 4, 9]
  type = obstacle
}

fill {
  at   = [8, 0]
  type = surface
}

start {
  at = [0, 0]
}

start {
  at = [9, 0]
}

end {
  at = [9, 11]
}

search {
  diagonal   = true
  sdf_weight = 1.5
}
`

func TestParse_FullScenario(t *testing.T) {
	sc, err := scenario.Parse([]byte(fullScenario), "full.hcl")
	require.NoError(t, err)

	g := sc.Grid
	assert.Equal(t, 12, g.Width())
	assert.Equal(t, 10, g.Height())

	ct, err := g.Cell(3, 5)
	require.NoError(t, err)
	assert.Equal(t, grid.Obstacle, ct)
	ct, err = g.Cell(8, 0)
	require.NoError(t, err)
	assert.Equal(t, grid.Surface, ct)
	ct, err = g.Cell(0, 0)
	require.NoError(t, err)
	assert.Equal(t, grid.Free, ct)

	require.Len(t, g.Starts(), 2)
	assert.Equal(t, grid.Coord{Row: 0, Col: 0}, g.Starts()[0].At)
	require.Len(t, g.Ends(), 1)
	assert.Equal(t, grid.Coord{Row: 9, Col: 11}, g.Ends()[0].At)

	// Explicit settings override the defaults; the rest stay put.
	assert.True(t, sc.Options.AllowDiagonal)
	assert.Equal(t, 1.5, sc.Options.SDFWeight)
	assert.Equal(t, astar.DefaultEpsilon, sc.Options.Epsilon)
	assert.Equal(t, astar.DefaultMaxIterations, sc.Options.MaxIterations)
}

// TestParse_DefaultsWithoutSearchBlock: omitting search yields the astar
// defaults untouched.
func TestParse_DefaultsWithoutSearchBlock(t *testing.T) {
	sc, err := scenario.Parse([]byte("grid {\n  width = 4\n  height = 4\n}\n"), "min.hcl")
	require.NoError(t, err)
	assert.Equal(t, astar.DefaultOptions(), sc.Options)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{
			name: "MissingGrid",
			src:  "start {\n  at = [0, 0]\n}\n",
			want: scenario.ErrMissingGrid,
		},
		{
			name: "BadDimensions",
			src:  "grid {\n  width = 0\n  height = 5\n}\n",
			want: grid.ErrInvalidDimension,
		},
		{
			name: "BadRect",
			src:  "grid {\n  width = 4\n  height = 4\n}\nfill {\n  rect = [1, 1, 2]\n  type = obstacle\n}\n",
			want: scenario.ErrBadRect,
		},
		{
			name: "EmptyFill",
			src:  "grid {\n  width = 4\n  height = 4\n}\nfill {\n  type = obstacle\n}\n",
			want: scenario.ErrBadFill,
		},
		{
			name: "BadMarkerAt",
			src:  "grid {\n  width = 4\n  height = 4\n}\nstart {\n  at = [1]\n}\n",
			want: scenario.ErrBadAt,
		},
		{
			name: "UnknownCellType",
			src:  "grid {\n  width = 4\n  height = 4\n}\nfill {\n  at = [1, 1]\n  type = \"lava\"\n}\n",
			want: grid.ErrBadCellType,
		},
		{
			name: "MarkerOnObstacle",
			src:  "grid {\n  width = 4\n  height = 4\n}\nfill {\n  at = [1, 1]\n  type = obstacle\n}\nstart {\n  at = [1, 1]\n}\n",
			want: grid.ErrOnObstacle,
		},
		{
			name: "NegativeWeight",
			src:  "grid {\n  width = 4\n  height = 4\n}\nsearch {\n  sdf_weight = -1\n}\n",
			want: astar.ErrBadWeight,
		},
		{
			name: "ZeroEpsilon",
			src:  "grid {\n  width = 4\n  height = 4\n}\nsearch {\n  epsilon = 0\n}\n",
			want: astar.ErrBadEpsilon,
		},
		{
			name: "ZeroIterations",
			src:  "grid {\n  width = 4\n  height = 4\n}\nsearch {\n  max_iterations = 0\n}\n",
			want: astar.ErrBadIterations,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scenario.Parse([]byte(tc.src), tc.name+".hcl")
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

// TestParse_FillOrder: later fills overwrite earlier ones, matching file
// order.
func TestParse_FillOrder(t *testing.T) {
	src := `
grid {
  width  = 4
  height = 4
}

fill {
  rect = [0, 0, 3, 3]
  type = obstacle
}

fill {
  at   = [2, 2]
  type = free
}
`
	sc, err := scenario.Parse([]byte(src), "order.hcl")
	require.NoError(t, err)

	ct, err := sc.Grid.Cell(2, 2)
	require.NoError(t, err)
	assert.Equal(t, grid.Free, ct)
	ct, err = sc.Grid.Cell(0, 0)
	require.NoError(t, err)
	assert.Equal(t, grid.Obstacle, ct)
}

func TestParse_SyntaxError(t *testing.T) {
	_, err := scenario.Parse([]byte("grid {{{"), "broken.hcl")
	assert.Error(t, err)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.hcl")
	require.NoError(t, os.WriteFile(path, []byte(fullScenario), 0o644))

	sc, err := scenario.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, sc.Grid.Width())

	_, err = scenario.Load(filepath.Join(t.TempDir(), "absent.hcl"))
	assert.Error(t, err)
}

// TestParse_ScenarioIsRunnable: the assembled grid and options feed the
// search engine directly.
func TestParse_ScenarioIsRunnable(t *testing.T) {
	sc, err := scenario.Parse([]byte(fullScenario), "full.hcl")
	require.NoError(t, err)

	eng, err := astar.NewEngine(sc.Grid)
	require.NoError(t, err)

	res, err := eng.Search(sc.Grid.Starts()[0].At, sc.Grid.Ends()[0].At,
		astar.WithDiagonal(), astar.WithSDFWeight(sc.Options.SDFWeight))
	require.NoError(t, err)
	assert.Equal(t, astar.Found, res.Outcome)
}
