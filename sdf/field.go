package sdf

import (
	"errors"
	"fmt"

	"github.com/ahlab/gridroute/grid"
)

// ErrNilGrid indicates that a nil *grid.Grid was passed to New.
var ErrNilGrid = errors.New("sdf: grid is nil")

// Field is the cached distance field of exactly one grid. It recomputes the
// whole field lazily whenever the grid's dirty flag is set and a value is
// requested — there is no partial or incremental update, so an edit
// anywhere invalidates the entire cache.
//
// Field inherits the grid's single-writer assumption: it is not safe for
// concurrent use while the grid is being mutated.
type Field struct {
	grid    *grid.Grid
	values  []float64
	version uint64
}

// New binds a cache to g. Returns ErrNilGrid if g is nil.
func New(g *grid.Grid) (*Field, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	return &Field{grid: g}, nil
}

// Values returns the current distance field, row-major, recomputing it
// first if the grid is dirty. The returned slice is the cache itself and
// must be treated as read-only; it stays valid until the next recompute.
// Complexity: O(1) on a clean grid, O(W×H) on recompute.
func (f *Field) Values() []float64 {
	if f.values == nil || f.grid.Dirty() {
		f.values = Transform(f.grid)
		f.grid.ClearDirty()
		f.version++
	}

	return f.values
}

// At returns the distance at (row,col), recomputing the field if needed.
// Returns grid.ErrOutOfBounds for coordinates outside the grid.
func (f *Field) At(row, col int) (float64, error) {
	if !f.grid.InBounds(row, col) {
		return 0, fmt.Errorf("%w: (%d,%d)", grid.ErrOutOfBounds, row, col)
	}

	return f.Values()[row*f.grid.Width()+col], nil
}

// Version returns the number of recomputations performed so far. Repeated
// reads on an unmodified grid leave it unchanged; tests use it to verify
// cache idempotence.
func (f *Field) Version() uint64 { return f.version }

// Grid returns the grid this field is derived from.
func (f *Field) Grid() *grid.Grid { return f.grid }
