package grid

import (
	"fmt"
)

// Grid is a bounded 2D field of classified cells plus an ordered collection
// of start/end markers. It owns the dirty flag for its derived distance
// field: any transition into or out of Obstacle raises the flag, and the
// sdf package clears it on recomputation.
//
// A Grid is not safe for concurrent mutation; callers must serialize edits
// and searches on the same instance.
type Grid struct {
	width, height int
	cells         []CellType // row-major, len = width*height

	starts, ends       []Marker
	nextStart, nextEnd int

	dirty bool
}

// New creates a width×height grid with every cell Free.
// Returns ErrInvalidDimension if either dimension is ≤ 0 or exceeds MaxSide.
// Complexity: O(W×H).
func New(width, height int) (*Grid, error) {
	if width <= 0 || width > MaxSide {
		return nil, fmt.Errorf("%w: width %d", ErrInvalidDimension, width)
	}
	if height <= 0 || height > MaxSide {
		return nil, fmt.Errorf("%w: height %d", ErrInvalidDimension, height)
	}

	return &Grid{
		width:  width,
		height: height,
		cells:  make([]CellType, width*height),
		dirty:  true, // no field has ever been derived from this grid
	}, nil
}

// Restore reconstructs a grid from previously serialized state: dimensions,
// a row-major cell array, and marker lists. Marker ID counters resume past
// the highest restored ID so the never-reuse contract survives a round trip.
//
// Marker coordinates are bounds-checked but deliberately not re-checked
// against obstacles: a saved grid may hold a marker over a cell that was
// cleared to Obstacle after the marker was placed, which is legal state.
func Restore(width, height int, cells []CellType, starts, ends []Marker) (*Grid, error) {
	g, err := New(width, height)
	if err != nil {
		return nil, err
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("%w: got %d cells for %d×%d grid", ErrInvalidDimension, len(cells), width, height)
	}
	for i, t := range cells {
		if !t.valid() {
			return nil, fmt.Errorf("%w: value %d at index %d", ErrBadCellType, t, i)
		}
	}
	copy(g.cells, cells)

	for _, m := range starts {
		if !g.InBounds(m.At.Row, m.At.Col) {
			return nil, fmt.Errorf("%w: start marker %d at (%d,%d)", ErrOutOfBounds, m.ID, m.At.Row, m.At.Col)
		}
		g.starts = append(g.starts, m)
		if m.ID >= g.nextStart {
			g.nextStart = m.ID + 1
		}
	}
	for _, m := range ends {
		if !g.InBounds(m.At.Row, m.At.Col) {
			return nil, fmt.Errorf("%w: end marker %d at (%d,%d)", ErrOutOfBounds, m.ID, m.At.Row, m.At.Col)
		}
		g.ends = append(g.ends, m)
		if m.ID >= g.nextEnd {
			g.nextEnd = m.ID + 1
		}
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (row,col) lies within the grid. Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// index maps (row,col) to the row-major cell index.
func (g *Grid) index(row, col int) int { return row*g.width + col }

// Cell returns the classification at (row,col).
// Returns ErrOutOfBounds for coordinates outside the grid.
func (g *Grid) Cell(row, col int) (CellType, error) {
	if !g.InBounds(row, col) {
		return Free, fmt.Errorf("%w: (%d,%d) in %d×%d grid", ErrOutOfBounds, row, col, g.height, g.width)
	}

	return g.cells[g.index(row, col)], nil
}

// CellAt is Cell addressed by a Coord.
func (g *Grid) CellAt(at Coord) (CellType, error) { return g.Cell(at.Row, at.Col) }

// Cells returns a copy of the row-major classification array.
// Intended for persistence and for the distance transform; mutating the
// returned slice does not affect the grid.
func (g *Grid) Cells() []CellType {
	out := make([]CellType, len(g.cells))
	copy(out, g.cells)

	return out
}

// Set classifies the cell at (row,col) as t.
// Raises the dirty flag iff the classification transitions into or out of
// Obstacle. Returns ErrOutOfBounds for invalid coordinates.
// Complexity: O(1).
func (g *Grid) Set(row, col int, t CellType) error {
	if !g.InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d) in %d×%d grid", ErrOutOfBounds, row, col, g.height, g.width)
	}
	if !t.valid() {
		return fmt.Errorf("%w: value %d", ErrBadCellType, t)
	}

	i := g.index(row, col)
	old := g.cells[i]
	g.cells[i] = t
	if old != t && (old == Obstacle || t == Obstacle) {
		g.dirty = true
	}

	return nil
}

// FillRect classifies every cell in the rectangle spanned by the two corner
// coordinates (inclusive, any corner order) as t. The rectangle is clipped
// to the grid, so out-of-range corners are legal. The dirty flag is raised
// at most once for the whole operation.
// Complexity: O(area of the clipped rectangle).
func (g *Grid) FillRect(row0, col0, row1, col1 int, t CellType) {
	if !t.valid() {
		return
	}
	r0, r1 := minMax(row0, row1)
	c0, c1 := minMax(col0, col1)
	r0 = max(r0, 0)
	c0 = max(c0, 0)
	r1 = min(r1, g.height-1)
	c1 = min(c1, g.width-1)

	changed := false
	for r := r0; r <= r1; r++ {
		base := r * g.width
		for c := c0; c <= c1; c++ {
			old := g.cells[base+c]
			if old != t && (old == Obstacle || t == Obstacle) {
				changed = true
			}
			g.cells[base+c] = t
		}
	}
	if changed {
		g.dirty = true
	}
}

// Clear resets every cell to t, drops all markers and raises the dirty flag.
func (g *Grid) Clear(t CellType) {
	if !t.valid() {
		return
	}
	for i := range g.cells {
		g.cells[i] = t
	}
	g.starts = g.starts[:0]
	g.ends = g.ends[:0]
	g.dirty = true
}

// Dirty reports whether the obstacle mask changed since the derived distance
// field was last recomputed.
func (g *Grid) Dirty() bool { return g.dirty }

// ClearDirty marks the derived distance field as up to date.
// Called by the sdf package after a recomputation; most callers never need it.
func (g *Grid) ClearDirty() { g.dirty = false }

// AddStart appends a start marker at (row,col) and returns its stable ID.
// Returns ErrOutOfBounds or ErrOnObstacle. Placing a marker never alters the
// cell's classification.
func (g *Grid) AddStart(row, col int) (int, error) {
	id, err := g.addMarker(&g.starts, &g.nextStart, row, col)
	if err != nil {
		return 0, fmt.Errorf("add start: %w", err)
	}

	return id, nil
}

// AddEnd appends an end marker at (row,col) and returns its stable ID.
// Returns ErrOutOfBounds or ErrOnObstacle.
func (g *Grid) AddEnd(row, col int) (int, error) {
	id, err := g.addMarker(&g.ends, &g.nextEnd, row, col)
	if err != nil {
		return 0, fmt.Errorf("add end: %w", err)
	}

	return id, nil
}

// addMarker validates (row,col) and appends a marker with the next monotonic
// ID. Obstacle occupancy is checked at assignment time only: clearing the
// cell to Obstacle afterwards does not retract the marker — callers remove
// markers explicitly.
func (g *Grid) addMarker(list *[]Marker, next *int, row, col int) (int, error) {
	if !g.InBounds(row, col) {
		return 0, fmt.Errorf("%w: (%d,%d) in %d×%d grid", ErrOutOfBounds, row, col, g.height, g.width)
	}
	if g.cells[g.index(row, col)] == Obstacle {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrOnObstacle, row, col)
	}

	id := *next
	*next = id + 1
	*list = append(*list, Marker{ID: id, At: Coord{Row: row, Col: col}})

	return id, nil
}

// RemoveStart deletes the start marker with the given ID, preserving the
// insertion order of the remainder. Reports whether a marker was removed.
// The ID is never reassigned.
func (g *Grid) RemoveStart(id int) bool { return removeMarker(&g.starts, id) }

// RemoveEnd deletes the end marker with the given ID.
func (g *Grid) RemoveEnd(id int) bool { return removeMarker(&g.ends, id) }

func removeMarker(list *[]Marker, id int) bool {
	for i, m := range *list {
		if m.ID == id {
			*list = append((*list)[:i], (*list)[i+1:]...)

			return true
		}
	}

	return false
}

// Starts returns the start markers in insertion order. The slice is a copy.
func (g *Grid) Starts() []Marker { return copyMarkers(g.starts) }

// Ends returns the end markers in insertion order. The slice is a copy.
func (g *Grid) Ends() []Marker { return copyMarkers(g.ends) }

func copyMarkers(src []Marker) []Marker {
	out := make([]Marker, len(src))
	copy(out, src)

	return out
}

func minMax(a, b int) (int, int) {
	if a > b {
		return b, a
	}

	return a, b
}
