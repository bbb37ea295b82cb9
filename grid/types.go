// Package grid defines core types, constants, and sentinel errors for the
// gridroute cell grid.
package grid

import (
	"errors"
)

// MaxSide is the hard cap on each grid dimension. It bounds both memory and
// interactive latency: a full 1000×1000 distance-field rebuild plus a search
// must stay comfortably inside a UI frame budget.
const MaxSide = 1000

// Sentinel errors for grid operations.
var (
	// ErrInvalidDimension indicates a width or height that is ≤ 0 or exceeds MaxSide.
	ErrInvalidDimension = errors.New("grid: dimension must be in (0, 1000]")
	// ErrOutOfBounds indicates a coordinate outside the grid's index space.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrOnObstacle indicates a marker assignment onto an Obstacle cell.
	ErrOnObstacle = errors.New("grid: marker cannot be placed on an obstacle")
	// ErrBadCellType indicates a cell value outside the known classifications.
	ErrBadCellType = errors.New("grid: unknown cell type")
)

// CellType classifies a single grid cell. The zero value is Free.
type CellType uint8

const (
	// Free is traversable empty space.
	Free CellType = iota
	// Obstacle blocks traversal and feeds the obstacle distance field.
	Obstacle
	// Surface is reserved for future mounting geometry; non-traversable today.
	Surface
)

// Walkable reports whether a cell of this type may be traversed.
// This predicate is the single source of truth for traversability:
// the search engine must not duplicate obstacle logic.
func (t CellType) Walkable() bool { return t == Free }

// valid reports whether t is one of the known classifications.
func (t CellType) valid() bool { return t <= Surface }

// String returns a human-readable name for the cell type.
func (t CellType) String() string {
	switch t {
	case Free:
		return "Free"
	case Obstacle:
		return "Obstacle"
	case Surface:
		return "Surface"
	default:
		return "CellType(?)"
	}
}

// Coord addresses a single cell as (row, column), zero-based.
type Coord struct {
	Row, Col int
}

// Marker is a named start or end point layered over the classification grid.
// The ID is stable for the grid's lifetime: IDs are allocated monotonically
// and never reused, so removing a marker leaves a gap in the numbering.
type Marker struct {
	ID int
	At Coord
}
