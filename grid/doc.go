// Package grid provides the typed 2D cell grid at the heart of gridroute:
// cell classification, named start/end markers, and invalidation signaling
// for the derived distance field.
//
// What:
//
//   - Grid wraps a bounded width×height index space of CellType cells,
//     packed row-major for cache-friendly scans.
//   - Cells classify as Free, Obstacle, or Surface; CellType.Walkable is the
//     single source of truth for traversability (Free only — Surface is
//     reserved for future mounting geometry and is non-traversable today).
//   - Start/end markers are an ordered collection layered over the
//     classification: a cell can be Free and a start marker at once.
//     Marker IDs are allocated monotonically and never reused, so removal
//     leaves a gap rather than renumbering.
//   - Every transition into or out of Obstacle raises the grid's dirty
//     flag; the sdf package clears it when it rebuilds its cache.
//
// Why:
//
//   - Harness routing: obstacles model panels and clearance zones; markers
//     model connector endpoints to be routed between.
//   - Interactive editing: dirty-flag invalidation keeps repeated searches
//     cheap while the obstacle mask is unchanged.
//
// Complexity:
//
//   - Set, Cell, InBounds, AddStart/AddEnd: O(1).
//   - FillRect: O(area of the clipped rectangle).
//   - Clear: O(W×H).
//
// Errors:
//
//   - ErrInvalidDimension: width or height outside (0, MaxSide].
//   - ErrOutOfBounds: coordinate outside the grid.
//   - ErrOnObstacle: marker assignment onto an Obstacle cell.
//   - ErrBadCellType: cell value outside the known classifications.
package grid
