// Package sdf derives a scalar obstacle-distance field from a grid: for
// every cell, the exact Euclidean distance to the nearest Obstacle cell
// (0 at obstacles themselves, by convention).
//
// What:
//
//   - Transform is the pure one-shot transform: identical obstacle masks
//     always yield identical fields.
//   - Field wraps Transform with invalidation-driven caching. It recomputes
//     exactly when the owning grid's dirty flag is set and a value is
//     requested, then clears the flag. A monotonic Version counter exposes
//     recomputation for idempotence checks.
//
// Why exact Euclidean (not Chebyshev/Manhattan):
//
//   - The A* engine uses a Euclidean goal heuristic and assumes the field's
//     gradient magnitude is ≈ 1 away from obstacles. Only the exact
//     Euclidean transform has that property.
//
// Algorithm:
//
//   - Felzenszwalb–Huttenlocher distance transform of sampled functions:
//     two 1D squared-distance passes (columns, then rows) over the lower
//     envelope of parabolas, followed by a square root.
//
// Complexity:
//
//   - Transform: O(W×H) time, O(W×H) memory.
//   - Field.Values: O(1) while the grid is clean, O(W×H) on recompute.
//
// Edge cases:
//
//   - A grid with no obstacles yields +Inf everywhere; the search engine's
//     penalty term weight/(dist+ε) then degrades cleanly to 0.
//
// Errors:
//
//   - ErrNilGrid: Field constructed without a grid.
//
// Recomputation cannot fail for a well-formed grid; it is a pure numeric
// transform of the obstacle mask.
package sdf
