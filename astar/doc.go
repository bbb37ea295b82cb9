// Package astar implements the gridroute search engine: A* over the grid
// graph with a cost function biased by the obstacle distance field, in
// single-pair and batched form.
//
// What:
//
//   - Engine binds a grid to its cached distance field and answers Search
//     (one start, one goal) and Batch (Cartesian product of starts and
//     goals, each pair independent) queries.
//   - Per-move cost is move_cost + SDFWeight/(field[neighbor]+Epsilon):
//     1.0 for cardinal moves, √2 for diagonal moves (offered only under
//     AllowDiagonal). Raising SDFWeight buys obstacle clearance at the
//     price of geometric optimality — the search is optimal with respect
//     to the biased cost, not the raw distance, and callers must not
//     conflate the two.
//   - The goal heuristic is the Euclidean distance, admissible and
//     consistent for the biased cost because the penalty term is
//     non-negative by construction.
//   - The frontier is a binary heap keyed (f, insertion sequence): equal
//     f-scores pop in insertion order, so identical inputs always yield
//     byte-identical paths. This determinism is a contract, not an
//     accident.
//
// Outcomes:
//
//   - Found: a complete path from start to goal, with its biased cost.
//   - NoPath: the frontier emptied before the goal was reached.
//   - LimitReached: the pop budget (MaxIterations) ran out first — a
//     safety valve against pathological inputs, reported distinctly from
//     exhaustion for caller diagnostics.
//
// NoPath and LimitReached are valid results, never errors; only malformed
// caller input (nil grid, out-of-bounds or non-walkable endpoints, invalid
// option values) produces an error, and always before the search begins.
//
// Complexity:
//
//   - Search: O(N log N) pops worst case over N = W×H cells, O(N) memory.
//   - Batch: |starts|×|goals| independent searches; the distance field is
//     computed at most once per distinct grid state for the whole batch.
//
// Execution model: single-threaded and synchronous — every call runs to
// completion before returning. Callers must not mutate the grid while a
// search is in flight.
package astar
