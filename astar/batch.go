package astar

import (
	"github.com/ahlab/gridroute/grid"
)

// Batch runs an independent single-pair search for every (start, goal)
// combination and returns a result keyed by the pair. There is no path
// sharing or joint optimization across pairs — multi-terminal Steiner-style
// routing is deferred future work and deliberately not approximated here.
//
// Contract:
//
//   - Every pair yields a result; a failing pair never aborts the batch.
//     Pairs with an invalid endpoint fold into a NoPath result, mirroring
//     how unreachable goals report.
//   - The distance field is computed at most once per distinct grid state,
//     shared by all pairs through the engine's cache.
//   - Results are deterministic: pairs are searched in starts-major order
//     and keyed by value, so identical inputs yield identical maps.
//
// Complexity: |starts|×|goals| searches, O(N log N) each.
func (e *Engine) Batch(starts, goals []grid.Coord, opts ...Option) map[Pair]Result {
	// Warm the shared cache once, before the pair loop, so a dirty grid is
	// recomputed exactly one time for the entire batch.
	e.field.Values()

	results := make(map[Pair]Result, len(starts)*len(goals))
	for _, start := range starts {
		for _, goal := range goals {
			key := Pair{Start: start, Goal: goal}
			res, err := e.Search(start, goal, opts...)
			if err != nil {
				// Endpoint validation is the only failure mode once the
				// engine exists; a bad endpoint means no path for the pair.
				results[key] = Result{Outcome: NoPath}

				continue
			}
			results[key] = res
		}
	}

	return results
}
