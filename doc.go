// Package gridroute is an early-stage prototype for a 3D harness-routing
// engine, validated here on a 2D grid: pathfinding biased by a precomputed
// obstacle-distance field, under interactive editing.
//
// 🚀 What is gridroute?
//
//	A small, focused toolkit that brings together:
//		• grid/     — typed cell grid (Free | Obstacle | Surface) with named
//		              start/end markers and invalidation-aware editing
//		• sdf/      — exact Euclidean distance transform with lazy,
//		              dirty-flag-driven caching
//		• astar/    — A* search biased by the distance field, single-pair
//		              and batched, with deterministic tie-breaking
//		• gridio/   — versioned compressed archives for grids and paths
//		• scenario/ — declarative HCL scenario files
//		• editor/   — tcell-based interactive terminal editor
//
// ✨ Why choose gridroute?
//
//   - Clearance-aware – paths trade raw length for distance to obstacles,
//     tuned by a single weight
//   - Reproducible – identical inputs always yield byte-identical paths
//   - Bounded – hard 1000×1000 cap keeps edits and searches interactive
//   - Pure Go core – the search engine has no dependencies beyond stdlib
//
// Quick ASCII example:
//
//	S . . █ .
//	. . . █ .
//	. . . . E
//
//	a start marker S routes around the wall █ to the end marker E,
//	preferring cells far from the wall when the SDF weight is raised.
//
// The engine intentionally does not guarantee the globally shortest path:
// the distance-field penalty buys obstacle clearance at the price of
// geometric optimality. Multi-terminal net optimization (Steiner-style
// path sharing) is deferred future work.
//
//	go get github.com/ahlab/gridroute
package gridroute
