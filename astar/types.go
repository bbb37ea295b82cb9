// Package astar defines configuration options, sentinel errors, and result
// types for the distance-field-biased A* search engine.
package astar

import (
	"errors"

	"github.com/ahlab/gridroute/grid"
)

// Sentinel errors returned by the search engine.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to NewEngine.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrInvalidEndpoint indicates a start or goal that is out of bounds or
	// not walkable. Surfaced before any search work begins.
	ErrInvalidEndpoint = errors.New("astar: invalid endpoint")

	// ErrBadWeight indicates a negative SDF penalty weight.
	ErrBadWeight = errors.New("astar: SDFWeight must be non-negative")

	// ErrBadEpsilon indicates a zero or negative Epsilon, which would allow
	// division by zero in the penalty term at obstacle-adjacent cells.
	ErrBadEpsilon = errors.New("astar: Epsilon must be positive")

	// ErrBadIterations indicates a zero or negative iteration budget.
	ErrBadIterations = errors.New("astar: MaxIterations must be positive")
)

// Default option values.
const (
	// DefaultSDFWeight balances clearance against path length for typical
	// editing sessions; 0 disables the penalty entirely.
	DefaultSDFWeight = 0.5
	// DefaultEpsilon guards the penalty division at cells touching obstacles.
	DefaultEpsilon = 0.1
	// DefaultMaxIterations bounds a single search; generous for a 1000×1000
	// grid, where a full sweep pops at most one million cells.
	DefaultMaxIterations = 1_000_000
)

// Options configures a single search call. It is passed by value: searches
// share no mutable configuration state.
//
// AllowDiagonal – offer 8-connected moves (diagonals cost √2) instead of 4.
// SDFWeight     – weight of the obstacle-clearance penalty. Must be ≥ 0.
// Epsilon       – guard term in weight/(distance+Epsilon). Must be > 0.
// MaxIterations – pop budget; exceeding it yields the LimitReached outcome.
type Options struct {
	AllowDiagonal bool
	SDFWeight     float64
	Epsilon       float64
	MaxIterations int
}

// Option is a functional option for configuring a search.
type Option func(*Options)

// WithDiagonal enables 8-connected movement.
func WithDiagonal() Option {
	return func(o *Options) { o.AllowDiagonal = true }
}

// WithSDFWeight sets the obstacle-clearance penalty weight.
// Must be non-negative; negative values panic with ErrBadWeight.
func WithSDFWeight(w float64) Option {
	return func(o *Options) {
		if w < 0 {
			panic(ErrBadWeight.Error())
		}
		o.SDFWeight = w
	}
}

// WithEpsilon sets the division guard of the penalty term.
// Must be positive; other values panic with ErrBadEpsilon.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps <= 0 {
			panic(ErrBadEpsilon.Error())
		}
		o.Epsilon = eps
	}
}

// WithMaxIterations sets the pop budget for a single search.
// Must be positive; other values panic with ErrBadIterations.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadIterations.Error())
		}
		o.MaxIterations = n
	}
}

// DefaultOptions returns the baseline configuration: 4-connected movement,
// SDFWeight 0.5, Epsilon 0.1, MaxIterations 1,000,000.
func DefaultOptions() Options {
	return Options{
		AllowDiagonal: false,
		SDFWeight:     DefaultSDFWeight,
		Epsilon:       DefaultEpsilon,
		MaxIterations: DefaultMaxIterations,
	}
}

// Outcome distinguishes the three terminal states of a search.
type Outcome int

const (
	// Found means a complete path was reconstructed.
	Found Outcome = iota
	// NoPath means the frontier emptied before reaching the goal.
	NoPath
	// LimitReached means the pop budget ran out before either of the above.
	LimitReached
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case Found:
		return "Found"
	case NoPath:
		return "NoPath"
	case LimitReached:
		return "LimitReached"
	default:
		return "Outcome(?)"
	}
}

// Result is the outcome of one search.
//
// Path is non-nil exactly when Outcome == Found; it is an ordered sequence
// of coordinates from start to goal, each adjacent pair a legal move under
// the connectivity in force. An absent path is always reported through
// Outcome, never as an empty sequence.
type Result struct {
	Path     []grid.Coord
	Cost     float64 // total biased cost of Path; 0 unless Found
	Outcome  Outcome
	Expanded int // cells popped from the frontier; caller diagnostics
}

// Pair keys one (start, goal) combination in a batch result.
type Pair struct {
	Start, Goal grid.Coord
}
