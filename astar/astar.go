package astar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/ahlab/gridroute/grid"
	"github.com/ahlab/gridroute/sdf"
)

// move is one legal step: a row/col offset and its geometric cost.
type move struct {
	dr, dc int
	cost   float64
}

// Cardinal moves first, diagonals after; relaxation order feeds the
// insertion-sequence tie-break, so this order is part of the determinism
// contract.
var (
	cardinalMoves = []move{
		{-1, 0, 1}, {1, 0, 1}, {0, -1, 1}, {0, 1, 1},
	}
	diagonalMoves = []move{
		{-1, -1, math.Sqrt2}, {-1, 1, math.Sqrt2}, {1, -1, math.Sqrt2}, {1, 1, math.Sqrt2},
	}
)

// Engine runs searches over one grid and its cached distance field.
// The field is shared across every Search and Batch call on the engine, so
// repeated queries against an unmodified grid never recompute it.
type Engine struct {
	grid  *grid.Grid
	field *sdf.Field
}

// NewEngine binds a search engine to g. Returns ErrNilGrid if g is nil.
func NewEngine(g *grid.Grid) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	f, err := sdf.New(g)
	if err != nil {
		return nil, err
	}

	return &Engine{grid: g, field: f}, nil
}

// Field returns the engine's distance-field cache, e.g. for heatmap
// rendering in the editor.
func (e *Engine) Field() *sdf.Field { return e.field }

// Search runs a single-pair A* from start to goal.
//
// Validation (before any search work):
//
//   - start/goal out of bounds or non-walkable → ErrInvalidEndpoint.
//
// Terminal states (never errors):
//
//   - goal popped from the frontier → Found, path reconstructed.
//   - frontier exhausted            → NoPath.
//   - pop budget exceeded           → LimitReached.
//
// start == goal returns a single-cell path without entering the loop.
// Complexity: O(N log N) time, O(N) memory, N = W×H.
func (e *Engine) Search(start, goal grid.Coord, opts ...Option) (Result, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate both endpoints up front; these are caller-input errors.
	if err := e.checkEndpoint("start", start); err != nil {
		return Result{}, err
	}
	if err := e.checkEndpoint("goal", goal); err != nil {
		return Result{}, err
	}

	// 3) Degenerate case: already there.
	if start == goal {
		return Result{Path: []grid.Coord{start}, Outcome: Found}, nil
	}

	// 4) Pull the distance field (recomputed here iff the grid is dirty).
	field := e.field.Values()

	// 5) Assemble the per-search state and run the main loop.
	r := newRunner(e.grid, field, cfg, start, goal)

	return r.run(), nil
}

// checkEndpoint validates one endpoint coordinate against bounds and
// walkability, wrapping ErrInvalidEndpoint with the offending position.
func (e *Engine) checkEndpoint(name string, at grid.Coord) error {
	t, err := e.grid.CellAt(at)
	if err != nil {
		return fmt.Errorf("%w: %s (%d,%d) out of bounds", ErrInvalidEndpoint, name, at.Row, at.Col)
	}
	if !t.Walkable() {
		return fmt.Errorf("%w: %s (%d,%d) is %s", ErrInvalidEndpoint, name, at.Row, at.Col, t)
	}

	return nil
}

// runner holds the mutable state of one search execution.
type runner struct {
	g     *grid.Grid
	field []float64 // read-only view of the distance field
	cfg   Options

	width       int
	start, goal int // row-major cell indices
	goalAt      grid.Coord

	gScore   []float64 // best-known biased cost from start; +Inf if unvisited
	cameFrom []int32   // best-known predecessor index; -1 if none
	closed   []bool    // finalized cells
	moves    []move

	pq   openPQ
	seq  uint64 // insertion counter backing the deterministic tie-break
	pops int
}

func newRunner(g *grid.Grid, field []float64, cfg Options, start, goal grid.Coord) *runner {
	n := g.Width() * g.Height()
	r := &runner{
		g:        g,
		field:    field,
		cfg:      cfg,
		width:    g.Width(),
		start:    start.Row*g.Width() + start.Col,
		goal:     goal.Row*g.Width() + goal.Col,
		goalAt:   goal,
		gScore:   make([]float64, n),
		cameFrom: make([]int32, n),
		closed:   make([]bool, n),
		moves:    cardinalMoves,
		pq:       make(openPQ, 0, 64),
	}
	if cfg.AllowDiagonal {
		r.moves = append(append(make([]move, 0, 8), cardinalMoves...), diagonalMoves...)
	}
	for i := range r.gScore {
		r.gScore[i] = math.Inf(1)
		r.cameFrom[i] = -1
	}

	return r
}

// run executes the A* main loop to one of the three terminal states.
func (r *runner) run() Result {
	// Seed the frontier with the start cell.
	r.gScore[r.start] = 0
	heap.Init(&r.pq)
	r.push(r.start, r.heuristic(r.start))

	for r.pq.Len() > 0 {
		// Iteration-cap check precedes the pop: the budget counts pops, and
		// a non-empty frontier at budget end is LimitReached, not exhaustion.
		if r.pops >= r.cfg.MaxIterations {
			return Result{Outcome: LimitReached, Expanded: r.pops}
		}
		item := heap.Pop(&r.pq).(*openItem)
		r.pops++

		cur := item.idx
		if r.closed[cur] {
			continue // stale duplicate from a later improvement
		}
		if cur == r.goal {
			return Result{
				Path:     r.reconstruct(),
				Cost:     r.gScore[cur],
				Outcome:  Found,
				Expanded: r.pops,
			}
		}
		r.closed[cur] = true

		r.relax(cur)
	}

	return Result{Outcome: NoPath, Expanded: r.pops}
}

// relax offers every legal move out of cur and records improvements.
func (r *runner) relax(cur int) {
	row, col := cur/r.width, cur%r.width
	for _, m := range r.moves {
		nr, nc := row+m.dr, col+m.dc
		if !r.g.InBounds(nr, nc) {
			continue
		}
		t, _ := r.g.Cell(nr, nc)
		if !t.Walkable() {
			continue
		}
		n := nr*r.width + nc
		if r.closed[n] {
			continue
		}

		// Biased step cost: geometric move plus the clearance penalty.
		penalty := r.cfg.SDFWeight / (r.field[n] + r.cfg.Epsilon)
		tentative := r.gScore[cur] + m.cost + penalty
		if tentative >= r.gScore[n] {
			continue
		}

		r.gScore[n] = tentative
		r.cameFrom[n] = int32(cur)
		r.push(n, tentative+r.heuristic(n))
	}
}

// push enqueues idx with priority f and the next insertion sequence number.
func (r *runner) push(idx int, f float64) {
	r.seq++
	heap.Push(&r.pq, &openItem{idx: idx, f: f, seq: r.seq})
}

// heuristic is the Euclidean distance from cell idx to the goal. It is
// admissible for the biased cost because the penalty term is non-negative.
func (r *runner) heuristic(idx int) float64 {
	dr := float64(idx/r.width - r.goalAt.Row)
	dc := float64(idx%r.width - r.goalAt.Col)

	return math.Sqrt(dr*dr + dc*dc)
}

// reconstruct walks predecessor links from the goal back to the start and
// reverses the result.
func (r *runner) reconstruct() []grid.Coord {
	var rev []int
	for at := r.goal; at >= 0; at = int(r.cameFrom[at]) {
		rev = append(rev, at)
	}
	path := make([]grid.Coord, len(rev))
	for i, idx := range rev {
		path[len(rev)-1-i] = grid.Coord{Row: idx / r.width, Col: idx % r.width}
	}

	return path
}

// openItem is one frontier entry: a cell index, its f-score, and the
// insertion sequence number that breaks f ties deterministically.
type openItem struct {
	idx int
	f   float64
	seq uint64
}

// openPQ is a binary min-heap of *openItem keyed (f, seq). Improvements are
// pushed as duplicates (lazy decrease-key); stale entries are discarded on
// pop via the closed set.
type openPQ []*openItem

// Len returns the number of items in the heap.
func (pq openPQ) Len() int { return len(pq) }

// Less orders by f-score, then by insertion sequence for equal scores.
func (pq openPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq openPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap; x must be of type *openItem.
func (pq *openPQ) Push(x interface{}) { *pq = append(*pq, x.(*openItem)) }

// Pop removes and returns the lowest-(f,seq) element.
func (pq *openPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
