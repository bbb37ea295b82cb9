package editor

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/ahlab/gridroute/astar"
	"github.com/ahlab/gridroute/grid"
	"github.com/ahlab/gridroute/gridio"
)

// Editor drives one grid through a tcell screen.
type Editor struct {
	screen   tcell.Screen
	g        *grid.Grid
	eng      *astar.Engine
	opts     astar.Options
	savePath string // archive target for 'w'; empty disables saving

	cursor           grid.Coord
	viewRow, viewCol int // grid coordinate at the viewport's top-left
	showHeat         bool
	status           string

	results   map[astar.Pair]astar.Result
	pathCells map[grid.Coord]bool // overlay derived from results
}

// New builds an editor around g. savePath may be empty to disable the save
// binding. The terminal screen is created lazily by Run.
func New(g *grid.Grid, opts astar.Options, savePath string) (*Editor, error) {
	eng, err := astar.NewEngine(g)
	if err != nil {
		return nil, err
	}

	return &Editor{
		g:        g,
		eng:      eng,
		opts:     opts,
		savePath: savePath,
		status:   "o obstacle · s/e markers · r route · d heatmap · q quit",
	}, nil
}

// Run initializes the terminal, enters the event loop, and restores the
// terminal on exit. It blocks until the user quits.
func (e *Editor) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("editor: create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("editor: init screen: %w", err)
	}
	e.screen = screen
	defer screen.Fini()

	for {
		e.draw()
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if !e.handleKey(ev) {
				return nil
			}
		}
	}
}

// handleKey applies one key event; returns false to quit.
func (e *Editor) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		e.moveCursor(-1, 0)
	case tcell.KeyDown:
		e.moveCursor(1, 0)
	case tcell.KeyLeft:
		e.moveCursor(0, -1)
	case tcell.KeyRight:
		e.moveCursor(0, 1)
	case tcell.KeyRune:
		return e.handleRune(ev.Rune())
	}

	return true
}

func (e *Editor) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case 'k':
		e.moveCursor(-1, 0)
	case 'j':
		e.moveCursor(1, 0)
	case 'h':
		e.moveCursor(0, -1)
	case 'l':
		e.moveCursor(0, 1)
	case 'o':
		e.toggleObstacle()
	case 'x':
		e.paint(grid.Surface)
	case 'f':
		e.paint(grid.Free)
	case 's':
		e.addMarker(true)
	case 'e':
		e.addMarker(false)
	case 'D':
		e.removeMarkerAtCursor()
	case 'r':
		e.route()
	case 'd':
		e.showHeat = !e.showHeat
	case 'c':
		e.clearPaths()
	case 'w':
		e.save()
	}

	return true
}

func (e *Editor) moveCursor(dr, dc int) {
	r, c := e.cursor.Row+dr, e.cursor.Col+dc
	if e.g.InBounds(r, c) {
		e.cursor = grid.Coord{Row: r, Col: c}
	}
}

func (e *Editor) toggleObstacle() {
	t, err := e.g.CellAt(e.cursor)
	if err != nil {
		return
	}
	next := grid.Obstacle
	if t == grid.Obstacle {
		next = grid.Free
	}
	e.paint(next)
}

// paint edits the cursor cell; any edit makes the routed overlay stale.
func (e *Editor) paint(t grid.CellType) {
	if err := e.g.Set(e.cursor.Row, e.cursor.Col, t); err != nil {
		e.status = err.Error()

		return
	}
	e.clearPaths()
	e.status = fmt.Sprintf("(%d,%d) ← %s", e.cursor.Row, e.cursor.Col, t)
}

func (e *Editor) addMarker(start bool) {
	var (
		id  int
		err error
	)
	if start {
		id, err = e.g.AddStart(e.cursor.Row, e.cursor.Col)
	} else {
		id, err = e.g.AddEnd(e.cursor.Row, e.cursor.Col)
	}
	if err != nil {
		e.status = err.Error()

		return
	}
	kind := "end"
	if start {
		kind = "start"
	}
	e.clearPaths()
	e.status = fmt.Sprintf("%s #%d at (%d,%d)", kind, id, e.cursor.Row, e.cursor.Col)
}

func (e *Editor) removeMarkerAtCursor() {
	for _, m := range e.g.Starts() {
		if m.At == e.cursor {
			e.g.RemoveStart(m.ID)
			e.clearPaths()
			e.status = fmt.Sprintf("removed start #%d", m.ID)

			return
		}
	}
	for _, m := range e.g.Ends() {
		if m.At == e.cursor {
			e.g.RemoveEnd(m.ID)
			e.clearPaths()
			e.status = fmt.Sprintf("removed end #%d", m.ID)

			return
		}
	}
	e.status = "no marker here"
}

// route runs the full batch across current markers and rebuilds the overlay.
func (e *Editor) route() {
	starts := e.g.Starts()
	ends := e.g.Ends()
	if len(starts) == 0 || len(ends) == 0 {
		e.status = "need at least one start and one end marker"

		return
	}
	startAt := make([]grid.Coord, len(starts))
	for i, m := range starts {
		startAt[i] = m.At
	}
	endAt := make([]grid.Coord, len(ends))
	for i, m := range ends {
		endAt[i] = m.At
	}

	e.results = e.eng.Batch(startAt, endAt, e.optionSetters()...)
	e.pathCells = make(map[grid.Coord]bool)
	found := 0
	for _, res := range e.results {
		if res.Outcome != astar.Found {
			continue
		}
		found++
		for _, at := range res.Path {
			e.pathCells[at] = true
		}
	}
	e.status = fmt.Sprintf("routed %d/%d pairs", found, len(e.results))
}

// optionSetters converts the editor's Options value back into functional
// options for the engine.
func (e *Editor) optionSetters() []astar.Option {
	opts := []astar.Option{
		astar.WithSDFWeight(e.opts.SDFWeight),
		astar.WithEpsilon(e.opts.Epsilon),
		astar.WithMaxIterations(e.opts.MaxIterations),
	}
	if e.opts.AllowDiagonal {
		opts = append(opts, astar.WithDiagonal())
	}

	return opts
}

func (e *Editor) clearPaths() {
	e.results = nil
	e.pathCells = nil
}

// save writes the grid and any routed paths, keyed by marker IDs, to the
// configured archive path.
func (e *Editor) save() {
	if e.savePath == "" {
		e.status = "no save path configured"

		return
	}
	paths := make(map[gridio.PathKey][]grid.Coord)
	for _, s := range e.g.Starts() {
		for _, d := range e.g.Ends() {
			res, ok := e.results[astar.Pair{Start: s.At, Goal: d.At}]
			if !ok || res.Outcome != astar.Found {
				continue
			}
			paths[gridio.PathKey{StartID: s.ID, EndID: d.ID}] = res.Path
		}
	}
	if err := gridio.SaveFile(e.savePath, e.g, paths); err != nil {
		e.status = err.Error()

		return
	}
	e.status = fmt.Sprintf("saved %s (%d paths)", e.savePath, len(paths))
}
