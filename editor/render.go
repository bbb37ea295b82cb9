package editor

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/ahlab/gridroute/grid"
)

// Each grid cell renders two terminal columns wide so cells look roughly
// square in a typical font.
const cellWidth = 2

// draw repaints the whole screen: the clipped grid viewport plus the
// status line at the bottom.
func (e *Editor) draw() {
	e.screen.Clear()
	sw, sh := e.screen.Size()
	viewH := sh - 1 // status line takes the last row
	viewW := sw / cellWidth

	e.viewRow = clampView(e.cursor.Row, e.viewRow, viewH, e.g.Height())
	e.viewCol = clampView(e.cursor.Col, e.viewCol, viewW, e.g.Width())

	var field []float64
	var maxDist float64
	if e.showHeat {
		field = e.eng.Field().Values()
		maxDist = maxFinite(field)
	}

	for sr := 0; sr < viewH; sr++ {
		gr := e.viewRow + sr
		if gr >= e.g.Height() {
			break
		}
		for sc := 0; sc < viewW; sc++ {
			gc := e.viewCol + sc
			if gc >= e.g.Width() {
				break
			}
			e.drawCell(sr, sc, gr, gc, field, maxDist)
		}
	}

	e.drawStatus(sw, sh-1)
	e.screen.Show()
}

// drawCell paints one grid cell at screen cell (sr,sc).
func (e *Editor) drawCell(sr, sc, gr, gc int, field []float64, maxDist float64) {
	at := grid.Coord{Row: gr, Col: gc}
	t, _ := e.g.CellAt(at)
	ch, style := glyph(t)

	if field != nil && t != grid.Obstacle {
		style = tcell.StyleDefault.Background(heatColor(field[gr*e.g.Width()+gc], maxDist))
		ch = ' '
	}
	if e.pathCells[at] {
		ch = '·'
		style = style.Foreground(tcell.ColorBlue).Bold(true)
	}
	if r, ok := e.markerRune(at); ok {
		ch = r
		style = style.Bold(true)
	}
	if at == e.cursor {
		style = style.Reverse(true)
	}

	x := sc * cellWidth
	e.screen.SetContent(x, sr, ch, nil, style)
	e.screen.SetContent(x+1, sr, ' ', nil, style)
}

// markerRune returns S or E when a marker sits at the given cell.
func (e *Editor) markerRune(at grid.Coord) (rune, bool) {
	for _, m := range e.g.Starts() {
		if m.At == at {
			return 'S', true
		}
	}
	for _, m := range e.g.Ends() {
		if m.At == at {
			return 'E', true
		}
	}

	return 0, false
}

func (e *Editor) drawStatus(width, row int) {
	style := tcell.StyleDefault.Reverse(true)
	for x := 0; x < width; x++ {
		e.screen.SetContent(x, row, ' ', nil, style)
	}
	for i, r := range e.status {
		if i >= width {
			break
		}
		e.screen.SetContent(i, row, r, nil, style)
	}
}

// glyph maps a cell classification to its rune and base style.
func glyph(t grid.CellType) (rune, tcell.Style) {
	switch t {
	case grid.Obstacle:
		return '█', tcell.StyleDefault.Foreground(tcell.ColorGray)
	case grid.Surface:
		return '▒', tcell.StyleDefault.Foreground(tcell.ColorYellow)
	default:
		return '.', tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	}
}

// clampView slides a 1D viewport origin so the cursor stays visible and
// the window never runs past the grid edge.
func clampView(cursor, view, span, size int) int {
	if span <= 0 {
		return 0
	}
	if cursor < view {
		view = cursor
	}
	if cursor >= view+span {
		view = cursor - span + 1
	}
	if view > size-span {
		view = size - span
	}
	if view < 0 {
		view = 0
	}

	return view
}

// heatColor maps a distance to a blue-to-red ramp: hot (red) next to
// obstacles, cool (blue) far away. Infinite distances (obstacle-free grid)
// render as the coolest shade.
func heatColor(dist, maxDist float64) tcell.Color {
	if maxDist <= 0 || math.IsInf(dist, 1) {
		return tcell.NewRGBColor(0, 0, 180)
	}
	frac := dist / maxDist
	if frac > 1 {
		frac = 1
	}
	r := int32(220 * (1 - frac))
	b := int32(220 * frac)

	return tcell.NewRGBColor(r, 40, b)
}

// maxFinite returns the largest finite value in vals, or 0 if none.
func maxFinite(vals []float64) float64 {
	var m float64
	for _, v := range vals {
		if !math.IsInf(v, 1) && v > m {
			m = v
		}
	}

	return m
}
