package crossword

import (
	platformcore "github.com/vovakirdan/tui-xword/internal/core"
	"github.com/vovakirdan/tui-xword/internal/games/crossword/core"
)

const (
	hudHeight    = 4 // title bar, rule, active clue, rule
	footerHeight = 1
	minPaneW     = 22
	minPaneH     = 4
)

// cellSize is one grid rendering scale.
type cellSize struct {
	w, h    int
	numbers bool
}

// Large cells show clue numbers; compact cells fit bigger grids.
var cellSizes = []cellSize{
	{w: 4, h: 2, numbers: true},
	{w: 2, h: 1, numbers: false},
}

// clueHit maps a rendered clue list row to its clue.
type clueHit struct {
	rect platformcore.Rect
	clue *core.Clue
}

// layout places the grid and clue panes on screen.
type layout struct {
	tooSmall bool
	cell     cellSize
	gridW    int
	gridH    int
	grid     platformcore.Rect

	// panes holds one rectangle per direction; empty when they do not fit.
	panes [2]platformcore.Rect

	// clueHits is rebuilt on every render.
	clueHits []clueHit
}

// computeLayout picks the largest cell size that fits and places the clue
// panes to the right of the grid, below it, or nowhere.
func computeLayout(screenW, screenH, gridW, gridH int) layout {
	l := layout{gridW: gridW, gridH: gridH, tooSmall: true}

	availW := screenW - 2
	availH := screenH - hudHeight - footerHeight
	for _, size := range cellSizes {
		if gridW*size.w <= availW && gridH*size.h <= availH {
			l.cell = size
			l.tooSmall = false
			break
		}
	}
	if l.tooSmall {
		return l
	}

	w, h := gridW*l.cell.w, gridH*l.cell.h
	top := hudHeight

	switch {
	case screenW-(w+3)-1 >= minPaneW:
		l.grid = platformcore.NewRect(1, top, w, h)
		x := l.grid.Right() + 2
		paneW := screenW - x - 1
		acrossH := availH / 2
		l.panes[core.Across] = platformcore.NewRect(x, top, paneW, acrossH)
		l.panes[core.Down] = platformcore.NewRect(x, top+acrossH, paneW, availH-acrossH)

	case availH-h-1 >= minPaneH:
		l.grid = platformcore.NewRect((screenW-w)/2, top, w, h)
		y := l.grid.Bottom() + 1
		paneH := availH - h - 1
		half := (screenW - 2) / 2
		l.panes[core.Across] = platformcore.NewRect(1, y, half-1, paneH)
		l.panes[core.Down] = platformcore.NewRect(1+half, y, screenW-2-half, paneH)

	default:
		l.grid = platformcore.NewRect((screenW-w)/2, top, w, h)
	}
	return l
}

// minSize returns the smallest screen that fits a grid in compact cells.
func minSize(gridW, gridH int) (int, int) {
	small := cellSizes[len(cellSizes)-1]
	return gridW*small.w + 2, gridH*small.h + hudHeight + footerHeight
}

// cellOrigin returns the top-left screen position of grid cell c.
func (l *layout) cellOrigin(c core.Coord) (int, int) {
	return l.grid.X + c.X*l.cell.w, l.grid.Y + c.Y*l.cell.h
}

// cellAt maps a screen position to a grid cell.
func (l *layout) cellAt(x, y int) (core.Coord, bool) {
	if l.tooSmall || !l.grid.Contains(x, y) {
		return core.Coord{}, false
	}
	return core.C((x-l.grid.X)/l.cell.w, (y-l.grid.Y)/l.cell.h), true
}

// clueAt maps a screen position to a rendered clue entry.
func (l *layout) clueAt(x, y int) *core.Clue {
	for _, h := range l.clueHits {
		if h.rect.Contains(x, y) {
			return h.clue
		}
	}
	return nil
}
