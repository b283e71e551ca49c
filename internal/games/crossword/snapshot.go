package crossword

import (
	"strings"

	"github.com/vovakirdan/tui-xword/internal/games/crossword/core"
)

// Snapshot is a plain-text view of a session for tests and debugging.
type Snapshot struct {
	Rows      []string // '#' block, '.' empty, letter otherwise
	Cursor    core.Coord
	Direction core.Direction
	Clue      string // active clue label, "" for unclued words
}

// Snapshot captures the grid content and selection.
func (g *Game) Snapshot() Snapshot {
	if g.nav == nil {
		return Snapshot{}
	}
	s := Snapshot{
		Cursor:    g.nav.Cursor(),
		Direction: g.nav.Direction(),
	}
	if cl := g.nav.ActiveClue(); cl != nil {
		s.Clue = cl.Label()
	}
	for y := 0; y < g.grid.H; y++ {
		var sb strings.Builder
		for x := 0; x < g.grid.W; x++ {
			cell := g.grid.Cell(core.C(x, y))
			switch {
			case !cell.Playable:
				sb.WriteByte('#')
			case cell.Empty():
				sb.WriteByte('.')
			default:
				sb.WriteRune(cell.Content)
			}
		}
		s.Rows = append(s.Rows, sb.String())
	}
	return s
}

// String joins the rows with newlines.
func (s Snapshot) String() string {
	return strings.Join(s.Rows, "\n")
}
