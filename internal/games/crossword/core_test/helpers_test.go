package core_test

import (
	"fmt"
	"testing"

	"github.com/vovakirdan/tui-xword/internal/games/crossword/core"
)

// build parses rows where '#' is a block and letters are solution cells,
// then labels every numbered word the way puzzle files do.
func build(t *testing.T, rows ...string) (*core.Grid, core.LetterGrid) {
	t.Helper()

	sol := core.NewLetterGrid(rows)
	var open []core.Coord
	for y := 0; y < sol.H; y++ {
		for x := 0; x < sol.W; x++ {
			if sol.At(core.C(x, y)) != 0 {
				open = append(open, core.C(x, y))
			}
		}
	}
	g := core.NewGrid(sol.W, sol.H, open)

	for c, num := range g.Numbering() {
		for _, d := range core.Directions {
			if g.IsOrigin(c, d) && g.Playable(c.Step(d)) {
				if _, err := g.AddClue(c, d, num, fmt.Sprintf("clue %d %s", num, d)); err != nil {
					t.Fatalf("AddClue(%v, %s): %v", c, d, err)
				}
			}
		}
	}
	return g, sol
}

// word returns the letters currently in cells, '.' for empty.
func word(g *core.Grid, cells []core.Coord) string {
	out := make([]rune, len(cells))
	for i, c := range cells {
		r := g.Content(c)
		if r == 0 {
			r = '.'
		}
		out[i] = r
	}
	return string(out)
}

// checkMarkers asserts that the grid's presentation flags match the
// navigator's selection exactly.
func checkMarkers(t *testing.T, n *core.Navigator) {
	t.Helper()

	g := n.Grid()
	sel := n.Selection()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := core.C(x, y)
			cell := g.Cell(c)
			if want := c == sel.Cursor(); cell.Has(core.CellPrimary) != want {
				t.Errorf("primary at %v = %v, expected %v", c, !want, want)
			}
			if want := sel.Contains(c); cell.Has(core.CellSecondary) != want {
				t.Errorf("secondary at %v = %v, expected %v", c, !want, want)
			}
		}
	}

	selected := 0
	for _, d := range core.Directions {
		for _, cl := range g.Clues(d) {
			if cl.Has(core.ClueSelected) {
				selected++
				if cl != sel.Clue() {
					t.Errorf("clue %s selected but not active", cl.Label())
				}
			}
		}
	}
	if sel.Clue() != nil && selected != 1 {
		t.Errorf("expected exactly one selected clue, got %d", selected)
	}
	if sel.Clue() == nil && selected != 0 {
		t.Errorf("clue-less selection but %d clues selected", selected)
	}
}
