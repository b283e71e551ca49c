package core_test

import (
	"testing"

	"github.com/vovakirdan/tui-xword/internal/games/crossword/core"
)

func TestNavigatorInitialSelection(t *testing.T) {
	tests := []struct {
		name   string
		rows   []string
		dir    core.Direction
		cursor core.Coord
		clue   bool
	}{
		{"first across", sample, core.Across, core.C(0, 0), true},
		{"down only", []string{"#A", "#B"}, core.Down, core.C(1, 0), true},
		{"no clues", []string{"#A#", "###"}, core.Across, core.C(1, 0), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, sol := build(t, tc.rows...)
			n := core.NewNavigator(g, sol)

			if n.Selection() == nil {
				t.Fatal("expected an initial selection")
			}
			if n.Direction() != tc.dir || n.Cursor() != tc.cursor {
				t.Errorf("initial = %s at %v, expected %s at %v", n.Direction(), n.Cursor(), tc.dir, tc.cursor)
			}
			if (n.ActiveClue() != nil) != tc.clue {
				t.Errorf("active clue = %v, expected present=%v", n.ActiveClue(), tc.clue)
			}
			checkMarkers(t, n)
		})
	}
}

func TestNavigatorEmptyGrid(t *testing.T) {
	g := core.NewGrid(3, 3, nil)
	n := core.NewNavigator(g, core.NewLetterGrid(nil))

	if n.Selection() != nil {
		t.Fatal("grid without playable cells should have no selection")
	}
	// Entry points must tolerate the missing selection.
	n.SelectNext()
	n.SelectPrevious()
	n.EnterLetter('A')
	n.Backspace()
	n.Clear()
	n.Solve()
	n.SelectCell(core.C(1, 1))
	if n.SwapDirection() || n.MoveCursor(1, 0) {
		t.Error("swap and move should report no change")
	}
}

func TestNavigatorCrossingSwap(t *testing.T) {
	g, sol := build(t,
		"#C#",
		"CAT",
		"#T#",
	)
	n := core.NewNavigator(g, sol)

	if n.Direction() != core.Across || n.ActiveClue().Origin != core.C(0, 1) {
		t.Fatalf("initial clue = %+v", n.ActiveClue())
	}
	n.SelectCell(core.C(1, 1))
	if !n.SwapDirection() {
		t.Fatal("swap at the crossing should succeed")
	}

	sel := n.Selection()
	if sel.Direction() != core.Down {
		t.Errorf("direction = %s, expected down", sel.Direction())
	}
	if !sel.Contains(core.C(1, 1)) || n.Cursor() != core.C(1, 1) {
		t.Errorf("down word %v should contain the cursor (1,1), cursor %v", sel.Cells(), n.Cursor())
	}
	if sel.Clue() == nil || sel.Clue().Origin != core.C(1, 0) {
		t.Errorf("down clue = %+v, expected origin (1,0)", sel.Clue())
	}
	checkMarkers(t, n)
}

func TestNavigatorSwapProperty(t *testing.T) {
	g, sol := build(t, sample...)
	n := core.NewNavigator(g, sol)

	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			anchor := core.C(x, y)
			if !g.Playable(anchor) {
				continue
			}
			for _, d := range core.Directions {
				n.SelectClue(g.Clues(d)[0])
				if anchor == n.Cursor() {
					n.SelectNext()
				}
				n.SelectCell(anchor)
				before := n.Selection()

				if !n.SwapDirection() {
					if n.Selection() != before {
						t.Errorf("failed swap at %v replaced the selection", anchor)
					}
					continue
				}
				after := n.Selection()
				if after.Direction() == before.Direction() {
					t.Errorf("swap at %v kept direction %s", anchor, after.Direction())
				}
				if !after.Contains(anchor) {
					t.Errorf("swap at %v landed on %v not containing the anchor", anchor, after.Cells())
				}
				if after.Clue() == nil {
					t.Errorf("swap at %v produced a clue-less word", anchor)
				}
				checkMarkers(t, n)
			}
		}
	}
}

func TestNavigatorSwapNoPerpendicular(t *testing.T) {
	g, sol := build(t, sample...)
	n := core.NewNavigator(g, sol)

	// (3,0) is in 1A only; no down word passes through it.
	n.SelectCell(core.C(3, 0))
	before := n.Selection()
	if n.SwapDirection() {
		t.Fatal("swap should fail without a perpendicular clue")
	}
	if n.Selection() != before || n.Direction() != core.Across {
		t.Error("failed swap must leave the selection untouched")
	}
	checkMarkers(t, n)
}

func TestNavigatorSelectCellOnCursorSwaps(t *testing.T) {
	g, sol := build(t, sample...)
	n := core.NewNavigator(g, sol)

	n.SelectCell(core.C(0, 0))
	if n.Direction() != core.Down || n.ActiveClue().Label() != "1D" {
		t.Errorf("click on cursor = %s %v, expected 1D", n.Direction(), n.ActiveClue())
	}

	n.SelectCell(core.C(0, 0))
	if n.Direction() != core.Across {
		t.Error("second click on the cursor should swap back")
	}
}

func TestNavigatorSelectCell(t *testing.T) {
	g, sol := build(t, sample...)
	n := core.NewNavigator(g, sol)

	n.SelectCell(core.C(3, 2))
	if n.ActiveClue().Label() != "4A" || n.Cursor() != core.C(3, 2) {
		t.Errorf("SelectCell(3,2) = %v cursor %v", n.ActiveClue(), n.Cursor())
	}
	if n.Selection().Offset() != 3 {
		t.Errorf("offset = %d, expected 3", n.Selection().Offset())
	}

	before := n.Selection()
	n.SelectCell(core.C(4, 0)) // block
	n.SelectCell(core.C(9, 9)) // outside
	if n.Selection() != before {
		t.Error("selecting a block or an outside cell should do nothing")
	}
}

func TestNavigatorMoveCursor(t *testing.T) {
	tests := []struct {
		name   string
		from   core.Coord
		dx, dy int
		moved  bool
		to     core.Coord
		clue   string
	}{
		{"right within word", core.C(1, 2), 1, 0, true, core.C(2, 2), "4A"},
		{"up skips block", core.C(3, 4), 0, -1, true, core.C(3, 2), "4A"},
		{"down skips block", core.C(1, 0), 0, 1, true, core.C(1, 2), "4A"},
		{"edge", core.C(4, 2), 1, 0, false, core.C(4, 2), "4A"},
		{"diagonal off the edge", core.C(2, 0), 1, -1, false, core.C(2, 0), "1A"},
		{"zero", core.C(2, 2), 0, 0, false, core.C(2, 2), "4A"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, sol := build(t, sample...)
			n := core.NewNavigator(g, sol)
			n.SelectCell(tc.from)

			if got := n.MoveCursor(tc.dx, tc.dy); got != tc.moved {
				t.Errorf("MoveCursor = %v, expected %v", got, tc.moved)
			}
			if n.Cursor() != tc.to {
				t.Errorf("cursor = %v, expected %v", n.Cursor(), tc.to)
			}
			if n.Direction() != core.Across {
				t.Errorf("direction = %s, MoveCursor must keep it", n.Direction())
			}
			if n.ActiveClue() != nil && n.ActiveClue().Label() != tc.clue {
				t.Errorf("clue = %s, expected %s", n.ActiveClue().Label(), tc.clue)
			}
			checkMarkers(t, n)
		})
	}
}

func TestNavigatorSelectNextCircular(t *testing.T) {
	g, sol := build(t, sample...)
	n := core.NewNavigator(g, sol)

	for _, d := range core.Directions {
		list := g.Clues(d)
		for _, start := range list {
			n.SelectClue(start)
			for i := 0; i < len(list); i++ {
				n.SelectNext()
			}
			if n.ActiveClue() != start {
				t.Errorf("%d x SelectNext from %s landed on %s", len(list), start.Label(), n.ActiveClue().Label())
			}
			for i := 0; i < len(list); i++ {
				n.SelectPrevious()
			}
			if n.ActiveClue() != start {
				t.Errorf("%d x SelectPrevious from %s landed on %s", len(list), start.Label(), n.ActiveClue().Label())
			}
		}
	}
}

func TestNavigatorSelectNextOrder(t *testing.T) {
	g, sol := build(t, sample...)
	n := core.NewNavigator(g, sol)

	want := []string{"4A", "5A", "1A"}
	for _, label := range want {
		n.SelectNext()
		if n.ActiveClue().Label() != label {
			t.Fatalf("SelectNext = %s, expected %s", n.ActiveClue().Label(), label)
		}
	}
	n.SelectPrevious()
	if n.ActiveClue().Label() != "5A" {
		t.Errorf("SelectPrevious from 1A = %s, expected 5A", n.ActiveClue().Label())
	}
}

func TestNavigatorTraversalFromClueless(t *testing.T) {
	between := []string{
		"AB#",
		"###",
		"#C#",
		"###",
		"DE#",
	}
	after := []string{"AB#D"}

	tests := []struct {
		name     string
		rows     []string
		isolated core.Coord
		next     string
		previous string
	}{
		{"isolated between clues", between, core.C(1, 2), "2A", "1A"},
		{"isolated after last clue", after, core.C(3, 0), "1A", "1A"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, sol := build(t, tc.rows...)

			n := core.NewNavigator(g, sol)
			n.SelectCell(tc.isolated)
			if n.ActiveClue() != nil {
				t.Fatalf("%v should have no clue, got %v", tc.isolated, n.ActiveClue())
			}
			n.SelectNext()
			if got := n.ActiveClue(); got == nil || got.Label() != tc.next {
				t.Errorf("SelectNext = %v, expected %s", got, tc.next)
			}

			g, sol = build(t, tc.rows...)
			n = core.NewNavigator(g, sol)
			n.SelectCell(tc.isolated)
			n.SelectPrevious()
			if got := n.ActiveClue(); got == nil || got.Label() != tc.previous {
				t.Errorf("SelectPrevious = %v, expected %s", got, tc.previous)
			}
		})
	}
}
