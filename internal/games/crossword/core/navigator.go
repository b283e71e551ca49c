package core

// Navigator owns the single live Selection and turns host events into
// selection replacement or mutation.
type Navigator struct {
	grid     *Grid
	solution Solution
	sel      *Selection
}

// NewNavigator builds a navigator and selects the first across clue,
// falling back to the first down clue and then to the first playable cell.
// A grid without playable cells leaves the navigator without a selection.
func NewNavigator(g *Grid, sol Solution) *Navigator {
	n := &Navigator{grid: g, solution: sol}
	switch {
	case len(g.Clues(Across)) > 0:
		n.SelectClue(g.Clues(Across)[0])
	case len(g.Clues(Down)) > 0:
		n.SelectClue(g.Clues(Down)[0])
	default:
		if c, ok := g.FirstPlayable(); ok {
			n.createSelection(c, Across)
		}
	}
	return n
}

// Grid returns the grid being solved.
func (n *Navigator) Grid() *Grid { return n.grid }

// Selection returns the active selection, or nil before initialisation.
func (n *Navigator) Selection() *Selection { return n.sel }

// Direction returns the active word's direction.
func (n *Navigator) Direction() Direction {
	if n.sel == nil {
		return Across
	}
	return n.sel.Direction()
}

// Cursor returns the focused coordinate.
func (n *Navigator) Cursor() Coord {
	if n.sel == nil {
		return Coord{}
	}
	return n.sel.Cursor()
}

// ActiveClue returns the active word's clue, or nil.
func (n *Navigator) ActiveClue() *Clue {
	if n.sel == nil {
		return nil
	}
	return n.sel.Clue()
}

// replace tears down the outgoing selection before building the incoming one.
func (n *Navigator) replace(clue *Clue, origin, cursor Coord, dir Direction) {
	if n.sel != nil {
		n.sel.Remove()
	}
	n.sel = NewSelection(n.grid, clue, origin, cursor, dir)
}

// createSelection resolves the word through c along dir and selects it
// with the cursor on c.
func (n *Navigator) createSelection(c Coord, dir Direction) {
	origin, clue := n.grid.WordOrigin(c, dir)
	n.replace(clue, origin, c, dir)
}

// SelectClue makes cl's word active with the cursor on its first cell.
func (n *Navigator) SelectClue(cl *Clue) {
	if cl == nil {
		return
	}
	n.replace(cl, cl.Origin, cl.Origin, cl.Direction)
}

// SelectCell moves the cursor to c in the current direction. Selecting the
// cursor cell itself toggles direction instead. Blocks are ignored.
func (n *Navigator) SelectCell(c Coord) {
	if n.sel == nil || !n.grid.Playable(c) {
		return
	}
	if c == n.sel.Cursor() {
		n.SwapDirection()
		return
	}
	n.createSelection(c, n.sel.Direction())
}

// SwapDirection switches to the perpendicular clue passing through the
// cursor. It reports false and changes nothing when no such clue exists.
func (n *Navigator) SwapDirection() bool {
	if n.sel == nil {
		return false
	}
	cursor := n.sel.Cursor()
	opp := n.sel.Direction().Opposite()
	origin, clue := n.grid.WordOrigin(cursor, opp)
	if clue == nil {
		return false
	}
	n.replace(clue, origin, cursor, opp)
	return true
}

// MoveCursor steps from the cursor by (dx, dy), skipping blocks, and
// selects the first playable cell in the current direction. It reports
// false when the grid edge is reached first.
func (n *Navigator) MoveCursor(dx, dy int) bool {
	if n.sel == nil || (dx == 0 && dy == 0) {
		return false
	}
	for c := n.sel.Cursor().Add(dx, dy); n.grid.InBounds(c); c = c.Add(dx, dy) {
		if n.grid.Playable(c) {
			n.createSelection(c, n.sel.Direction())
			return true
		}
	}
	return false
}

// SelectNext activates the following clue in the current direction, wrapping
// to the first. A word without a clue anchors on the first clue whose
// origin follows its own.
func (n *Navigator) SelectNext() {
	if n.sel == nil {
		return
	}
	if cl := n.sel.Clue(); cl != nil {
		n.SelectClue(n.grid.NextClue(cl))
		return
	}
	list := n.grid.Clues(n.sel.Direction())
	if len(list) == 0 {
		return
	}
	origin := n.sel.Origin()
	for _, cl := range list {
		if origin.Before(cl.Origin) {
			n.SelectClue(cl)
			return
		}
	}
	n.SelectClue(list[0])
}

// SelectPrevious activates the preceding clue in the current direction,
// wrapping to the last. A word without a clue anchors on the last clue
// whose origin precedes its own.
func (n *Navigator) SelectPrevious() {
	if n.sel == nil {
		return
	}
	if cl := n.sel.Clue(); cl != nil {
		n.SelectClue(n.grid.PrevClue(cl))
		return
	}
	list := n.grid.Clues(n.sel.Direction())
	if len(list) == 0 {
		return
	}
	origin := n.sel.Origin()
	for i := len(list) - 1; i >= 0; i-- {
		if list[i].Origin.Before(origin) {
			n.SelectClue(list[i])
			return
		}
	}
	n.SelectClue(list[len(list)-1])
}

// EnterLetter writes ch at the cursor and advances.
func (n *Navigator) EnterLetter(ch rune) {
	if n.sel != nil {
		n.sel.EnterLetter(ch)
	}
}

// Backspace erases at or before the cursor.
func (n *Navigator) Backspace() {
	if n.sel != nil {
		n.sel.Backspace()
	}
}

// Clear empties the active word.
func (n *Navigator) Clear() {
	if n.sel != nil {
		n.sel.Clear()
	}
}

// Solve reveals the active word.
func (n *Navigator) Solve() {
	if n.sel != nil {
		n.sel.Solve(n.solution)
	}
}

// Complete reports whether every playable cell holds a letter.
func (n *Navigator) Complete() bool {
	return n.grid.FilledCount() == n.grid.PlayableCount()
}

// Correct reports whether every playable cell matches the solution.
func (n *Navigator) Correct() bool {
	for i, cell := range n.grid.Cells {
		if !cell.Playable {
			continue
		}
		if cell.Content != n.solution.At(C(i%n.grid.W, i/n.grid.W)) {
			return false
		}
	}
	return true
}
