package core

// Selection is the active word and the cursor inside it.
// It owns every per-word transition: highlight, fill, clear, solve,
// advance and retreat.
type Selection struct {
	grid   *Grid
	clue   *Clue // nil for words without a label
	origin Coord
	dir    Direction
	cells  []Coord
	offset int

	// cursorUsed is false until a letter is written or erased at the cursor.
	cursorUsed bool

	// wrapped is set when the last EnterLetter carried the cursor from the
	// final cell back to the origin.
	wrapped bool
}

// NewSelection scans the word starting at origin along dir and highlights it.
// The cursor starts at cursor when it lies on the word, otherwise at origin.
func NewSelection(g *Grid, clue *Clue, origin, cursor Coord, dir Direction) *Selection {
	s := &Selection{
		grid:   g,
		clue:   clue,
		origin: origin,
		dir:    dir,
		cells:  g.Run(origin, dir),
	}
	for i, c := range s.cells {
		if c == cursor {
			s.offset = i
			break
		}
	}

	if s.clue != nil {
		s.clue.Flags |= ClueSelected
	}
	for _, c := range s.cells {
		g.setFlag(c, CellSecondary)
	}
	g.setFlag(s.Cursor(), CellPrimary)
	return s
}

// Cursor returns the focused coordinate.
func (s *Selection) Cursor() Coord {
	dx, dy := s.dir.Delta()
	return s.origin.Add(dx*s.offset, dy*s.offset)
}

// Offset returns the cursor's distance from the origin along the word.
func (s *Selection) Offset() int { return s.offset }

// Origin returns the first cell of the word.
func (s *Selection) Origin() Coord { return s.origin }

// Direction returns the word's direction.
func (s *Selection) Direction() Direction { return s.dir }

// Clue returns the word's clue, or nil.
func (s *Selection) Clue() *Clue { return s.clue }

// Len returns the number of cells in the word.
func (s *Selection) Len() int { return len(s.cells) }

// CursorUsed reports whether a letter was written or erased at the cursor.
func (s *Selection) CursorUsed() bool { return s.cursorUsed }

// Cells returns a copy of the word's coordinates in order.
func (s *Selection) Cells() []Coord {
	out := make([]Coord, len(s.cells))
	copy(out, s.cells)
	return out
}

// Contains reports whether c is part of the word.
func (s *Selection) Contains(c Coord) bool {
	for _, wc := range s.cells {
		if wc == c {
			return true
		}
	}
	return false
}

// Remove clears every marker this selection placed. Content is untouched.
func (s *Selection) Remove() {
	if s.clue != nil {
		s.clue.Flags &^= ClueSelected
	}
	s.grid.clearFlag(s.Cursor(), CellPrimary)
	for _, c := range s.cells {
		s.grid.clearFlag(c, CellSecondary)
	}
}

// Clear empties every cell of the word.
func (s *Selection) Clear() {
	for _, c := range s.cells {
		s.grid.setContent(c, 0)
	}
	s.refresh()
}

// EnterLetter writes ch at the cursor and advances, wrapping to the origin
// after the last cell.
func (s *Selection) EnterLetter(ch rune) {
	if len(s.cells) == 0 {
		return
	}
	s.cursorUsed = true
	s.grid.setContent(s.Cursor(), ch)
	s.refresh()

	next := (s.offset + 1) % len(s.cells)
	s.wrapped = next == 0
	s.moveTo(next)
}

// Backspace erases at the cursor, first stepping back one cell when the
// cursor was already used. The cursor never wraps backward except to undo
// the forward wrap of the letter typed immediately before; any other step
// before the origin leaves the word unchanged.
func (s *Selection) Backspace() {
	if len(s.cells) == 0 {
		return
	}
	if s.cursorUsed {
		prev := s.offset - 1
		if prev < 0 {
			if !s.wrapped {
				return
			}
			prev = len(s.cells) - 1
		}
		s.moveTo(prev)
	}
	s.wrapped = false
	s.grid.setContent(s.Cursor(), 0)
	s.cursorUsed = true
	s.refresh()
}

// Solve copies the solution letters into every cell of the word.
func (s *Selection) Solve(sol Solution) {
	for _, c := range s.cells {
		s.grid.setContent(c, sol.At(c))
	}
	s.refresh()
}

// moveTo shifts the primary marker to offset i.
func (s *Selection) moveTo(i int) {
	s.grid.clearFlag(s.Cursor(), CellPrimary)
	s.offset = i
	s.grid.setFlag(s.Cursor(), CellPrimary)
}

// refresh re-derives Done for this word and every word crossing it.
func (s *Selection) refresh() {
	s.grid.refreshDone(s.clue)
	for _, c := range s.cells {
		s.grid.refreshCrossing(c)
	}
}
