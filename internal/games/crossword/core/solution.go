package core

// Solution looks up the correct letter for a coordinate.
type Solution interface {
	At(c Coord) rune
}

// LetterGrid is a Solution backed by a row-major rune slice.
type LetterGrid struct {
	W       int
	H       int
	Letters []rune
}

// NewLetterGrid builds a LetterGrid from equal-width rows.
// Runes outside A-Z are stored as 0.
func NewLetterGrid(rows []string) LetterGrid {
	lg := LetterGrid{H: len(rows)}
	for _, row := range rows {
		if n := len([]rune(row)); n > lg.W {
			lg.W = n
		}
	}
	lg.Letters = make([]rune, lg.W*lg.H)
	for y, row := range rows {
		for x, r := range []rune(row) {
			if r >= 'A' && r <= 'Z' {
				lg.Letters[y*lg.W+x] = r
			}
		}
	}
	return lg
}

// At returns the solution letter at c, or 0 outside the grid.
func (lg LetterGrid) At(c Coord) rune {
	if c.X < 0 || c.X >= lg.W || c.Y < 0 || c.Y >= lg.H {
		return 0
	}
	return lg.Letters[c.Y*lg.W+c.X]
}
