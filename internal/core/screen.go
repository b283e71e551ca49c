package core

import (
	"strings"
)

// Cell is a single styled character on the screen.
type Cell struct {
	Rune  rune
	Style Style
}

// blank is the cleared cell value.
var blank = Cell{Rune: ' ', Style: StyleDefault}

// Screen is a 2D character buffer for rendering game graphics.
// It decouples game rendering from the terminal, allowing games to draw
// using simple rune operations while the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	// Copy old content
	copyW := Min(oldW, width)
	copyH := Min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen with unstyled spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blank
		}
	}
}

// Fill fills the entire screen with the given rune.
func (s *Screen) Fill(r rune) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: r}
		}
	}
}

// inBounds reports whether (x, y) lies on the screen.
func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Set places an unstyled rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetStyled(x, y, r, StyleDefault)
}

// SetStyled places a rune with the given style.
func (s *Screen) SetStyled(x, y int, r rune, st Style) {
	if !s.inBounds(x, y) {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Style: st}
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the full cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return blank
	}
	return s.cells[y][x]
}

// Paint changes the style of every cell in r without touching the runes.
func (s *Screen) Paint(r Rect, st Style) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if s.inBounds(x, y) {
				s.cells[y][x].Style = st
			}
		}
	}
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawStyledText(x, y, text, StyleDefault)
}

// DrawStyledText writes a styled string horizontally starting at (x, y).
func (s *Screen) DrawStyledText(x, y int, text string, st Style) {
	i := 0
	for _, r := range text {
		s.SetStyled(x+i, y, r, st)
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawStyledTextCentered(y, text, StyleDefault)
}

// DrawStyledTextCentered draws styled text centered horizontally.
func (s *Screen) DrawStyledTextCentered(y int, text string, st Style) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawStyledText(x, y, text, st)
}

// DrawRect fills a rectangular area with the given rune.
func (s *Screen) DrawRect(r Rect, fill rune) {
	s.DrawStyledRect(r, fill, StyleDefault)
}

// DrawStyledRect fills a rectangular area with a styled rune.
func (s *Screen) DrawStyledRect(r Rect, fill rune, st Style) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetStyled(x, y, fill, st)
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect) {
	s.DrawStyledBox(r, StyleDefault)
}

// DrawStyledBox draws a styled box outline.
func (s *Screen) DrawStyledBox(r Rect, st Style) {
	// Corners
	s.SetStyled(r.X, r.Y, '┌', st)
	s.SetStyled(r.Right()-1, r.Y, '┐', st)
	s.SetStyled(r.X, r.Bottom()-1, '└', st)
	s.SetStyled(r.Right()-1, r.Bottom()-1, '┘', st)

	// Horizontal edges
	for x := r.X + 1; x < r.Right()-1; x++ {
		s.SetStyled(x, r.Y, '─', st)
		s.SetStyled(x, r.Bottom()-1, '─', st)
	}

	// Vertical edges
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.SetStyled(r.X, y, '│', st)
		s.SetStyled(r.Right()-1, y, '│', st)
	}
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (s *Screen) DrawHLine(x, y, length int, r rune) {
	for i := 0; i < length; i++ {
		s.Set(x+i, y, r)
	}
}

// DrawVLine draws a vertical line from (x, y) with the given length.
func (s *Screen) DrawVLine(x, y, length int, r rune) {
	for i := 0; i < length; i++ {
		s.Set(x, y+i, r)
	}
}

// String converts the screen buffer to an unstyled string.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height) // Pre-allocate for efficiency

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns a copy of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
