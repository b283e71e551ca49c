package core

import (
	"errors"
	"fmt"
	"sort"
)

// Cell is a single square of the puzzle.
// Playable is fixed when the grid is built; Content and Flags change while solving.
type Cell struct {
	Playable bool
	Content  rune // 0 when empty
	Flags    CellFlag
}

// Empty reports whether the cell holds no letter.
func (c Cell) Empty() bool {
	return c.Content == 0
}

// Has reports whether flag f is set.
func (c Cell) Has(f CellFlag) bool {
	return c.Flags&f != 0
}

// Clue is a numbered entry in one direction's clue list.
// Its word is not stored; it is the playable run starting at Origin.
type Clue struct {
	Origin    Coord
	Direction Direction
	Number    int
	Text      string
	Index     int // position in the direction's ordered list
	Flags     ClueFlag
}

// Label returns the short display label, e.g. "12A".
func (cl *Clue) Label() string {
	suffix := "A"
	if cl.Direction == Down {
		suffix = "D"
	}
	return fmt.Sprintf("%d%s", cl.Number, suffix)
}

// Has reports whether flag f is set.
func (cl *Clue) Has(f ClueFlag) bool {
	return cl.Flags&f != 0
}

// Grid errors.
var (
	ErrNotPlayable = errors.New("clue origin is not a playable cell")
	ErrNotOrigin   = errors.New("clue origin has a playable predecessor")
	ErrDuplicate   = errors.New("clue already anchored at origin")
)

type labelKey struct {
	at  Coord
	dir Direction
}

// Grid holds cell topology, letter content, presentation flags and clue labels.
// Cells are stored in row-major order: index = y*W + x.
type Grid struct {
	W     int
	H     int
	Cells []Cell

	clues  [2][]*Clue
	labels map[labelKey]*Clue
}

// NewGrid creates a w×h grid where the cells listed in playable are open
// and every other cell is a block.
func NewGrid(w, h int, playable []Coord) *Grid {
	g := &Grid{
		W:      w,
		H:      h,
		Cells:  make([]Cell, w*h),
		labels: make(map[labelKey]*Clue),
	}
	for _, c := range playable {
		if g.InBounds(c) {
			g.Cells[g.index(c)].Playable = true
		}
	}
	return g
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Y*g.W + c.X
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Playable reports whether c is an in-bounds letter cell.
func (g *Grid) Playable(c Coord) bool {
	return g.InBounds(c) && g.Cells[g.index(c)].Playable
}

// Cell returns the cell at c. Out-of-bounds coordinates yield a block.
func (g *Grid) Cell(c Coord) Cell {
	if !g.InBounds(c) {
		return Cell{}
	}
	return g.Cells[g.index(c)]
}

// Content returns the letter at c, or 0.
func (g *Grid) Content(c Coord) rune {
	return g.Cell(c).Content
}

// setContent writes a letter into a playable cell.
func (g *Grid) setContent(c Coord, r rune) {
	if g.Playable(c) {
		g.Cells[g.index(c)].Content = r
	}
}

func (g *Grid) setFlag(c Coord, f CellFlag) {
	if g.InBounds(c) {
		g.Cells[g.index(c)].Flags |= f
	}
}

func (g *Grid) clearFlag(c Coord, f CellFlag) {
	if g.InBounds(c) {
		g.Cells[g.index(c)].Flags &^= f
	}
}

// IsOrigin reports whether a word in direction d may start at c:
// c is playable and no playable cell precedes it along d.
func (g *Grid) IsOrigin(c Coord, d Direction) bool {
	return g.Playable(c) && !g.Playable(c.Back(d))
}

// AddClue anchors a clue label at origin for direction d.
// Clue lists stay sorted by origin in row-major order.
func (g *Grid) AddClue(origin Coord, d Direction, number int, text string) (*Clue, error) {
	if !g.Playable(origin) {
		return nil, fmt.Errorf("%s %d at %s: %w", d, number, origin, ErrNotPlayable)
	}
	if !g.IsOrigin(origin, d) {
		return nil, fmt.Errorf("%s %d at %s: %w", d, number, origin, ErrNotOrigin)
	}
	key := labelKey{origin, d}
	if _, ok := g.labels[key]; ok {
		return nil, fmt.Errorf("%s %d at %s: %w", d, number, origin, ErrDuplicate)
	}

	cl := &Clue{Origin: origin, Direction: d, Number: number, Text: text}
	g.labels[key] = cl

	list := append(g.clues[d], cl)
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Origin.Before(list[j].Origin)
	})
	for i, c := range list {
		c.Index = i
	}
	g.clues[d] = list

	g.refreshDone(cl)
	return cl, nil
}

// ClueAt returns the clue labelled at c for direction d, or nil.
func (g *Grid) ClueAt(c Coord, d Direction) *Clue {
	return g.labels[labelKey{c, d}]
}

// Clues returns the ordered clue list for direction d.
// The slice is shared; callers must not modify it.
func (g *Grid) Clues(d Direction) []*Clue {
	return g.clues[d]
}

// NextClue returns the clue after cl in its direction's list, wrapping to the first.
func (g *Grid) NextClue(cl *Clue) *Clue {
	list := g.clues[cl.Direction]
	return list[(cl.Index+1)%len(list)]
}

// PrevClue returns the clue before cl in its direction's list, wrapping to the last.
func (g *Grid) PrevClue(cl *Clue) *Clue {
	list := g.clues[cl.Direction]
	return list[(cl.Index-1+len(list))%len(list)]
}

// Run scans the maximal playable run starting at origin along d.
// The result is empty when origin itself is not playable.
func (g *Grid) Run(origin Coord, d Direction) []Coord {
	var run []Coord
	for c := origin; g.Playable(c); c = c.Step(d) {
		run = append(run, c)
	}
	return run
}

// WordOrigin walks backward from c along d until it reaches a cell carrying
// a clue label for d, or the last playable cell before a block or the edge.
// The clue is nil in the second case.
func (g *Grid) WordOrigin(c Coord, d Direction) (Coord, *Clue) {
	cur := c
	for {
		if cl := g.ClueAt(cur, d); cl != nil {
			return cur, cl
		}
		prev := cur.Back(d)
		if !g.Playable(prev) {
			return cur, nil
		}
		cur = prev
	}
}

// runFilled reports whether every cell of run holds a letter.
func (g *Grid) runFilled(run []Coord) bool {
	for _, c := range run {
		if g.Content(c) == 0 {
			return false
		}
	}
	return true
}

// refreshDone re-derives the Done flag of cl from its word's content.
func (g *Grid) refreshDone(cl *Clue) {
	if cl == nil {
		return
	}
	if g.runFilled(g.Run(cl.Origin, cl.Direction)) {
		cl.Flags |= ClueDone
	} else {
		cl.Flags &^= ClueDone
	}
}

// refreshCrossing re-derives Done for every labelled word passing through c.
func (g *Grid) refreshCrossing(c Coord) {
	for _, d := range Directions {
		_, cl := g.WordOrigin(c, d)
		g.refreshDone(cl)
	}
}

// PlayableCount returns the number of letter cells.
func (g *Grid) PlayableCount() int {
	n := 0
	for _, cell := range g.Cells {
		if cell.Playable {
			n++
		}
	}
	return n
}

// FilledCount returns the number of letter cells holding a letter.
func (g *Grid) FilledCount() int {
	n := 0
	for _, cell := range g.Cells {
		if cell.Playable && cell.Content != 0 {
			n++
		}
	}
	return n
}

// FirstPlayable returns the first letter cell in row-major order.
func (g *Grid) FirstPlayable() (Coord, bool) {
	for i, cell := range g.Cells {
		if cell.Playable {
			return C(i%g.W, i/g.W), true
		}
	}
	return Coord{}, false
}

// Numbering assigns standard crossword numbers: scanning row-major, a cell
// is numbered when it starts an across or down run of at least two cells.
func (g *Grid) Numbering() map[Coord]int {
	nums := make(map[Coord]int)
	n := 0
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := C(x, y)
			if g.startsWord(c, Across) || g.startsWord(c, Down) {
				n++
				nums[c] = n
			}
		}
	}
	return nums
}

func (g *Grid) startsWord(c Coord, d Direction) bool {
	return g.IsOrigin(c, d) && g.Playable(c.Step(d))
}
