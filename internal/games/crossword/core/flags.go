package core

// CellFlag is a presentation attribute toggled on a cell.
type CellFlag uint8

const (
	// CellPrimary marks the cursor cell.
	CellPrimary CellFlag = 1 << iota
	// CellSecondary marks every cell of the active word.
	CellSecondary
)

// ClueFlag is a presentation attribute toggled on a clue.
type ClueFlag uint8

const (
	// ClueSelected marks the clue of the active word.
	ClueSelected ClueFlag = 1 << iota
	// ClueDone marks a clue whose word has no empty cell.
	ClueDone
)
