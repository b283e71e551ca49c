package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // Up arrow
	ActionDown             // Down arrow
	ActionLeft             // Left arrow
	ActionRight            // Right arrow
	ActionNextClue         // Enter - next clue in the current direction
	ActionPrevClue         // Shift+Tab - previous clue
	ActionSwap             // Tab or Space - toggle across/down at the cursor
	ActionLetter           // A-Z - write a letter
	ActionBackspace        // Backspace - erase and step back
	ActionClear            // Delete - clear the active word
	ActionSolve            // Insert - reveal the active word
	ActionClick            // Mouse press at (X, Y)
	ActionPause            // Ctrl+P - pause/unpause the clock
	ActionRestart          // Ctrl+R - clear the grid and restart the clock
	ActionConfirm          // Enter in menus
	ActionBack             // Escape - return to menu
	ActionQuit             // Ctrl+C - exit session
)

var actionNames = [...]string{
	ActionNone:      "None",
	ActionUp:        "Up",
	ActionDown:      "Down",
	ActionLeft:      "Left",
	ActionRight:     "Right",
	ActionNextClue:  "NextClue",
	ActionPrevClue:  "PrevClue",
	ActionSwap:      "Swap",
	ActionLetter:    "Letter",
	ActionBackspace: "Backspace",
	ActionClear:     "Clear",
	ActionSolve:     "Solve",
	ActionClick:     "Click",
	ActionPause:     "Pause",
	ActionRestart:   "Restart",
	ActionConfirm:   "Confirm",
	ActionBack:      "Back",
	ActionQuit:      "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a >= 0 && int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "Unknown"
}

// Input is a single decoded user event delivered to a game.
type Input struct {
	Action Action

	// Letter is the uppercase letter for ActionLetter.
	Letter rune

	// Shift marks arrow actions that move the cursor without
	// changing direction.
	Shift bool

	// X, Y locate ActionClick in screen coordinates.
	X, Y int
}

// Key builds an Input carrying only an action.
func Key(a Action) Input {
	return Input{Action: a}
}

// Letter builds an ActionLetter input. Lowercase letters are folded to uppercase.
func Letter(r rune) Input {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	return Input{Action: ActionLetter, Letter: r}
}

// Click builds a mouse press input at screen position (x, y).
func Click(x, y int) Input {
	return Input{Action: ActionClick, X: x, Y: y}
}

// IsArrow reports whether the action is one of the four arrow directions.
func (a Action) IsArrow() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}
