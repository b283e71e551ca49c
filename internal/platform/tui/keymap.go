package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-xword/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to game inputs.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message into a game input.
// Returns the input (Action may be ActionNone) and whether it's a quit request.
// Plain letters are always answers, so "q" does not quit inside a puzzle.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (in core.Input, isQuit bool) {
	switch msg.String() {
	case "ctrl+c":
		return core.Key(core.ActionQuit), true

	case "up":
		return core.Key(core.ActionUp), false
	case "down":
		return core.Key(core.ActionDown), false
	case "left":
		return core.Key(core.ActionLeft), false
	case "right":
		return core.Key(core.ActionRight), false
	case "shift+up":
		return shifted(core.ActionUp), false
	case "shift+down":
		return shifted(core.ActionDown), false
	case "shift+left":
		return shifted(core.ActionLeft), false
	case "shift+right":
		return shifted(core.ActionRight), false

	case "enter":
		return core.Key(core.ActionNextClue), false
	case "shift+tab", "alt+enter":
		return core.Key(core.ActionPrevClue), false
	case "tab", " ":
		return core.Key(core.ActionSwap), false

	case "backspace":
		return core.Key(core.ActionBackspace), false
	case "insert":
		return core.Key(core.ActionSolve), false
	case "delete":
		return core.Key(core.ActionClear), false

	case "ctrl+p":
		return core.Key(core.ActionPause), false
	case "ctrl+r":
		return core.Key(core.ActionRestart), false
	case "esc":
		return core.Key(core.ActionBack), false
	}

	if msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) == 1 {
		r := msg.Runes[0]
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return core.Letter(r), false
		}
	}

	return core.Key(core.ActionNone), false
}

// MapMouse translates a left button press into a click input.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) core.Input {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return core.Key(core.ActionNone)
	}
	return core.Click(msg.X, msg.Y)
}

func shifted(a core.Action) core.Input {
	in := core.Key(a)
	in.Shift = true
	return in
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionHistory
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "up", "k":
		return MenuActionUp
	case "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "esc", "b":
		return MenuActionBack
	case "tab", "h":
		return MenuActionHistory
	}

	return MenuActionNone
}
