package core

// Style is a semantic presentation role for a screen cell.
// The platform layer maps each role to concrete terminal colors via a theme,
// so games never deal with ANSI codes directly.
type Style uint8

// Predefined styles for crossword elements.
const (
	StyleDefault       Style = iota
	StyleBorder              // Grid lines and pane borders
	StyleBlock               // Non-playable cell fill
	StyleCell                // Playable cell, not in the active word
	StyleSecondary           // Playable cell inside the active word
	StylePrimary             // The cursor cell
	StyleNumber              // Clue number printed in a cell corner
	StyleClue                // Clue list entry
	StyleClueSelected        // Clue list entry for the active word
	StyleClueDone            // Clue whose word is completely filled
	StyleHeading             // Pane and HUD headings
	StyleHint                // Key help and secondary HUD text
	StyleSuccess             // Completion banner
	StyleWarning             // Pause and size warnings
	styleCount
)

// String returns the config name of the style.
func (s Style) String() string {
	if int(s) < len(styleNames) {
		return styleNames[s]
	}
	return "unknown"
}

var styleNames = [...]string{
	StyleDefault:      "default",
	StyleBorder:       "border",
	StyleBlock:        "block",
	StyleCell:         "cell",
	StyleSecondary:    "secondary",
	StylePrimary:      "primary",
	StyleNumber:       "number",
	StyleClue:         "clue",
	StyleClueSelected: "clue_selected",
	StyleClueDone:     "clue_done",
	StyleHeading:      "heading",
	StyleHint:         "hint",
	StyleSuccess:      "success",
	StyleWarning:      "warning",
}

// ParseStyle resolves a config name to a Style.
func ParseStyle(name string) (Style, bool) {
	for i, n := range styleNames {
		if n == name {
			return Style(i), true
		}
	}
	return StyleDefault, false
}

// Styles returns every defined style in declaration order.
func Styles() []Style {
	out := make([]Style, 0, styleCount)
	for s := StyleDefault; s < styleCount; s++ {
		out = append(out, s)
	}
	return out
}
