package tui

import (
	"strings"

	"github.com/vovakirdan/tui-xword/internal/core"
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, theme Theme) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			style := s.GetCell(x, y).Style
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Style != style {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if style == core.StyleDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(theme.Style(style).Render(run.String()))
		}
	}
	return sb.String()
}
