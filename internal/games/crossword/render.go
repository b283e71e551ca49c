package crossword

import (
	"fmt"
	"strconv"
	"time"

	platformcore "github.com/vovakirdan/tui-xword/internal/core"
	"github.com/vovakirdan/tui-xword/internal/games/crossword/core"
)

// Render draws the session to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()
	g.layout.clueHits = g.layout.clueHits[:0]

	g.renderHUD(dst)

	switch {
	case g.loadErr != nil:
		g.renderOverlay(dst, "Puzzle failed to load", g.loadErr.Error(), platformcore.StyleWarning)
		return
	case g.nav == nil:
		return
	case g.layout.tooSmall:
		w, h := minSize(g.grid.W, g.grid.H)
		dst.DrawStyledTextCentered(dst.Height()/2, "Window too small", platformcore.StyleWarning)
		dst.DrawStyledTextCentered(dst.Height()/2+1, fmt.Sprintf("Resize to at least %dx%d", w, h), platformcore.StyleHint)
		return
	}

	g.renderClueBar(dst)
	g.renderGrid(dst)
	for _, d := range core.Directions {
		g.renderClueList(dst, d)
	}
	g.renderFooter(dst)

	if g.paused {
		g.renderOverlay(dst, "Paused", "Press Ctrl+P to continue", platformcore.StyleWarning)
	}
}

// renderHUD draws the title bar and the rule beneath it.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	st := g.State()
	hud := " XWORD │ " + g.Title()
	if st.Total > 0 {
		hud += " │ " + strconv.Itoa(st.Filled) + "/" + strconv.Itoa(st.Total)
	}
	if g.cfg.ShowClock {
		hud += " │ " + formatElapsed(st.Elapsed)
	}
	if st.Assisted {
		hud += " │ assisted"
	}
	dst.DrawStyledText(0, 0, hud, platformcore.StyleHeading)
	g.rule(dst, 1)
}

// renderClueBar shows the active clue, or the completion banner.
func (g *Game) renderClueBar(dst *platformcore.Screen) {
	st := g.State()
	switch {
	case st.Correct:
		msg := " Solved in " + formatElapsed(st.Elapsed)
		if st.Assisted {
			msg += " (with help)"
		}
		dst.DrawStyledText(0, 2, msg+"! ", platformcore.StyleSuccess)
	case st.Complete:
		dst.DrawStyledText(0, 2, " Every square is filled, but something is not right.", platformcore.StyleWarning)
	default:
		if cl := g.nav.ActiveClue(); cl != nil {
			dst.DrawStyledText(0, 2, " "+cl.Label(), platformcore.StyleClueSelected)
			dst.DrawText(len(cl.Label())+3, 2, cl.Text)
		} else {
			dst.DrawStyledText(0, 2, " (no clue for this square)", platformcore.StyleHint)
		}
	}
	g.rule(dst, 3)
}

func (g *Game) rule(dst *platformcore.Screen, y int) {
	for x := 0; x < dst.Width(); x++ {
		dst.SetStyled(x, y, '─', platformcore.StyleBorder)
	}
}

// renderGrid draws every cell with its highlight, number and letter.
func (g *Game) renderGrid(dst *platformcore.Screen) {
	size := g.layout.cell
	for y := 0; y < g.grid.H; y++ {
		for x := 0; x < g.grid.W; x++ {
			c := core.C(x, y)
			sx, sy := g.layout.cellOrigin(c)
			body := platformcore.NewRect(sx, sy, size.w-1, size.h)
			cell := g.grid.Cell(c)

			if !cell.Playable {
				dst.DrawStyledRect(body, '█', platformcore.StyleBlock)
				continue
			}

			style := platformcore.StyleCell
			switch {
			case cell.Has(core.CellPrimary):
				style = platformcore.StylePrimary
			case cell.Has(core.CellSecondary):
				style = platformcore.StyleSecondary
			}
			dst.DrawStyledRect(body, ' ', style)

			if size.numbers {
				if n := g.numbers[c]; n > 0 {
					numStyle := style
					if style == platformcore.StyleCell {
						numStyle = platformcore.StyleNumber
					}
					dst.DrawStyledText(sx, sy, strconv.Itoa(n), numStyle)
				}
			}

			letter := cell.Content
			switch {
			case g.paused:
				letter = ' '
			case letter == 0 && !size.numbers:
				letter = '·'
			case letter == 0:
				letter = ' '
			}
			lx := sx
			if size.numbers {
				lx = sx + 1
			}
			dst.SetStyled(lx, sy+size.h-1, letter, style)
		}
	}
}

// renderClueList draws one direction's clues, scrolled so the active clue
// stays visible, and records hit rectangles for mouse selection.
func (g *Game) renderClueList(dst *platformcore.Screen, d core.Direction) {
	pane := g.layout.panes[d]
	if pane.Empty() {
		return
	}

	title := "ACROSS"
	if d == core.Down {
		title = "DOWN"
	}
	dst.DrawStyledText(pane.X, pane.Y, title, platformcore.StyleHeading)

	clues := g.grid.Clues(d)
	rows := pane.H - 1
	start := 0
	if active := g.nav.ActiveClue(); active != nil && active.Direction == d && active.Index >= rows {
		start = active.Index - rows + 1
	}

	for i := 0; i < rows && start+i < len(clues); i++ {
		cl := clues[start+i]
		y := pane.Y + 1 + i
		style := platformcore.StyleClue
		switch {
		case cl.Has(core.ClueSelected):
			style = platformcore.StyleClueSelected
		case cl.Has(core.ClueDone):
			style = platformcore.StyleClueDone
		}

		row := platformcore.NewRect(pane.X, y, pane.W, 1)
		text := truncate(fmt.Sprintf("%3d %s", cl.Number, cl.Text), pane.W)
		dst.DrawStyledText(pane.X, y, text, style)
		if cl.Has(core.ClueSelected) {
			dst.Paint(row, style)
		}
		g.layout.clueHits = append(g.layout.clueHits, clueHit{rect: row, clue: cl})
	}
}

// renderFooter draws the key hints on the last line.
func (g *Game) renderFooter(dst *platformcore.Screen) {
	hint := " arrows move · Tab swap · Enter next · Ins solve · Del clear · ^P pause · ^R restart · Esc menu"
	dst.DrawStyledText(0, dst.Height()-1, truncate(hint, dst.Width()), platformcore.StyleHint)
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *platformcore.Screen, title, subtitle string, style platformcore.Style) {
	w := platformcore.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	w = platformcore.Min(w, dst.Width())
	box := platformcore.NewRect((dst.Width()-w)/2, dst.Height()/2-2, w, 4)

	dst.DrawStyledRect(box, ' ', platformcore.StyleDefault)
	dst.DrawStyledBox(box, style)
	dst.DrawStyledTextCentered(box.Y+1, truncate(title, w-2), style)
	dst.DrawStyledTextCentered(box.Y+2, truncate(subtitle, w-2), platformcore.StyleHint)
}

// truncate cuts s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:platformcore.Max(n, 0)])
	}
	return string(r[:n-1]) + "…"
}

// formatElapsed renders a duration as m:ss or h:mm:ss.
func formatElapsed(d time.Duration) string {
	s := int(d / time.Second)
	if s >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", s/3600, s/60%60, s%60)
	}
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}
