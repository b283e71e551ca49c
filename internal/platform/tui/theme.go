package tui

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-xword/internal/config"
	"github.com/vovakirdan/tui-xword/internal/core"
)

// palette maps screen styles to their look in one theme.
type palette map[core.Style]config.StyleConfig

var palettes = map[string]palette{
	"classic": {
		core.StyleBorder:       {Fg: "240"},
		core.StyleBlock:        {Fg: "236"},
		core.StyleCell:         {Fg: "15", Bg: "238"},
		core.StyleSecondary:    {Fg: "15", Bg: "25"},
		core.StylePrimary:      {Fg: "16", Bg: "220", Bold: true},
		core.StyleNumber:       {Fg: "250", Bg: "238"},
		core.StyleClue:         {Fg: "252"},
		core.StyleClueSelected: {Fg: "16", Bg: "117"},
		core.StyleClueDone:     {Fg: "242"},
		core.StyleHeading:      {Fg: "229", Bold: true},
		core.StyleHint:         {Fg: "241"},
		core.StyleSuccess:      {Fg: "46", Bold: true},
		core.StyleWarning:      {Fg: "208", Bold: true},
	},
	"neon": {
		core.StyleBorder:       {Fg: "93"},
		core.StyleBlock:        {Fg: "54"},
		core.StyleCell:         {Fg: "51", Bg: "235"},
		core.StyleSecondary:    {Fg: "16", Bg: "51"},
		core.StylePrimary:      {Fg: "16", Bg: "205", Bold: true},
		core.StyleNumber:       {Fg: "135", Bg: "235"},
		core.StyleClue:         {Fg: "159"},
		core.StyleClueSelected: {Fg: "16", Bg: "205"},
		core.StyleClueDone:     {Fg: "60"},
		core.StyleHeading:      {Fg: "205", Bold: true},
		core.StyleHint:         {Fg: "97"},
		core.StyleSuccess:      {Fg: "46", Bold: true},
		core.StyleWarning:      {Fg: "226", Bold: true},
	},
	"pastel": {
		core.StyleBorder:       {Fg: "#b4a7d6"},
		core.StyleBlock:        {Fg: "#6d6875"},
		core.StyleCell:         {Fg: "#3d3d3d", Bg: "#f5f0e6"},
		core.StyleSecondary:    {Fg: "#3d3d3d", Bg: "#cde7f0"},
		core.StylePrimary:      {Fg: "#3d3d3d", Bg: "#ffd6a5", Bold: true},
		core.StyleNumber:       {Fg: "#9a8c98", Bg: "#f5f0e6"},
		core.StyleClue:         {Fg: "#e5e5e5"},
		core.StyleClueSelected: {Fg: "#3d3d3d", Bg: "#caffbf"},
		core.StyleClueDone:     {Fg: "#8d99ae"},
		core.StyleHeading:      {Fg: "#ffc6ff", Bold: true},
		core.StyleHint:         {Fg: "#8d99ae"},
		core.StyleSuccess:      {Fg: "#caffbf", Bold: true},
		core.StyleWarning:      {Fg: "#ffadad", Bold: true},
	},
	"mono": {
		core.StyleCell:         {Underline: true},
		core.StyleNumber:       {Underline: true},
		core.StyleSecondary:    {Underline: true, Bold: true},
		core.StylePrimary:      {Reverse: true, Bold: true},
		core.StyleClueSelected: {Reverse: true},
		core.StyleHeading:      {Bold: true},
		core.StyleSuccess:      {Bold: true},
		core.StyleWarning:      {Bold: true, Underline: true},
	},
}

// Theme maps screen styles to lipgloss styles.
type Theme struct {
	Name   string
	styles map[core.Style]lipgloss.Style
}

// ThemeNames lists the built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultTheme returns the classic theme.
func DefaultTheme() Theme {
	t, _ := NewTheme(config.ThemeConfig{Name: "classic"})
	return t
}

// NewTheme builds the named theme and applies per-style overrides.
func NewTheme(cfg config.ThemeConfig) (Theme, error) {
	name := cfg.Name
	if name == "" {
		name = "classic"
	}
	base, ok := palettes[name]
	if !ok {
		return Theme{}, fmt.Errorf("tui: unknown theme %q", name)
	}

	specs := make(palette, len(base)+len(cfg.Overrides))
	for s, spec := range base {
		specs[s] = spec
	}
	for key, spec := range cfg.Overrides {
		s, ok := core.ParseStyle(key)
		if !ok {
			return Theme{}, fmt.Errorf("tui: unknown style %q in theme overrides", key)
		}
		specs[s] = spec
	}

	t := Theme{Name: name, styles: make(map[core.Style]lipgloss.Style, len(specs))}
	for _, s := range core.Styles() {
		t.styles[s] = toLipgloss(specs[s])
	}
	return t, nil
}

// Style returns the lipgloss style for s.
func (t Theme) Style(s core.Style) lipgloss.Style {
	if st, ok := t.styles[s]; ok {
		return st
	}
	return lipgloss.NewStyle()
}

func toLipgloss(spec config.StyleConfig) lipgloss.Style {
	st := lipgloss.NewStyle()
	if spec.Fg != "" {
		st = st.Foreground(lipgloss.Color(spec.Fg))
	}
	if spec.Bg != "" {
		st = st.Background(lipgloss.Color(spec.Bg))
	}
	if spec.Bold {
		st = st.Bold(true)
	}
	if spec.Underline {
		st = st.Underline(true)
	}
	if spec.Reverse {
		st = st.Reverse(true)
	}
	return st
}
