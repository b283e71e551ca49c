// Package config provides YAML-based configuration loading for the
// crossword player: theme, clock, navigation policy, puzzle sources and
// the SSH server.
package config

import (
	"time"

	"github.com/vovakirdan/tui-xword/internal/core"
)

// Config is the full application configuration.
type Config struct {
	Theme      ThemeConfig      `yaml:"theme"`
	Clock      ClockConfig      `yaml:"clock"`
	Navigation NavigationConfig `yaml:"navigation"`
	Puzzles    PuzzlesConfig    `yaml:"puzzles"`
	Server     ServerConfig     `yaml:"server"`
}

// ThemeConfig selects a named theme and overrides individual styles.
// Override keys are style names such as "primary" or "clue_done".
type ThemeConfig struct {
	Name      string                 `yaml:"name"`
	Overrides map[string]StyleConfig `yaml:"overrides,omitempty"`
}

// StyleConfig describes one terminal style. Colors accept ANSI numbers
// ("205") or hex values ("#ff87d7").
type StyleConfig struct {
	Fg        string `yaml:"fg,omitempty"`
	Bg        string `yaml:"bg,omitempty"`
	Bold      bool   `yaml:"bold,omitempty"`
	Underline bool   `yaml:"underline,omitempty"`
	Reverse   bool   `yaml:"reverse,omitempty"`
}

// ClockConfig controls the solve timer.
type ClockConfig struct {
	Enabled  bool `yaml:"enabled"`
	TickRate int  `yaml:"tick_rate"` // ticks per second
}

// NavigationConfig controls input policy.
type NavigationConfig struct {
	// ArrowSwaps makes an unshifted arrow perpendicular to the active word
	// swap direction instead of moving.
	ArrowSwaps bool `yaml:"arrow_swaps"`
}

// PuzzlesConfig lists extra puzzle sources.
type PuzzlesConfig struct {
	Dir string `yaml:"dir"` // directory of YAML puzzles, "" to skip
}

// ServerConfig configures the SSH server.
type ServerConfig struct {
	Host        string        `yaml:"host"`
	Port        int           `yaml:"port"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Runtime converts the config into the per-session settings handed to games.
func (c Config) Runtime(screenW, screenH int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:    screenW,
		ScreenH:    screenH,
		TickRate:   c.Clock.TickRate,
		ArrowSwaps: c.Navigation.ArrowSwaps,
		ShowClock:  c.Clock.Enabled,
	}
}

// normalize fills zero values that would break the runtime.
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.Clock.TickRate <= 0 {
		c.Clock.TickRate = def.Clock.TickRate
	}
	c.Clock.TickRate = core.Clamp(c.Clock.TickRate, 1, 60)
	if c.Theme.Name == "" {
		c.Theme.Name = def.Theme.Name
	}
	if c.Server.Port <= 0 {
		c.Server.Port = def.Server.Port
	}
	if c.Server.Host == "" {
		c.Server.Host = def.Server.Host
	}
	if c.Server.IdleTimeout <= 0 {
		c.Server.IdleTimeout = def.Server.IdleTimeout
	}
}
