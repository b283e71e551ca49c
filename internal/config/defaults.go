package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/xword.yaml
var defaultXwordYAML []byte

// DefaultConfig returns the hard-coded configuration used when no file
// and no embedded default can be read.
func DefaultConfig() Config {
	return Config{
		Theme: ThemeConfig{
			Name: "classic",
		},
		Clock: ClockConfig{
			Enabled:  true,
			TickRate: 4,
		},
		Navigation: NavigationConfig{
			ArrowSwaps: true,
		},
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        2323,
			HostKey:     "~/.xword/host_key",
			IdleTimeout: 30 * time.Minute,
		},
	}
}
