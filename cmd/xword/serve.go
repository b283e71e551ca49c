package main

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-xword/internal/config"
	"github.com/vovakirdan/tui-xword/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the crossword SSH server",
	Long: `Start an SSH server that lets users connect and solve puzzles.

Each SSH connection gets its own session with a puzzle menu. Solves are
recorded per-server with the session ID of the connection.

Defaults come from the server section of the config file:
  - Address: server.host and server.port (0.0.0.0:2323)
  - Host key: server.host_key, auto-generated if missing
  - Idle timeout: server.idle_timeout

Examples:
  xword serve                           # Listen with config defaults
  xword serve --ssh :2222               # Listen on port 2222
  xword serve --host-key ./my_host_key  # Use specific host key
  xword serve --db ./xword.db           # Use specific database

Users can connect with:
  ssh localhost -p 2323`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port), overrides config")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file, overrides config")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes, overrides config")
}

func runServe(_ *cobra.Command, _ []string) {
	e := setup()
	// The server opens its own handle on the database.
	e.close()

	cfg := serverConfig(e.cfg, e.theme)

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fail("creating server: %v", err)
	}

	_, port, _ := net.SplitHostPort(cfg.Address)
	fmt.Printf("Starting xword SSH server on %s\n", cfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", port)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}

// serverConfig merges the config file's server section with flags.
func serverConfig(c config.Config, theme tui.Theme) tui.SSHServerConfig {
	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
	cfg.HostKeyPath = config.ExpandHome(c.Server.HostKey)
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = c.Server.IdleTimeout
	cfg.Runtime = c.Runtime(80, 24)
	cfg.Theme = theme

	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
	return cfg
}
