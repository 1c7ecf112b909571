package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/okurenko/conduit/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and solve puzzles.

Each SSH connection gets its own session with a level picker.
Progress is stored per-server (all users share the same database).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.conduit/host_key

Examples:
  conduit serve                           # Listen on the configured address
  conduit serve --ssh :2222               # Listen on port 2222
  conduit serve --host-key ./my_host_key  # Use specific host key
  conduit serve --db ./progress.db        # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal("could not load config", "error", err)
	}
	if err := applyGameSettings(cfg); err != nil {
		logger.Fatal("bad settings", "error", err)
	}

	address := flagSSHAddr
	if address == "" {
		address = fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	}
	keyPath := flagHostKey
	if keyPath == "" {
		keyPath = cfg.Server.KeyPath
	}

	serverCfg := tui.SSHServerConfig{
		Address:     address,
		HostKeyPath: keyPath,
		DBPath:      cfg.Storage.Path,
		LevelsDir:   cfg.Levels.Dir,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(serverCfg)
	if err != nil {
		logger.Fatal("could not create server", "error", err)
	}

	fmt.Printf("Starting conduit SSH server on %s\n", serverCfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("server error", "error", err)
	}
}
