package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/platform/tui"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection plays its own game; its best score lasts as long as the
connection. Finished runs from every connection go to one in-memory journal
shown in the sidebar of wide terminals.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.flappy/host_key

Examples:
  flappy serve                           # Listen on :23234 with auto-generated key
  flappy serve --ssh :2222               # Listen on port 2222
  flappy serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting (default from config)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log, os.Stderr, "flappy-ssh")
	if err != nil {
		return err
	}
	defer closeLog()

	serverCfg := tui.DefaultSSHServerConfig()
	serverCfg.Address = cfg.SSH.Address
	serverCfg.HostKeyPath = cfg.SSH.HostKey
	serverCfg.IdleTimeout = cfg.SSH.IdleTimeout
	serverCfg.TickRate = cfg.TickRate
	serverCfg.Difficulty = cfg.Difficulty
	serverCfg.MaxWidth = cfg.Terminal.MaxWidth
	serverCfg.Seed = cfg.Seed
	applyServeFlags(&serverCfg)

	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open run journal", "error", err)
		store = nil
	}

	server, err := tui.NewSSHServer(serverCfg, store, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Starting flappy SSH server on %s\n", server.Addr())
	fmt.Fprintln(out, "Press Ctrl+C to stop")

	runErr := server.ListenAndServe()

	if store != nil {
		printSummary(out, store)
		store.Close()
	}
	return runErr
}

func applyServeFlags(cfg *tui.SSHServerConfig) {
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
}
