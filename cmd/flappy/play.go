package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-arcade/internal/platform/tui"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Space/Up/Click - Start a run and flap
  1/2/3          - Simple, hard, master speed
  Tab            - Next difficulty
  Q/Ctrl+C       - Quit

Logs are discarded unless --log-file is given. A summary of the session's
runs is printed after quitting.

Examples:
  flappy play
  flappy play --difficulty master
  flappy play --seed 42 --log-file flappy.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// The terminal belongs to the game, so logs only go to a file.
	logger, closeLog, err := newLogger(cfg.Log, io.Discard, "flappy")
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size for the first frame
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open the run journal
	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open run journal", "error", err)
		// Continue without journal - game still works
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Config:     runtimeConfig(cfg),
		Difficulty: cfg.Difficulty,
		Store:      store,
		Logger:     logger,
		Frontend:   "terminal",
		MaxWidth:   cfg.Terminal.MaxWidth,
		Width:      width,
		Height:     height,
	})

	if store != nil {
		printSummary(cmd.OutOrStdout(), store)
		store.Close()
	}
	return runErr
}
