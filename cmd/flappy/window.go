package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/platform/window"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

var (
	flagScale float64
	flagTitle string
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a window and play with the mouse, touch or keyboard.

The sprite sheet is read from --sheet (a file path or http(s) URL) or the
config. Without one, a flat-colour placeholder sheet is drawn.

Controls:
  Click/Tap/Space - Start a run and flap
  1/2/3           - Simple, hard, master speed
  Tab             - Next difficulty

Examples:
  flappy window
  flappy window --sheet ./assets/sheet.png --scale 1.5
  flappy window --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 0, "Window size relative to the canvas (default from config)")
	windowCmd.Flags().StringVar(&flagTitle, "title", "", "Window title (default from config)")
}

func runWindow(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if flagScale > 0 {
		cfg.Window.Scale = flagScale
	}
	if flagTitle != "" {
		cfg.Window.Title = flagTitle
	}

	logger, closeLog, err := newLogger(cfg.Log, os.Stderr, "flappy")
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open run journal", "error", err)
		store = nil
	}

	logger.Info("opening window",
		"difficulty", cfg.Difficulty,
		"sheet", cfg.Sprites.Sheet,
		"tps", cfg.TickRate,
	)

	opts := window.Options{
		Config:     runtimeConfig(cfg),
		Difficulty: cfg.Difficulty,
		Sheet:      cfg.Sprites.Sheet,
		Scale:      cfg.Window.Scale,
		Title:      cfg.Window.Title,
		Logger:     logger,
		Frontend:   "window",
	}
	if store != nil {
		opts.Store = store
	}

	runErr := window.Run(cmd.Context(), opts)

	if store != nil {
		printSummary(cmd.OutOrStdout(), store)
		store.Close()
	}
	return runErr
}
