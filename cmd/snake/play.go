package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal. The board fills the window.

Controls:
  Arrows/WASD/hjkl - Steer
  P/Esc            - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Examples:
  snake play
  snake play --seed 42
  snake play --config ./my-snake.yaml --log-file snake.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	settings, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	// Logging to stderr would draw over the alt screen.
	out, closeLog, err := logOutput(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	logger, err := newLogger(out, "snake")
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		TickInterval: settings.TickInterval(),
		Seed:         flagSeed,
	}

	game, err := snake.NewGame(settings)
	if err != nil {
		return err
	}

	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
