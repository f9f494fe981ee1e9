// snake is a terminal snake game.
//
// Usage:
//
//	snake play      - Play in the current terminal
//	snake serve     - Start SSH server for remote play
//	snake config    - Print the effective settings
//
// Global flags:
//
//	--config <path>     - Settings file (default: search ~/.snake, ./configs)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - steer a growing snake in your terminal",
	Long: `Snake is the classic arcade game for the terminal.

Steer the snake to the food. Every piece eaten makes it one cell longer.
The game ends when the head hits a wall or the snake's own body.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  config   - Print the effective settings

Examples:
  snake play
  snake play --seed 42
  snake serve --ssh :2222
  snake config --config ./my-snake.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds a logger writing to w at the level named by --log-level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// logOutput opens --log-file for appending, or returns fallback when unset.
// The returned close function is always safe to call.
func logOutput(fallback io.Writer) (io.Writer, func(), error) {
	if flagLogFile == "" {
		return fallback, func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
