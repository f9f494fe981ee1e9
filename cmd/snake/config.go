package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective settings",
	Long: `Shows the settings a game would start with, after the search order
(--config, ~/.snake/config.yaml, ./configs/snake.yaml, built-in defaults)
has been applied. The output is valid YAML and can be used as a starting
point for a custom settings file.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	settings, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("cannot encode settings: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(out)
	return err
}
