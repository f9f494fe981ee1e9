package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake settings.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		TickMS: 300,
		Snake: SnakeLayout{
			TailX:   4,
			TailY:   5,
			Length:  4,
			Heading: "right",
			Glyph:   "*",
		},
		Food: FoodRegion{
			Width:  80,
			Height: 20,
			Glyph:  "$",
		},
	}
}

// DefaultYAML returns the embedded default settings file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
