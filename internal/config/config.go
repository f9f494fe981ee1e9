// Package config provides YAML-based settings loading for the snake game.
package config

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// SnakeConfig contains all settings for a snake game session.
type SnakeConfig struct {
	TickMS int         `yaml:"tick_ms"`
	Snake  SnakeLayout `yaml:"snake"`
	Food   FoodRegion  `yaml:"food"`
}

// SnakeLayout defines the initial body placement.
type SnakeLayout struct {
	TailX   int    `yaml:"tail_x"`
	TailY   int    `yaml:"tail_y"`
	Length  int    `yaml:"length"`
	Heading string `yaml:"heading"` // left, right, up or down
	Glyph   string `yaml:"glyph"`
}

// FoodRegion defines where food may spawn and how it is drawn.
type FoodRegion struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Glyph  string `yaml:"glyph"`
}

// TickInterval returns the delay between two moves.
func (c SnakeConfig) TickInterval() time.Duration {
	return time.Duration(c.TickMS) * time.Millisecond
}

// BodyRune returns the body glyph as a rune.
func (c SnakeConfig) BodyRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Snake.Glyph)
	return r
}

// FoodRune returns the food glyph as a rune.
func (c SnakeConfig) FoodRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Food.Glyph)
	return r
}

// Validate checks that the settings describe a playable game.
func (c SnakeConfig) Validate() error {
	if c.TickMS <= 0 {
		return fmt.Errorf("config: tick_ms must be positive, got %d", c.TickMS)
	}
	if c.Snake.Length < 1 {
		return fmt.Errorf("config: snake.length must be at least 1, got %d", c.Snake.Length)
	}
	if !validHeading(c.Snake.Heading) {
		return fmt.Errorf("config: unknown snake.heading %q", c.Snake.Heading)
	}
	if err := validGlyph("snake.glyph", c.Snake.Glyph); err != nil {
		return err
	}
	if c.Food.Width < 1 || c.Food.Height < 1 {
		return fmt.Errorf("config: food region must be at least 1x1, got %dx%d", c.Food.Width, c.Food.Height)
	}
	return validGlyph("food.glyph", c.Food.Glyph)
}

func validHeading(h string) bool {
	switch strings.ToLower(h) {
	case "left", "right", "up", "down":
		return true
	}
	return false
}

func validGlyph(field, g string) error {
	if utf8.RuneCountInString(g) != 1 {
		return fmt.Errorf("config: %s must be a single character, got %q", field, g)
	}
	if g == " " {
		return fmt.Errorf("config: %s must not be blank", field)
	}
	return nil
}
