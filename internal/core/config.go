package core

import "time"

// RuntimeConfig contains configuration passed to a game at (re)initialization.
// The platform fills it from the terminal or PTY size.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters (excluding the help line)
	TickInterval time.Duration // Delay between two simulation ticks
	Seed         int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig matching a classic 80x25 console.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      25,
		TickInterval: 300 * time.Millisecond,
		Seed:         0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int  // Food eaten so far
	Length   int  // Current body length
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Ended is true only on the tick where the game transitioned to game over.
	Ended bool
}
