package snake

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and debugging.
type Snapshot struct {
	Tick       uint64
	FoodsEaten int
	SnakeLen   int
	HeadX      int
	HeadY      int
	Heading    Direction
	FoodX      int
	FoodY      int
	MaxX       int
	MaxY       int
	State      GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:  g.tick,
		State: state,
	}
	if g.snake != nil {
		head := g.snake.Head()
		food := g.snake.Food()
		snap.FoodsEaten = g.snake.FoodsEaten()
		snap.SnakeLen = g.snake.Len()
		snap.HeadX, snap.HeadY = head.X, head.Y
		snap.Heading = g.snake.Heading()
		snap.FoodX, snap.FoodY = food.X, food.Y
		snap.MaxX, snap.MaxY = g.snake.Bounds()
	}
	return snap
}
