package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// maxQueuedTurns caps how many early key presses wait for later ticks.
const maxQueuedTurns = 3

// Game hosts one Snake for a terminal session: it applies input once per
// tick, tracks pause and game-over, and draws into a screen buffer.
type Game struct {
	cfg     config.SnakeConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	tick    uint64
	snake   *Snake

	// Direction presses in arrival order, one applied per tick
	turns []Direction

	gameOver bool
	paused   bool
	tooSmall bool
}

// NewGame creates a game using the given settings. Call Reset before Step.
func NewGame(cfg config.SnakeConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Game{cfg: cfg}, nil
}

// Reset initializes/restarts the game for the given screen size and seed.
// The bottom-right screen cell sits on the wall: maxX = ScreenW-1, maxY = ScreenH-1.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.turns = g.turns[:0]
	g.gameOver = false
	g.paused = false

	// Heading was checked by Validate in NewGame.
	heading, _ := ParseDirection(g.cfg.Snake.Heading)
	g.snake = New(Options{
		Tail:       Cell{X: g.cfg.Snake.TailX, Y: g.cfg.Snake.TailY},
		Length:     g.cfg.Snake.Length,
		Heading:    heading,
		Glyph:      g.cfg.BodyRune(),
		MaxX:       rc.ScreenW - 1,
		MaxY:       rc.ScreenH - 1,
		FoodWidth:  g.cfg.Food.Width,
		FoodHeight: g.cfg.Food.Height,
		FoodGlyph:  g.cfg.FoodRune(),
		Rand:       g.rng,
	})

	// The starting body has to fit inside the walls.
	maxX, maxY := g.snake.Bounds()
	g.tooSmall = false
	for _, seg := range g.snake.body {
		if seg.IsOutOfBounds(maxX, maxY) {
			g.tooSmall = true
			break
		}
	}
}

// DirectionForAction maps a directional action to a heading.
func DirectionForAction(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return Up, true
	case core.ActionDown:
		return Down, true
	case core.ActionLeft:
		return Left, true
	case core.ActionRight:
		return Right, true
	}
	return Right, false
}

// queueTurns appends the frame's direction presses to the pending turns.
func (g *Game) queueTurns(in core.InputFrame) {
	for _, a := range in.Directions() {
		if len(g.turns) >= maxQueuedTurns {
			return
		}
		if d, ok := DirectionForAction(a); ok {
			g.turns = append(g.turns, d)
		}
	}
}

// nextTurn pops pending turns until one changes the current heading.
// Reversals and repeats of the current heading are dropped.
func (g *Game) nextTurn() (Direction, bool) {
	heading := g.snake.Heading()
	for len(g.turns) > 0 {
		d := g.turns[0]
		g.turns = g.turns[1:]
		if d != heading && d != heading.Opposite() {
			return d, true
		}
	}
	return heading, false
}

// Step advances the game by one tick: steer, move, then check for game over.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if in.Has(core.ActionRestart) && g.gameOver {
		rc := g.runtime
		rc.Seed = g.rng.Int63()
		g.Reset(rc)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.queueTurns(in)
	if d, ok := g.nextTurn(); ok {
		g.snake.SetHeading(d)
	}
	g.snake.Tick()

	if g.snake.IsGameOver() {
		g.gameOver = true
		return core.StepResult{State: g.State(), Ended: true}
	}
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
	if g.snake != nil {
		st.Score = g.snake.FoodsEaten()
		st.Length = g.snake.Len()
	}
	return st
}

// Snake exposes the actor for read-only inspection.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Render draws the board, status line, snake, food and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.snake == nil {
		return
	}

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	maxX, maxY := g.snake.Bounds()
	dst.DrawBox(core.NewRect(0, 0, maxX+1, maxY+1), core.ColorGray)
	status := fmt.Sprintf(" Food eaten: %d  Length: %d ", g.snake.FoodsEaten(), g.snake.Len())
	dst.DrawText(2, 0, status, core.ColorYellow)

	if food := g.snake.Food(); food.Visible() {
		dst.SetColored(food.X, food.Y, food.Marker, core.ColorBrightRed)
	}

	// Tail first so the head stays visible on a self collision
	for i := len(g.snake.body) - 1; i >= 0; i-- {
		seg := g.snake.body[i]
		color := core.ColorGreen
		if i == 0 {
			color = core.ColorBrightGreen
		}
		dst.SetColored(seg.X, seg.Y, seg.Marker, color)
	}

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Food eaten: %d  R: restart  Q: quit", g.snake.FoodsEaten()))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := core.Clamp(max(len([]rune(line1)), len([]rune(line2)))+4, 0, dst.Width())
	box := dst.Bounds().Centered(w, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorDefault)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightRed)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}
