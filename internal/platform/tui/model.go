package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// helpHeight is the number of terminal rows reserved below the board.
const helpHeight = 1

// Model is the Bubble Tea model that drives one snake game.
type Model struct {
	game       *snake.Game
	screen     *core.Screen
	config     core.RuntimeConfig // terminal size, not board size
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	quitting   bool
}

// NewModel creates a model for the given game. cfg carries the full terminal
// size; the bottom row is kept for the help line.
func NewModel(game *snake.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = core.DefaultConfig().TickInterval
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	board := boardConfig(cfg)
	return Model{
		game:       game,
		screen:     core.NewScreen(board.ScreenW, board.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       h,
		logger:     logger,
	}
}

// boardConfig returns the runtime config for the board area.
func boardConfig(cfg core.RuntimeConfig) core.RuntimeConfig {
	cfg.ScreenH = max(cfg.ScreenH-helpHeight, 0)
	return cfg
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(boardConfig(m.config))
	m.logger.Debug("game started",
		"width", m.config.ScreenW,
		"height", m.config.ScreenH,
		"seed", m.config.Seed,
	)
	return tickCmd(m.config.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the key's action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
		return m, nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	board := boardConfig(m.config)
	m.screen.Resize(board.ScreenW, board.ScreenH)

	// Bounds are fixed for the life of a snake, so a live game starts over.
	if !m.gameState.GameOver {
		m.game.Reset(board)
		m.gameState = m.game.State()
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Ended {
		m.logger.Info("game over",
			"foods", result.State.Score,
			"length", result.State.Length,
		)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickInterval)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for a local terminal.
func Run(game *snake.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
