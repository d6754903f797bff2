package tui

import (
	"io"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// loopSeq numbers tick loops across all models. Generations are never reused.
var loopSeq atomic.Int64

// BoardID returns the score board key for a difficulty preset.
func BoardID(preset string) string {
	return "snake/" + preset
}

// GameModel is the Bubble Tea model that drives one snake engine.
// It owns the tick loop: the engine only advances when a TickMsg from the
// current loop generation arrives.
type GameModel struct {
	engine     *snake.Engine
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	effects    Effects
	collision  snake.CollisionKind
	player     string
	best       int
	gen        int  // Current tick loop generation
	ticking    bool // Whether a tick for gen is in flight
	paused     bool
	scoreSaved bool // Whether score has been saved for current game over
	quitting   bool
	goingBack  bool
	embedded   bool // Hosted by another model; never sends tea.Quit
}

// NewGameModel creates a game model for the engine.
// store and logger may be nil.
func NewGameModel(engine *snake.Engine, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) GameModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.Preset == "" {
		cfg.Preset = core.DefaultConfig().Preset
	}

	m := GameModel{
		engine: engine,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		store:  store,
		logger: logger,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
	m.help.Width = cfg.ScreenW

	if store != nil {
		if best, err := store.HighScore(m.board()); err != nil {
			logger.Warn("cannot load high score", "board", m.board(), "err", err)
		} else {
			m.best = best
		}
	}
	return m
}

// WithPlayer sets the name recorded with saved scores.
func (m GameModel) WithPlayer(name string) GameModel {
	m.player = name
	return m
}

func (m GameModel) board() string {
	return BoardID(m.config.Preset)
}

// Init initializes the model. The game waits for a start key, so no
// tick loop is scheduled yet.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.stopLoop()
		return m, m.exit()
	case core.ActionBack:
		m.goingBack = true
		m.stopLoop()
		return m, m.exit()
	}

	switch m.engine.Status() {
	case snake.StatusNotStarted:
		if action == core.ActionStart || action == core.ActionRestart {
			return m.start(m.engine.Start)
		}

	case snake.StatusOver:
		// Any key starts the next game.
		return m.start(m.engine.Start)

	case snake.StatusRunning:
		if action.IsMove() {
			if !m.paused {
				dir, _ := directionFor(action)
				m.engine.SetDirection(dir)
			}
			return m, nil
		}
		switch action {
		case core.ActionPause:
			if m.paused {
				m.paused = false
				m.logger.Debug("resumed", "board", m.board())
				return m, m.startLoop()
			}
			m.paused = true
			m.stopLoop()
			m.logger.Debug("paused", "board", m.board())
		case core.ActionRestart:
			return m.start(m.engine.Reset)
		}
	}

	return m, nil
}

// start runs an engine command that puts the game into Running and
// begins a fresh tick loop.
func (m GameModel) start(run func()) (tea.Model, tea.Cmd) {
	run()
	m.paused = false
	m.scoreSaved = false
	m.collision = snake.CollisionNone
	m.effects.Clear()
	m.logger.Debug("game started", "board", m.board(), "player", m.player)
	return m, m.startLoop()
}

// startLoop invalidates any tick in flight and schedules a new one,
// unless the window cannot show the board.
func (m *GameModel) startLoop() tea.Cmd {
	m.stopLoop()
	if !m.fits() {
		return nil
	}
	m.ticking = true
	return tickCmd(m.engine.Interval(), m.gen)
}

func (m *GameModel) stopLoop() {
	m.gen = int(loopSeq.Add(1))
	m.ticking = false
}

func (m GameModel) fits() bool {
	return boardFits(m.engine.TileCount(), m.screen.Width(), m.screen.Height())
}

// exit ends the program when running standalone.
func (m GameModel) exit() tea.Cmd {
	if m.embedded {
		return nil
	}
	return tea.Quit
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	m.help.Width = msg.Width

	// Resume a loop that stopped because the window was too small.
	if !m.ticking && !m.paused && m.engine.Status() == snake.StatusRunning && m.fits() {
		return m, m.startLoop()
	}
	return m, nil
}

// handleTick advances the engine and schedules the next tick.
func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || !m.ticking {
		return m, nil // Stale loop
	}
	if m.paused || !m.fits() {
		m.ticking = false
		return m, nil
	}

	res := m.engine.Tick()
	m.effects.Observe(res)
	if res.Stopped {
		m.ticking = false
		return m, nil
	}

	if res.SpeedUp {
		m.logger.Debug("speed up", "board", m.board(), "score", res.Score, "interval", res.Interval)
	}

	if res.Status == snake.StatusOver {
		m.ticking = false
		m.collision = res.Collision
		m.gameOver(res)
		return m, nil
	}

	return m, tickCmd(res.Interval, m.gen)
}

// gameOver logs the result and saves the score once.
func (m *GameModel) gameOver(res snake.TickResult) {
	m.logger.Info("game over",
		"board", m.board(),
		"player", m.player,
		"score", res.Score,
		"collision", res.Collision,
		"won", res.Won,
	)
	m.logger.Debug("final state", "board", m.board(), "state", m.engine.DebugState())

	if m.scoreSaved || res.Score <= 0 {
		return
	}
	m.scoreSaved = true
	m.best = max(m.best, res.Score)

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveScore(m.board(), m.player, res.Score); err != nil {
		m.logger.Error("cannot save score", "board", m.board(), "err", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	DrawBoard(m.screen, BoardView{
		Snapshot:  m.engine.Snapshot(),
		Effects:   m.effects,
		Preset:    m.config.Preset,
		Best:      m.best,
		Paused:    m.paused,
		Collision: m.collision,
	})

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Score returns the current engine score.
func (m GameModel) Score() int {
	return m.engine.Score()
}

// IsQuitting returns true if user requested to quit.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// IsGoingBack returns true if user wants to go back to the menu.
func (m GameModel) IsGoingBack() bool {
	return m.goingBack
}

// Config returns the current runtime config (may have been updated by resize).
func (m GameModel) Config() core.RuntimeConfig {
	return m.config
}

// GameResult holds the outcome of a standalone game session.
type GameResult struct {
	Score  int
	Config core.RuntimeConfig
	Back   bool // User asked for the menu rather than quitting
}

// Run starts a Bubble Tea program for one engine and blocks until the
// player quits or goes back.
func Run(engine *snake.Engine, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, player string) (GameResult, error) {
	model := NewGameModel(engine, store, logger, cfg).WithPlayer(player)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return GameResult{Config: cfg}, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return GameResult{Config: cfg}, nil
	}

	return GameResult{
		Score:  m.Score(),
		Config: m.Config(),
		Back:   m.IsGoingBack(),
	}, nil
}
