package tui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func newTestGame(t *testing.T, store *storage.Store, w, h int) GameModel {
	t.Helper()
	cfg := snake.ClassicConfig()
	cfg.Seed = 7
	engine, err := snake.New(cfg)
	if err != nil {
		t.Fatalf("snake.New() failed: %v", err)
	}
	return NewGameModel(engine, store, nil, core.RuntimeConfig{ScreenW: w, ScreenH: h, Preset: "normal"})
}

// send feeds a message to the model and returns the updated model.
func send(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm, cmd
}

func tick(t *testing.T, m GameModel) (GameModel, tea.Cmd) {
	t.Helper()
	return send(t, m, TickMsg{Gen: m.gen})
}

func TestGameModelWaitsForStart(t *testing.T) {
	m := newTestGame(t, nil, 80, 30)

	if cmd := m.Init(); cmd != nil {
		t.Error("Init should not start the tick loop")
	}
	if m.engine.Status() != snake.StatusNotStarted {
		t.Fatalf("Status = %v, want not_started", m.engine.Status())
	}

	// Moves are ignored before the game starts
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if cmd != nil || m.engine.Status() != snake.StatusNotStarted {
		t.Error("Move key should not start the game")
	}

	m, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("Start should schedule a tick")
	}
	if m.engine.Status() != snake.StatusRunning || !m.ticking {
		t.Error("Enter should start the game and the loop")
	}
}

func TestGameModelTickAdvances(t *testing.T) {
	m := newTestGame(t, nil, 80, 30)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	head := m.engine.Snapshot().Head()
	m, cmd := tick(t, m)
	if cmd == nil {
		t.Error("Running game should schedule the next tick")
	}
	if got := m.engine.Snapshot().Head(); got.X != head.X+1 || got.Y != head.Y {
		t.Errorf("Head moved from %v to %v, want one cell right", head, got)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = tick(t, m)
	if got := m.engine.Snapshot().Committed; got != snake.DirDown {
		t.Errorf("Committed = %v, want down", got)
	}
}

func TestGameModelDropsStaleTicks(t *testing.T) {
	m := newTestGame(t, nil, 80, 30)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	stale := m.gen - 1
	m, cmd := send(t, m, TickMsg{Gen: stale})
	if cmd != nil {
		t.Error("Stale tick should not reschedule")
	}
	if ticks := m.engine.Snapshot().Ticks; ticks != 0 {
		t.Errorf("Stale tick advanced the engine to %d ticks", ticks)
	}
}

func TestGameModelPause(t *testing.T) {
	m := newTestGame(t, nil, 80, 30)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	pausedGen := m.gen
	m, cmd := send(t, m, runeKey('p'))
	if cmd != nil || !m.paused {
		t.Fatal("P should pause without scheduling")
	}

	m, _ = send(t, m, TickMsg{Gen: pausedGen})
	m, _ = tick(t, m)
	if ticks := m.engine.Snapshot().Ticks; ticks != 0 {
		t.Errorf("Paused game advanced to %d ticks", ticks)
	}

	// Turns are not buffered while paused
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.engine.Snapshot().Pending != snake.DirRight {
		t.Error("Direction changed while paused")
	}

	m, cmd = send(t, m, runeKey('p'))
	if cmd == nil || m.paused {
		t.Fatal("Second P should resume the loop")
	}
	m, _ = tick(t, m)
	if ticks := m.engine.Snapshot().Ticks; ticks != 1 {
		t.Errorf("Ticks after resume = %d, want 1", ticks)
	}
}

func TestGameModelGameOverAndRestart(t *testing.T) {
	m := newTestGame(t, nil, 80, 30)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	// Heading right from the center reaches the wall within the board width.
	for i := 0; i < 25 && m.engine.Status() == snake.StatusRunning; i++ {
		m, _ = tick(t, m)
	}
	if m.engine.Status() != snake.StatusOver {
		t.Fatalf("Status = %v, want over", m.engine.Status())
	}
	if m.collision != snake.CollisionWall {
		t.Errorf("Collision = %v, want wall", m.collision)
	}
	if m.ticking {
		t.Error("Loop should stop on game over")
	}
	if !strings.Contains(m.View(), "Game Over") {
		t.Error("View should show the game over banner")
	}

	// Any key starts a new game
	m, cmd := send(t, m, runeKey('x'))
	if cmd == nil || m.engine.Status() != snake.StatusRunning {
		t.Error("Key press after game over should restart")
	}
	if m.collision != snake.CollisionNone {
		t.Error("Restart should clear the last collision")
	}
}

func TestGameModelRestartMidGame(t *testing.T) {
	m := newTestGame(t, nil, 80, 30)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = tick(t, m)
	m, _ = tick(t, m)

	oldGen := m.gen
	m, cmd := send(t, m, runeKey('r'))
	if cmd == nil {
		t.Fatal("Restart should schedule a tick")
	}
	if m.gen == oldGen {
		t.Error("Restart should start a new loop generation")
	}
	snap := m.engine.Snapshot()
	if snap.Ticks != 0 || len(snap.Snake) != 1 || snap.Status != snake.StatusRunning {
		t.Errorf("Unexpected state after restart: %+v", snap)
	}
}

func TestGameModelTooSmall(t *testing.T) {
	m := newTestGame(t, nil, 30, 10)

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("Loop should not start while the board does not fit")
	}
	if !strings.Contains(m.View(), "too small") {
		t.Error("View should explain the window is too small")
	}

	m, cmd = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})
	if cmd == nil || !m.ticking {
		t.Error("Growing the window should resume the loop")
	}
}

func TestGameModelQuitAndBack(t *testing.T) {
	m := newTestGame(t, nil, 80, 30)

	m, cmd := send(t, m, runeKey('q'))
	if cmd == nil || !m.IsQuitting() {
		t.Error("Q should quit")
	}
	if m.View() != "" {
		t.Error("View should be empty after quit")
	}

	m = newTestGame(t, nil, 80, 30)
	m.embedded = true
	m, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd != nil {
		t.Error("Embedded model must not send tea.Quit")
	}
	if !m.IsGoingBack() {
		t.Error("Esc should request the menu")
	}
}

func TestGameModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestGame(t, store, 80, 30).WithPlayer("ada")
	res := snake.TickResult{Score: 4, Status: snake.StatusOver, Collision: snake.CollisionSelf}
	m.gameOver(res)
	m.gameOver(res)

	scores, err := store.TopScores(BoardID("normal"), 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected 1 saved score, got %d", len(scores))
	}
	if scores[0].Score != 4 || scores[0].Player != "ada" {
		t.Errorf("Unexpected score entry: %+v", scores[0])
	}
	if m.best != 4 {
		t.Errorf("best = %d, want 4", m.best)
	}

	// Zero scores are not recorded
	m = newTestGame(t, store, 80, 30)
	m.gameOver(snake.TickResult{Status: snake.StatusOver})
	scores, _ = store.TopScores(BoardID("normal"), 10)
	if len(scores) != 1 {
		t.Errorf("Zero score was saved: %+v", scores)
	}

	// A new model picks up the stored best
	if m.best != 4 {
		t.Errorf("Loaded best = %d, want 4", m.best)
	}
}

func TestGameModelLogsFinalState(t *testing.T) {
	var buf bytes.Buffer
	m := newTestGame(t, nil, 80, 30)
	m.logger = log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	for i := 0; i < 25 && m.engine.Status() == snake.StatusRunning; i++ {
		m, _ = tick(t, m)
	}
	if m.engine.Status() != snake.StatusOver {
		t.Fatalf("Status = %v, want over", m.engine.Status())
	}

	out := buf.String()
	for _, want := range []string{"game over", "final state", "Ticks:", "Status: over"} {
		if !strings.Contains(out, want) {
			t.Errorf("Log output missing %q:\n%s", want, out)
		}
	}
}
