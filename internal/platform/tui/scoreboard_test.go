package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func TestScoreboardBoards(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore(BoardID("normal"), "ada", 12)
	store.SaveScore(BoardID("normal"), "", 3)
	store.SaveScore(BoardID("hard"), "bob", 40)

	m := NewScoreboardModel(store, "normal", 100, 30)
	if m.boards[m.cursor] != config.DifficultyNormal {
		t.Fatalf("Opened on %q, want normal", m.boards[m.cursor])
	}
	if len(m.scores) != 2 || m.scores[0].Score != 12 {
		t.Errorf("Unexpected normal scores: %+v", m.scores)
	}
	if m.stats == nil || m.stats.GamesCount != 2 {
		t.Errorf("Unexpected stats: %+v", m.stats)
	}
	if !strings.Contains(m.View(), "ada") {
		t.Error("View should list the player")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.boards[m.cursor] != config.DifficultyHard {
		t.Fatalf("Tab moved to %q, want hard", m.boards[m.cursor])
	}
	if len(m.scores) != 1 || m.scores[0].Player != "bob" {
		t.Errorf("Unexpected hard scores: %+v", m.scores)
	}

	// Wraps around in both directions
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.boards[m.cursor] != config.DifficultyClassic {
		t.Errorf("Tab past the last board = %q, want classic", m.boards[m.cursor])
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.boards[m.cursor] != config.DifficultyFixed {
		t.Errorf("Shift+Tab from first board = %q, want fixed", m.boards[m.cursor])
	}
}

func TestScoreboardBackAndEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, "classic", 60, 20)
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("Empty board should say so")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() || cmd == nil {
		t.Error("Esc should go back and end the standalone program")
	}
}
