// Package tui provides the Bubble Tea host for the snake engine.
// It drives the tick loop, maps keys to engine commands and renders
// engine snapshots to the terminal, locally or over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the game model to advance the engine by one tick.
// Gen identifies the loop that scheduled it; messages from a superseded
// loop are dropped so only one loop is ever live.
type TickMsg struct {
	Gen int
}

// tickCmd schedules the next tick after the given interval.
func tickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return TickMsg{Gen: gen}
	})
}
