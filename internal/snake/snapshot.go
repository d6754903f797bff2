package snake

import (
	"fmt"
	"strings"
	"time"
)

// TickResult describes the state after a tick and what happened during it.
// The presentation layer reacts to the event flags; the engine never calls
// back into it.
type TickResult struct {
	Snake    []Cell
	Food     Cell
	HasFood  bool
	Score    int
	Status   Status
	Interval time.Duration

	Collided  bool
	Collision CollisionKind
	AteFood   bool
	Grew      bool
	SpeedUp   bool
	Won       bool
	Stopped   bool // Tick was a no-op because the game is not running
}

// Snapshot is a copy of the complete game state for rendering and tests.
type Snapshot struct {
	Ticks     uint64
	TileCount int
	Snake     []Cell
	Food      Cell
	HasFood   bool
	Score     int
	Interval  time.Duration
	Committed Direction
	Pending   Direction
	Status    Status
	Won       bool
}

// Head returns the head cell.
func (s Snapshot) Head() Cell {
	return s.Snake[0]
}

// result builds a TickResult from the current state. Caller holds mu.
func (e *Engine) result() TickResult {
	return TickResult{
		Snake:    e.cells(),
		Food:     e.food,
		HasFood:  e.hasFood,
		Score:    e.score,
		Status:   e.status,
		Interval: e.interval,
		Won:      e.won,
	}
}

// cells copies the snake body. Caller holds mu.
func (e *Engine) cells() []Cell {
	out := make([]Cell, len(e.snake))
	copy(out, e.snake)
	return out
}

// Snapshot returns a copy of the current game state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	return Snapshot{
		Ticks:     e.ticks,
		TileCount: e.tileCount,
		Snake:     e.cells(),
		Food:      e.food,
		HasFood:   e.hasFood,
		Score:     e.score,
		Interval:  e.interval,
		Committed: e.committed,
		Pending:   e.pending,
		Status:    e.status,
		Won:       e.won,
	}
}

// DebugState returns a string representation of the game state.
func (e *Engine) DebugState() string {
	s := e.Snapshot()

	var b strings.Builder
	fmt.Fprintf(&b, "Ticks: %d, Score: %d, Status: %s\n", s.Ticks, s.Score, s.Status)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s (pending %s)\n", len(s.Snake), s.Committed, s.Pending)
	fmt.Fprintf(&b, "Head: (%d, %d), Food: (%d, %d) present=%v\n", s.Head().X, s.Head().Y, s.Food.X, s.Food.Y, s.HasFood)
	fmt.Fprintf(&b, "Interval: %s, Won: %v\n", s.Interval, s.Won)
	return b.String()
}
