// Package snake implements the Snake game-state engine.
//
// The engine owns the board, the snake, the food, the score and the tick
// interval. It performs no I/O and never schedules itself: a driver calls
// Tick at the interval the engine reports, and an input layer calls
// SetDirection and Start between ticks.
package snake

import (
	"math/rand"
	"sync"
	"time"
)

// Engine is the authoritative Snake game state.
// All methods are safe for concurrent use.
type Engine struct {
	mu sync.Mutex

	cfg       Config
	tileCount int
	rng       *rand.Rand

	ticks    uint64
	score    int
	interval time.Duration
	status   Status
	won      bool

	// Snake state
	snake     []Cell    // Head at index 0
	committed Direction // Applied on the most recent tick
	pending   Direction // Buffered for the next tick

	food    Cell
	hasFood bool
}

// New creates an engine in the NotStarted state.
// A zero Config.Seed seeds the RNG from the clock.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	e := &Engine{
		cfg:       cfg,
		tileCount: cfg.TileCount(),
		rng:       rand.New(rand.NewSource(seed)),
		interval:  cfg.BaseSpeed,
		committed: DirRight,
		pending:   DirRight,
	}
	e.snake = []Cell{e.center()}
	return e, nil
}

// center returns the spawn cell.
func (e *Engine) center() Cell {
	return Cell{X: e.tileCount / 2, Y: e.tileCount / 2}
}

// Start begins a new game unless one is already running.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.status == StatusRunning {
		return
	}
	e.reset()
}

// Reset begins a new game unconditionally, discarding any game in progress.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.reset()
}

func (e *Engine) reset() {
	e.snake = []Cell{e.center()}
	e.score = 0
	e.ticks = 0
	e.interval = e.cfg.BaseSpeed
	e.committed = DirRight
	e.pending = DirRight
	e.won = false
	e.status = StatusRunning
	e.hasFood = e.placeFood()
}

// SetDirection buffers a turn for the next tick.
// Requests while not running, and reversals of the committed direction,
// are ignored. Later calls before a tick overwrite earlier ones.
func (e *Engine) SetDirection(d Direction) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.status != StatusRunning || !d.Valid() {
		return
	}
	if d == e.committed.Opposite() {
		return
	}
	e.pending = d
}

// Tick advances the game by one cell.
// It is a no-op unless the game is running.
func (e *Engine) Tick() TickResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.status != StatusRunning {
		res := e.result()
		res.Stopped = true
		return res
	}

	e.ticks++
	e.committed = e.pending

	head := e.snake[0].Add(e.committed)
	e.snake = append([]Cell{head}, e.snake...)

	var ate, speedUp, boardFull bool
	if e.hasFood && head == e.food {
		ate = true
		e.score++
		e.hasFood = e.placeFood()
		boardFull = !e.hasFood
		speedUp = e.speedUp()
	} else {
		e.snake = e.snake[:len(e.snake)-1]
	}

	collision := e.collision()
	switch {
	case collision != CollisionNone:
		e.status = StatusOver
	case boardFull:
		e.status = StatusOver
		e.won = true
	}

	res := e.result()
	res.AteFood = ate
	res.Grew = ate
	res.SpeedUp = speedUp
	res.Collision = collision
	res.Collided = collision != CollisionNone
	return res
}

// collision checks the head against the walls and the rest of the body.
func (e *Engine) collision() CollisionKind {
	head := e.snake[0]
	if head.X < 0 || head.X >= e.tileCount || head.Y < 0 || head.Y >= e.tileCount {
		return CollisionWall
	}
	for _, seg := range e.snake[1:] {
		if seg == head {
			return CollisionSelf
		}
	}
	return CollisionNone
}

// speedUp shortens the interval when the score reaches a milestone.
func (e *Engine) speedUp() bool {
	if e.cfg.SpeedMilestone <= 0 || e.score%e.cfg.SpeedMilestone != 0 {
		return false
	}
	next := max(e.interval-e.cfg.SpeedStep, e.cfg.MinSpeed)
	if next >= e.interval {
		return false
	}
	e.interval = next
	return true
}

// placeFood moves the food to a random free cell.
// Returns false if the snake covers the whole board.
func (e *Engine) placeFood() bool {
	for range e.cfg.MaxFoodAttempts {
		c := Cell{X: e.rng.Intn(e.tileCount), Y: e.rng.Intn(e.tileCount)}
		if !e.isSnakeAt(c) {
			e.food = c
			return true
		}
	}

	free := e.freeCells()
	if len(free) == 0 {
		return false
	}
	e.food = free[e.rng.Intn(len(free))]
	return true
}

// freeCells lists every in-bounds cell the snake does not occupy.
func (e *Engine) freeCells() []Cell {
	occupied := make(map[Cell]bool, len(e.snake))
	for _, seg := range e.snake {
		occupied[seg] = true
	}

	var free []Cell
	for y := range e.tileCount {
		for x := range e.tileCount {
			c := Cell{X: x, Y: y}
			if !occupied[c] {
				free = append(free, c)
			}
		}
	}
	return free
}

// isSnakeAt checks if the snake occupies the given cell.
func (e *Engine) isSnakeAt(c Cell) bool {
	for _, seg := range e.snake {
		if seg == c {
			return true
		}
	}
	return false
}

// Status returns the lifecycle state.
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// Score returns the current score.
func (e *Engine) Score() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.score
}

// Interval returns the current tick interval.
func (e *Engine) Interval() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.interval
}

// TileCount returns the board edge in cells.
func (e *Engine) TileCount() int {
	return e.tileCount
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}
