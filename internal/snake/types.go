package snake

// Cell is a board position in grid units.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by the given direction's unit delta.
func (c Cell) Add(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Delta returns the unit step (dx, dy) for the direction.
// Y grows downward, matching screen coordinates.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Valid reports whether d is one of the four movement directions.
func (d Direction) Valid() bool {
	return d >= DirRight && d <= DirUp
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Status is the lifecycle state of a game.
type Status int

const (
	StatusNotStarted Status = iota
	StatusRunning
	StatusOver
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusRunning:
		return "running"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}

// CollisionKind says what ended the game on a colliding tick.
type CollisionKind int

const (
	CollisionNone CollisionKind = iota
	CollisionWall
	CollisionSelf
)

func (k CollisionKind) String() string {
	switch k {
	case CollisionWall:
		return "wall"
	case CollisionSelf:
		return "self"
	default:
		return "none"
	}
}
