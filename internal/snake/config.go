package snake

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// ErrInvalidConfig is wrapped by every error New returns for bad settings.
var ErrInvalidConfig = errors.New("snake: invalid config")

// Config holds the engine parameters.
type Config struct {
	BoardSize int // Board edge in pixels
	CellSize  int // Cell edge in pixels; BoardSize must be a multiple

	BaseSpeed      time.Duration // Tick interval at the start of a game
	SpeedMilestone int           // Score delta between speed-ups; 0 disables
	SpeedStep      time.Duration // Interval reduction per milestone
	MinSpeed       time.Duration // Interval floor

	// MaxFoodAttempts caps rejection sampling before falling back to
	// scanning the free cells.
	MaxFoodAttempts int

	Seed int64
}

// ClassicConfig returns the engine config of the classic preset: a 20x20
// board at a fixed 200ms per tick.
func ClassicConfig() Config {
	s := config.DefaultSnakeConfig()
	config.ApplySnakePreset(&s, config.DifficultyClassic)
	return ConfigFrom(s, 0)
}

// ConfigFrom converts loaded settings into an engine config.
func ConfigFrom(s config.SnakeConfig, seed int64) Config {
	return Config{
		BoardSize:       s.Board.Size,
		CellSize:        s.Board.CellSize,
		BaseSpeed:       time.Duration(s.Speed.BaseMS) * time.Millisecond,
		SpeedMilestone:  s.Speed.Milestone,
		SpeedStep:       time.Duration(s.Speed.StepMS) * time.Millisecond,
		MinSpeed:        time.Duration(s.Speed.MinMS) * time.Millisecond,
		MaxFoodAttempts: s.Food.MaxAttempts,
		Seed:            seed,
	}
}

// TileCount returns the number of cells along each board edge.
func (c Config) TileCount() int {
	if c.CellSize <= 0 {
		return 0
	}
	return c.BoardSize / c.CellSize
}

// Validate checks the config and returns an error wrapping ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.BoardSize <= 0 || c.CellSize <= 0:
		return fmt.Errorf("%w: board size %d and cell size %d must be positive", ErrInvalidConfig, c.BoardSize, c.CellSize)
	case c.BoardSize%c.CellSize != 0:
		return fmt.Errorf("%w: board size %d is not a multiple of cell size %d", ErrInvalidConfig, c.BoardSize, c.CellSize)
	case c.TileCount() < 2:
		return fmt.Errorf("%w: board needs at least 2 tiles per side, got %d", ErrInvalidConfig, c.TileCount())
	case c.BaseSpeed <= 0:
		return fmt.Errorf("%w: base speed must be positive, got %s", ErrInvalidConfig, c.BaseSpeed)
	case c.MinSpeed <= 0 || c.MinSpeed > c.BaseSpeed:
		return fmt.Errorf("%w: min speed %s must be in (0, %s]", ErrInvalidConfig, c.MinSpeed, c.BaseSpeed)
	case c.SpeedMilestone < 0 || c.SpeedStep < 0:
		return fmt.Errorf("%w: speed milestone and step must not be negative", ErrInvalidConfig)
	case c.MaxFoodAttempts <= 0:
		return fmt.Errorf("%w: max food attempts must be positive, got %d", ErrInvalidConfig, c.MaxFoodAttempts)
	}
	return nil
}
