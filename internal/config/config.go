// Package config provides YAML-based settings loading and difficulty
// presets for the snake game.
package config

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Board BoardConfig `yaml:"board"`
	Speed SpeedConfig `yaml:"speed"`
	Food  FoodConfig  `yaml:"food"`
}

// BoardConfig defines the board geometry in pixels.
// The grid has Size/CellSize tiles per side.
type BoardConfig struct {
	Size     int `yaml:"size"`
	CellSize int `yaml:"cell_size"`
}

// SpeedConfig defines the tick interval and its progression.
type SpeedConfig struct {
	BaseMS    int `yaml:"base_ms"`
	Milestone int `yaml:"milestone"` // Score delta between speed-ups; 0 disables
	StepMS    int `yaml:"step_ms"`
	MinMS     int `yaml:"min_ms"`
}

// FoodConfig defines food placement parameters.
type FoodConfig struct {
	MaxAttempts int `yaml:"max_attempts"`
}

// TileCount returns the number of cells per board side.
func (c SnakeConfig) TileCount() int {
	if c.Board.CellSize <= 0 {
		return 0
	}
	return c.Board.Size / c.Board.CellSize
}
