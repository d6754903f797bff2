package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in Snake configuration.
// It matches defaults/snake.yaml and is used if the embedded file is unreadable.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Size:     400,
			CellSize: 20,
		},
		Speed: SpeedConfig{
			BaseMS:    150,
			Milestone: 5,
			StepMS:    10,
			MinMS:     60,
		},
		Food: FoodConfig{
			MaxAttempts: 1000,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
