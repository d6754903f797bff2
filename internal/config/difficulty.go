package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named set of speed parameters.
type DifficultyPreset string

const (
	DifficultyClassic DifficultyPreset = "classic"
	DifficultyEasy    DifficultyPreset = "easy"
	DifficultyNormal  DifficultyPreset = "normal"
	DifficultyHard    DifficultyPreset = "hard"
	DifficultyFixed   DifficultyPreset = "fixed"
)

// Presets lists all presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{
		DifficultyClassic,
		DifficultyEasy,
		DifficultyNormal,
		DifficultyHard,
		DifficultyFixed,
	}
}

// Description returns a one-line summary for menus.
func (p DifficultyPreset) Description() string {
	switch p {
	case DifficultyClassic:
		return "20x20 board, 200ms, constant speed"
	case DifficultyEasy:
		return "slow start, speeds up every 10 points"
	case DifficultyNormal:
		return "config speed, speeds up on milestones"
	case DifficultyHard:
		return "fast start, speeds up every 3 points"
	case DifficultyFixed:
		return "config speed, no speed-ups"
	default:
		return ""
	}
}

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want classic, easy, normal, hard or fixed)", s)
}

// ApplySnakePreset modifies the config based on a difficulty preset.
// Normal keeps the loaded values.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyClassic:
		cfg.Board = BoardConfig{Size: 400, CellSize: 20}
		cfg.Speed = SpeedConfig{BaseMS: 200, MinMS: 200}
	case DifficultyEasy:
		cfg.Speed = SpeedConfig{BaseMS: 200, Milestone: 10, StepMS: 10, MinMS: 100}
	case DifficultyHard:
		cfg.Speed = SpeedConfig{BaseMS: 100, Milestone: 3, StepMS: 10, MinMS: 40}
	case DifficultyFixed:
		cfg.Speed.Milestone = 0
		cfg.Speed.StepMS = 0
	}
}
