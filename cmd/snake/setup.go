package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// loadSettings loads the YAML config and resolves the --difficulty flag.
func loadSettings() (config.SnakeConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.SnakeConfig{}, "", err
	}
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, "", err
	}
	return cfg, preset, nil
}

// newEngine builds an engine for the preset on top of the loaded settings.
func newEngine(base config.SnakeConfig, preset config.DifficultyPreset, seed int64) (*snake.Engine, error) {
	cfg := base
	config.ApplySnakePreset(&cfg, preset)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return snake.New(snake.ConfigFrom(cfg, seed))
}

// runtimeConfig sizes the screen from the controlling terminal.
func runtimeConfig(preset config.DifficultyPreset) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	cfg.Preset = string(preset)
	return cfg
}

// newLogger returns a file logger when --log-file is set. Otherwise logs
// are discarded so they never draw over the game.
func newLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}

// playerName returns the local user name recorded with scores.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
