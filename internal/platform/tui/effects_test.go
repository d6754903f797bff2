package tui

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

func TestEffectsFlashDecays(t *testing.T) {
	var fx Effects

	fx.Observe(snake.TickResult{AteFood: true})
	if !fx.Flashing() {
		t.Fatal("Eating should start the flash")
	}

	for i := 0; i < flashFrames-1; i++ {
		fx.Observe(snake.TickResult{})
	}
	if !fx.Flashing() {
		t.Error("Flash should last flashFrames ticks")
	}

	fx.Observe(snake.TickResult{})
	if fx.Flashing() {
		t.Error("Flash should have ended")
	}
}

func TestEffectsFaster(t *testing.T) {
	var fx Effects

	fx.Observe(snake.TickResult{AteFood: true, SpeedUp: true})
	if !fx.ShowFaster() || !fx.Flashing() {
		t.Fatal("Speed-up tick should start both effects")
	}

	for i := 0; i < fasterFrames; i++ {
		fx.Observe(snake.TickResult{})
	}
	if fx.ShowFaster() {
		t.Error("Faster tag should have ended")
	}

	fx.Observe(snake.TickResult{SpeedUp: true})
	fx.Clear()
	if fx.ShowFaster() || fx.Flashing() {
		t.Error("Clear should stop all effects")
	}
}
