package tui

import "github.com/vovakirdan/tui-snake/internal/snake"

// Frame counts for transient effects. One frame is one engine tick.
const (
	flashFrames  = 3
	fasterFrames = 10
)

// Effects tracks short-lived visual feedback derived from tick events.
type Effects struct {
	flash  int
	faster int
}

// Observe decays running effects and starts new ones for the tick's events.
func (fx *Effects) Observe(res snake.TickResult) {
	if fx.flash > 0 {
		fx.flash--
	}
	if fx.faster > 0 {
		fx.faster--
	}
	if res.AteFood {
		fx.flash = flashFrames
	}
	if res.SpeedUp {
		fx.faster = fasterFrames
	}
}

// Clear stops all effects.
func (fx *Effects) Clear() {
	*fx = Effects{}
}

// Flashing reports whether the food/score highlight is active.
func (fx Effects) Flashing() bool {
	return fx.flash > 0
}

// ShowFaster reports whether the speed-up tag should be drawn.
func (fx Effects) ShowFaster() bool {
	return fx.faster > 0
}
