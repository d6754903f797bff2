package core

// RuntimeConfig describes the host environment a game session runs in.
type RuntimeConfig struct {
	ScreenW int    // Screen width in characters
	ScreenH int    // Screen height in characters
	Seed    int64  // RNG seed for deterministic gameplay (0 = time-based)
	Preset  string // Difficulty preset name, used as the score board key
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
		Preset:  "normal",
	}
}
