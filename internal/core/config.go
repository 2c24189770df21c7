package core

// RuntimeConfig contains configuration passed to a play session at startup.
// The platform layer fills it from flags and the terminal size.
type RuntimeConfig struct {
	ScreenW     int    // Screen width in characters
	ScreenH     int    // Screen height in characters
	RefreshRate int    // Redraws per second (default 10)
	Seed        int64  // RNG seed for board generation
	StartLevel  int    // Level preselected on the start screen
	Username    string // Player shown in the header, set for SSH sessions
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:     80,
		ScreenH:     24,
		RefreshRate: 10,
		Seed:        0, // 0 means use current time in platform layer
		StartLevel:  1,
	}
}
