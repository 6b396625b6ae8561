package core

// RuntimeConfig contains the driver settings for a single game program.
// The game world itself is sized by config.DragonConfig; ScreenW and
// ScreenH describe the terminal window the world is drawn into.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Render frames per second (default 60)
	Seed     int64 // RNG seed for obstacle placement
	Fit      bool  // Size the world to the terminal while in the menu
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  50,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
