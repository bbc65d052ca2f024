package core

// Logical playfield size in world units.
const (
	FieldWidth  = 288
	FieldHeight = 512
)

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Output width: pixels for the window, cells for the terminal
	ScreenH  int   // Output height
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig sized for the window frontend.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  FieldWidth,
		ScreenH:  FieldHeight,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickSeconds returns the duration of one tick in seconds.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState is returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	Highest  int    // Best score seen by this game instance
	Phase    string // Name of the active state machine state
	GameOver bool   // True while the game-over screen is shown
	Paused   bool
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Quit  bool // The game asked the frontend to close
}
