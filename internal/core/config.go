package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and to derive the fixed
// simulation timestep.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for the backdrop starfield
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of an attempt.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Score for the flight log; 0 until touchdown
	GameOver bool // Whether the attempt has ended
	Landed   bool // Whether the touchdown counted as a landing
	Paused   bool // Whether the descent is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
