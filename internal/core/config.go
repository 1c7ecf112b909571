package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic scrambling.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic scrambles

	// LevelsDir is an extra directory of level files, merged over the
	// built-in set. Empty means the process-wide default.
	LevelsDir string
	// StartLevel is the level ID to open first. Carrying it here keeps
	// concurrent sessions (SSH) from sharing selection state. Empty
	// means the first level in ID order.
	StartLevel string
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	LevelID  string // Active level
	Moves    int    // Rotations applied since the level loaded
	Solved   bool   // Whether the active level is in the solved state
	GameOver bool   // Whether the session has ended (last level completed)
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
