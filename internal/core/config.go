package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Current score (truncated)
	Level     int  // Current level
	HighScore int  // Best recorded score (truncated)
	GameOver  bool // Whether the attempt has ended and the loss screen is up
	Dying     bool // Whether the death animation is playing
	Paused    bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// TickRate is the frame rate the game wants for the next tick.
	// The platform paces its loop to this value.
	TickRate int
}
