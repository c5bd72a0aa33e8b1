package core

// RuntimeConfig is what the platform hands a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
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

// TickMs returns the simulated milliseconds per tick.
func (c RuntimeConfig) TickMs() int {
	if c.TickRate <= 0 {
		return 1000 / 60
	}
	return max(1000/c.TickRate, 1)
}

// GameState is the summary the platform reads after every tick.
type GameState struct {
	Score    int  // Current score
	Lines    int  // Rows cleared this run
	Level    int  // Current level
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
