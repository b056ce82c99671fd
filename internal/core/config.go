package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
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

// TickInterval returns the wall-clock duration of one simulation tick.
// Only frame drivers use it; games count ticks, never time.
func (c RuntimeConfig) TickInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// Phase is the lifecycle tag of a game session.
type Phase int

const (
	PhaseIdle     Phase = iota // Waiting for the first flap
	PhasePlaying               // Simulation running
	PhaseGameOver              // Frozen after a collision
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score int   // Current session score
	Best  int   // Best score seen by this game instance
	Phase Phase // Session lifecycle tag
}

// GameOver reports whether the session has ended.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// Event is something noteworthy that happened during a tick.
// Frontends use events for feedback such as sound effects.
type Event int

const (
	EventStart Event = iota + 1 // A new session began
	EventFlap                   // The body was launched upward
	EventScore                  // An obstacle was passed
	EventCrash                  // The session ended in a collision
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventStart:
		return "start"
	case EventFlap:
		return "flap"
	case EventScore:
		return "score"
	case EventCrash:
		return "crash"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State    GameState
	Events   []Event
	Continue bool // false once a quit intent was consumed
}
