package core

import (
	"errors"
	"fmt"
)

// Minimum logical viewport the simulation accepts.
const (
	MinViewportW = 100
	MinViewportH = 100
)

// ErrSurfaceUnavailable is returned when the drawing surface cannot be
// acquired or is too small to play on. The frame loop must not start.
var ErrSurfaceUnavailable = errors.New("drawing surface unavailable")

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to size the viewport and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Viewport width in logical pixels
	ScreenH  int   // Viewport height in logical pixels
	TickRate int   // Frame-driver invocations per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  800,
		ScreenH:  600,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// ValidateViewport checks that a surface of w x h logical pixels can host
// a run.
func ValidateViewport(w, h int) error {
	if w < MinViewportW || h < MinViewportH {
		return fmt.Errorf("core: viewport %dx%d below %dx%d: %w",
			w, h, MinViewportW, MinViewportH, ErrSurfaceUnavailable)
	}
	return nil
}

// RunState is the run lifecycle: ready -> playing -> gameOver -> playing ...
type RunState int

const (
	StateReady RunState = iota
	StatePlaying
	StateGameOver
)

// String returns the name used by the presentation layer.
func (s RunState) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// GameState is the only state the presentation layer may read.
type GameState struct {
	State RunState
	Score int
}

// Event reports something the frontend may react to (sound, logging).
type Event int

const (
	EventNone    Event = iota
	EventStart         // ready -> playing
	EventFlap          // impulse applied
	EventRestart       // gameOver -> playing
	EventScore         // an obstacle was passed
	EventCrash         // run ended
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventStart:
		return "start"
	case EventFlap:
		return "flap"
	case EventRestart:
		return "restart"
	case EventScore:
		return "score"
	case EventCrash:
		return "crash"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the step produced the given event.
func (r StepResult) Has(e Event) bool {
	for _, got := range r.Events {
		if got == e {
			return true
		}
	}
	return false
}
