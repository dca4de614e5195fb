// Package game implements the Phase Shift rules: spawning, wave motion,
// collision, scoring and the start/playing/over state machine.
//
// All rules operate on an explicit *State owned by the caller. Nothing here is
// safe for concurrent use; the loop server serializes access.
package game

import (
	"time"

	"github.com/tomz197/phaseshift/internal/loop/config"
	"github.com/tomz197/phaseshift/internal/object"
)

// Status is the phase of a session derived from the Started/Over flags.
type Status int

const (
	StatusIdle    Status = iota // Not started, title screen
	StatusPlaying               // Started and not over
	StatusOver                  // Collided, waiting for a restart
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPlaying:
		return "playing"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}

// State is the mutable record of one game session.
// Level and Intensity are only ever derived from Score.
type State struct {
	Started     bool
	Over        bool
	Score       int
	Level       int
	PlayerPhase object.Phase
	Intensity   float64
	Waves       []object.Wave // Live waves in spawn order
	LastSpawn   time.Time     // Spawn clock, reset on start and on every spawn
	Ticks       uint64        // Ticks applied since the last start
}

// NewState returns a session on the title screen.
func NewState() *State {
	return &State{
		Level:       1,
		PlayerPhase: object.PhaseLight,
		Intensity:   config.StartIntensity,
	}
}

// Status derives the state machine position from the flags.
func (s *State) Status() Status {
	switch {
	case !s.Started:
		return StatusIdle
	case s.Over:
		return StatusOver
	default:
		return StatusPlaying
	}
}

// Snapshot is an immutable copy of a State for the presentation layer.
type Snapshot struct {
	Status      Status
	Score       int
	Level       int
	PlayerPhase object.Phase
	Intensity   float64
	Waves       []object.Wave
	Ticks       uint64
}

// Snapshot copies the state; the wave slice does not alias the live collection.
func (s *State) Snapshot() Snapshot {
	waves := make([]object.Wave, len(s.Waves))
	copy(waves, s.Waves)
	return Snapshot{
		Status:      s.Status(),
		Score:       s.Score,
		Level:       s.Level,
		PlayerPhase: s.PlayerPhase,
		Intensity:   s.Intensity,
		Waves:       waves,
		Ticks:       s.Ticks,
	}
}

// recompute derives level and intensity from the current score.
func (s *State) recompute() {
	s.Level = LevelFor(s.Score)
	s.Intensity = IntensityFor(s.Level)
}
