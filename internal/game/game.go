package game

import (
	"time"

	"github.com/tomz197/phaseshift/internal/loop/config"
	"github.com/tomz197/phaseshift/internal/object"
)

// Spawner decides whether a wave enters on this tick.
// *object.WaveSpawner is the production implementation.
type Spawner interface {
	MaybeSpawn(now, lastSpawn time.Time, level int) (object.Wave, bool)
}

// TickOutcome reports what a single tick did, for logging and client events.
type TickOutcome struct {
	Applied  bool         // False when the tick was ignored outside Playing
	Spawned  *object.Wave // Wave added this tick, if any
	Passed   int          // Waves that left through the bottom and scored
	Collided *object.Wave // Wave that ended the game, if any
	LevelUp  bool         // Level increased as a result of this tick
}

// Over reports whether this tick ended the game.
func (o TickOutcome) Over() bool {
	return o.Collided != nil
}

// Start resets s to a fresh playing session and restarts the spawn clock at now.
// The reset is identical whatever state s was in.
func Start(s *State, now time.Time) {
	s.Started = true
	s.Over = false
	s.Score = 0
	s.Level = 1
	s.PlayerPhase = object.PhaseLight
	s.Waves = s.Waves[:0]
	s.Intensity = config.StartIntensity
	s.LastSpawn = now
	s.Ticks = 0
}

// TogglePhase flips the player's phase while playing and reports whether it did.
// Outside Playing it is a silent no-op.
func TogglePhase(s *State) bool {
	if s.Status() != StatusPlaying {
		return false
	}
	s.PlayerPhase = s.PlayerPhase.Toggle()
	return true
}

// Tick runs one frame: spawn, move, collide, score, recompute difficulty.
// It is a no-op outside Playing. The scheduler should stop calling it once
// the outcome reports Over.
func Tick(s *State, sp Spawner, now time.Time, viewportHeight float64) TickOutcome {
	if s.Status() != StatusPlaying {
		return TickOutcome{}
	}
	out := TickOutcome{Applied: true}
	s.Ticks++

	if w, ok := sp.MaybeSpawn(now, s.LastSpawn, s.Level); ok {
		s.Waves = append(s.Waves, w)
		s.LastSpawn = now
		out.Spawned = &w
	}

	res := Advance(s.Waves, s.PlayerPhase, viewportHeight)
	s.Waves = res.Kept
	out.Passed = len(res.Passed)
	s.Score += out.Passed * config.ScorePerWave

	if res.Collided != nil {
		s.Over = true
		out.Collided = res.Collided
	}

	prevLevel := s.Level
	s.recompute()
	out.LevelUp = s.Level > prevLevel
	return out
}
