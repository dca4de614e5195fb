package game

import (
	"testing"
	"time"

	"github.com/tomz197/phaseshift/internal/object"
)

// noSpawn never adds a wave.
type noSpawn struct{}

func (noSpawn) MaybeSpawn(_, _ time.Time, _ int) (object.Wave, bool) {
	return object.Wave{}, false
}

// zeroBits always yields light waves.
type zeroBits struct{}

func (zeroBits) Uint64() uint64 { return 0 }

var t0 = time.Unix(1700000000, 0)

func playing() *State {
	s := NewState()
	Start(s, t0)
	return s
}

func TestNewStateIsIdle(t *testing.T) {
	s := NewState()
	if s.Status() != StatusIdle {
		t.Fatalf("status = %v, want idle", s.Status())
	}
	if s.Level != 1 || s.Intensity != 1 || s.PlayerPhase != object.PhaseLight {
		t.Fatalf("unexpected idle state %+v", s)
	}
}

func TestStartFromOverIsFreshState(t *testing.T) {
	s := playing()
	s.Score = 730
	s.Level = 8
	s.Intensity = 2.4
	s.PlayerPhase = object.PhaseDark
	s.Waves = []object.Wave{{ID: 3, Y: 200}}
	s.Over = true
	if s.Status() != StatusOver {
		t.Fatalf("setup: status = %v, want over", s.Status())
	}

	later := t0.Add(time.Minute)
	Start(s, later)

	if s.Status() != StatusPlaying {
		t.Fatalf("status = %v, want playing", s.Status())
	}
	if s.Score != 0 || s.Level != 1 || s.Intensity != 1 || s.PlayerPhase != object.PhaseLight || len(s.Waves) != 0 {
		t.Fatalf("restart did not reset: %+v", s)
	}
	if !s.LastSpawn.Equal(later) {
		t.Fatalf("spawn clock = %v, want %v", s.LastSpawn, later)
	}
}

func TestStartWhilePlayingFullyResets(t *testing.T) {
	s := playing()
	s.Score = 40
	s.PlayerPhase = object.PhaseDark
	s.Waves = []object.Wave{{ID: 1}}

	Start(s, t0.Add(time.Second))

	if s.Score != 0 || s.PlayerPhase != object.PhaseLight || len(s.Waves) != 0 || s.Over {
		t.Fatalf("start from playing should behave like a restart, got %+v", s)
	}
}

func TestTogglePhaseOnlyWhilePlaying(t *testing.T) {
	s := NewState()
	if TogglePhase(s) {
		t.Fatalf("toggle applied while idle")
	}
	if s.PlayerPhase != object.PhaseLight {
		t.Fatalf("idle toggle changed phase")
	}

	Start(s, t0)
	if !TogglePhase(s) || s.PlayerPhase != object.PhaseDark {
		t.Fatalf("toggle while playing did not flip to dark")
	}
	if !TogglePhase(s) || s.PlayerPhase != object.PhaseLight {
		t.Fatalf("second toggle did not flip back to light")
	}

	s.Over = true
	if TogglePhase(s) {
		t.Fatalf("toggle applied after game over")
	}
}

func TestTickIgnoredOutsidePlaying(t *testing.T) {
	s := NewState()
	if out := Tick(s, noSpawn{}, t0, viewport); out.Applied {
		t.Fatalf("tick applied while idle")
	}

	s = playing()
	s.Over = true
	s.Score = 50
	s.Waves = []object.Wave{{ID: 1, Y: 1049, Speed: 2}}
	out := Tick(s, object.NewWaveSpawner(zeroBits{}), t0.Add(time.Hour), viewport)
	if out.Applied {
		t.Fatalf("tick applied after game over")
	}
	if s.Score != 50 || len(s.Waves) != 1 || s.Waves[0].Y != 1049 {
		t.Fatalf("frozen state mutated: %+v", s)
	}
}

func TestTickCollisionEndsGame(t *testing.T) {
	s := playing()
	s.Waves = []object.Wave{waveAt(1, 700, object.PhaseDark)}

	out := Tick(s, noSpawn{}, t0, viewport)
	if !out.Over() || s.Status() != StatusOver {
		t.Fatalf("expected game over, status = %v", s.Status())
	}
	if out.Collided.ID != 1 {
		t.Fatalf("collided = %d, want 1", out.Collided.ID)
	}
}

func TestTickMatchingPhaseSurvives(t *testing.T) {
	s := playing()
	s.Waves = []object.Wave{waveAt(1, 700, object.PhaseLight)}

	Tick(s, noSpawn{}, t0, viewport)
	if s.Status() != StatusPlaying || len(s.Waves) != 1 {
		t.Fatalf("matching wave should pass through the player, status=%v waves=%d", s.Status(), len(s.Waves))
	}
}

func TestTickPassAddsTen(t *testing.T) {
	s := playing()
	s.Waves = []object.Wave{waveAt(1, 1051, object.PhaseDark)}

	out := Tick(s, noSpawn{}, t0, viewport)
	if out.Passed != 1 || s.Score != 10 || len(s.Waves) != 0 {
		t.Fatalf("passed=%d score=%d waves=%d, want 1, 10, 0", out.Passed, s.Score, len(s.Waves))
	}
}

func TestTickLevelUpRecomputesIntensity(t *testing.T) {
	s := playing()
	s.Score = 95
	s.Level = LevelFor(95)
	s.Intensity = IntensityFor(s.Level)
	if !approx(s.Intensity, 0.3) {
		t.Fatalf("setup: intensity = %v, want 0.3", s.Intensity)
	}
	s.Waves = []object.Wave{waveAt(1, 1051, object.PhaseLight)}

	out := Tick(s, noSpawn{}, t0, viewport)
	if s.Score != 105 || s.Level != 2 || !approx(s.Intensity, 0.6) || !out.LevelUp {
		t.Fatalf("score=%d level=%d intensity=%v levelUp=%v, want 105 2 0.6 true", s.Score, s.Level, s.Intensity, out.LevelUp)
	}
}

func TestFirstTickRecomputesStartIntensity(t *testing.T) {
	s := playing()
	Tick(s, noSpawn{}, t0, viewport)
	if !approx(s.Intensity, 0.3) {
		t.Fatalf("intensity after first tick = %v, want 0.3", s.Intensity)
	}
}

func TestTickSpawnsOnInterval(t *testing.T) {
	s := playing()
	sp := object.NewWaveSpawner(zeroBits{})

	if out := Tick(s, sp, t0.Add(750*time.Millisecond), viewport); out.Spawned != nil {
		t.Fatalf("spawned before the level 1 interval elapsed")
	}
	at := t0.Add(751 * time.Millisecond)
	out := Tick(s, sp, at, viewport)
	if out.Spawned == nil || len(s.Waves) != 1 {
		t.Fatalf("expected a spawn after 751ms")
	}
	if !s.LastSpawn.Equal(at) {
		t.Fatalf("spawn clock = %v, want %v", s.LastSpawn, at)
	}
	// Spawned waves move on the same tick
	if s.Waves[0].Y != -50+2.5 {
		t.Fatalf("new wave y = %v, want %v", s.Waves[0].Y, -50+2.5)
	}
	if out := Tick(s, sp, at.Add(100*time.Millisecond), viewport); out.Spawned != nil {
		t.Fatalf("spawned again before the interval elapsed since the last spawn")
	}
}

func TestWaveKeepsSpawnSpeedAfterLevelUp(t *testing.T) {
	s := playing()
	sp := object.NewWaveSpawner(zeroBits{})
	Tick(s, sp, t0.Add(time.Second), viewport)
	if len(s.Waves) != 1 || s.Waves[0].Speed != 2.5 {
		t.Fatalf("expected one level 1 wave at speed 2.5, got %+v", s.Waves)
	}

	s.Score = 290
	Tick(s, noSpawn{}, t0.Add(time.Second), viewport)
	if s.Level != 3 {
		t.Fatalf("level = %d, want 3", s.Level)
	}
	before := s.Waves[0].Y
	Tick(s, noSpawn{}, t0.Add(time.Second), viewport)
	if s.Waves[0].Speed != 2.5 || s.Waves[0].Y-before != 2.5 {
		t.Fatalf("wave speed changed with level: speed=%v moved=%v", s.Waves[0].Speed, s.Waves[0].Y-before)
	}

	w, ok := sp.MaybeSpawn(t0.Add(time.Hour), t0, s.Level)
	if !ok || w.Speed != 3.5 {
		t.Fatalf("new spawn at level 3 speed = %v, want 3.5", w.Speed)
	}
}

func TestWaveIDsUniqueAcrossRestarts(t *testing.T) {
	s := playing()
	sp := object.NewWaveSpawner(zeroBits{})
	seen := make(map[int]bool)

	now := t0
	for round := 0; round < 3; round++ {
		Start(s, now)
		for i := 0; i < 5; i++ {
			now = now.Add(time.Second)
			out := Tick(s, sp, now, viewport)
			if out.Spawned == nil {
				t.Fatalf("round %d tick %d did not spawn", round, i)
			}
			if seen[out.Spawned.ID] {
				t.Fatalf("wave id %d reused", out.Spawned.ID)
			}
			seen[out.Spawned.ID] = true
		}
	}
}

func TestSnapshotDoesNotAlias(t *testing.T) {
	s := playing()
	s.Waves = []object.Wave{{ID: 1, Y: 10, Speed: 2}}
	snap := s.Snapshot()
	Tick(s, noSpawn{}, t0, viewport)
	if snap.Waves[0].Y != 10 {
		t.Fatalf("snapshot changed after tick: y=%v", snap.Waves[0].Y)
	}
	if snap.Status != StatusPlaying {
		t.Fatalf("snapshot status = %v, want playing", snap.Status)
	}
}
