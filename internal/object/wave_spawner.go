package object

import (
	"math/rand/v2"
	"time"

	"github.com/tomz197/phaseshift/internal/loop/config"
)

// BitSource supplies random bits for phase selection.
// *rand.PCG and *rand.Rand from math/rand/v2 both satisfy it.
type BitSource interface {
	Uint64() uint64
}

// WaveSpawner decides when a new wave enters the screen.
// It owns the wave id allocator, so ids stay unique across restarts.
type WaveSpawner struct {
	src    BitSource
	nextID int
}

// NewWaveSpawner creates a spawner drawing phases from src.
// A nil src falls back to a randomly seeded PCG.
func NewWaveSpawner(src BitSource) *WaveSpawner {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &WaveSpawner{src: src}
}

// SpawnInterval returns the minimum time between spawns at the given level.
// It shrinks by SpawnIntervalStep per level and never drops below SpawnIntervalMin.
func SpawnInterval(level int) time.Duration {
	interval := config.SpawnIntervalBase - time.Duration(level)*config.SpawnIntervalStep
	if interval < config.SpawnIntervalMin {
		return config.SpawnIntervalMin
	}
	return interval
}

// WaveSpeed returns the per-tick speed of a wave spawned at the given level.
func WaveSpeed(level int) float64 {
	return config.WaveBaseSpeed + float64(level)*config.WaveSpeedPerLevel
}

// MaybeSpawn returns a new wave when more than SpawnInterval(level) has elapsed
// since lastSpawn. The caller must reset its spawn clock to now when ok is true.
func (s *WaveSpawner) MaybeSpawn(now, lastSpawn time.Time, level int) (w Wave, ok bool) {
	if now.Sub(lastSpawn) <= SpawnInterval(level) {
		return Wave{}, false
	}
	return s.spawn(level), true
}

func (s *WaveSpawner) spawn(level int) Wave {
	w := Wave{
		ID:    s.nextID,
		Y:     config.WaveSpawnY,
		Phase: s.randomPhase(),
		Speed: WaveSpeed(level),
	}
	s.nextID++
	return w
}

// randomPhase picks light or dark with equal probability from the low bit.
func (s *WaveSpawner) randomPhase() Phase {
	if s.src.Uint64()&1 == 0 {
		return PhaseLight
	}
	return PhaseDark
}
