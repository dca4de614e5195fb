package game

import (
	"math"

	"github.com/tomz197/phaseshift/internal/loop/config"
)

// LevelFor derives the level from a score: one level per PointsPerLevel points, starting at 1.
func LevelFor(score int) int {
	return score/config.PointsPerLevel + 1
}

// IntensityFor derives the visual escalation factor from a level, capped at MaxIntensity.
func IntensityFor(level int) float64 {
	return math.Min(float64(level)*config.IntensityPerLevel, config.MaxIntensity)
}
