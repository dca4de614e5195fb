package game

import (
	"github.com/tomz197/phaseshift/internal/loop/config"
	"github.com/tomz197/phaseshift/internal/object"
	"github.com/tomz197/phaseshift/internal/physics"
)

// Result classifies the waves of one Advance pass.
type Result struct {
	Kept     []object.Wave // Still on screen, in insertion order
	Passed   []object.Wave // Exited past the bottom; each scores
	Collided *object.Wave  // First mismatching wave inside the player band, if any
}

// PlayerY returns the fixed vertical anchor of the player for a viewport height.
func PlayerY(viewportHeight float64) float64 {
	return viewportHeight * config.PlayerAnchor
}

// Collides reports whether w sits inside the player band with the wrong phase.
func Collides(w object.Wave, playerPhase object.Phase, viewportHeight float64) bool {
	return physics.WithinBand(w.Y, PlayerY(viewportHeight), config.WaveHalfHeight) && !w.Matches(playerPhase)
}

// Passed reports whether w has left the viewport through the bottom.
func Passed(w object.Wave, viewportHeight float64) bool {
	return physics.Beyond(w.Y, viewportHeight, config.WaveExitMargin)
}

// Advance moves every wave by its own speed, then walks them in insertion order.
// Collision is tested before pass-through. The first collision stops evaluation:
// the colliding wave is dropped and every later wave is kept as moved, unevaluated.
// Passes found before the collision still count.
func Advance(waves []object.Wave, playerPhase object.Phase, viewportHeight float64) Result {
	var res Result
	res.Kept = make([]object.Wave, 0, len(waves))

	for i := range waves {
		w := waves[i]
		w.Move()

		if res.Collided != nil {
			res.Kept = append(res.Kept, w)
			continue
		}

		switch {
		case Collides(w, playerPhase, viewportHeight):
			hit := w
			res.Collided = &hit
		case Passed(w, viewportHeight):
			res.Passed = append(res.Passed, w)
		default:
			res.Kept = append(res.Kept, w)
		}
	}
	return res
}
