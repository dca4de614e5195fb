package game

import (
	"testing"

	"github.com/tomz197/phaseshift/internal/object"
)

const viewport = 1000.0

// waveAt builds a wave that lands on y after one Advance.
func waveAt(id int, y float64, p object.Phase) object.Wave {
	return object.Wave{ID: id, Y: y - 2, Phase: p, Speed: 2}
}

func TestAdvanceMovesBySpeed(t *testing.T) {
	waves := []object.Wave{
		{ID: 1, Y: 0, Phase: object.PhaseLight, Speed: 2.5},
		{ID: 2, Y: 10, Phase: object.PhaseDark, Speed: 4},
	}
	res := Advance(waves, object.PhaseLight, viewport)
	if len(res.Kept) != 2 {
		t.Fatalf("kept = %d, want 2", len(res.Kept))
	}
	if res.Kept[0].Y != 2.5 || res.Kept[1].Y != 14 {
		t.Fatalf("positions = %v, %v; want 2.5, 14", res.Kept[0].Y, res.Kept[1].Y)
	}
	if waves[0].Y != 0 {
		t.Fatalf("Advance mutated its input slice")
	}
}

func TestAdvanceMismatchInBandCollides(t *testing.T) {
	res := Advance([]object.Wave{waveAt(1, 700, object.PhaseDark)}, object.PhaseLight, viewport)
	if res.Collided == nil || res.Collided.ID != 1 {
		t.Fatalf("expected wave 1 to collide, got %+v", res.Collided)
	}
	if len(res.Kept) != 0 {
		t.Fatalf("colliding wave should be removed, kept %d", len(res.Kept))
	}
}

func TestAdvanceMatchInBandContinues(t *testing.T) {
	res := Advance([]object.Wave{waveAt(1, 700, object.PhaseLight)}, object.PhaseLight, viewport)
	if res.Collided != nil {
		t.Fatalf("matching wave collided")
	}
	if len(res.Kept) != 1 || len(res.Passed) != 0 {
		t.Fatalf("matching wave in band should stay unscored, kept=%d passed=%d", len(res.Kept), len(res.Passed))
	}
}

func TestAdvanceBandEdgesAreExclusive(t *testing.T) {
	// playerY = 700, half height 60
	for _, y := range []float64{640, 760} {
		res := Advance([]object.Wave{waveAt(1, y, object.PhaseDark)}, object.PhaseLight, viewport)
		if res.Collided != nil {
			t.Fatalf("wave at band edge y=%v collided", y)
		}
	}
	res := Advance([]object.Wave{waveAt(1, 641, object.PhaseDark)}, object.PhaseLight, viewport)
	if res.Collided == nil {
		t.Fatalf("wave just inside the band did not collide")
	}
}

func TestAdvancePassThrough(t *testing.T) {
	res := Advance([]object.Wave{waveAt(1, 1051, object.PhaseDark)}, object.PhaseLight, viewport)
	if len(res.Passed) != 1 || res.Passed[0].ID != 1 {
		t.Fatalf("expected wave 1 to pass, got %+v", res.Passed)
	}
	if len(res.Kept) != 0 {
		t.Fatalf("passed wave must be removed")
	}

	res = Advance([]object.Wave{waveAt(2, 1050, object.PhaseDark)}, object.PhaseLight, viewport)
	if len(res.Passed) != 0 {
		t.Fatalf("wave at exactly height+50 must not pass yet")
	}
}

func TestAdvanceFirstCollisionWins(t *testing.T) {
	waves := []object.Wave{
		waveAt(7, 690, object.PhaseDark),
		waveAt(8, 710, object.PhaseDark),
	}
	res := Advance(waves, object.PhaseLight, viewport)
	if res.Collided == nil || res.Collided.ID != 7 {
		t.Fatalf("collided = %+v, want earlier-inserted wave 7", res.Collided)
	}
	if len(res.Kept) != 1 || res.Kept[0].ID != 8 {
		t.Fatalf("later wave should be kept unevaluated, kept = %+v", res.Kept)
	}
}

func TestAdvancePassesBeforeCollisionStillCount(t *testing.T) {
	waves := []object.Wave{
		waveAt(1, 1100, object.PhaseLight),
		waveAt(2, 700, object.PhaseDark),
		waveAt(3, 1100, object.PhaseDark),
		waveAt(4, 100, object.PhaseDark),
	}
	res := Advance(waves, object.PhaseLight, viewport)
	if len(res.Passed) != 1 || res.Passed[0].ID != 1 {
		t.Fatalf("passed = %+v, want only wave 1", res.Passed)
	}
	if res.Collided == nil || res.Collided.ID != 2 {
		t.Fatalf("collided = %+v, want wave 2", res.Collided)
	}
	if len(res.Kept) != 2 || res.Kept[0].ID != 3 || res.Kept[1].ID != 4 {
		t.Fatalf("kept = %+v, want waves 3 and 4 in order", res.Kept)
	}
	if res.Kept[0].Y != 1100 {
		t.Fatalf("waves after the collision still move, got y=%v", res.Kept[0].Y)
	}
}
