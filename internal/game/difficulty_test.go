package game

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLevelFor(t *testing.T) {
	for score := 0; score <= 2000; score += 5 {
		want := int(math.Floor(float64(score)/100)) + 1
		if got := LevelFor(score); got != want {
			t.Fatalf("LevelFor(%d) = %d, want %d", score, got, want)
		}
	}
	if LevelFor(99) != 1 || LevelFor(100) != 2 {
		t.Fatalf("level boundary at 100 is wrong")
	}
}

func TestIntensityFor(t *testing.T) {
	cases := map[int]float64{
		1:  0.3,
		2:  0.6,
		5:  1.5,
		10: 3,
		11: 3,
		50: 3,
	}
	for level, want := range cases {
		if got := IntensityFor(level); !approx(got, want) {
			t.Errorf("IntensityFor(%d) = %v, want %v", level, got, want)
		}
	}
}
