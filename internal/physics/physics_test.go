package physics

import "testing"

func TestWithinBandIsExclusive(t *testing.T) {
	cases := []struct {
		y    float64
		want bool
	}{
		{650, false},
		{650.5, true},
		{700, true},
		{749.9, true},
		{750, false},
		{-50, false},
	}
	for _, c := range cases {
		if got := WithinBand(c.y, 700, 50); got != c.want {
			t.Errorf("WithinBand(%v, 700, 50) = %v, want %v", c.y, got, c.want)
		}
	}
}

func TestBeyond(t *testing.T) {
	if Beyond(1050, 1000, 50) {
		t.Fatalf("y exactly at limit+margin must not count as beyond")
	}
	if !Beyond(1051, 1000, 50) {
		t.Fatalf("y past limit+margin must count as beyond")
	}
}

func TestOverlap(t *testing.T) {
	if !Overlap(0, 64, 60, 10) {
		t.Fatalf("spans [0,64) and [60,70) should overlap")
	}
	if Overlap(0, 64, 64, 10) {
		t.Fatalf("touching spans [0,64) and [64,74) should not overlap")
	}
	if !Overlap(100, 10, 0, 200) {
		t.Fatalf("contained span should overlap")
	}
}
