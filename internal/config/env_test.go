package config

import (
	"testing"
	"time"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("PHASESHIFT_TEST_HOST", "example.org")
	if got := GetEnv("PHASESHIFT_TEST_HOST", "localhost"); got != "example.org" {
		t.Fatalf("got %q, want %q", got, "example.org")
	}
	if got := GetEnv("PHASESHIFT_TEST_UNSET", "localhost"); got != "localhost" {
		t.Fatalf("got %q, want fallback", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("PHASESHIFT_TEST_PORT", "2323")
	if got := GetEnvInt("PHASESHIFT_TEST_PORT", 2222); got != 2323 {
		t.Fatalf("got %d, want 2323", got)
	}

	t.Setenv("PHASESHIFT_TEST_PORT", "twenty")
	if got := GetEnvInt("PHASESHIFT_TEST_PORT", 2222); got != 2222 {
		t.Fatalf("malformed value: got %d, want fallback", got)
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("PHASESHIFT_TEST_TIMEOUT", "3s")
	if got := GetEnvDuration("PHASESHIFT_TEST_TIMEOUT", time.Second); got != 3*time.Second {
		t.Fatalf("got %v, want 3s", got)
	}
	if got := GetEnvDuration("PHASESHIFT_TEST_NONE", time.Second); got != time.Second {
		t.Fatalf("got %v, want fallback", got)
	}
}
