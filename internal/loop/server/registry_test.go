package server

import (
	"testing"
	"time"
)

func TestRegistryOpenRelease(t *testing.T) {
	r := NewRegistry(Options{Scheduler: NewManualScheduler()})
	a := r.Open()
	b := r.Open()
	if a.ID == b.ID {
		t.Fatalf("servers share id %d", a.ID)
	}
	if r.Count() != 2 {
		t.Fatalf("count = %d, want 2", r.Count())
	}

	r.Release(a.ID)
	r.Release(a.ID)
	if r.Count() != 1 {
		t.Fatalf("count = %d, want 1", r.Count())
	}
	if _, ok := <-a.Events(); ok {
		t.Fatalf("released server still open")
	}
}

func TestRegistryShutdownWaitsForClients(t *testing.T) {
	r := NewRegistry(Options{Scheduler: NewManualScheduler()})
	s := r.Open()

	go func() {
		for ev := range s.Events() {
			if ev.Type == EventServerShutdown {
				r.Release(s.ID)
			}
		}
	}()

	done := make(chan struct{})
	go func() {
		r.Shutdown(5 * time.Second)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatalf("shutdown did not return after the client left")
	}
	if r.Count() != 0 {
		t.Fatalf("count = %d after shutdown, want 0", r.Count())
	}
}

func TestRegistryShutdownTimeoutClosesStragglers(t *testing.T) {
	r := NewRegistry(Options{Scheduler: NewManualScheduler()})
	s := r.Open()

	r.Shutdown(50 * time.Millisecond)

	if r.Count() != 0 {
		t.Fatalf("count = %d after timeout, want 0", r.Count())
	}
	ev, ok := <-s.Events()
	if !ok || ev.Type != EventServerShutdown {
		t.Fatalf("expected a buffered shutdown event before close, got %v %v", ev, ok)
	}
	if _, ok := <-s.Events(); ok {
		t.Fatalf("straggler not closed")
	}
}
