package server

import (
	"slices"
	"sync"
	"time"
)

// Scheduler registers a recurring callback and returns a function that cancels it.
// Cancel must be safe to call more than once and from inside the callback.
type Scheduler interface {
	Every(interval time.Duration, fn func(now time.Time)) (cancel func())
}

// TickerScheduler fires callbacks from a time.Ticker on a dedicated goroutine.
type TickerScheduler struct{}

// Compile-time check that TickerScheduler implements Scheduler.
var _ Scheduler = TickerScheduler{}

// Every starts a goroutine that calls fn on every tick until cancelled.
func (TickerScheduler) Every(interval time.Duration, fn func(now time.Time)) func() {
	ticker := time.NewTicker(interval)
	stop := make(chan struct{})

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case now := <-ticker.C:
				// Prefer stop when both are ready
				select {
				case <-stop:
					return
				default:
				}
				fn(now)
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(stop) })
	}
}

// ManualScheduler fires registered callbacks only when Fire is called.
// It lets tests drive the game loop frame by frame.
type ManualScheduler struct {
	mu      sync.Mutex
	entries map[int]func(time.Time)
	nextID  int
}

var _ Scheduler = (*ManualScheduler)(nil)

// NewManualScheduler creates an empty manual scheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{entries: make(map[int]func(time.Time))}
}

// Every registers fn; the interval is ignored.
func (m *ManualScheduler) Every(_ time.Duration, fn func(now time.Time)) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.entries[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.entries, id)
		m.mu.Unlock()
	}
}

// Fire invokes every live registration with now, in registration order,
// and returns how many callbacks ran.
func (m *ManualScheduler) Fire(now time.Time) int {
	m.mu.Lock()
	ids := make([]int, 0, len(m.entries))
	for id := range m.entries {
		ids = append(ids, id)
	}
	m.mu.Unlock()
	slices.Sort(ids)

	fired := 0
	for _, id := range ids {
		m.mu.Lock()
		fn, ok := m.entries[id]
		m.mu.Unlock()
		if !ok {
			continue // cancelled by an earlier callback
		}
		fn(now)
		fired++
	}
	return fired
}

// Active returns the number of live registrations.
func (m *ManualScheduler) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
