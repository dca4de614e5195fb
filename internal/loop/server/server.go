package server

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/tomz197/phaseshift/internal/game"
	"github.com/tomz197/phaseshift/internal/log"
	"github.com/tomz197/phaseshift/internal/loop/config"
	"github.com/tomz197/phaseshift/internal/object"
)

// GameServer is the interface clients use to drive a game.
// Decouples the Client from the concrete Server implementation.
type GameServer interface {
	Action() game.Status
	Start()
	Toggle() bool
	Snapshot() *game.Snapshot
	Events() <-chan Event
	Close()
}

// Server hosts one game session. Every mutation (tick, start, toggle) runs
// under mu, so a tick never observes a half-applied input. Renderers read the
// immutable snapshot published after each mutation.
type Server struct {
	ID int

	mu         sync.Mutex
	state      *game.State
	spawner    *object.WaveSpawner
	sched      Scheduler
	interval   time.Duration
	now        func() time.Time
	viewport   func() float64
	cancelTick func()
	generation uint64 // Bumped whenever the tick registration changes
	closed     bool

	snapshot atomic.Pointer[game.Snapshot]
	events   chan Event
	logger   *log.Logger
}

// Compile-time check that Server implements GameServer.
var _ GameServer = (*Server)(nil)

// EventType identifies the type of server event.
type EventType int

const (
	EventGameOver EventType = iota
	EventLevelUp
	EventServerShutdown
)

// Event is sent from the server to its client.
type Event struct {
	Type  EventType
	Score int // Final score for game over events
	Level int // Level reached
}

// Options configures a Server. Zero values select production defaults.
type Options struct {
	Scheduler      Scheduler        // Defaults to TickerScheduler
	TickInterval   time.Duration    // Defaults to config.ServerTickTime
	Now            func() time.Time // Clock used by Start; defaults to time.Now
	ViewportHeight func() float64   // Defaults to config.ViewHeight
	Source         object.BitSource // Random bits for wave phases
	Logger         *log.Logger      // Defaults to log.Server()
}

// New creates a server on the title screen. No ticks run until Start.
func New(opts Options) *Server {
	if opts.Scheduler == nil {
		opts.Scheduler = TickerScheduler{}
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = config.ServerTickTime
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.ViewportHeight == nil {
		opts.ViewportHeight = func() float64 { return config.ViewHeight }
	}
	if opts.Logger == nil {
		opts.Logger = log.Server()
	}

	s := &Server{
		state:    game.NewState(),
		spawner:  object.NewWaveSpawner(opts.Source),
		sched:    opts.Scheduler,
		interval: opts.TickInterval,
		now:      opts.Now,
		viewport: opts.ViewportHeight,
		events:   make(chan Event, 16),
		logger:   opts.Logger,
	}
	s.publishLocked()
	return s
}

// Action applies the single player signal: start from Idle or Over, toggle
// while Playing. It returns the status after the signal was applied.
func (s *Server) Action() game.Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return s.state.Status()
	}
	if s.state.Status() == game.StatusPlaying {
		game.TogglePhase(s.state)
	} else {
		s.startLocked()
	}
	s.publishLocked()
	return s.state.Status()
}

// Start resets the game and binds a fresh tick registration to the new session.
func (s *Server) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.startLocked()
	s.publishLocked()
}

// Toggle flips the player's phase while playing; it reports whether it applied.
func (s *Server) Toggle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}
	applied := game.TogglePhase(s.state)
	if applied {
		s.publishLocked()
	}
	return applied
}

// Snapshot returns the latest published state.
func (s *Server) Snapshot() *game.Snapshot {
	return s.snapshot.Load()
}

// Events returns the channel of server events. It is closed by Close.
func (s *Server) Events() <-chan Event {
	return s.events
}

// Close stops ticking and closes the event channel. Safe to call repeatedly.
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.stopTickLocked()
	close(s.events)
}

// notify delivers an event without blocking the tick. Must be called with lock held.
func (s *Server) notifyLocked(ev Event) {
	if s.closed {
		return
	}
	select {
	case s.events <- ev:
	default:
		// Client not draining, drop event
	}
}

// startLocked resets the state and replaces the tick registration. Must be called with lock held.
func (s *Server) startLocked() {
	s.stopTickLocked()
	game.Start(s.state, s.now())

	gen := s.generation
	s.cancelTick = s.sched.Every(s.interval, func(now time.Time) {
		s.tick(gen, now)
	})
	s.logger.Debug("game started", "id", s.ID)
}

// stopTickLocked cancels the current tick registration. Must be called with lock held.
func (s *Server) stopTickLocked() {
	s.generation++
	if s.cancelTick != nil {
		s.cancelTick()
		s.cancelTick = nil
	}
}

// tick runs one frame for the registration identified by gen.
// Ticks from a cancelled registration are dropped.
func (s *Server) tick(gen uint64, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || gen != s.generation {
		return
	}

	out := game.Tick(s.state, s.spawner, now, s.viewport())
	if !out.Applied {
		s.stopTickLocked()
		return
	}

	if out.LevelUp {
		s.logger.Debug("level up", "id", s.ID, "level", s.state.Level, "score", s.state.Score)
		s.notifyLocked(Event{Type: EventLevelUp, Level: s.state.Level})
	}
	if out.Over() {
		// The loop's lifetime is bound to Playing
		s.stopTickLocked()
		s.logger.Info("game over",
			"id", s.ID,
			"score", s.state.Score,
			"level", s.state.Level,
			"wave", out.Collided.ID,
			"wave_phase", out.Collided.Phase,
			"ticks", s.state.Ticks)
		s.notifyLocked(Event{Type: EventGameOver, Score: s.state.Score, Level: s.state.Level})
	}

	s.publishLocked()
}

// publishLocked stores a fresh snapshot for renderers. Must be called with lock held.
func (s *Server) publishLocked() {
	snap := s.state.Snapshot()
	s.snapshot.Store(&snap)
}

// ticking reports whether a tick registration is live. Used by tests.
func (s *Server) ticking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancelTick != nil
}
