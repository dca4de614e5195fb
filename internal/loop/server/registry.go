package server

import (
	"sync"
	"time"
)

// Registry tracks the game servers of all connected clients so the process
// can announce a shutdown and wait for players to leave.
type Registry struct {
	mu      sync.RWMutex
	servers map[int]*Server
	nextID  int
	opts    Options
}

// NewRegistry creates a registry that builds servers from opts.
func NewRegistry(opts Options) *Registry {
	return &Registry{
		servers: make(map[int]*Server),
		nextID:  1,
		opts:    opts,
	}
}

// Open creates and registers a server for a new client.
func (r *Registry) Open() *Server {
	r.mu.Lock()
	defer r.mu.Unlock()

	opts := r.opts
	if opts.Logger != nil {
		opts.Logger = opts.Logger.With("session", r.nextID)
	}
	s := New(opts)
	s.ID = r.nextID
	r.nextID++
	r.servers[s.ID] = s
	return s
}

// Release closes and forgets the server with the given id.
func (r *Registry) Release(id int) {
	r.mu.Lock()
	s, ok := r.servers[id]
	delete(r.servers, id)
	r.mu.Unlock()

	if ok {
		s.Close()
	}
}

// Count returns the number of live servers.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.servers)
}

// Shutdown notifies every client about the shutdown and waits for them to
// disconnect, up to the given timeout. Servers still open afterwards are closed.
func (r *Registry) Shutdown(timeout time.Duration) {
	r.mu.RLock()
	for _, s := range r.servers {
		s.mu.Lock()
		s.notifyLocked(Event{Type: EventServerShutdown})
		s.mu.Unlock()
	}
	r.mu.RUnlock()

	deadline := time.After(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for r.Count() > 0 {
		select {
		case <-deadline:
			r.closeAll()
			return
		case <-ticker.C:
		}
	}
}

func (r *Registry) closeAll() {
	r.mu.Lock()
	servers := r.servers
	r.servers = make(map[int]*Server)
	r.mu.Unlock()

	for _, s := range servers {
		s.Close()
	}
}
