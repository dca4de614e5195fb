package client

import (
	"time"

	"github.com/tomz197/phaseshift/internal/game"
	"github.com/tomz197/phaseshift/internal/input"
)

// ClientState holds the per-connection presentation state. The game itself
// lives on the server; the client only remembers what it needs to draw.
type ClientState struct {
	Input         input.Input
	Running       bool          // Client loop running
	Shutdown      bool          // Server announced a shutdown
	delta         time.Duration // Frame delta time
	shutdownTimer float64       // Countdown before auto-disconnect on shutdown
	levelBanner   float64       // Seconds left to show the level up banner
	bannerLevel   int
	isInactive    bool // Whether the client is in inactive warning state

	// Previous frame values, used to clear the terminal on screen changes
	prevStatus  game.Status
	prevShown   bool
	wasInactive bool
	wasShutdown bool
}

// NewClientState creates a new initialized client state.
func NewClientState() *ClientState {
	return &ClientState{
		Running: true,
	}
}
