package client

import (
	"io"
	"time"

	"github.com/muesli/termenv"

	"github.com/tomz197/phaseshift/internal/draw"
	"github.com/tomz197/phaseshift/internal/game"
	"github.com/tomz197/phaseshift/internal/input"
	"github.com/tomz197/phaseshift/internal/log"
	"github.com/tomz197/phaseshift/internal/loop/config"
	"github.com/tomz197/phaseshift/internal/loop/server"
)

// levelBannerSeconds is how long the level up banner stays on screen.
const levelBannerSeconds = 1.5

// Client handles rendering and input for a single connection.
type Client struct {
	server       server.GameServer
	state        *ClientState
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates frame output for chunked writes
	writer       io.Writer
	inputStream  *input.Stream
	lastInput    time.Time
	termSizeFunc draw.TermSizeFunc
	palette      palette
	logger       *log.Logger
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	ColorProfile termenv.Profile // Zero value is TrueColor
	Logger       *log.Logger     // Defaults to log.Client()
}

// NewClient creates a new client driving the given server.
func NewClient(gs server.GameServer, r io.ByteReader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Client()
	}

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, config.ViewWidth, config.ViewHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	return &Client{
		server:       gs,
		state:        NewClientState(),
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:       w,
		lastInput:    time.Now(),
		inputStream:  input.StartStream(r),
		termSizeFunc: termSizeFunc,
		palette:      newPalette(w, opts.ColorProfile),
		logger:       logger,
	}
}

// Run starts the client loop. Blocks until the player quits, goes inactive,
// or the server closes the session.
func (c *Client) Run() error {
	draw.HideCursor(c.writer)
	draw.EnableMouse(c.writer)
	defer func() {
		draw.DisableMouse(c.writer)
		draw.ResetStyle(c.writer)
		draw.ClearScreen(c.writer)
		draw.ShowCursor(c.writer)
	}()
	draw.ClearScreen(c.writer)

	lastTime := time.Now()

	for c.state.Running {
		frameStart := time.Now()
		c.state.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		// Process input
		c.processInput()

		// Check for server events
		c.processServerEvents()

		// Handle screen resize
		c.updateScreen()

		// Count down timers
		c.updateTimers()

		// Draw frame
		if err := c.drawFrame(); err != nil {
			return err
		}

		// Frame timing
		elapsed := time.Since(frameStart)
		if elapsed < config.ClientTargetFrameTime {
			time.Sleep(config.ClientTargetFrameTime - elapsed)
		}
	}
	return nil
}

// processInput reads input and routes each action press to the server.
func (c *Client) processInput() {
	c.state.Input = input.ReadInput(c.inputStream)

	if len(c.state.Input.Pressed) > 0 {
		c.lastInput = time.Now()
		if c.state.isInactive {
			// The key that dismisses the warning does nothing else
			c.state.isInactive = false
			c.state.Input.Actions = 0
		}
	} else if time.Since(c.lastInput).Seconds() > config.InactivityDisconnectUser {
		c.logger.Info("disconnecting inactive client")
		c.state.Running = false
	} else if time.Since(c.lastInput).Seconds() > config.InactivityWarnUser {
		c.state.isInactive = true
	}

	if c.state.Input.Quit {
		c.state.Running = false
	}

	if c.state.Shutdown {
		return
	}
	for range c.state.Input.Actions {
		status := c.server.Action()
		c.logger.Debug("action", "status", status)
	}
}

// processServerEvents handles events from the server.
func (c *Client) processServerEvents() {
	for {
		select {
		case event, ok := <-c.server.Events():
			if !ok {
				// Server closed the channel
				c.state.Running = false
				return
			}
			switch event.Type {
			case server.EventGameOver:
				c.logger.Debug("phase lost", "score", event.Score, "level", event.Level)
			case server.EventLevelUp:
				c.state.levelBanner = levelBannerSeconds
				c.state.bannerLevel = event.Level
			case server.EventServerShutdown:
				c.state.Shutdown = true
				c.state.shutdownTimer = config.ShutdownDisplaySeconds
			}
		default:
			return
		}
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual cells
// outside the new canvas area (e.g. old borders or offset content).
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		c.chunkWriter.WriteString("\033[H\033[2J")
		c.canvas.ForceRedraw()
	}

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, config.MaxTermWidth)
	renderHeight = min(termHeight, config.MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// updateTimers advances the banner and shutdown countdowns.
func (c *Client) updateTimers() {
	dt := c.state.delta.Seconds()
	if c.state.levelBanner > 0 {
		c.state.levelBanner = max(c.state.levelBanner-dt, 0)
	}
	if c.state.Shutdown {
		c.state.shutdownTimer -= dt
		if c.state.shutdownTimer <= 0 {
			c.state.Running = false
		}
	}
}

// status returns the status of the latest snapshot.
func status(snap *game.Snapshot) game.Status {
	if snap == nil {
		return game.StatusIdle
	}
	return snap.Status
}
