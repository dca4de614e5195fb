package client

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/tomz197/phaseshift/internal/draw"
	"github.com/tomz197/phaseshift/internal/game"
	"github.com/tomz197/phaseshift/internal/loop/config"
	"github.com/tomz197/phaseshift/internal/object"
	"github.com/tomz197/phaseshift/internal/physics"
)

// Phase colours.
const (
	colorLight = "#CDFF00"
	colorDark  = "#000000"
)

// Style indices into palette.styles. Each phase style paints the phase colour
// as background with the opposite colour in front.
const (
	styleLight = iota
	styleDark
	styleLightBold
	styleDarkBold
	styleCount
)

// palette holds the lipgloss styles for one client's terminal.
type palette struct {
	styles []lipgloss.Style
	border lipgloss.Style
}

// newPalette builds styles with a renderer bound to the client's output, so
// colours degrade to what that terminal supports.
func newPalette(w io.Writer, profile termenv.Profile) palette {
	r := lipgloss.NewRenderer(w, termenv.WithProfile(profile))
	light := lipgloss.Color(colorLight)
	dark := lipgloss.Color(colorDark)

	styles := make([]lipgloss.Style, styleCount)
	styles[styleLight] = r.NewStyle().Foreground(dark).Background(light)
	styles[styleDark] = r.NewStyle().Foreground(light).Background(dark)
	styles[styleLightBold] = styles[styleLight].Bold(true)
	styles[styleDarkBold] = styles[styleDark].Bold(true)

	return palette{
		styles: styles,
		border: r.NewStyle().Foreground(light),
	}
}

// phaseStyle returns the base style index painting the colour of p.
func phaseStyle(p object.Phase) int {
	if p == object.PhaseDark {
		return styleDark
	}
	return styleLight
}

// boldStyle returns the bold variant of a base style index.
func boldStyle(style int) int {
	return style + styleLightBold
}

// phaseLabel is the text drawn inside a wave band.
func phaseLabel(p object.Phase) string {
	if p == object.PhaseDark {
		return "DARK PHASE"
	}
	return "LIGHT PHASE"
}

// waveShade picks the wave fill: denser as the game intensifies.
func waveShade(intensity float64) rune {
	return draw.ShadeLevel(0.25 + intensity/config.MaxIntensity*0.75)
}

// drawFrame draws the current frame.
func (c *Client) drawFrame() error {
	snap := c.server.Snapshot()
	st := status(snap)

	// On screen transitions, do a full terminal clear so UI elements from the
	// previous screen don't persist.
	if !c.state.prevShown || st != c.state.prevStatus ||
		c.state.isInactive != c.state.wasInactive || c.state.Shutdown != c.state.wasShutdown {
		c.chunkWriter.WriteString("\033[H\033[2J")
		c.canvas.ForceRedraw()
		c.state.prevShown = true
		c.state.prevStatus = st
		c.state.wasInactive = c.state.isInactive
		c.state.wasShutdown = c.state.Shutdown
	}

	c.drawPlayfield(snap)
	c.drawUI(snap)

	c.canvas.Render(c.chunkWriter, c.palette.styles)

	// Draw border when terminal exceeds max render resolution
	c.canvas.RenderBorder(c.chunkWriter, c.palette.border)

	return c.chunkWriter.Flush()
}

// drawPlayfield paints the background, the waves and the player.
func (c *Client) drawPlayfield(snap *game.Snapshot) {
	if snap == nil {
		c.canvas.Clear(styleLight)
		return
	}

	bg := phaseStyle(snap.PlayerPhase)
	c.canvas.Clear(bg)

	shade := waveShade(snap.Intensity)
	for _, w := range snap.Waves {
		top := w.Y - config.WaveDrawHeight/2
		if !physics.Overlap(top, config.WaveDrawHeight, 0, config.ViewHeight) {
			continue // Still above the screen or already past the bottom
		}
		style := phaseStyle(w.Phase)
		first, last, ok := c.canvas.FillRows(top, config.WaveDrawHeight, shade, style)
		if !ok {
			continue
		}
		c.canvas.TextCentered((first+last)/2, " "+phaseLabel(w.Phase)+" ", boldStyle(style))
	}

	if snap.Status == game.StatusIdle {
		return
	}

	// The player block contrasts with the background it shares a colour with
	playerY := game.PlayerY(config.ViewHeight)
	x := (config.ViewWidth - config.PlayerSize) / 2
	c.canvas.FillRect(x, playerY-config.PlayerSize/2, config.PlayerSize, config.PlayerSize, draw.BlockFull, bg)
}

// drawUI draws the overlay for the current screen.
func (c *Client) drawUI(snap *game.Snapshot) {
	if c.state.Shutdown {
		c.drawShutdownScreen()
		return
	}

	if c.state.isInactive {
		c.drawInactivityScreen()
		return
	}

	switch status(snap) {
	case game.StatusIdle:
		c.drawStartScreen()
	case game.StatusPlaying:
		c.drawPlayingHUD(snap)
	case game.StatusOver:
		c.drawOverScreen(snap)
	}
}

// drawPanel draws lines centered on the canvas inside a solid box in the given style.
func (c *Client) drawPanel(lines []string, style int) {
	width := 0
	for _, line := range lines {
		width = max(width, draw.StringWidth(line))
	}
	width += 6
	height := len(lines) + 2

	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	left := max((termWidth-width)/2, 0)
	top := max((termHeight-height)/2, 0)

	for row := top; row < top+height; row++ {
		for col := left; col < left+width; col++ {
			c.canvas.Set(col, row, draw.BlockEmpty, style)
		}
	}
	for i, line := range lines {
		c.canvas.TextCentered(top+1+i, draw.Truncate(line, termWidth), boldStyle(style))
	}
}

// blink reports whether blinking prompts are visible this frame.
func blink() bool {
	return time.Now().UnixMilli()/600%2 == 0
}

// drawStartScreen draws the title screen.
func (c *Client) drawStartScreen() {
	prompt := ""
	if blink() {
		prompt = ">>  Press SPACE to Start  <<"
	}
	c.drawPanel([]string{
		"P H A S E   S H I F T",
		"SYMBIOTIC REFLEX",
		"",
		"Match the phase of every wave.",
		"",
		"SPACE / ENTER / CLICK . . Shift phase",
		"Q . . . . . . . . . . . . . . . Quit",
		"",
		prompt,
	}, styleDark)
}

// drawPlayingHUD draws score and level along the top row, plus the level up banner.
func (c *Client) drawPlayingHUD(snap *game.Snapshot) {
	termWidth := c.canvas.TerminalWidth()
	style := boldStyle(phaseStyle(snap.PlayerPhase))

	c.canvas.Text(1, 0, fmt.Sprintf("SCORE %-8d", snap.Score), style)

	level := fmt.Sprintf("LVL %d", snap.Level)
	c.canvas.Text(termWidth-draw.StringWidth(level)-1, 0, level, style)

	if c.state.levelBanner > 0 {
		c.canvas.TextCentered(2, fmt.Sprintf(" LEVEL %d ", c.state.bannerLevel), style)
	}
}

// drawOverScreen draws the game over screen over the frozen playfield.
func (c *Client) drawOverScreen(snap *game.Snapshot) {
	prompt := ""
	if blink() {
		prompt = ">>  Press SPACE to Retry  <<"
	}
	c.drawPanel([]string{
		"PHASE LOST",
		"",
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("Level %d reached", snap.Level),
		"",
		prompt,
	}, styleDark)
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen() {
	remaining := int(config.InactivityDisconnectUser - time.Since(c.lastInput).Seconds())
	c.drawPanel([]string{
		"INACTIVITY WARNING",
		"",
		fmt.Sprintf("You will be disconnected in %d seconds.", max(remaining, 0)),
		"",
		"Press any key to continue",
	}, styleDark)
}

// drawShutdownScreen draws the server shutdown notification screen.
func (c *Client) drawShutdownScreen() {
	remaining := int(c.state.shutdownTimer) + 1
	c.drawPanel([]string{
		"SERVER SHUTTING DOWN",
		"",
		"The server is restarting for maintenance.",
		"Please reconnect in a moment.",
		"",
		fmt.Sprintf("Disconnecting in %d seconds...", remaining),
		"",
		"Press Q to disconnect now",
	}, styleDark)
}
