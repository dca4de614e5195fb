// Package object defines the moving entities of the game and how they are created.
package object

// Wave is a horizontal obstacle that scrolls down the screen.
// Phase and Speed are fixed for the lifetime of the wave.
type Wave struct {
	ID    int     // Unique, monotonically increasing, never reused
	Y     float64 // Vertical position (top edge) in viewport units
	Phase Phase
	Speed float64 // Units per tick, captured from the level at spawn time
}

// Move advances the wave by its own speed.
func (w *Wave) Move() {
	w.Y += w.Speed
}

// Matches reports whether the wave can be passed through in the given phase.
func (w Wave) Matches(p Phase) bool {
	return w.Phase == p
}
