package object

// Phase is one of the two states shared by the player and every wave.
type Phase int

const (
	PhaseLight Phase = iota
	PhaseDark
)

// Toggle returns the opposite phase.
func (p Phase) Toggle() Phase {
	if p == PhaseLight {
		return PhaseDark
	}
	return PhaseLight
}

func (p Phase) String() string {
	switch p {
	case PhaseLight:
		return "light"
	case PhaseDark:
		return "dark"
	default:
		return "unknown"
	}
}
