package player

// State represents the playback state machine.
//
//	┌──────────┐  Load   ┌──────────┐  Play   ┌──────────┐
//	│  Stopped │ ──────▶ │  Loading │ ──────▶ │  Playing │
//	└──────────┘         └──────────┘         └──────────┘
//	     ▲                    │                  │    ▲
//	     │ Stop / error       │           Pause  │    │ Resume
//	     ├────────────────────┘                  ▼    │
//	     │                                    ┌──────────┐
//	     └─────────── Stop / finished ─────── │  Paused  │
//	                                          └──────────┘
//
// Loading covers both the download and the decode of a source. The player
// stays in Loading once the source is decoded until Play is called; the
// EventCanPlay event marks that point.
//
// Toggle() cycles Playing ↔ Paused and is a no-op otherwise.
type State int

const (
	Stopped State = iota
	Loading
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Loading:
		return "Loading"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if playback is active (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}

// CanPause returns true if the state allows pausing.
func (s State) CanPause() bool {
	return s == Playing
}

// CanResume returns true if the state allows resuming.
func (s State) CanResume() bool {
	return s == Paused
}
