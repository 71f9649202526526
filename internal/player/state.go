// internal/player/state.go
package player

// State represents the surface state machine.
//
//	┌──────────┐  load   ┌──────────┐  loaded  ┌──────────┐
//	│  Empty   │ ───────▶│ Loading  │ ────────▶│  Paused  │◀──┐
//	└──────────┘         └──────────┘          └──────────┘   │
//	                        ▲  │ loaded with        │ play    │ pause
//	                   load │  │ pending play       ▼         │
//	                        │  └─────────────▶┌──────────┐    │
//	                        │                 │ Playing  │────┘
//	                        │                 └──────────┘
//	                        │                      │ end of media
//	                        │                      ▼
//	                        │                 ┌──────────┐
//	                        └─────────────────│  Ended   │
//	                                          └──────────┘
//
// Load is valid from every state and discards the previous source.
// Play on Ended restarts from the current position (seek first to replay).
// A failed load returns to Empty.
type State int

const (
	Empty State = iota
	Loading
	Paused
	Playing
	Ended
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Empty:
		return "Empty"
	case Loading:
		return "Loading"
	case Paused:
		return "Paused"
	case Playing:
		return "Playing"
	case Ended:
		return "Ended"
	default:
		return "Unknown"
	}
}

// HasSource returns true if a decoded source is attached.
func (s State) HasSource() bool {
	return s == Paused || s == Playing || s == Ended
}

// CanPause returns true if the state allows pausing.
func (s State) CanPause() bool {
	return s == Playing
}
