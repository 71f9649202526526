package player

import "time"

// EventKind identifies a surface event.
type EventKind int

const (
	EventLoadStarted EventKind = iota
	EventLoadComplete
	EventLoadFailed
	EventTimeUpdate
	EventEnded
	EventPlayFailed
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventLoadStarted:
		return "LoadStarted"
	case EventLoadComplete:
		return "LoadComplete"
	case EventLoadFailed:
		return "LoadFailed"
	case EventTimeUpdate:
		return "TimeUpdate"
	case EventEnded:
		return "Ended"
	case EventPlayFailed:
		return "PlayFailed"
	default:
		return "Unknown"
	}
}

// Event is emitted by a Surface. Gen is the generation of the Load call
// the event belongs to.
//
// For one generation, events are ordered LoadStarted, then LoadComplete or
// LoadFailed, then any number of TimeUpdate, then Ended.
type Event struct {
	Kind     EventKind
	Gen      uint64
	Position time.Duration // TimeUpdate
	Duration time.Duration // LoadComplete, TimeUpdate
	Err      error         // LoadFailed, PlayFailed
}
