// internal/playback/state.go
package playback

import (
	"time"

	"github.com/llehouerou/harmony/internal/catalog"
)

// Transport is the derived transport state of a session.
//
//	Idle ──LoadTrack──> Loading ──LoadComplete──> ReadyPaused ──Play──> Playing
//	  ^                    ^                          ^  ^                 │
//	  └──empty queue───────┴──────LoadTrack───────────┘  └──Pause/Ended────┘
type Transport int

const (
	TransportIdle Transport = iota
	TransportLoading
	TransportReadyPaused
	TransportPlaying
)

// String returns the transport name.
func (t Transport) String() string {
	switch t {
	case TransportIdle:
		return "Idle"
	case TransportLoading:
		return "Loading"
	case TransportReadyPaused:
		return "ReadyPaused"
	case TransportPlaying:
		return "Playing"
	default:
		return "Unknown"
	}
}

// RepeatMode defines the repeat behavior.
type RepeatMode int

const (
	RepeatNone RepeatMode = iota
	RepeatOne
	RepeatAll
)

// String returns the repeat mode name.
func (m RepeatMode) String() string {
	switch m {
	case RepeatNone:
		return "None"
	case RepeatOne:
		return "One"
	case RepeatAll:
		return "All"
	default:
		return "Unknown"
	}
}

// Next returns the following mode in the None → One → All → None cycle.
func (m RepeatMode) Next() RepeatMode {
	switch m {
	case RepeatNone:
		return RepeatOne
	case RepeatOne:
		return RepeatAll
	default:
		return RepeatNone
	}
}

// Valid reports whether m is a known mode.
func (m RepeatMode) Valid() bool {
	return m >= RepeatNone && m <= RepeatAll
}

// PlayerState is the complete observable state of a player session.
type PlayerState struct {
	CurrentTrack *catalog.Track
	IsPlaying    bool
	IsLoading    bool
	CurrentTime  time.Duration
	Duration     time.Duration
	Volume       float64
	IsMuted      bool

	Queue        []catalog.Track
	CurrentIndex int
	IsShuffled   bool
	RepeatMode   RepeatMode
}

// Transport derives the transport state.
func (s PlayerState) Transport() Transport {
	switch {
	case s.IsLoading:
		return TransportLoading
	case s.IsPlaying:
		return TransportPlaying
	case s.CurrentTrack != nil:
		return TransportReadyPaused
	default:
		return TransportIdle
	}
}

// EffectiveVolume is the level actually sent to the surface.
func (s PlayerState) EffectiveVolume() float64 {
	if s.IsMuted {
		return 0
	}
	return s.Volume
}
