package playback

import (
	"time"

	"github.com/llehouerou/harmony/internal/catalog"
	"github.com/llehouerou/harmony/internal/errmsg"
)

// StateChange is emitted when the transport state changes.
type StateChange struct {
	Previous Transport
	Current  Transport
}

// TrackChange is emitted when a track is loaded into the surface.
//
// Emitted by LoadTrack and everything built on it: SetQueue, PlayNext,
// PlayPrevious, JumpTo, PlayTrackNow, Restore and the end-of-media
// handler when it advances. Repeat-one replays do not emit.
//
// The app handles track-related side effects (notifications, session
// save) in response to this event.
type TrackChange struct {
	Previous      *catalog.Track
	Current       *catalog.Track
	PreviousIndex int
	Index         int
}

// QueueChange is emitted when the queue contents or index change.
type QueueChange struct {
	Tracks []catalog.Track
	Index  int
}

// ModeChange is emitted when repeat or shuffle mode changes.
type ModeChange struct {
	RepeatMode RepeatMode
	Shuffle    bool
}

// VolumeChange is emitted when volume or mute changes.
type VolumeChange struct {
	Volume float64
	Muted  bool
}

// PositionChange is emitted on time updates and seeks.
type PositionChange struct {
	Position time.Duration
	Duration time.Duration
}

// ErrorEvent is emitted when a load or play attempt fails.
type ErrorEvent struct {
	Op    errmsg.Op
	Track *catalog.Track
	Err   error
}

// Message formats the error for the status line.
func (e ErrorEvent) Message() string {
	if e.Track != nil {
		return errmsg.FormatWith(e.Op, e.Track.Name, e.Err)
	}
	return errmsg.Format(e.Op, e.Err)
}
