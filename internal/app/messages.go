package app

import (
	"time"

	"github.com/llehouerou/harmony/internal/catalog"
	"github.com/llehouerou/harmony/internal/playback"
)

// ResultsMsg carries catalog results for the results panel.
type ResultsMsg struct {
	Source string
	Tracks []catalog.Track
}

// InitialQueueMsg carries the popular tracks queued at start-up.
type InitialQueueMsg struct {
	Tracks []catalog.Track
}

// TickMsg refreshes the buffering indicator while a track loads.
type TickMsg time.Time

// Playback events forwarded from the controller subscription.
type (
	StateChangedMsg    playback.StateChange
	TrackChangedMsg    playback.TrackChange
	PositionChangedMsg playback.PositionChange
	QueueChangedMsg    playback.QueueChange
	ModeChangedMsg     playback.ModeChange
	VolumeChangedMsg   playback.VolumeChange
	PlaybackErrorMsg   playback.ErrorEvent
	PlaybackClosedMsg  struct{}
)
