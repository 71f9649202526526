package playback

import (
	"time"

	"github.com/llehouerou/harmony/internal/catalog"
)

// Service defines the playback controller contract used by the UI and
// desktop integrations.
type Service interface {
	// Transport control
	Play() error
	Pause()
	TogglePlay() error
	Seek(pos time.Duration)
	SetVolume(v float64)
	ToggleMute()

	// Queue navigation (loads and plays)
	PlayNext() error
	PlayPrevious() error
	JumpTo(index int) error
	PlayTrackNow(track catalog.Track) error

	// Queue manipulation
	SetQueue(tracks []catalog.Track, startIndex int)
	LoadTrack(track catalog.Track)
	AddToQueue(tracks ...catalog.Track)
	RemoveFromQueue(index int)

	// Queue history
	Undo() bool
	Redo() bool

	// Mode control
	ToggleShuffle()
	SetShuffle(enabled bool)
	ToggleRepeat()
	SetRepeatMode(mode RepeatMode)

	// State queries
	State() PlayerState

	// Event subscription
	Subscribe() *Subscription

	// Lifecycle
	Close() error
}

// Verify Controller implements Service at compile time.
var _ Service = (*Controller)(nil)
