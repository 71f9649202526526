// internal/player/interface.go
package player

import (
	"errors"
	"time"
)

// ErrNoSource is returned by Play when nothing has been loaded.
var ErrNoSource = errors.New("no source loaded")

// Surface is the single audio output of a player session.
//
// Load is asynchronous: its progress and outcome arrive on Events tagged
// with the generation passed in. Play is the only call whose failure is
// reported synchronously.
type Surface interface {
	Load(gen uint64, url string)
	Play() error
	Pause()
	Seek(pos time.Duration)
	SetVolume(level float64)
	Position() time.Duration
	Duration() time.Duration
	Events() <-chan Event
	Close() error
}

// Verify Player implements Surface at compile time.
var _ Surface = (*Player)(nil)
