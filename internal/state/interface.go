// internal/state/interface.go
package state

import "github.com/llehouerou/harmony/internal/playback"

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	SaveSession(sess playback.Session)
	GetSession() (*playback.Session, error)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
