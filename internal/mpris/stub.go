//go:build !linux

package mpris

import (
	"errors"

	"github.com/llehouerou/harmony/internal/playback"
)

// ErrUnsupported is returned by New where there is no session D-Bus.
var ErrUnsupported = errors.New("mpris: not supported on this platform")

// Adapter is never created on this platform.
type Adapter struct{}

// New always fails with ErrUnsupported.
func New(playback.Service) (*Adapter, error) {
	return nil, ErrUnsupported
}

// Close is a no-op.
func (a *Adapter) Close() error { return nil }
