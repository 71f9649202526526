// internal/state/mock.go
package state

import (
	"slices"
	"sync"

	"github.com/llehouerou/harmony/internal/playback"
)

// Mock is a test double for Manager. Saves are applied immediately.
type Mock struct {
	mu      sync.Mutex
	session *playback.Session
	saves   int
	closed  bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SaveSession(sess playback.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess.Tracks = slices.Clone(sess.Tracks)
	m.session = &sess
	m.saves++
}

func (m *Mock) GetSession() (*playback.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session, nil
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetSession(sess *playback.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = sess
}

func (m *Mock) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func (m *Mock) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
