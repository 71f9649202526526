package playback

import (
	"slices"
	"sync"
)

// store holds the session's PlayerState. Only the Controller mutates it,
// through apply; readers get independent copies from snapshot.
type store struct {
	mu    sync.RWMutex
	state PlayerState
}

func newStore() *store {
	return &store{state: PlayerState{Volume: 1}}
}

// apply runs fn against the state under the write lock.
func (s *store) apply(fn func(*PlayerState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
}

// snapshot returns a deep copy of the state.
func (s *store) snapshot() PlayerState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.state
	out.Queue = slices.Clone(s.state.Queue)
	if s.state.CurrentTrack != nil {
		t := *s.state.CurrentTrack
		out.CurrentTrack = &t
	}
	return out
}
