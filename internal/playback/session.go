package playback

import "github.com/llehouerou/harmony/internal/catalog"

// Session is the persisted part of a player session.
type Session struct {
	Tracks       []catalog.Track
	CurrentIndex int
	RepeatMode   RepeatMode
	Shuffle      bool
	Volume       float64
	Muted        bool
}

// Snapshot returns the session part of the current state.
func (c *Controller) Snapshot() Session {
	st := c.store.snapshot()
	return Session{
		Tracks:       st.Queue,
		CurrentIndex: st.CurrentIndex,
		RepeatMode:   st.RepeatMode,
		Shuffle:      st.IsShuffled,
		Volume:       st.Volume,
		Muted:        st.IsMuted,
	}
}

// Restore applies a saved session and loads its current track without
// starting playback. The undo history starts over from the restored queue.
func (c *Controller) Restore(sess Session) {
	c.mu.Lock()
	defer c.mu.Unlock()

	mode := sess.RepeatMode
	if !mode.Valid() {
		mode = RepeatNone
	}
	c.setModesLocked(mode, sess.Shuffle)

	c.setVolumeLocked(sess.Volume)
	if sess.Muted && sess.Volume > 0 {
		c.surface.SetVolume(0)
		c.commit(func(s *PlayerState) { s.IsMuted = true })
	}

	c.history.Reset()
	c.setQueueLocked(sess.Tracks, sess.CurrentIndex)
}
