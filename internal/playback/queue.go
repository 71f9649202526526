package playback

import (
	"github.com/llehouerou/harmony/internal/catalog"
)

// SetQueue replaces the queue and loads the track at startIndex (clamped).
// It does not start playback.
func (c *Controller) SetQueue(tracks []catalog.Track, startIndex int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setQueueLocked(tracks, startIndex)
}

func (c *Controller) setQueueLocked(tracks []catalog.Track, startIndex int) {
	c.queue.Replace(startIndex, tracks...)
	c.failStreak = 0
	c.syncQueueLocked(true)
	c.loadCurrentLocked()
}

// AddToQueue appends tracks. The current index and track are unchanged.
func (c *Controller) AddToQueue(tracks ...catalog.Track) {
	if len(tracks) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.queue.Add(tracks...)
	c.syncQueueLocked(true)
}

// RemoveFromQueue removes the track at index. Removing at or before the
// current index moves the index back by one, floored at zero. The current
// track keeps playing even when it is the one removed. Out-of-range
// indices are ignored.
func (c *Controller) RemoveFromQueue(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.queue.RemoveAt(index) {
		return
	}
	c.syncQueueLocked(true)
}

// JumpTo makes index current and plays it. Out-of-range indices are ignored.
func (c *Controller) JumpTo(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.queue.JumpTo(index) == nil {
		return nil
	}
	return c.playCurrentLocked()
}

// PlayTrackNow puts track at the front of the queue and plays it.
func (c *Controller) PlayTrackNow(track catalog.Track) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	tracks := append([]catalog.Track{track}, c.queue.Tracks()...)
	c.setQueueLocked(tracks, 0)
	return c.playLocked()
}

// Undo restores the previous queue contents. The index follows the
// current track when it is still queued, and playback is not interrupted.
// Otherwise the entry at the clamped index is loaded without playing.
func (c *Controller) Undo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	tracks, ok := c.history.Undo()
	if !ok {
		return false
	}
	c.restoreQueueLocked(tracks)
	return true
}

// Redo reapplies a queue change undone by Undo.
func (c *Controller) Redo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	tracks, ok := c.history.Redo()
	if !ok {
		return false
	}
	c.restoreQueueLocked(tracks)
	return true
}

func (c *Controller) restoreQueueLocked(tracks []catalog.Track) {
	var followID string
	if t := c.store.snapshot().CurrentTrack; t != nil {
		followID = t.ID
	}
	c.queue.Restore(tracks, followID)
	c.syncQueueLocked(false)

	if followID == "" {
		return
	}
	if t := c.queue.Current(); t == nil || t.ID != followID {
		c.loadCurrentLocked()
	}
}

// syncQueueLocked copies the queue into the store and publishes it.
// record pushes the new contents onto the undo history.
func (c *Controller) syncQueueLocked(record bool) {
	tracks := c.queue.Tracks()
	index := c.queue.CurrentIndex()
	if record {
		c.history.Push(tracks)
	}

	c.commit(func(s *PlayerState) {
		s.Queue = tracks
		s.CurrentIndex = index
	})
	c.metrics.SetQueueLength(len(tracks))

	c.broadcast(func(sub *Subscription) {
		sub.sendQueue(QueueChange{Tracks: c.queue.Tracks(), Index: index})
	})
}
