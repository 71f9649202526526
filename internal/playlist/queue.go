package playlist

import "github.com/llehouerou/harmony/internal/catalog"

// PlayingQueue wraps a Playlist with a current position.
//
// The current index is always within [0, max(1, Len())). An empty queue
// reports index 0 and no current track.
type PlayingQueue struct {
	playlist     *Playlist
	currentIndex int
}

// NewQueue creates a new empty playing queue.
func NewQueue() *PlayingQueue {
	return &PlayingQueue{
		playlist: NewPlaylist(),
	}
}

// Current returns the track at the current index, or nil if the queue is empty.
func (q *PlayingQueue) Current() *catalog.Track {
	return q.playlist.Track(q.currentIndex)
}

// CurrentIndex returns the current index (0 for an empty queue).
func (q *PlayingQueue) CurrentIndex() int {
	return q.currentIndex
}

// Replace clears the queue, adds tracks and moves to start, clamped to the
// new bounds. Returns the track at the new position, or nil if tracks is empty.
func (q *PlayingQueue) Replace(start int, tracks ...catalog.Track) *catalog.Track {
	q.playlist.Clear()
	q.playlist.Add(tracks...)
	q.currentIndex = q.clamp(start)
	return q.Current()
}

// Next moves to the following track, wrapping to the first one after the
// last. Returns nil if the queue is empty.
func (q *PlayingQueue) Next() *catalog.Track {
	if q.IsEmpty() {
		return nil
	}
	q.currentIndex = (q.currentIndex + 1) % q.playlist.Len()
	return q.Current()
}

// Previous moves to the preceding track, wrapping to the last one from the
// first. Returns nil if the queue is empty.
func (q *PlayingQueue) Previous() *catalog.Track {
	if q.IsEmpty() {
		return nil
	}
	if q.currentIndex == 0 {
		q.currentIndex = q.playlist.Len() - 1
	} else {
		q.currentIndex--
	}
	return q.Current()
}

// HasNext returns true if there's a track after the current one without wrapping.
func (q *PlayingQueue) HasNext() bool {
	return q.currentIndex < q.playlist.Len()-1
}

// JumpTo sets the current index to the specified position.
// Returns the track at that position, or nil if invalid.
func (q *PlayingQueue) JumpTo(index int) *catalog.Track {
	if index < 0 || index >= q.playlist.Len() {
		return nil
	}
	q.currentIndex = index
	return q.Current()
}

// Add appends tracks to the queue without changing the current position.
func (q *PlayingQueue) Add(tracks ...catalog.Track) {
	q.playlist.Add(tracks...)
}

// RemoveAt removes the track at the given index.
//
// Removing at or before the current index shifts the index back by one
// (never below zero), so removing an earlier track keeps pointing at the
// same entry. Returns false if index is out of bounds.
func (q *PlayingQueue) RemoveAt(index int) bool {
	if !q.playlist.Remove(index) {
		return false
	}
	if index <= q.currentIndex {
		q.currentIndex = max(0, q.currentIndex-1)
	}
	q.currentIndex = q.clamp(q.currentIndex)
	return true
}

// Restore replaces the queue contents and keeps following the track with
// the given ID when it is still present. Otherwise the current index is
// clamped to the new bounds.
func (q *PlayingQueue) Restore(tracks []catalog.Track, followID string) {
	index := q.currentIndex
	q.playlist.Clear()
	q.playlist.Add(tracks...)
	if followID != "" {
		if i := q.playlist.IndexOf(followID, index); i >= 0 {
			index = i
		}
	}
	q.currentIndex = q.clamp(index)
}

// Clear removes all tracks and resets the position.
func (q *PlayingQueue) Clear() {
	q.playlist.Clear()
	q.currentIndex = 0
}

// Tracks returns a copy of all tracks in the queue.
func (q *PlayingQueue) Tracks() []catalog.Track {
	return q.playlist.Tracks()
}

// Len returns the number of tracks in the queue.
func (q *PlayingQueue) Len() int {
	return q.playlist.Len()
}

// IsEmpty returns true if the queue has no tracks.
func (q *PlayingQueue) IsEmpty() bool {
	return q.playlist.Len() == 0
}

func (q *PlayingQueue) clamp(index int) int {
	n := q.playlist.Len()
	if n == 0 || index < 0 {
		return 0
	}
	if index >= n {
		return n - 1
	}
	return index
}
