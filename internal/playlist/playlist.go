// Package playlist holds ordered track collections and the playing queue.
package playlist

import "github.com/llehouerou/harmony/internal/catalog"

// Playlist holds an ordered collection of tracks.
type Playlist struct {
	tracks []catalog.Track
}

// NewPlaylist creates a new empty playlist.
func NewPlaylist() *Playlist {
	return &Playlist{
		tracks: make([]catalog.Track, 0),
	}
}

// Add appends tracks to the playlist.
func (p *Playlist) Add(tracks ...catalog.Track) {
	p.tracks = append(p.tracks, tracks...)
}

// Remove removes the track at the given index.
// Returns false if index is out of bounds.
func (p *Playlist) Remove(index int) bool {
	if index < 0 || index >= len(p.tracks) {
		return false
	}
	p.tracks = append(p.tracks[:index], p.tracks[index+1:]...)
	return true
}

// Clear removes all tracks from the playlist.
func (p *Playlist) Clear() {
	p.tracks = p.tracks[:0]
}

// Tracks returns a copy of all tracks.
func (p *Playlist) Tracks() []catalog.Track {
	result := make([]catalog.Track, len(p.tracks))
	copy(result, p.tracks)
	return result
}

// Track returns the track at the given index, or nil if out of bounds.
func (p *Playlist) Track(index int) *catalog.Track {
	if index < 0 || index >= len(p.tracks) {
		return nil
	}
	return &p.tracks[index]
}

// IndexOf returns the first index holding a track with the given ID,
// searching outward from near so duplicates resolve to the closest slot.
// Returns -1 if no track matches.
func (p *Playlist) IndexOf(id string, near int) int {
	best := -1
	for i := range p.tracks {
		if p.tracks[i].ID != id {
			continue
		}
		if best < 0 || abs(i-near) < abs(best-near) {
			best = i
		}
	}
	return best
}

// Len returns the number of tracks.
func (p *Playlist) Len() int {
	return len(p.tracks)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
