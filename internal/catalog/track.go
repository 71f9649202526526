package catalog

import "time"

// Track is a playable catalog entry. Values are treated as immutable;
// identity is ID, and the same track may appear several times in a queue.
type Track struct {
	ID            string
	Name          string
	ArtistName    string
	AlbumName     string
	AlbumImage    string // cover URL
	Audio         string // streamable URL
	AudioDownload string
	Duration      time.Duration // 0 if unknown
	Position      int           // position on its album
}

// Same reports whether t and other are the same catalog entry.
func (t *Track) Same(other *Track) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.ID == other.ID
}
