package jamendo

import (
	"time"

	"github.com/llehouerou/harmony/internal/catalog"
)

// envelope is the common response wrapper of every Jamendo endpoint.
type envelope[T any] struct {
	Headers struct {
		Status       string `json:"status"`
		Code         int    `json:"code"`
		ErrorMessage string `json:"error_message"`
		Warnings     string `json:"warnings"`
		ResultsCount int    `json:"results_count"`
	} `json:"headers"`
	Results []T `json:"results"`
}

type trackResult struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Duration      int    `json:"duration"` // seconds
	ArtistName    string `json:"artist_name"`
	AlbumName     string `json:"album_name"`
	AlbumImage    string `json:"album_image"`
	Audio         string `json:"audio"`
	AudioDownload string `json:"audiodownload"`
	Position      int    `json:"position"`
}

func (r trackResult) toTrack() catalog.Track {
	return catalog.Track{
		ID:            r.ID,
		Name:          r.Name,
		ArtistName:    r.ArtistName,
		AlbumName:     r.AlbumName,
		AlbumImage:    r.AlbumImage,
		Audio:         r.Audio,
		AudioDownload: r.AudioDownload,
		Duration:      time.Duration(max(r.Duration, 0)) * time.Second,
		Position:      r.Position,
	}
}
