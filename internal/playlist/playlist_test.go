package playlist

import (
	"testing"
	"time"

	"github.com/llehouerou/harmony/internal/catalog"
)

func TestNewPlaylist(t *testing.T) {
	p := NewPlaylist()

	if p.Len() != 0 {
		t.Errorf("Len() = %d, want 0", p.Len())
	}
	if p.Tracks() == nil {
		t.Error("Tracks() should return empty slice, not nil")
	}
}

func TestPlaylist_AddAndRemove(t *testing.T) {
	p := NewPlaylist()
	p.Add(tracks("a", "b", "c")...)

	if !p.Remove(1) {
		t.Fatal("Remove(1) should return true")
	}

	got := p.Tracks()
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Errorf("Tracks() = %v, want [a c]", got)
	}
	if p.Remove(2) {
		t.Error("Remove(2) should return false on a two-track playlist")
	}
}

func TestPlaylist_Track_OutOfBounds(t *testing.T) {
	p := NewPlaylist()
	p.Add(tracks("a")...)

	if p.Track(-1) != nil || p.Track(1) != nil {
		t.Error("Track() out of bounds should return nil")
	}
}

func TestPlaylist_IndexOf(t *testing.T) {
	p := NewPlaylist()
	p.Add(tracks("a", "b", "a", "c", "a")...)

	tests := []struct {
		id   string
		near int
		want int
	}{
		{"a", 0, 0},
		{"a", 3, 2},
		{"a", 4, 4},
		{"c", 0, 3},
		{"zzz", 0, -1},
	}

	for _, tt := range tests {
		if got := p.IndexOf(tt.id, tt.near); got != tt.want {
			t.Errorf("IndexOf(%q, %d) = %d, want %d", tt.id, tt.near, got, tt.want)
		}
	}
}

func TestTotalDuration(t *testing.T) {
	list := []catalog.Track{
		{ID: "a", Duration: 3 * time.Minute},
		{ID: "b", Duration: 0},
		{ID: "c", Duration: 90 * time.Second},
	}

	if got := TotalDuration(list); got != 4*time.Minute+30*time.Second {
		t.Errorf("TotalDuration() = %v, want 4m30s", got)
	}
	if got := TotalDuration(nil); got != 0 {
		t.Errorf("TotalDuration(nil) = %v, want 0", got)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "--:--"},
		{-time.Second, "--:--"},
		{5 * time.Second, "0:05"},
		{3*time.Minute + 7*time.Second, "3:07"},
		{61 * time.Minute, "1:01:00"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
