package catalog

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

type fakeCatalog struct {
	tracks []Track
	err    error

	searchCalls []string
	popularArgs []int
	genreArgs   []string
}

func (f *fakeCatalog) SearchTracks(_ context.Context, query string) ([]Track, error) {
	f.searchCalls = append(f.searchCalls, query)
	return f.tracks, f.err
}

func (f *fakeCatalog) PopularTracks(_ context.Context, limit int) ([]Track, error) {
	f.popularArgs = append(f.popularArgs, limit)
	return f.tracks, f.err
}

func (f *fakeCatalog) TracksByGenre(_ context.Context, genre string, _ int) ([]Track, error) {
	f.genreArgs = append(f.genreArgs, genre)
	return f.tracks, f.err
}

func quietLogger() (*logrus.Logger, *test.Hook) {
	log, hook := test.NewNullLogger()
	log.SetOutput(io.Discard)
	return log, hook
}

func TestResilient_Search_ReturnsTracks(t *testing.T) {
	fc := &fakeCatalog{tracks: []Track{{ID: "1"}, {ID: "2"}}}
	log, _ := quietLogger()
	r := NewResilient(fc, log, nil)

	got := r.Search(context.Background(), "  rock  ")

	if len(got) != 2 {
		t.Fatalf("len(Search()) = %d, want 2", len(got))
	}
	if len(fc.searchCalls) != 1 || fc.searchCalls[0] != "rock" {
		t.Errorf("search calls = %v, want [rock]", fc.searchCalls)
	}
}

func TestResilient_Search_BlankQuerySkipsCatalog(t *testing.T) {
	fc := &fakeCatalog{tracks: []Track{{ID: "1"}}}
	log, _ := quietLogger()
	r := NewResilient(fc, log, nil)

	got := r.Search(context.Background(), "   ")

	if got != nil {
		t.Errorf("Search() = %v, want nil", got)
	}
	if len(fc.searchCalls) != 0 {
		t.Errorf("catalog called %d times, want 0", len(fc.searchCalls))
	}
}

func TestResilient_FailureDegradesToEmpty(t *testing.T) {
	fc := &fakeCatalog{err: &NetworkError{Op: "tracks", Err: errors.New("connection refused")}}
	log, hook := quietLogger()
	r := NewResilient(fc, log, nil)

	if got := r.Popular(context.Background(), 10); got != nil {
		t.Errorf("Popular() = %v, want nil", got)
	}
	if got := r.Genre(context.Background(), "jazz", 10); got != nil {
		t.Errorf("Genre() = %v, want nil", got)
	}

	if len(hook.AllEntries()) != 2 {
		t.Fatalf("logged %d entries, want 2", len(hook.AllEntries()))
	}
	entry := hook.LastEntry()
	if entry.Level != logrus.WarnLevel {
		t.Errorf("level = %v, want warn", entry.Level)
	}
	if entry.Data["op"] != OpGenre {
		t.Errorf("op field = %v, want %q", entry.Data["op"], OpGenre)
	}
}

func TestErrors_MatchUnavailable(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"network", &NetworkError{Op: "tracks", Err: errors.New("dial")}},
		{"status", &NetworkError{Op: "tracks", StatusCode: 503, Err: errors.New("503 Service Unavailable")}},
		{"api", &APIError{Op: "tracks", Code: 5, Message: "invalid client id"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, ErrUnavailable) {
				t.Errorf("errors.Is(%v, ErrUnavailable) = false", tt.err)
			}
		})
	}
}

func TestTrack_Same(t *testing.T) {
	a := &Track{ID: "1", Name: "A"}
	b := &Track{ID: "1", Name: "other name"}
	c := &Track{ID: "2"}

	if !a.Same(b) {
		t.Error("tracks with equal IDs should be the same")
	}
	if a.Same(c) {
		t.Error("tracks with different IDs should differ")
	}
	if a.Same(nil) {
		t.Error("track should differ from nil")
	}
	var n *Track
	if !n.Same(nil) {
		t.Error("nil should equal nil")
	}
}
