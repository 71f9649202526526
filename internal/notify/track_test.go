package notify

import (
	"context"
	"sync"
	"testing"
	"testing/synctest"

	"github.com/sirupsen/logrus/hooks/test"

	"github.com/llehouerou/harmony/internal/catalog"
	"github.com/llehouerou/harmony/internal/playback"
	"github.com/llehouerou/harmony/internal/player"
)

type recordingNotifier struct {
	mu      sync.Mutex
	sent    []Notification
	closed  []uint32
	actions chan ActionInvoked
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{actions: make(chan ActionInvoked, 1)}
}

func (r *recordingNotifier) Notify(n Notification) (uint32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
	return uint32(len(r.sent)), nil
}

func (r *recordingNotifier) Close(id uint32) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = append(r.closed, id)
	return nil
}

func (r *recordingNotifier) Actions() <-chan ActionInvoked { return r.actions }

func (r *recordingNotifier) Sent() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.sent...)
}

func (r *recordingNotifier) Closed() []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]uint32(nil), r.closed...)
}

var twoTracks = []catalog.Track{
	{ID: "1", Name: "First", Audio: "https://x/1.mp3"},
	{ID: "2", Name: "Second", Audio: "https://x/2.mp3"},
}

func TestForTrack(t *testing.T) {
	tests := []struct {
		name     string
		track    catalog.Track
		wantBody string
	}{
		{
			name:     "artist and album",
			track:    catalog.Track{Name: "Wobbly Way", ArtistName: "Kellee Maize", AlbumName: "Aligned"},
			wantBody: "Kellee Maize - Aligned",
		},
		{
			name:     "artist only",
			track:    catalog.Track{Name: "Wobbly Way", ArtistName: "Kellee Maize"},
			wantBody: "Kellee Maize",
		},
		{
			name:     "no metadata",
			track:    catalog.Track{Name: "Untitled"},
			wantBody: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := ForTrack(tt.track)
			if n.Summary != tt.track.Name {
				t.Errorf("Summary = %q, want %q", n.Summary, tt.track.Name)
			}
			if n.Body != tt.wantBody {
				t.Errorf("Body = %q, want %q", n.Body, tt.wantBody)
			}
			if !n.Transient {
				t.Error("track notifications should be transient")
			}
			if len(n.Actions) != 1 || n.Actions[0].Key != ActionNext {
				t.Errorf("Actions = %+v, want a single next action", n.Actions)
			}
		})
	}
}

func TestWatch_NotifiesOnTrackChange(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := playback.New(player.NewMock())
		sub := ctrl.Subscribe()
		rec := newRecordingNotifier()
		log, _ := test.NewNullLogger()

		done := make(chan struct{})
		go func() {
			Watch(context.Background(), rec, ctrl, sub, log)
			close(done)
		}()

		ctrl.SetQueue(twoTracks, 0)
		_ = ctrl.PlayNext()
		synctest.Wait()

		sent := rec.Sent()
		if len(sent) != 2 {
			t.Fatalf("sent %d notifications, want 2", len(sent))
		}
		if sent[1].Summary != "Second" {
			t.Errorf("second Summary = %q, want Second", sent[1].Summary)
		}
		if sent[1].ReplacesID != 1 {
			t.Errorf("second ReplacesID = %d, want 1", sent[1].ReplacesID)
		}

		_ = ctrl.Close()
		<-done
	})
}

func TestWatch_NextActionSkips(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := playback.New(player.NewMock())
		rec := newRecordingNotifier()
		log, _ := test.NewNullLogger()

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			Watch(ctx, rec, ctrl, ctrl.Subscribe(), log)
			close(done)
		}()

		ctrl.SetQueue(twoTracks, 0)
		synctest.Wait()

		// Clicks on a stale notification are ignored.
		rec.actions <- ActionInvoked{ID: 99, Key: ActionNext}
		synctest.Wait()
		if got := ctrl.State().CurrentIndex; got != 0 {
			t.Fatalf("CurrentIndex = %d after stale click, want 0", got)
		}

		rec.actions <- ActionInvoked{ID: 1, Key: ActionNext}
		synctest.Wait()
		if got := ctrl.State().CurrentIndex; got != 1 {
			t.Errorf("CurrentIndex = %d, want 1", got)
		}

		cancel()
		<-done
		if closed := rec.Closed(); len(closed) != 1 || closed[0] != 2 {
			t.Errorf("Closed = %v, want [2]", closed)
		}
		_ = ctrl.Close()
	})
}
