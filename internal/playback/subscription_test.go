package playback

import (
	"errors"
	"testing"
	"testing/synctest"
	"time"

	"github.com/llehouerou/harmony/internal/catalog"
	"github.com/llehouerou/harmony/internal/errmsg"
	"github.com/llehouerou/harmony/internal/player"
)

func TestNewSubscription_ChannelsReadable(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		sub := newSubscription()

		sub.sendState(StateChange{Previous: TransportIdle, Current: TransportLoading})
		sub.sendTrack(TrackChange{Index: 1})
		sub.sendPosition(PositionChange{Position: 30 * time.Second})
		sub.sendQueue(QueueChange{Index: 2, Tracks: []catalog.Track{{ID: "q"}}})
		sub.sendMode(ModeChange{RepeatMode: RepeatAll, Shuffle: true})
		sub.sendVolume(VolumeChange{Volume: 0.5})
		sub.sendError(ErrorEvent{Op: errmsg.OpPlaybackLoad, Err: errors.New("boom")})

		e := <-sub.StateChanged
		if e.Current != TransportLoading {
			t.Errorf("StateChanged.Current = %v, want Loading", e.Current)
		}

		tr := <-sub.TrackChanged
		if tr.Index != 1 {
			t.Errorf("TrackChanged.Index = %d, want 1", tr.Index)
		}

		pos := <-sub.PositionChanged
		if pos.Position != 30*time.Second {
			t.Errorf("PositionChanged.Position = %v, want 30s", pos.Position)
		}

		q := <-sub.QueueChanged
		if q.Index != 2 || len(q.Tracks) != 1 || q.Tracks[0].ID != "q" {
			t.Errorf("QueueChanged = %+v, want index 2 with track q", q)
		}

		m := <-sub.ModeChanged
		if m.RepeatMode != RepeatAll || !m.Shuffle {
			t.Errorf("ModeChanged = %+v, want All/shuffle", m)
		}

		v := <-sub.VolumeChanged
		if v.Volume != 0.5 {
			t.Errorf("VolumeChanged.Volume = %v, want 0.5", v.Volume)
		}

		er := <-sub.Error
		if er.Message() != "Failed to load track: boom" {
			t.Errorf("Error.Message() = %q", er.Message())
		}
	})
}

func TestSubscription_Close_SignalsDone(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		sub := newSubscription()
		sub.close()
		<-sub.Done
	})
}

func TestSubscription_NonBlocking_DropsWhenFull(t *testing.T) {
	sub := newSubscription()

	for range eventBufferSize + 5 {
		sub.sendState(StateChange{})
	}

	count := 0
	for {
		select {
		case <-sub.StateChanged:
			count++
		default:
			goto done
		}
	}
done:
	if count != eventBufferSize {
		t.Errorf("received %d events, want %d (buffer size)", count, eventBufferSize)
	}
	if got := sub.Dropped(); got != 5 {
		t.Errorf("Dropped() = %d, want 5", got)
	}
}

func TestSubscription_CloseTwice(t *testing.T) {
	sub := newSubscription()
	sub.close()
	sub.close()
	<-sub.Done
}

func TestUnsubscribe_StopsDelivery(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		c := New(player.NewMock())
		kept := c.Subscribe()
		gone := c.Subscribe()

		gone.Unsubscribe()
		<-gone.Done

		c.SetVolume(0.4)
		synctest.Wait()

		select {
		case <-gone.VolumeChanged:
			t.Error("unsubscribed reader received an event")
		default:
		}
		select {
		case v := <-kept.VolumeChanged:
			if v.Volume != 0.4 {
				t.Errorf("Volume = %v, want 0.4", v.Volume)
			}
		default:
			t.Error("remaining subscriber got no VolumeChange")
		}

		if err := c.Close(); err != nil {
			t.Fatalf("Close() error: %v", err)
		}
		gone.Unsubscribe()
		<-kept.Done
	})
}

func TestErrorEvent_MessageWithTrack(t *testing.T) {
	e := ErrorEvent{
		Op:    errmsg.OpPlaybackStart,
		Track: &catalog.Track{Name: "Wobbly Way"},
		Err:   errors.New("no device"),
	}
	want := "Failed to start playback 'Wobbly Way': no device"
	if got := e.Message(); got != want {
		t.Errorf("Message() = %q, want %q", got, want)
	}
}
