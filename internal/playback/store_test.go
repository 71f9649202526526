package playback

import (
	"testing"

	"github.com/llehouerou/harmony/internal/catalog"
)

func TestStore_Defaults(t *testing.T) {
	s := newStore()
	st := s.snapshot()

	if st.Volume != 1 {
		t.Errorf("Volume = %v, want 1", st.Volume)
	}
	if st.RepeatMode != RepeatNone {
		t.Errorf("RepeatMode = %v, want None", st.RepeatMode)
	}
	if st.CurrentTrack != nil || len(st.Queue) != 0 {
		t.Error("new store should have no track and an empty queue")
	}
}

func TestStore_SnapshotIsIndependent(t *testing.T) {
	s := newStore()
	s.apply(func(st *PlayerState) {
		st.Queue = []catalog.Track{{ID: "a"}, {ID: "b"}}
		st.CurrentTrack = &catalog.Track{ID: "a"}
	})

	snap := s.snapshot()
	snap.Queue[0].ID = "changed"
	snap.CurrentTrack.ID = "changed"

	again := s.snapshot()
	if again.Queue[0].ID != "a" {
		t.Errorf("Queue[0].ID = %q, want a", again.Queue[0].ID)
	}
	if again.CurrentTrack.ID != "a" {
		t.Errorf("CurrentTrack.ID = %q, want a", again.CurrentTrack.ID)
	}
}
