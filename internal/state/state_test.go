package state

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	_ "modernc.org/sqlite"

	"github.com/llehouerou/harmony/internal/catalog"
	"github.com/llehouerou/harmony/internal/playback"
)

// setupTestDB creates an in-memory SQLite database with the schema initialized.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		t.Fatalf("failed to init schema: %v", err)
	}

	return db
}

func testSession() playback.Session {
	return playback.Session{
		Tracks: []catalog.Track{
			{
				ID:            "1204669",
				Name:          "Wobbly Way",
				ArtistName:    "Kellee Maize",
				AlbumName:     "Aligned",
				AlbumImage:    "https://usercontent.jamendo.com/?type=album&id=1&width=300",
				Audio:         "https://prod-1.storage.jamendo.com/?trackid=1204669&format=mp31",
				AudioDownload: "https://prod-1.storage.jamendo.com/download/track/1204669/mp32/",
				Duration:      241 * time.Second,
				Position:      3,
			},
			{
				ID:    "42",
				Name:  "Untitled",
				Audio: "https://prod-1.storage.jamendo.com/?trackid=42&format=mp31",
			},
		},
		CurrentIndex: 1,
		RepeatMode:   playback.RepeatAll,
		Shuffle:      true,
		Volume:       0.65,
		Muted:        true,
	}
}

func TestGetSession_Empty(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	sess, err := getSession(context.Background(), db)
	if err != nil {
		t.Fatalf("getSession failed: %v", err)
	}
	if sess != nil {
		t.Errorf("expected nil session on empty db, got %+v", sess)
	}
}

func TestSaveAndGetSession(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	want := testSession()
	if err := saveSession(context.Background(), db, want); err != nil {
		t.Fatalf("saveSession failed: %v", err)
	}

	got, err := getSession(context.Background(), db)
	if err != nil {
		t.Fatalf("getSession failed: %v", err)
	}
	if got == nil {
		t.Fatal("getSession returned nil")
	}

	if got.CurrentIndex != want.CurrentIndex {
		t.Errorf("CurrentIndex = %d, want %d", got.CurrentIndex, want.CurrentIndex)
	}
	if got.RepeatMode != want.RepeatMode {
		t.Errorf("RepeatMode = %v, want %v", got.RepeatMode, want.RepeatMode)
	}
	if got.Shuffle != want.Shuffle {
		t.Errorf("Shuffle = %v, want %v", got.Shuffle, want.Shuffle)
	}
	if got.Volume != want.Volume {
		t.Errorf("Volume = %v, want %v", got.Volume, want.Volume)
	}
	if got.Muted != want.Muted {
		t.Errorf("Muted = %v, want %v", got.Muted, want.Muted)
	}
	if len(got.Tracks) != len(want.Tracks) {
		t.Fatalf("len(Tracks) = %d, want %d", len(got.Tracks), len(want.Tracks))
	}
	for i := range want.Tracks {
		if got.Tracks[i] != want.Tracks[i] {
			t.Errorf("Tracks[%d] = %+v, want %+v", i, got.Tracks[i], want.Tracks[i])
		}
	}
}

func TestSaveSession_ReplacesExisting(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := saveSession(context.Background(), db, testSession()); err != nil {
		t.Fatalf("first save failed: %v", err)
	}

	second := playback.Session{
		Tracks: []catalog.Track{{ID: "7", Name: "Only", Audio: "https://x/7.mp3"}},
		Volume: 1,
	}
	if err := saveSession(context.Background(), db, second); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	got, err := getSession(context.Background(), db)
	if err != nil {
		t.Fatalf("getSession failed: %v", err)
	}
	if len(got.Tracks) != 1 || got.Tracks[0].ID != "7" {
		t.Errorf("Tracks = %+v, want only track 7", got.Tracks)
	}
	if got.RepeatMode != playback.RepeatNone || got.Shuffle {
		t.Errorf("modes not replaced: repeat %v shuffle %v", got.RepeatMode, got.Shuffle)
	}
}

func TestSaveSession_EmptyQueue(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := saveSession(context.Background(), db, playback.Session{Volume: 0.3}); err != nil {
		t.Fatalf("saveSession failed: %v", err)
	}

	got, err := getSession(context.Background(), db)
	if err != nil {
		t.Fatalf("getSession failed: %v", err)
	}
	if got == nil || len(got.Tracks) != 0 || got.Volume != 0.3 {
		t.Errorf("getSession = %+v, want empty queue at volume 0.3", got)
	}
}

func TestManager_CloseFlushesPendingSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "harmony.db")
	log, hook := test.NewNullLogger()

	m, err := OpenPath(path, log)
	if err != nil {
		t.Fatalf("OpenPath failed: %v", err)
	}

	first := testSession()
	m.SaveSession(first)
	latest := testSession()
	latest.CurrentIndex = 0
	m.SaveSession(latest)

	if err := m.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	m, err = OpenPath(path, log)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer m.Close()

	got, err := m.GetSession()
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if got == nil {
		t.Fatal("pending session was not flushed on Close")
	}
	if got.CurrentIndex != 0 {
		t.Errorf("CurrentIndex = %d, want 0 (latest save wins)", got.CurrentIndex)
	}
	if len(hook.AllEntries()) != 0 {
		t.Errorf("unexpected log entries: %v", hook.AllEntries())
	}
}

func TestManager_DebouncedSaveWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "harmony.db")
	log, _ := test.NewNullLogger()

	m, err := OpenPath(path, log)
	if err != nil {
		t.Fatalf("OpenPath failed: %v", err)
	}
	defer m.Close()

	m.SaveSession(testSession())

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		sess, err := m.GetSession()
		if err != nil {
			t.Fatalf("GetSession failed: %v", err)
		}
		if sess != nil {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatal("debounced save never reached the database")
}

func TestMock(t *testing.T) {
	m := NewMock()

	sess, err := m.GetSession()
	if err != nil || sess != nil {
		t.Fatalf("GetSession() = %v, %v; want nil, nil", sess, err)
	}

	m.SaveSession(testSession())
	sess, _ = m.GetSession()
	if sess == nil || len(sess.Tracks) != 2 {
		t.Errorf("GetSession() after save = %+v", sess)
	}
	if m.Saves() != 1 {
		t.Errorf("Saves() = %d, want 1", m.Saves())
	}

	_ = m.Close()
	if !m.IsClosed() {
		t.Error("IsClosed() = false after Close")
	}
}
