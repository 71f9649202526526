package state

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/llehouerou/harmony/internal/errmsg"
	"github.com/llehouerou/harmony/internal/playback"
)

const (
	appName      = "harmony"
	dbFileName   = "harmony.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db        *sql.DB
	log       logrus.FieldLogger
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *playback.Session
}

// Open opens the session database in the XDG data directory.
func Open(log logrus.FieldLogger) (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath, log)
}

// OpenPath opens the session database at path.
func OpenPath(dbPath string, log logrus.FieldLogger) (*Manager, error) {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db, log: log}, nil
}

func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	// Flush pending state
	if pending != nil {
		m.write(*pending)
	}

	return m.db.Close()
}

// GetSession returns the saved session, or nil if none was saved.
func (m *Manager) GetSession() (*playback.Session, error) {
	return getSession(context.Background(), m.db)
}

// SaveSession schedules sess to be written. Saves arriving within the
// debounce window replace each other; Close flushes the last one.
func (m *Manager) SaveSession(sess playback.Session) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &sess

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		m.saveMu.Unlock()

		if pending != nil {
			m.write(*pending)
		}
	})
}

func (m *Manager) write(sess playback.Session) {
	if err := saveSession(context.Background(), m.db, sess); err != nil {
		m.log.WithError(err).WithField("tracks", len(sess.Tracks)).Error(errmsg.Format(errmsg.OpSessionSave, err))
	}
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
