// Package logging sets up the session logger. The TUI owns the terminal,
// so log output goes to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultPath returns the default log file location, creating its directory.
func DefaultPath() (string, error) {
	return xdg.StateFile(filepath.Join("harmony", "harmony.log"))
}

// Open creates a logger writing JSON lines to path at the given level.
// An empty path uses DefaultPath. The returned closer releases the file.
func Open(level, path string) (*logrus.Logger, io.Closer, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level: %w", err)
	}

	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return nil, nil, fmt.Errorf("resolve log path: %w", err)
		}
	} else if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	l := New(f, lvl)
	return l, f, nil
}

// New creates a logger writing JSON lines to w.
func New(w io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.SetFormatter(&logrus.JSONFormatter{})
	return l
}

// Session returns an entry tagged with a fresh session id.
func Session(l logrus.FieldLogger) *logrus.Entry {
	return l.WithField("session", uuid.NewString())
}
