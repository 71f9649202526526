// Package errmsg turns errors into short messages for the status line and
// the terminal.
package errmsg

import (
	"errors"
	"fmt"
)

// Op names the user-level operation that failed.
type Op string

const (
	// Playback
	OpPlaybackLoad  Op = "load track"
	OpPlaybackStart Op = "start playback"

	// Catalog
	OpCatalogSearch  Op = "search catalog"
	OpCatalogPopular Op = "load popular tracks"
	OpCatalogGenre   Op = "browse genre"

	// Session
	OpSessionRestore Op = "restore session"
	OpSessionSave    Op = "save session"

	OpInitialize Op = "initialize application"
)

// Error tags an error with the operation that produced it.
type Error struct {
	Op  Op
	Err error
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *Error) Unwrap() error { return e.Err }

// Wrap tags err with op. Returns nil when err is nil.
func Wrap(op Op, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith is Format naming the item the operation was about.
func FormatWith(op Op, subject string, err error) string {
	if err == nil {
		return ""
	}
	if subject == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, subject, err)
}

// Message formats err using the outermost Op tag in its chain, falling back
// to the plain error text.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return Format(e.Op, e.Err)
	}
	return err.Error()
}
