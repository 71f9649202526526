package state

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// inTx runs fn in a transaction, rolling back when fn fails.
func inTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// optText stores empty catalog fields as NULL.
func optText(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// optMillis stores unknown (zero) durations as NULL.
func optMillis(d time.Duration) any {
	if d <= 0 {
		return nil
	}
	return d.Milliseconds()
}

func text(n sql.NullString) string {
	if !n.Valid {
		return ""
	}
	return n.String
}

func millis(n sql.NullInt64) time.Duration {
	if !n.Valid {
		return 0
	}
	return time.Duration(n.Int64) * time.Millisecond
}
