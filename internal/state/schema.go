package state

import (
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS queue_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			current_index INTEGER NOT NULL DEFAULT 0,
			repeat_mode INTEGER NOT NULL DEFAULT 0,
			shuffle INTEGER NOT NULL DEFAULT 0,
			volume REAL NOT NULL DEFAULT 1.0,
			muted INTEGER NOT NULL DEFAULT 0,
			updated_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS queue_tracks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			position INTEGER NOT NULL,
			track_id TEXT NOT NULL,
			name TEXT NOT NULL,
			artist_name TEXT,
			album_name TEXT,
			album_image TEXT,
			audio TEXT NOT NULL,
			audio_download TEXT,
			duration_ms INTEGER,
			catalog_position INTEGER,
			UNIQUE(position)
		);

		CREATE INDEX IF NOT EXISTS idx_queue_tracks_position ON queue_tracks(position);
	`)
	if err != nil {
		return err
	}

	// Set initial version if not exists
	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}
