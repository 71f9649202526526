package state

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/llehouerou/harmony/internal/catalog"
	"github.com/llehouerou/harmony/internal/playback"
)

func getSession(ctx context.Context, db *sql.DB) (*playback.Session, error) {
	var sess playback.Session
	var repeatMode int
	row := db.QueryRowContext(ctx, `
		SELECT current_index, repeat_mode, shuffle, volume, muted
		FROM queue_state WHERE id = 1
	`)
	err := row.Scan(&sess.CurrentIndex, &repeatMode, &sess.Shuffle, &sess.Volume, &sess.Muted)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	sess.RepeatMode = playback.RepeatMode(repeatMode)

	rows, err := db.QueryContext(ctx, `
		SELECT track_id, name, artist_name, album_name, album_image,
		       audio, audio_download, duration_ms, catalog_position
		FROM queue_tracks
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var t catalog.Track
		var artist, album, image, download sql.NullString
		var durationMS, position sql.NullInt64

		err := rows.Scan(&t.ID, &t.Name, &artist, &album, &image,
			&t.Audio, &download, &durationMS, &position)
		if err != nil {
			return nil, err
		}

		t.ArtistName = text(artist)
		t.AlbumName = text(album)
		t.AlbumImage = text(image)
		t.AudioDownload = text(download)
		t.Duration = millis(durationMS)
		t.Position = int(position.Int64)
		sess.Tracks = append(sess.Tracks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &sess, nil
}

func saveSession(ctx context.Context, sqlDB *sql.DB, sess playback.Session) error {
	return inTx(ctx, sqlDB, func(tx *sql.Tx) error {
		// Clear existing queue
		_, err := tx.ExecContext(ctx, `DELETE FROM queue_tracks`)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO queue_state (id, current_index, repeat_mode, shuffle, volume, muted, updated_at)
			VALUES (1, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				current_index = excluded.current_index,
				repeat_mode = excluded.repeat_mode,
				shuffle = excluded.shuffle,
				volume = excluded.volume,
				muted = excluded.muted,
				updated_at = excluded.updated_at
		`, sess.CurrentIndex, int(sess.RepeatMode), sess.Shuffle, sess.Volume, sess.Muted, time.Now().Unix())
		if err != nil {
			return err
		}

		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO queue_tracks (position, track_id, name, artist_name, album_name,
				album_image, audio, audio_download, duration_ms, catalog_position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, t := range sess.Tracks {
			_, err = stmt.ExecContext(ctx, i, t.ID, t.Name,
				optText(t.ArtistName), optText(t.AlbumName),
				optText(t.AlbumImage), t.Audio, optText(t.AudioDownload),
				optMillis(t.Duration), t.Position)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
