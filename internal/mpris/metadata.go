//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/harmony/internal/catalog"
)

// trackMetadata maps a catalog track to MPRIS metadata. duration is the
// decoded length, used when the catalog did not report one.
func trackMetadata(t *catalog.Track, duration time.Duration) types.Metadata {
	if t == nil {
		return types.Metadata{}
	}

	length := t.Duration
	if length <= 0 {
		length = duration
	}

	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(t.ID)),
		Length:  types.Microseconds(length.Microseconds()),
		Title:   t.Name,
		Album:   t.AlbumName,
		ArtUrl:  t.AlbumImage,
		Url:     t.Audio,
	}
	if t.ArtistName != "" {
		meta.Artist = []string{t.ArtistName}
	}
	if t.Position > 0 {
		meta.TrackNumber = t.Position
	}
	return meta
}

func formatTrackID(id string) string {
	h := fnv.New64a()
	h.Write([]byte(id))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
