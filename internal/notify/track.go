package notify

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/llehouerou/harmony/internal/catalog"
	"github.com/llehouerou/harmony/internal/playback"
)

const (
	trackIcon     = "audio-x-generic"
	trackCategory = "x-harmony.track"
	trackTimeout  = 5 * time.Second

	// ActionNext is the key of the "Next" button on track notifications.
	ActionNext = "next"
)

// Skipper advances playback to the next queued track.
type Skipper interface {
	PlayNext() error
}

// ForTrack builds the "now playing" notification for a track.
func ForTrack(t catalog.Track) Notification {
	var body []string
	if t.ArtistName != "" {
		body = append(body, t.ArtistName)
	}
	if t.AlbumName != "" {
		body = append(body, t.AlbumName)
	}
	return Notification{
		Summary:   t.Name,
		Body:      strings.Join(body, " - "),
		Icon:      trackIcon,
		Timeout:   trackTimeout,
		Urgency:   UrgencyLow,
		Category:  trackCategory,
		Transient: true,
		Actions:   []Action{{Key: ActionNext, Label: "Next"}},
	}
}

// Watch shows a notification for every track change on sub until ctx is
// done or the subscription closes. Each notification replaces the previous
// one, and its Next button skips through player. On return the last
// notification is withdrawn and sub is released.
func Watch(ctx context.Context, n Notifier, player Skipper, sub *playback.Subscription, log logrus.FieldLogger) {
	defer sub.Unsubscribe()

	var lastID uint32
	defer func() {
		if lastID != 0 {
			_ = n.Close(lastID)
		}
	}()

	for {
		select {
		case ev := <-sub.TrackChanged:
			if ev.Current == nil {
				continue
			}
			notif := ForTrack(*ev.Current)
			notif.ReplacesID = lastID
			id, err := n.Notify(notif)
			if err != nil {
				log.WithError(err).WithField("track_id", ev.Current.ID).Debug("desktop notification failed")
				continue
			}
			lastID = id

		case act := <-n.Actions():
			if act.ID != lastID || act.Key != ActionNext {
				continue
			}
			if err := player.PlayNext(); err != nil {
				log.WithError(err).Debug("skip from notification failed")
			}

		case <-sub.Done:
			return
		case <-ctx.Done():
			return
		}
	}
}
