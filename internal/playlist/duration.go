package playlist

import (
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/llehouerou/harmony/internal/catalog"
)

// unknownDuration is shown for tracks whose length is not known yet.
const unknownDuration = "--:--"

// TotalDuration sums the known durations of tracks.
func TotalDuration(tracks []catalog.Track) time.Duration {
	return lo.SumBy(tracks, func(t catalog.Track) time.Duration {
		return max(t.Duration, 0)
	})
}

// FormatDuration renders d as m:ss, or h:mm:ss past one hour.
// Non-positive durations render as "--:--".
func FormatDuration(d time.Duration) string {
	if d <= 0 {
		return unknownDuration
	}
	total := int(d.Seconds())
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
