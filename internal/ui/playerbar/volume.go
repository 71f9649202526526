package playerbar

import (
	"fmt"

	"github.com/llehouerou/harmony/internal/icons"
)

// RenderVolume renders the volume indicator, e.g. "Vol  80%".
// The level is shown even when muted so the restore target stays visible.
func RenderVolume(volume float64, muted bool) string {
	pct := int(volume*100 + 0.5)
	icon := icons.Volume()
	if muted {
		icon = icons.VolumeMute()
	}
	return fmt.Sprintf("%s %3d%%", icon, pct)
}
