package playerbar

import (
	"strings"
	"time"
)

const (
	filledBlock = "━"
	emptyBlock  = "─"

	minBarWidth = 5
)

// RenderProgressBar renders a line-style progress bar of exactly width cells.
// An unknown duration renders an empty bar.
func RenderProgressBar(position, duration time.Duration, width int) string {
	if width <= 0 {
		return ""
	}
	var ratio float64
	if duration > 0 {
		ratio = min(max(float64(position)/float64(duration), 0), 1)
	}
	filled := min(int(float64(width)*ratio), width)

	return progressBarFilled().Render(strings.Repeat(filledBlock, filled)) +
		progressBarEmpty().Render(strings.Repeat(emptyBlock, width-filled))
}
