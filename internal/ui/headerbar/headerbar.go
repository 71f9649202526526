// Package headerbar renders the single-line header above the panels.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/harmony/internal/ui/render"
	"github.com/llehouerou/harmony/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

const brand = "Harmony"

// hint is a key/description pair shown on the right.
type hint struct {
	key  string
	name string
}

var hints = []hint{
	{"/", "Search"},
	{"g", "Genre"},
	{"P", "Popular"},
	{"?", "Help"},
}

func keyStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.T().Primary).Bold(true)
}

func nameStyle() lipgloss.Style {
	return styles.T().S().Muted
}

func separatorStyle() lipgloss.Style {
	return styles.T().S().Subtle
}

// Render returns the header for the given width. source names what the
// results panel shows, e.g. `Search "rock"`.
func Render(source string, width int) string {
	if width < 20 {
		return ""
	}

	left := styles.T().Brand(brand)
	if source != "" {
		left += separatorStyle().Render(" │ ") + styles.T().S().Base.Render(source)
	}

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, keyStyle().Render(h.key)+" "+nameStyle().Render(h.name))
	}
	right := strings.Join(parts, separatorStyle().Render(" · "))

	// Drop the hints before the source label when space is short.
	if lipgloss.Width(left)+lipgloss.Width(right)+1 > width {
		right = ""
	}
	if lipgloss.Width(left) > width {
		left = render.Truncate(brand+" │ "+source, width)
	}
	return render.Row(left, right, width)
}
