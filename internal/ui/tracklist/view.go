package tracklist

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/harmony/internal/catalog"
	"github.com/llehouerou/harmony/internal/icons"
	"github.com/llehouerou/harmony/internal/playlist"
	"github.com/llehouerou/harmony/internal/ui/render"
	"github.com/llehouerou/harmony/internal/ui/styles"
)

const durationWidth = 8 // " 1:02:03"

// View renders the panel.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	innerWidth := m.width - borderHeight
	header := m.renderHeader(innerWidth)
	content := header + "\n" + render.Separator(innerWidth) + "\n" + m.renderRows(innerWidth)

	return styles.PanelStyle(m.focused).
		Width(innerWidth).
		Render(content)
}

func (m Model) renderHeader(innerWidth int) string {
	info := styles.T().S().Muted.Render(m.info)
	titleWidth := max(innerWidth-lipgloss.Width(info)-1, 0)
	title := styles.T().S().Title.Render(render.Fit(m.title, titleWidth))
	return render.Row(title, info, innerWidth)
}

func (m Model) renderRows(innerWidth int) string {
	height := m.listHeight()
	lines := make([]string, 0, height)
	for i := range height {
		idx := m.offset + i
		if idx >= len(m.tracks) {
			lines = append(lines, render.EmptyLine(innerWidth))
			continue
		}
		lines = append(lines, m.renderRow(m.tracks[idx], idx, innerWidth))
	}
	return strings.Join(lines, "\n")
}

// renderRow renders "▶ Title      Artist      3:58".
func (m Model) renderRow(t catalog.Track, idx, width int) string {
	prefix := "  "
	if idx == m.current {
		prefix = render.Fit(icons.Play(), 2)
	}

	contentWidth := max(width-2-durationWidth, 0)
	cols := render.Columns(contentWidth, t.Name, t.ArtistName)
	dur := render.Pad("", durationWidth-len(playlist.FormatDuration(t.Duration))) +
		playlist.FormatDuration(t.Duration)

	return m.rowStyle(idx).Render(prefix + cols + dur)
}

func (m Model) rowStyle(idx int) lipgloss.Style {
	s := styles.T().S()
	isCursor := idx == m.cursor && m.focused
	isCurrent := idx == m.current

	switch {
	case isCursor && isCurrent:
		return s.Cursor.Inherit(s.Current)
	case isCursor:
		return s.Cursor
	case isCurrent:
		return s.Current
	default:
		return s.Base
	}
}
