package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/harmony/internal/keymap"
	"github.com/llehouerou/harmony/internal/playback"
	"github.com/llehouerou/harmony/internal/ui/headerbar"
	"github.com/llehouerou/harmony/internal/ui/playerbar"
	"github.com/llehouerou/harmony/internal/ui/render"
	"github.com/llehouerou/harmony/internal/ui/styles"
)

const statusHeight = 1

// chromeHeight is the space taken by everything except the panels.
func (m Model) chromeHeight() int {
	h := headerbar.Height + statusHeight
	if m.player.State().Transport() != playback.TransportIdle {
		h += playerbar.Height(m.displayMode)
	}
	return h
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	// The player bar appears and disappears with the current track, so
	// panel heights follow the live snapshot.
	m.resize()

	var b strings.Builder
	b.WriteString(headerbar.Render(m.source, m.width))
	b.WriteString("\n")

	if m.showHelp {
		b.WriteString(m.renderHelp(max(m.height-m.chromeHeight(), 0)))
	} else {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.results.View(), m.queue.View()))
	}

	st := m.player.State()
	var buffered int64
	if m.buffered != nil && st.IsLoading {
		buffered = m.buffered()
	}
	if bar := playerbar.Render(playerbar.NewState(st, buffered, m.displayMode), m.width); bar != "" {
		b.WriteString("\n")
		b.WriteString(bar)
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	return b.String()
}

// renderStatus renders the prompt while typing, else the status message.
func (m Model) renderStatus() string {
	if m.inputMode != inputNone {
		return m.input.View()
	}
	s := styles.T().S()
	if m.status == "" {
		return s.Subtle.Render(render.Fit("tab: switch panel · ?: help · q: quit", m.width))
	}
	if m.statusError {
		return s.Error.Render(render.Fit(m.status, m.width))
	}
	return s.Muted.Render(render.Fit(m.status, m.width))
}

// renderHelp lists the bindings grouped by context.
func (m Model) renderHelp(height int) string {
	contexts := []struct {
		name  string
		title string
	}{
		{keymap.ContextGlobal, "Global"},
		{keymap.ContextPlayback, "Playback"},
		{keymap.ContextResults, "Results"},
		{keymap.ContextQueue, "Queue"},
	}

	s := styles.T().S()
	var lines []string
	for _, c := range contexts {
		lines = append(lines, s.Title.Render(c.title))
		for _, b := range keymap.ByContext(c.name) {
			keys := strings.Join(keyNames(b.Keys), ", ")
			lines = append(lines, "  "+s.Current.Render(render.Fit(keys, 16))+s.Base.Render(b.Description))
		}
		lines = append(lines, "")
	}

	innerWidth := max(m.width-2, 0)
	inner := max(height-2, 0)
	if len(lines) > inner {
		lines = lines[:inner]
	}
	for len(lines) < inner {
		lines = append(lines, "")
	}
	return styles.PanelStyle(true).Width(innerWidth).Render(strings.Join(lines, "\n"))
}

func keyNames(keys []string) []string {
	names := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		names[i] = k
	}
	return names
}
