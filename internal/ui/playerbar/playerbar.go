package playerbar

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/harmony/internal/icons"
	"github.com/llehouerou/harmony/internal/playback"
	"github.com/llehouerou/harmony/internal/playlist"
	"github.com/llehouerou/harmony/internal/ui/render"
)

// DisplayMode controls the player bar appearance.
type DisplayMode int

const (
	ModeCompact  DisplayMode = iota // Single-line view
	ModeExpanded                    // Album line, modes and volume
)

// State holds everything needed to render the player bar.
type State struct {
	Transport   playback.Transport
	Title       string
	Artist      string
	Album       string
	Position    time.Duration
	Duration    time.Duration
	Buffered    int64 // bytes fetched so far while loading
	Volume      float64
	Muted       bool
	Shuffle     bool
	Repeat      playback.RepeatMode
	DisplayMode DisplayMode
}

// Height returns the total height of the player bar for the given mode.
func Height(mode DisplayMode) int {
	if mode == ModeExpanded {
		return 4 // 2 content rows + 2 border rows
	}
	return 3 // top border + content + bottom border
}

// NewState builds a State from a controller snapshot. buffered is the
// number of bytes the surface has fetched for the current track.
func NewState(ps playback.PlayerState, buffered int64, mode DisplayMode) State {
	s := State{
		Transport:   ps.Transport(),
		Position:    ps.CurrentTime,
		Duration:    ps.Duration,
		Buffered:    buffered,
		Volume:      ps.Volume,
		Muted:       ps.IsMuted,
		Shuffle:     ps.IsShuffled,
		Repeat:      ps.RepeatMode,
		DisplayMode: mode,
	}
	if t := ps.CurrentTrack; t != nil {
		s.Title = t.Name
		s.Artist = t.ArtistName
		s.Album = t.AlbumName
		if s.Duration <= 0 {
			s.Duration = t.Duration
		}
	}
	return s
}

// Render returns the player bar string for the given width.
// Returns empty string when no track is selected.
func Render(s State, width int) string {
	if s.Transport == playback.TransportIdle {
		return ""
	}

	innerWidth := max(width-6, 0) // border and padding
	line := renderMain(s, innerWidth)
	if s.DisplayMode == ModeExpanded {
		line += "\n" + renderDetails(s, innerWidth)
	}
	return barStyle().Padding(0, 2).Width(width - 2).Render(line)
}

// renderMain renders "Title · Artist   ▶ ━━━───   1:23 / 3:58".
func renderMain(s State, innerWidth int) string {
	title := s.Title
	if title == "" {
		title = "Unknown Track"
	}
	info := title
	if s.Artist != "" {
		info += " · " + s.Artist
	}

	right := statusText(s)
	rightWidth := lipgloss.Width(right)

	const separator = "   "
	infoWidth := min(lipgloss.Width(info), max(innerWidth/2, 10))
	barWidth := innerWidth - infoWidth - rightWidth - 2*len(separator) - 3

	var b strings.Builder
	b.WriteString(titleStyle().Render(render.Fit(info, infoWidth)))
	b.WriteString(separator)
	b.WriteString(render.Fit(statusIcon(s.Transport), 2))
	b.WriteString(" ")
	if barWidth >= minBarWidth {
		b.WriteString(RenderProgressBar(s.Position, s.Duration, barWidth))
	}
	b.WriteString(separator)
	b.WriteString(progressTimeStyle().Render(right))
	return b.String()
}

// statusText is the time readout, or the download progress while loading.
func statusText(s State) string {
	if s.Transport == playback.TransportLoading {
		if s.Buffered > 0 {
			return "buffering " + humanize.Bytes(uint64(s.Buffered))
		}
		return "loading"
	}
	return playlist.FormatDuration(s.Position) + " / " + playlist.FormatDuration(s.Duration)
}

func statusIcon(t playback.Transport) string {
	switch t {
	case playback.TransportPlaying:
		return icons.Play()
	case playback.TransportLoading:
		return icons.Loading()
	case playback.TransportReadyPaused, playback.TransportIdle:
		return icons.Pause()
	}
	return icons.Pause()
}

// renderDetails renders the album on the left and modes plus volume on the right.
func renderDetails(s State, innerWidth int) string {
	right := strings.Join(modeIcons(s), "  ")
	if right != "" {
		right += "  "
	}
	right += RenderVolume(s.Volume, s.Muted)

	album := s.Album
	if album == "" {
		album = "Unknown Album"
	}
	left := metaStyle().Render(render.Truncate(album, max(innerWidth-lipgloss.Width(right)-1, 0)))
	return render.Row(left, right, innerWidth)
}

func modeIcons(s State) []string {
	var parts []string
	if s.Shuffle {
		parts = append(parts, icons.Shuffle())
	}
	switch s.Repeat {
	case playback.RepeatAll:
		parts = append(parts, icons.RepeatAll())
	case playback.RepeatOne:
		parts = append(parts, icons.RepeatOne())
	case playback.RepeatNone:
	}
	return parts
}
