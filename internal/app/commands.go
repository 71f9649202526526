package app

import (
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/harmony/internal/catalog"
	"github.com/llehouerou/harmony/internal/icons"
	"github.com/llehouerou/harmony/internal/playlist"
)

// loadingTick is how often the buffering indicator refreshes.
const loadingTick = 300 * time.Millisecond

// TickCmd returns a command that sends TickMsg after loadingTick.
func TickCmd() tea.Cmd {
	return tea.Tick(loadingTick, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// WatchEvents returns a command that waits for the next playback event.
// It listens on all subscription channels and converts events to tea.Msg.
func (m Model) WatchEvents() tea.Cmd {
	sub := m.sub
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case e := <-sub.StateChanged:
			return StateChangedMsg(e)
		case e := <-sub.TrackChanged:
			return TrackChangedMsg(e)
		case e := <-sub.PositionChanged:
			return PositionChangedMsg(e)
		case e := <-sub.QueueChanged:
			return QueueChangedMsg(e)
		case e := <-sub.ModeChanged:
			return ModeChangedMsg(e)
		case e := <-sub.VolumeChanged:
			return VolumeChangedMsg(e)
		case e := <-sub.Error:
			return PlaybackErrorMsg(e)
		case <-sub.Done:
			return PlaybackClosedMsg{}
		}
	}
}

func (m Model) searchCmd(query string) tea.Cmd {
	ctx, cat := m.ctx, m.catalog
	return func() tea.Msg {
		return ResultsMsg{
			Source: icons.FormatSearch(strconv.Quote(query)),
			Tracks: cat.Search(ctx, query),
		}
	}
}

func (m Model) genreCmd(genre string) tea.Cmd {
	ctx, cat, limit := m.ctx, m.catalog, m.limit
	return func() tea.Msg {
		return ResultsMsg{
			Source: icons.FormatGenre(genre),
			Tracks: cat.Genre(ctx, genre, limit),
		}
	}
}

func (m Model) popularCmd() tea.Cmd {
	ctx, cat, limit := m.ctx, m.catalog, m.limit
	return func() tea.Msg {
		return ResultsMsg{
			Source: icons.FormatPopular("Popular"),
			Tracks: cat.Popular(ctx, limit),
		}
	}
}

func (m Model) initialQueueCmd(n int) tea.Cmd {
	ctx, cat := m.ctx, m.catalog
	return func() tea.Msg {
		return InitialQueueMsg{Tracks: cat.Popular(ctx, n)}
	}
}

// queueInfo renders "12 tracks · 48:10".
func queueInfo(tracks []catalog.Track) string {
	noun := "tracks"
	if len(tracks) == 1 {
		noun = "track"
	}
	if len(tracks) == 0 {
		return "0 tracks"
	}
	return fmt.Sprintf("%d %s · %s", len(tracks), noun, playlist.FormatDuration(playlist.TotalDuration(tracks)))
}
