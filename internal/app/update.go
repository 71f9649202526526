package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/harmony/internal/playback"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ResultsMsg:
		m.source = msg.Source
		m.results.SetTracks(msg.Tracks)
		m.results.JumpStart()
		if len(msg.Tracks) == 0 {
			m.setStatus("No tracks found", false)
		} else {
			m.setStatus("", false)
		}
		return m, nil

	case InitialQueueMsg:
		// A restored or user-built queue wins over the start-up tracks.
		if len(m.player.State().Queue) == 0 && len(msg.Tracks) > 0 {
			m.player.SetQueue(msg.Tracks, 0)
		}
		return m, nil

	case TickMsg:
		if m.player.State().IsLoading {
			return m, TickCmd()
		}
		return m, nil

	case PlaybackClosedMsg:
		return m, nil
	}

	if cmd, ok := m.handlePlaybackEvent(msg); ok {
		return m, tea.Batch(cmd, m.WatchEvents())
	}
	return m, nil
}

// handlePlaybackEvent reacts to a forwarded subscription event. ok is false
// when msg is not a playback event.
func (m *Model) handlePlaybackEvent(msg tea.Msg) (cmd tea.Cmd, ok bool) {
	switch msg := msg.(type) {
	case StateChangedMsg:
		if msg.Current == playback.TransportLoading {
			cmd = TickCmd()
		}
		if msg.Current != playback.TransportLoading && m.status != "" && !m.statusError {
			m.setStatus("", false)
		}
	case TrackChangedMsg:
		m.syncQueue()
		m.queue.SyncToCurrent()
		m.saveSession()
	case PositionChangedMsg:
		// Rendering reads the snapshot; the message only wakes the view.
	case QueueChangedMsg:
		m.syncQueue()
		m.saveSession()
	case ModeChangedMsg, VolumeChangedMsg:
		m.saveSession()
	case PlaybackErrorMsg:
		m.setStatus(playback.ErrorEvent(msg).Message(), true)
		m.log.WithError(msg.Err).WithField("op", string(msg.Op)).Debug("playback error shown")
	default:
		return nil, false
	}
	return cmd, true
}

// resize distributes the window between header, panels, player bar and
// status line.
func (m *Model) resize() {
	panelHeight := max(m.height-m.chromeHeight(), 0)
	left := m.width / 2
	m.results.SetSize(left, panelHeight)
	m.queue.SetSize(m.width-left, panelHeight)
	m.input.Width = max(m.width-12, 10)
}
