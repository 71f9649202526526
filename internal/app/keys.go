package app

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/harmony/internal/errmsg"
	"github.com/llehouerou/harmony/internal/keymap"
	"github.com/llehouerou/harmony/internal/ui/playerbar"
)

const (
	seekStep   = 5 * time.Second
	volumeStep = 0.05
)

// handleKey routes key presses to the prompt or the keymap.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.inputMode != inputNone {
		return m.handleInputKey(msg)
	}
	if m.showHelp {
		// Any key closes help; quit still works.
		m.showHelp = false
		if m.keys.Resolve(keymap.ContextGlobal, msg.String()) != keymap.ActionQuit {
			return m, nil
		}
	}

	context := keymap.ContextResults
	if m.focus == FocusQueue {
		context = keymap.ContextQueue
	}
	action := m.keys.Resolve(context, msg.String())
	if action == "" {
		return m, nil
	}
	return m.dispatch(action)
}

// dispatch runs a resolved action.
//
//nolint:gocyclo // flat action switch
func (m Model) dispatch(action keymap.Action) (tea.Model, tea.Cmd) {
	st := m.player.State()

	switch action {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionSwitchFocus:
		if m.focus == FocusResults {
			m.setFocus(FocusQueue)
		} else {
			m.setFocus(FocusResults)
		}
	case keymap.ActionSearch:
		return m, m.startInput(inputSearch, "Search: ")
	case keymap.ActionGenre:
		return m, m.startInput(inputGenre, "Genre: ")
	case keymap.ActionPopular:
		return m, m.popularCmd()
	case keymap.ActionHelp:
		m.showHelp = true

	case keymap.ActionPlayPause:
		m.reportPlay(m.player.TogglePlay())
	case keymap.ActionStop:
		m.player.Pause()
		m.player.Seek(0)
	case keymap.ActionNextTrack:
		m.reportPlay(m.player.PlayNext())
	case keymap.ActionPrevTrack:
		m.reportPlay(m.player.PlayPrevious())
	case keymap.ActionSeekForward:
		m.player.Seek(st.CurrentTime + seekStep)
	case keymap.ActionSeekBack:
		m.player.Seek(st.CurrentTime - seekStep)
	case keymap.ActionVolumeUp:
		m.player.SetVolume(st.Volume + volumeStep)
	case keymap.ActionVolumeDown:
		m.player.SetVolume(st.Volume - volumeStep)
	case keymap.ActionToggleMute:
		m.player.ToggleMute()
	case keymap.ActionCycleRepeat:
		m.player.ToggleRepeat()
	case keymap.ActionToggleShuffle:
		m.player.ToggleShuffle()
	case keymap.ActionTogglePlayerDisplay:
		if m.displayMode == playerbar.ModeCompact {
			m.displayMode = playerbar.ModeExpanded
		} else {
			m.displayMode = playerbar.ModeCompact
		}
		m.resize()

	case keymap.ActionMoveUp:
		m.activeList().Move(-1)
	case keymap.ActionMoveDown:
		m.activeList().Move(1)
	case keymap.ActionJumpStart:
		m.activeList().JumpStart()
	case keymap.ActionJumpEnd:
		m.activeList().JumpEnd()

	case keymap.ActionSelect:
		return m.handleSelect()
	case keymap.ActionAdd:
		if t, ok := m.results.Selected(); ok {
			m.player.AddToQueue(t)
			m.setStatus("Added "+t.Name, false)
		}
	case keymap.ActionReplaceAll:
		if m.results.Len() > 0 {
			m.player.SetQueue(m.results.Tracks(), m.results.Cursor())
			m.reportPlay(m.player.Play())
		}
	case keymap.ActionDelete:
		if m.queue.Len() > 0 {
			m.player.RemoveFromQueue(m.queue.Cursor())
		}
	case keymap.ActionUndo:
		if !m.player.Undo() {
			m.setStatus("Nothing to undo", false)
		}
	case keymap.ActionRedo:
		if !m.player.Redo() {
			m.setStatus("Nothing to redo", false)
		}
	}
	return m, nil
}

// handleSelect plays the entry under the cursor: search results go to the
// front of the queue, queue entries are jumped to.
func (m Model) handleSelect() (tea.Model, tea.Cmd) {
	if m.focus == FocusQueue {
		if m.queue.Len() > 0 {
			m.reportPlay(m.player.JumpTo(m.queue.Cursor()))
		}
		return m, nil
	}
	if t, ok := m.results.Selected(); ok {
		m.reportPlay(m.player.PlayTrackNow(t))
	}
	return m, nil
}

// reportPlay shows a rejected play on the status line right away; the
// matching error event from the subscription may replace it later.
func (m *Model) reportPlay(err error) {
	if err != nil {
		m.setStatus(errmsg.Format(errmsg.OpPlaybackStart, err), true)
	}
}

func (m *Model) startInput(mode inputMode, prompt string) tea.Cmd {
	m.inputMode = mode
	m.input.Prompt = prompt
	m.input.SetValue("")
	return m.input.Focus()
}

// handleInputKey feeds the prompt until enter or esc.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.inputMode = inputNone
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		value := strings.TrimSpace(m.input.Value())
		mode := m.inputMode
		m.inputMode = inputNone
		m.input.Blur()
		if value == "" {
			return m, nil
		}
		m.setFocus(FocusResults)
		m.setStatus("Searching…", false)
		if mode == inputGenre {
			return m, m.genreCmd(value)
		}
		return m, m.searchCmd(value)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
