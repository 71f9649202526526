// Package tracklist renders a scrollable, focusable list of catalog tracks.
// The app uses one for search results and one for the play queue.
package tracklist

import (
	"github.com/llehouerou/harmony/internal/catalog"
)

const (
	// scrollMargin is the number of rows kept visible above/below the cursor.
	scrollMargin = 3

	borderHeight = 2
	headerHeight = 2 // header + separator

	// overhead is the vertical space not used by rows.
	overhead = borderHeight + headerHeight
)

// Model is a track list panel.
type Model struct {
	title   string
	info    string // right side of the header
	tracks  []catalog.Track
	current int // highlighted entry (playing track), -1 for none
	cursor  int
	offset  int
	width   int
	height  int
	focused bool
}

// New creates an empty list with the given header title.
func New(title string) Model {
	return Model{title: title, current: -1}
}

// SetTitle replaces the header title.
func (m *Model) SetTitle(title string) {
	m.title = title
}

// SetInfo sets the right-aligned header text.
func (m *Model) SetInfo(info string) {
	m.info = info
}

// SetTracks replaces the list contents. The cursor is kept in bounds.
func (m *Model) SetTracks(tracks []catalog.Track) {
	m.tracks = tracks
	m.clamp()
}

// Tracks returns the list contents.
func (m Model) Tracks() []catalog.Track {
	return m.tracks
}

// Len returns the number of entries.
func (m Model) Len() int {
	return len(m.tracks)
}

// SetCurrent marks index as the current entry; -1 clears it.
func (m *Model) SetCurrent(index int) {
	m.current = index
}

// SetFocused sets whether the panel is focused.
func (m *Model) SetFocused(focused bool) {
	m.focused = focused
}

// IsFocused returns whether the panel is focused.
func (m Model) IsFocused() bool {
	return m.focused
}

// SetSize sets the panel dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.ensureVisible()
}

// Cursor returns the cursor index.
func (m Model) Cursor() int {
	return m.cursor
}

// Selected returns the track under the cursor.
func (m Model) Selected() (catalog.Track, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tracks) {
		return catalog.Track{}, false
	}
	return m.tracks[m.cursor], true
}

// Move moves the cursor by delta rows.
func (m *Model) Move(delta int) {
	if len(m.tracks) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.tracks)-1)
	m.ensureVisible()
}

// JumpStart moves the cursor to the first entry.
func (m *Model) JumpStart() {
	m.cursor = 0
	m.offset = 0
}

// JumpEnd moves the cursor to the last entry.
func (m *Model) JumpEnd() {
	if len(m.tracks) == 0 {
		return
	}
	m.cursor = len(m.tracks) - 1
	m.ensureVisible()
}

// SyncToCurrent moves the cursor onto the current entry.
func (m *Model) SyncToCurrent() {
	if m.current < 0 || m.current >= len(m.tracks) {
		return
	}
	m.cursor = m.current
	m.ensureVisible()
}

func (m Model) listHeight() int {
	return max(m.height-overhead, 0)
}

func (m *Model) clamp() {
	if len(m.tracks) == 0 {
		m.cursor, m.offset = 0, 0
		return
	}
	m.cursor = min(max(m.cursor, 0), len(m.tracks)-1)
	m.ensureVisible()
}

func (m *Model) ensureVisible() {
	height := m.listHeight()
	if height <= 0 || len(m.tracks) == 0 {
		return
	}
	margin := min(scrollMargin, (height-1)/2)

	if m.cursor < m.offset+margin {
		m.offset = max(m.cursor-margin, 0)
	}
	if m.cursor >= m.offset+height-margin {
		m.offset = m.cursor - height + margin + 1
	}
	m.offset = min(max(m.offset, 0), max(len(m.tracks)-height, 0))
}
