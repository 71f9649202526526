// Package app contains the bubbletea model that glues the catalog, the
// playback controller and the panels together.
package app

import (
	"context"
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/harmony/internal/catalog"
	"github.com/llehouerou/harmony/internal/keymap"
	"github.com/llehouerou/harmony/internal/playback"
	"github.com/llehouerou/harmony/internal/ui/playerbar"
	"github.com/llehouerou/harmony/internal/ui/tracklist"
)

// Player is the playback surface the UI drives: the controller operations
// plus session snapshots for persistence.
type Player interface {
	playback.Service
	Snapshot() playback.Session
}

// Catalog is the failure-tolerant catalog view used by the UI.
// Failures arrive as empty results.
type Catalog interface {
	Search(ctx context.Context, query string) []catalog.Track
	Popular(ctx context.Context, limit int) []catalog.Track
	Genre(ctx context.Context, genre string, limit int) []catalog.Track
}

// SessionSaver persists the queue and modes between runs.
type SessionSaver interface {
	SaveSession(sess playback.Session)
}

// Focus identifies the panel receiving list keys.
type Focus int

const (
	FocusResults Focus = iota
	FocusQueue
)

// inputMode tells what the prompt is collecting.
type inputMode int

const (
	inputNone inputMode = iota
	inputSearch
	inputGenre
)

// Deps holds everything the model needs from main.
type Deps struct {
	Context  context.Context
	Player   Player
	Catalog  Catalog
	Sessions SessionSaver // may be nil
	Buffered func() int64 // bytes fetched for the loading track; may be nil
	Log      logrus.FieldLogger

	Limit         int    // results page size
	InitialSearch string // --search
	InitialGenre  string // --genre
	QueuePopular  int    // queue this many popular tracks at start-up; 0 skips
}

// Model is the root bubbletea model.
type Model struct {
	ctx      context.Context
	player   Player
	catalog  Catalog
	sessions SessionSaver
	buffered func() int64
	log      logrus.FieldLogger
	keys     *keymap.Resolver
	sub      *playback.Subscription

	limit         int
	initialSearch string
	initialGenre  string
	queuePopular  int

	results tracklist.Model
	queue   tracklist.Model
	focus   Focus

	input     textinput.Model
	inputMode inputMode

	source      string // what the results panel shows
	status      string
	statusError bool
	showHelp    bool
	displayMode playerbar.DisplayMode

	width  int
	height int
}

// New creates the root model and subscribes to playback events.
func New(d Deps) Model {
	ctx := d.Context
	if ctx == nil {
		ctx = context.Background()
	}
	log := d.Log
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	input := textinput.New()
	input.CharLimit = 120

	m := Model{
		ctx:           ctx,
		player:        d.Player,
		catalog:       d.Catalog,
		sessions:      d.Sessions,
		buffered:      d.Buffered,
		log:           log,
		keys:          keymap.NewResolver(keymap.All),
		sub:           d.Player.Subscribe(),
		limit:         d.Limit,
		initialSearch: d.InitialSearch,
		initialGenre:  d.InitialGenre,
		queuePopular:  d.QueuePopular,
		results:       tracklist.New("Results"),
		queue:         tracklist.New("Queue"),
		input:         input,
	}
	m.results.SetFocused(true)
	m.syncQueue()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.WatchEvents()}

	switch {
	case m.initialSearch != "":
		cmds = append(cmds, m.searchCmd(m.initialSearch))
	case m.initialGenre != "":
		cmds = append(cmds, m.genreCmd(m.initialGenre))
	default:
		cmds = append(cmds, m.popularCmd())
	}
	if m.queuePopular > 0 {
		cmds = append(cmds, m.initialQueueCmd(m.queuePopular))
	}
	return tea.Batch(cmds...)
}

// syncQueue refreshes the queue panel from the controller snapshot.
func (m *Model) syncQueue() {
	st := m.player.State()
	m.queue.SetTracks(st.Queue)
	current := -1
	if st.CurrentTrack != nil {
		current = st.CurrentIndex
	}
	m.queue.SetCurrent(current)
	m.queue.SetInfo(queueInfo(st.Queue))
}

// saveSession hands the current session to the debounced store.
func (m Model) saveSession() {
	if m.sessions == nil {
		return
	}
	m.sessions.SaveSession(m.player.Snapshot())
}

func (m *Model) setStatus(msg string, isError bool) {
	m.status = msg
	m.statusError = isError
}

func (m *Model) setFocus(f Focus) {
	m.focus = f
	m.results.SetFocused(f == FocusResults)
	m.queue.SetFocused(f == FocusQueue)
}

// activeList returns the focused panel.
func (m *Model) activeList() *tracklist.Model {
	if m.focus == FocusQueue {
		return &m.queue
	}
	return &m.results
}
