// internal/player/mock.go
package player

import (
	"sync"
	"time"
)

// LoadCall records one Load invocation on Mock.
type LoadCall struct {
	Gen uint64
	URL string
}

// Mock is a test double for Surface. Events are only produced when a
// test calls Emit.
type Mock struct {
	mu sync.Mutex

	state     State
	position  time.Duration
	duration  time.Duration
	volume    float64
	playErr   error
	loads     []LoadCall
	playCalls int
	pauses    int
	seekCalls []time.Duration
	volumes   []float64

	events chan Event
	closed bool
}

// NewMock creates a new mock surface for testing.
func NewMock() *Mock {
	return &Mock{
		state:  Empty,
		volume: 1,
		events: make(chan Event, eventBufferSize),
	}
}

func (m *Mock) Load(gen uint64, url string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loads = append(m.loads, LoadCall{Gen: gen, URL: url})
	m.state = Loading
	m.position = 0
}

func (m *Mock) Play() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playCalls++
	if m.playErr != nil {
		return m.playErr
	}
	if m.state == Empty {
		return ErrNoSource
	}
	if m.state != Loading {
		m.state = Playing
	}
	return nil
}

func (m *Mock) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pauses++
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) Seek(pos time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seekCalls = append(m.seekCalls, pos)
	m.position = pos
}

func (m *Mock) SetVolume(level float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volumes = append(m.volumes, level)
	m.volume = level
}

func (m *Mock) Position() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position
}

func (m *Mock) Duration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.duration
}

func (m *Mock) Events() <-chan Event { return m.events }

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Test helpers

// Emit queues an event as if the surface produced it. LoadComplete
// moves the mock out of Loading.
func (m *Mock) Emit(ev Event) {
	m.mu.Lock()
	switch ev.Kind {
	case EventLoadComplete:
		m.duration = ev.Duration
		if m.state == Loading {
			m.state = Paused
		}
	case EventLoadFailed:
		m.state = Empty
	case EventEnded:
		m.state = Ended
	}
	m.mu.Unlock()
	m.events <- ev
}

// SetState forces the surface state.
func (m *Mock) SetState(s State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = s
}

// State returns the surface state.
func (m *Mock) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// SetPlayError makes subsequent Play calls fail with err (nil clears it).
func (m *Mock) SetPlayError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playErr = err
}

// Loads returns the recorded Load calls.
func (m *Mock) Loads() []LoadCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]LoadCall(nil), m.loads...)
}

// LastLoad returns the most recent Load call, or a zero value.
func (m *Mock) LastLoad() LoadCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.loads) == 0 {
		return LoadCall{}
	}
	return m.loads[len(m.loads)-1]
}

// PlayCalls returns how many times Play was called.
func (m *Mock) PlayCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playCalls
}

// PauseCalls returns how many times Pause was called.
func (m *Mock) PauseCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pauses
}

// SeekCalls returns the recorded seek positions.
func (m *Mock) SeekCalls() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]time.Duration(nil), m.seekCalls...)
}

// Volume returns the last volume set on the surface.
func (m *Mock) Volume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume
}

// Closed reports whether Close was called.
func (m *Mock) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// SetPosition sets the reported position.
func (m *Mock) SetPosition(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.position = d
}

// Verify Mock implements Surface at compile time.
var _ Surface = (*Mock)(nil)
