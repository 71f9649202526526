package playback

import (
	"sync"
	"sync/atomic"
)

const eventBufferSize = 16

// Subscription delivers controller events on typed channels. Sends never
// block the controller: when a channel is full the event is dropped and
// counted.
type Subscription struct {
	StateChanged    <-chan StateChange
	TrackChanged    <-chan TrackChange
	PositionChanged <-chan PositionChange
	QueueChanged    <-chan QueueChange
	ModeChanged     <-chan ModeChange
	VolumeChanged   <-chan VolumeChange
	Error           <-chan ErrorEvent
	Done            <-chan struct{}

	stateCh    chan StateChange
	trackCh    chan TrackChange
	positionCh chan PositionChange
	queueCh    chan QueueChange
	modeCh     chan ModeChange
	volumeCh   chan VolumeChange
	errorCh    chan ErrorEvent
	doneCh     chan struct{}

	dropped   atomic.Uint64
	closeOnce sync.Once
	detach    func(*Subscription)
}

func newSubscription() *Subscription {
	s := &Subscription{
		stateCh:    make(chan StateChange, eventBufferSize),
		trackCh:    make(chan TrackChange, eventBufferSize),
		positionCh: make(chan PositionChange, eventBufferSize),
		queueCh:    make(chan QueueChange, eventBufferSize),
		modeCh:     make(chan ModeChange, eventBufferSize),
		volumeCh:   make(chan VolumeChange, eventBufferSize),
		errorCh:    make(chan ErrorEvent, eventBufferSize),
		doneCh:     make(chan struct{}),
	}
	s.StateChanged = s.stateCh
	s.TrackChanged = s.trackCh
	s.PositionChanged = s.positionCh
	s.QueueChanged = s.queueCh
	s.ModeChanged = s.modeCh
	s.VolumeChanged = s.volumeCh
	s.Error = s.errorCh
	s.Done = s.doneCh
	return s
}

// Dropped returns how many events were discarded because the reader fell
// behind.
func (s *Subscription) Dropped() uint64 {
	return s.dropped.Load()
}

// Unsubscribe stops delivery and closes Done. Safe to call more than once
// and after the controller is closed.
func (s *Subscription) Unsubscribe() {
	if s.detach != nil {
		s.detach(s)
	}
	s.close()
}

func (s *Subscription) close() {
	s.closeOnce.Do(func() { close(s.doneCh) })
}

func deliver[T any](s *Subscription, ch chan T, e T) {
	select {
	case ch <- e:
	default:
		s.dropped.Add(1)
	}
}

func (s *Subscription) sendState(e StateChange)       { deliver(s, s.stateCh, e) }
func (s *Subscription) sendTrack(e TrackChange)       { deliver(s, s.trackCh, e) }
func (s *Subscription) sendPosition(e PositionChange) { deliver(s, s.positionCh, e) }
func (s *Subscription) sendQueue(e QueueChange)       { deliver(s, s.queueCh, e) }
func (s *Subscription) sendMode(e ModeChange)         { deliver(s, s.modeCh, e) }
func (s *Subscription) sendVolume(e VolumeChange)     { deliver(s, s.volumeCh, e) }
func (s *Subscription) sendError(e ErrorEvent)        { deliver(s, s.errorCh, e) }
