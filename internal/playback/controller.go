// internal/playback/controller.go
package playback

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/llehouerou/harmony/internal/catalog"
	"github.com/llehouerou/harmony/internal/errmsg"
	"github.com/llehouerou/harmony/internal/metrics"
	"github.com/llehouerou/harmony/internal/player"
	"github.com/llehouerou/harmony/internal/playlist"
)

// ErrPlayRejected is returned when the surface refuses to start playback.
var ErrPlayRejected = errors.New("play rejected")

const defaultHistorySize = 50

// Controller owns the player session: the queue, the PlayerState and the
// single playback surface. All operations are serialized.
type Controller struct {
	mu sync.Mutex

	surface player.Surface
	queue   *playlist.PlayingQueue
	history *playlist.QueueHistory
	store   *store

	gen         uint64
	pendingPlay bool
	lastVolume  float64
	failStreak  int

	log            logrus.FieldLogger
	metrics        *metrics.Metrics
	pick           func(n int) int
	skipUnplayable bool
	historySize    int

	subs       []*Subscription
	subsMu     sync.RWMutex
	subsClosed bool

	done     chan struct{}
	loopDone chan struct{}
	closed   bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Controller) { c.log = l }
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Controller) { c.metrics = m }
}

// WithPicker replaces the shuffle index picker. pick(n) must return a
// value in [0, n).
func WithPicker(pick func(n int) int) Option {
	return func(c *Controller) { c.pick = pick }
}

// WithSkipUnplayable makes the controller advance past tracks that fail
// to load.
func WithSkipUnplayable(enabled bool) Option {
	return func(c *Controller) { c.skipUnplayable = enabled }
}

// WithHistorySize sets how many queue states Undo can go back through.
func WithHistorySize(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.historySize = n
		}
	}
}

// New creates a controller over surface and starts draining its events.
func New(surface player.Surface, opts ...Option) *Controller {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	c := &Controller{
		surface:     surface,
		queue:       playlist.NewQueue(),
		store:       newStore(),
		lastVolume:  1,
		log:         quiet,
		pick:        rand.IntN,
		historySize: defaultHistorySize,
		done:        make(chan struct{}),
		loopDone:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.history = newHistory(c.historySize)

	go c.run()
	return c
}

func newHistory(size int) *playlist.QueueHistory {
	h := playlist.NewQueueHistory(size)
	h.Push(nil)
	return h
}

// State returns a snapshot of the player state.
func (c *Controller) State() PlayerState {
	return c.store.snapshot()
}

// Subscribe creates a new event subscription.
func (c *Controller) Subscribe() *Subscription {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	sub := newSubscription()
	if c.subsClosed {
		sub.close()
		return sub
	}
	sub.detach = c.unsubscribe
	c.subs = append(c.subs, sub)
	return sub
}

func (c *Controller) unsubscribe(sub *Subscription) {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	c.subs = slices.DeleteFunc(c.subs, func(s *Subscription) bool { return s == sub })
}

// Close stops the event loop, closes subscriptions and the surface.
func (c *Controller) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	close(c.done)
	c.mu.Unlock()

	<-c.loopDone

	c.subsMu.Lock()
	for _, sub := range c.subs {
		sub.close()
	}
	c.subs = nil
	c.subsClosed = true
	c.subsMu.Unlock()

	return c.surface.Close()
}

// LoadTrack makes track current and starts loading it. The surface drops
// its previous source, so IsPlaying is cleared; a later Play starts the
// new track once it is ready.
func (c *Controller) LoadTrack(track catalog.Track) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loadLocked(track)
}

func (c *Controller) loadLocked(track catalog.Track) {
	c.gen++
	c.pendingPlay = false
	gen := c.gen

	prev := c.store.snapshot()
	c.commit(func(s *PlayerState) {
		t := track
		s.CurrentTrack = &t
		s.IsLoading = true
		s.IsPlaying = false
		s.CurrentTime = 0
		s.Duration = 0
	})

	c.log.WithFields(logrus.Fields{
		"track_id": track.ID,
		"gen":      gen,
	}).Debug("loading track")
	c.metrics.TrackLoaded()
	c.surface.Load(gen, track.Audio)

	c.broadcast(func(sub *Subscription) {
		sub.sendTrack(TrackChange{
			Previous:      prev.CurrentTrack,
			Current:       &track,
			PreviousIndex: prev.CurrentIndex,
			Index:         c.queue.CurrentIndex(),
		})
	})
}

// loadCurrentLocked loads the queue's current track, or clears the
// current track when the queue is empty.
func (c *Controller) loadCurrentLocked() {
	if t := c.queue.Current(); t != nil {
		c.loadLocked(*t)
		return
	}
	c.gen++
	c.pendingPlay = false
	c.surface.Pause()
	c.commit(func(s *PlayerState) {
		s.CurrentTrack = nil
		s.IsLoading = false
		s.IsPlaying = false
		s.CurrentTime = 0
		s.Duration = 0
	})
}

// Play starts or resumes playback. While the current track is loading the
// request is deferred and IsPlaying turns true once loading completes.
func (c *Controller) Play() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playLocked()
}

func (c *Controller) playLocked() error {
	if err := c.surface.Play(); err != nil {
		return c.rejectLocked(err)
	}

	if c.store.snapshot().IsLoading {
		c.pendingPlay = true
		return nil
	}
	c.commit(func(s *PlayerState) { s.IsPlaying = true })
	return nil
}

// rejectLocked records a refused play request and returns it wrapped in
// ErrPlayRejected.
func (c *Controller) rejectLocked(cause error) error {
	c.pendingPlay = false
	c.commit(func(s *PlayerState) { s.IsPlaying = false })

	err := fmt.Errorf("%w: %w", ErrPlayRejected, cause)
	c.metrics.PlayRejected()
	c.fail(errmsg.OpPlaybackStart, err)
	return err
}

// Pause pauses playback and cancels any deferred play.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pendingPlay = false
	c.surface.Pause()
	c.commit(func(s *PlayerState) { s.IsPlaying = false })
}

// TogglePlay pauses when playing, otherwise plays.
func (c *Controller) TogglePlay() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.store.snapshot().IsPlaying || c.pendingPlay {
		c.pendingPlay = false
		c.surface.Pause()
		c.commit(func(s *PlayerState) { s.IsPlaying = false })
		return nil
	}
	return c.playLocked()
}

// Seek moves the playback position. Negative positions clamp to zero and,
// once the duration is known, positions past the end clamp to it.
func (c *Controller) Seek(pos time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := c.store.snapshot()
	pos = max(pos, 0)
	if st.Duration > 0 {
		pos = min(pos, st.Duration)
	}

	c.surface.Seek(pos)
	c.commit(func(s *PlayerState) { s.CurrentTime = pos })
	c.broadcast(func(sub *Subscription) {
		sub.sendPosition(PositionChange{Position: pos, Duration: st.Duration})
	})
}

// SetVolume sets the volume, clamped to [0, 1]. Zero mutes.
func (c *Controller) SetVolume(v float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setVolumeLocked(v)
}

func (c *Controller) setVolumeLocked(v float64) {
	v = min(max(v, 0), 1)
	if v > 0 {
		c.lastVolume = v
	}
	c.surface.SetVolume(v)
	c.commit(func(s *PlayerState) {
		s.Volume = v
		s.IsMuted = v == 0
	})
	c.broadcast(func(sub *Subscription) {
		sub.sendVolume(VolumeChange{Volume: v, Muted: v == 0})
	})
}

// ToggleMute silences the surface while keeping Volume, or restores it.
// Unmuting a zero volume restores the last non-zero volume.
func (c *Controller) ToggleMute() {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := c.store.snapshot()
	if st.IsMuted {
		restore := st.Volume
		if restore == 0 {
			restore = c.lastVolume
		}
		c.surface.SetVolume(restore)
		c.commit(func(s *PlayerState) {
			s.Volume = restore
			s.IsMuted = false
		})
		c.broadcast(func(sub *Subscription) {
			sub.sendVolume(VolumeChange{Volume: restore})
		})
		return
	}

	c.surface.SetVolume(0)
	c.commit(func(s *PlayerState) { s.IsMuted = true })
	c.broadcast(func(sub *Subscription) {
		sub.sendVolume(VolumeChange{Volume: st.Volume, Muted: true})
	})
}

// PlayNext moves to the next track and plays it. When shuffled the next
// index is picked at random and may be the current one.
func (c *Controller) PlayNext() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playNextLocked()
}

func (c *Controller) playNextLocked() error {
	if c.queue.IsEmpty() {
		return nil
	}
	c.advanceLocked()
	return c.playCurrentLocked()
}

// advanceLocked moves the queue to the next track, or to a random one
// when shuffled.
func (c *Controller) advanceLocked() {
	if c.store.snapshot().IsShuffled {
		c.queue.JumpTo(c.pick(c.queue.Len()))
		return
	}
	c.queue.Next()
}

// PlayPrevious moves to the previous track, wrapping to the last, and
// plays it. Shuffle is ignored.
func (c *Controller) PlayPrevious() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.queue.IsEmpty() {
		return nil
	}
	c.queue.Previous()
	return c.playCurrentLocked()
}

// playCurrentLocked loads the queue's current track and plays it.
func (c *Controller) playCurrentLocked() error {
	c.syncQueueLocked(false)
	c.loadCurrentLocked()
	return c.playLocked()
}

// ToggleShuffle flips shuffle. The queue order is untouched.
func (c *Controller) ToggleShuffle() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setModesLocked(c.store.snapshot().RepeatMode, !c.store.snapshot().IsShuffled)
}

// SetShuffle sets shuffle.
func (c *Controller) SetShuffle(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setModesLocked(c.store.snapshot().RepeatMode, enabled)
}

// ToggleRepeat cycles None → One → All → None.
func (c *Controller) ToggleRepeat() {
	c.mu.Lock()
	defer c.mu.Unlock()
	st := c.store.snapshot()
	c.setModesLocked(st.RepeatMode.Next(), st.IsShuffled)
}

// SetRepeatMode sets the repeat mode. Unknown modes are ignored.
func (c *Controller) SetRepeatMode(mode RepeatMode) {
	if !mode.Valid() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setModesLocked(mode, c.store.snapshot().IsShuffled)
}

func (c *Controller) setModesLocked(mode RepeatMode, shuffle bool) {
	c.commit(func(s *PlayerState) {
		s.RepeatMode = mode
		s.IsShuffled = shuffle
	})
	c.broadcast(func(sub *Subscription) {
		sub.sendMode(ModeChange{RepeatMode: mode, Shuffle: shuffle})
	})
}

// commit applies fn to the store and publishes a StateChange when the
// derived transport moved.
func (c *Controller) commit(fn func(*PlayerState)) {
	var before, after Transport
	c.store.apply(func(s *PlayerState) {
		before = s.Transport()
		fn(s)
		after = s.Transport()
	})
	if before != after {
		c.broadcast(func(sub *Subscription) {
			sub.sendState(StateChange{Previous: before, Current: after})
		})
	}
}

// fail logs err and publishes it as an ErrorEvent for the current track.
func (c *Controller) fail(op errmsg.Op, err error) {
	track := c.store.snapshot().CurrentTrack
	entry := c.log.WithError(err).WithField("op", string(op))
	if track != nil {
		entry = entry.WithField("track_id", track.ID)
	}
	entry.Warn("playback failure")

	c.broadcast(func(sub *Subscription) {
		sub.sendError(ErrorEvent{Op: op, Track: track, Err: err})
	})
}

func (c *Controller) broadcast(fn func(*Subscription)) {
	c.subsMu.RLock()
	defer c.subsMu.RUnlock()
	for _, sub := range c.subs {
		fn(sub)
	}
}
