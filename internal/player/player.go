package player

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	eventBufferSize     = 64
	defaultTimeInterval = 250 * time.Millisecond
	speakerRate         = beep.SampleRate(44100)
)

var (
	speakerOnce sync.Once
	speakerErr  error
)

// Player streams MP3 URLs to the system speaker.
type Player struct {
	mu sync.Mutex

	httpClient   *http.Client
	timeInterval time.Duration

	state       State
	gen         uint64
	pendingPlay bool
	cancelLoad  context.CancelFunc

	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	attached bool

	volumeLevel float64
	buffered    atomic.Int64

	events    chan Event
	done      chan struct{}
	closeOnce sync.Once
}

// Option configures a Player.
type Option func(*Player)

// WithHTTPClient sets the client used to fetch sources.
func WithHTTPClient(c *http.Client) Option {
	return func(p *Player) { p.httpClient = c }
}

// WithTimeUpdateInterval sets how often TimeUpdate events are emitted while playing.
func WithTimeUpdateInterval(d time.Duration) Option {
	return func(p *Player) {
		if d > 0 {
			p.timeInterval = d
		}
	}
}

// New creates a player and starts its position ticker.
func New(opts ...Option) *Player {
	p := &Player{
		httpClient:   &http.Client{Timeout: 2 * time.Minute},
		timeInterval: defaultTimeInterval,
		volumeLevel:  1,
		events:       make(chan Event, eventBufferSize),
		done:         make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	go p.tickLoop()
	return p
}

// Events returns the event stream.
func (p *Player) Events() <-chan Event {
	return p.events
}

// State returns the surface state.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Buffered returns how many bytes of the current source have been fetched.
func (p *Player) Buffered() int64 {
	return p.buffered.Load()
}

// Load discards the current source and starts fetching url in the background.
func (p *Player) Load(gen uint64, url string) {
	p.mu.Lock()
	p.releaseLocked()
	if p.cancelLoad != nil {
		p.cancelLoad()
	}
	ctx, cancel := context.WithCancel(context.Background())
	p.cancelLoad = cancel
	p.gen = gen
	p.pendingPlay = false
	p.state = Loading
	p.buffered.Store(0)
	p.mu.Unlock()

	p.tryEmit(Event{Kind: EventLoadStarted, Gen: gen})
	go p.load(ctx, gen, url)
}

func (p *Player) load(ctx context.Context, gen uint64, url string) {
	streamer, format, err := p.open(ctx, url)
	if err != nil {
		p.mu.Lock()
		current := p.gen == gen
		if current {
			p.state = Empty
			p.pendingPlay = false
		}
		p.mu.Unlock()
		if current && ctx.Err() == nil {
			p.emit(Event{Kind: EventLoadFailed, Gen: gen, Err: err})
		}
		return
	}

	p.mu.Lock()
	if p.gen != gen || ctx.Err() != nil {
		p.mu.Unlock()
		streamer.Close()
		return
	}

	p.streamer = streamer
	p.format = format
	var playStreamer beep.Streamer = streamer
	if format.SampleRate != speakerRate {
		playStreamer = beep.Resample(4, format.SampleRate, speakerRate, streamer)
	}
	p.ctrl = &beep.Ctrl{Streamer: playStreamer, Paused: true}
	p.volume = &effects.Volume{
		Streamer: p.ctrl,
		Base:     2,
		Volume:   levelToVolume(p.volumeLevel),
		Silent:   p.volumeLevel <= 0,
	}
	p.state = Paused
	duration := format.SampleRate.D(streamer.Len())

	var playErr error
	if p.pendingPlay {
		p.pendingPlay = false
		playErr = p.startLocked()
	}
	p.mu.Unlock()

	p.emit(Event{Kind: EventLoadComplete, Gen: gen, Duration: duration})
	if playErr != nil {
		p.emit(Event{Kind: EventPlayFailed, Gen: gen, Err: playErr})
	}
}

func (p *Player) open(ctx context.Context, url string) (beep.StreamSeekCloser, beep.Format, error) {
	src, err := fetch(ctx, p.httpClient, url, &p.buffered)
	if err != nil {
		return nil, beep.Format{}, err
	}
	streamer, format, err := mp3.Decode(src)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("decode %s: %w", url, err)
	}
	return streamer, format, nil
}

// Play starts or resumes playback. While a source is loading the request
// is remembered and honoured once loading completes.
func (p *Player) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.state {
	case Empty:
		return ErrNoSource
	case Loading:
		p.pendingPlay = true
		return nil
	case Playing:
		return nil
	case Paused, Ended:
		return p.startLocked()
	}
	return nil
}

// startLocked attaches the source to the speaker if needed and unpauses it.
func (p *Player) startLocked() error {
	if err := initSpeaker(); err != nil {
		return err
	}
	if !p.attached {
		gen := p.gen
		p.attached = true
		p.ctrl.Paused = false
		speaker.Play(beep.Seq(p.volume, beep.Callback(func() {
			// Runs on the speaker goroutine with the speaker lock held.
			go p.finished(gen)
		})))
	} else {
		speaker.Lock()
		p.ctrl.Paused = false
		speaker.Unlock()
	}
	p.state = Playing
	return nil
}

func (p *Player) finished(gen uint64) {
	p.mu.Lock()
	if p.gen != gen || !p.state.HasSource() {
		p.mu.Unlock()
		return
	}
	p.attached = false
	p.state = Ended
	p.mu.Unlock()

	p.emit(Event{Kind: EventEnded, Gen: gen})
}

// Pause pauses playback.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == Loading {
		p.pendingPlay = false
		return
	}
	if !p.state.CanPause() || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.state = Paused
}

// Seek moves to pos, clamped to the source bounds.
func (p *Player) Seek(pos time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.streamer == nil {
		return
	}
	n := p.format.SampleRate.N(pos)
	n = min(max(n, 0), max(p.streamer.Len()-1, 0))

	speaker.Lock()
	_ = p.streamer.Seek(n)
	speaker.Unlock()
}

// Position returns the current playback position.
func (p *Player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.positionLocked()
}

func (p *Player) positionLocked() time.Duration {
	if p.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := p.streamer.Position()
	speaker.Unlock()
	return p.format.SampleRate.D(pos)
}

// Duration returns the length of the current source, or 0 if none.
func (p *Player) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return 0
	}
	return p.format.SampleRate.D(p.streamer.Len())
}

// Close stops playback and releases the speaker stream.
func (p *Player) Close() error {
	p.closeOnce.Do(func() {
		close(p.done)
		p.mu.Lock()
		if p.cancelLoad != nil {
			p.cancelLoad()
		}
		p.releaseLocked()
		p.state = Empty
		p.mu.Unlock()
	})
	return nil
}

// releaseLocked detaches and closes the current source.
func (p *Player) releaseLocked() {
	if p.attached {
		speaker.Clear()
		p.attached = false
	}
	if p.streamer != nil {
		p.streamer.Close()
		p.streamer = nil
	}
	p.ctrl = nil
	p.volume = nil
}

func (p *Player) tickLoop() {
	ticker := time.NewTicker(p.timeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.mu.Lock()
			if p.state != Playing {
				p.mu.Unlock()
				continue
			}
			ev := Event{
				Kind:     EventTimeUpdate,
				Gen:      p.gen,
				Position: p.positionLocked(),
				Duration: p.format.SampleRate.D(p.streamer.Len()),
			}
			p.mu.Unlock()
			p.emit(ev)
		case <-p.done:
			return
		}
	}
}

// emit delivers an event. It must not be called with p.mu held.
func (p *Player) emit(ev Event) {
	select {
	case p.events <- ev:
	case <-p.done:
	}
}

// tryEmit drops ev when the buffer is full. Load runs under the caller's
// locks, which may be the same ones the event consumer needs.
func (p *Player) tryEmit(ev Event) {
	select {
	case p.events <- ev:
	default:
	}
}

func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(speakerRate, speakerRate.N(time.Second/10))
	})
	if speakerErr != nil {
		return fmt.Errorf("init speaker: %w", speakerErr)
	}
	return nil
}
