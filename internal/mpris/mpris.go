//go:build linux

package mpris

import (
	"time"

	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/harmony/internal/playback"
)

// Adapter connects the playback controller to MPRIS over D-Bus.
type Adapter struct {
	server *server.Server
}

// New creates and starts a new MPRIS adapter.
func New(service playback.Service) (*Adapter, error) {
	a := &Adapter{
		server: server.NewServer("harmony", &rootAdapter{}, &playerAdapter{service: service}),
	}

	// Start the server in background
	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Harmony", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"https"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/mp3"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter and optional interfaces.
type playerAdapter struct {
	service playback.Service
}

func (p *playerAdapter) Next() error {
	return p.service.PlayNext()
}

func (p *playerAdapter) Previous() error {
	return p.service.PlayPrevious()
}

func (p *playerAdapter) Pause() error {
	p.service.Pause()
	return nil
}

func (p *playerAdapter) PlayPause() error {
	return p.service.TogglePlay()
}

func (p *playerAdapter) Stop() error {
	p.service.Pause()
	p.service.Seek(0)
	return nil
}

func (p *playerAdapter) Play() error {
	return p.service.Play()
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	pos := p.service.State().CurrentTime
	p.service.Seek(pos + time.Duration(offset)*time.Microsecond)
	return nil
}

func (p *playerAdapter) SetPosition(_ string, position types.Microseconds) error {
	p.service.Seek(time.Duration(position) * time.Microsecond)
	return nil
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	st := p.service.State()
	switch st.Transport() {
	case playback.TransportPlaying:
		return types.PlaybackStatusPlaying, nil
	case playback.TransportLoading, playback.TransportReadyPaused:
		return types.PlaybackStatusPaused, nil
	case playback.TransportIdle:
		return types.PlaybackStatusStopped, nil
	}
	return types.PlaybackStatusStopped, nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	st := p.service.State()
	return trackMetadata(st.CurrentTrack, st.Duration), nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return p.service.State().EffectiveVolume(), nil
}

func (p *playerAdapter) SetVolume(v float64) error {
	p.service.SetVolume(v)
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return p.service.State().CurrentTime.Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

// The queue wraps in both directions, so any non-empty queue can move.
func (p *playerAdapter) CanGoNext() (bool, error) {
	return len(p.service.State().Queue) > 0, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return len(p.service.State().Queue) > 0, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.service.State().CurrentTrack != nil, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

// LoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
func (p *playerAdapter) LoopStatus() (types.LoopStatus, error) {
	switch p.service.State().RepeatMode {
	case playback.RepeatOne:
		return types.LoopStatusTrack, nil
	case playback.RepeatAll:
		return types.LoopStatusPlaylist, nil
	case playback.RepeatNone:
		return types.LoopStatusNone, nil
	}
	return types.LoopStatusNone, nil
}

// SetLoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
func (p *playerAdapter) SetLoopStatus(status types.LoopStatus) error {
	switch status {
	case types.LoopStatusNone:
		p.service.SetRepeatMode(playback.RepeatNone)
	case types.LoopStatusTrack:
		p.service.SetRepeatMode(playback.RepeatOne)
	case types.LoopStatusPlaylist:
		p.service.SetRepeatMode(playback.RepeatAll)
	}
	return nil
}

// Shuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) Shuffle() (bool, error) {
	return p.service.State().IsShuffled, nil
}

// SetShuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) SetShuffle(shuffle bool) error {
	p.service.SetShuffle(shuffle)
	return nil
}
