package playback

import (
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/harmony/internal/errmsg"
	"github.com/llehouerou/harmony/internal/player"
)

// run drains surface events until Close.
func (c *Controller) run() {
	defer close(c.loopDone)

	events := c.surface.Events()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			c.handle(ev)
		case <-c.done:
			return
		}
	}
}

// handle applies one surface event. Events from a superseded load are
// dropped.
func (c *Controller) handle(ev player.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ev.Gen != c.gen {
		c.log.WithFields(logrus.Fields{
			"event": ev.Kind.String(),
			"gen":   ev.Gen,
			"want":  c.gen,
		}).Debug("dropping stale surface event")
		return
	}

	switch ev.Kind {
	case player.EventLoadStarted:
		c.commit(func(s *PlayerState) { s.IsLoading = true })

	case player.EventLoadComplete:
		c.failStreak = 0
		playing := c.pendingPlay
		c.pendingPlay = false
		c.commit(func(s *PlayerState) {
			s.IsLoading = false
			s.Duration = ev.Duration
			if playing {
				s.IsPlaying = true
			}
		})

	case player.EventLoadFailed:
		c.handleLoadFailed(ev.Err)

	case player.EventPlayFailed:
		c.rejectLocked(ev.Err) //nolint:errcheck // published as ErrorEvent

	case player.EventTimeUpdate:
		c.commit(func(s *PlayerState) {
			s.CurrentTime = ev.Position
			if ev.Duration > 0 {
				s.Duration = ev.Duration
			}
		})
		c.broadcast(func(sub *Subscription) {
			sub.sendPosition(PositionChange{Position: ev.Position, Duration: ev.Duration})
		})

	case player.EventEnded:
		c.handleEnded()
	}
}

func (c *Controller) handleLoadFailed(cause error) {
	wanted := c.pendingPlay || c.store.snapshot().IsPlaying
	c.pendingPlay = false
	c.commit(func(s *PlayerState) {
		s.IsLoading = false
		s.IsPlaying = false
	})
	c.metrics.LoadFailed()
	c.fail(errmsg.OpPlaybackLoad, cause)

	if !c.skipUnplayable || c.queue.IsEmpty() {
		return
	}
	c.failStreak++
	if c.failStreak >= c.queue.Len() {
		c.log.WithField("failures", c.failStreak).Warn("no playable track in queue")
		c.failStreak = 0
		return
	}
	if wanted {
		c.playNextLocked() //nolint:errcheck // published as ErrorEvent
		return
	}
	c.advanceLocked()
	c.syncQueueLocked(false)
	c.loadCurrentLocked()
}

// handleEnded applies the end-of-media transition.
func (c *Controller) handleEnded() {
	st := c.store.snapshot()

	switch {
	case st.RepeatMode == RepeatOne:
		c.surface.Seek(0)
		c.commit(func(s *PlayerState) { s.CurrentTime = 0 })
		c.playLocked() //nolint:errcheck // published as ErrorEvent

	case st.RepeatMode == RepeatAll || st.CurrentIndex < len(st.Queue)-1:
		c.playNextLocked() //nolint:errcheck // published as ErrorEvent

	default:
		// Rewind so a later Play starts the track over.
		c.surface.Seek(0)
		c.commit(func(s *PlayerState) {
			s.IsPlaying = false
			s.CurrentTime = 0
		})
	}
}
