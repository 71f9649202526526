// Package notify shows "now playing" desktop notifications.
package notify

import "time"

// Urgency is the freedesktop urgency hint.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Action is a button on a notification. Key is reported back when the
// user clicks it.
type Action struct {
	Key   string
	Label string
}

// Notification contains data for a desktop notification.
type Notification struct {
	Summary    string
	Body       string
	Icon       string        // icon name or file path
	Timeout    time.Duration // 0 = server default
	ReplacesID uint32        // 0 = new notification
	Urgency    Urgency
	Category   string // e.g. "x-harmony.track"
	Transient  bool   // keep out of the notification history
	Actions    []Action
}

// ActionInvoked reports a click on a notification action.
type ActionInvoked struct {
	ID  uint32
	Key string
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify shows n and returns its ID. Returns 0 and nil when
	// notifications are unavailable.
	Notify(n Notification) (uint32, error)
	// Close removes a notification.
	Close(id uint32) error
	// Actions delivers action clicks. Never closed; nil for notifiers
	// without action support.
	Actions() <-chan ActionInvoked
}

// expireTimeout converts d to the freedesktop expire_timeout argument.
func expireTimeout(d time.Duration) int32 {
	if d <= 0 {
		return -1
	}
	return int32(d / time.Millisecond)
}

// noop is used when no notification daemon is reachable.
type noop struct{}

func (noop) Notify(Notification) (uint32, error) { return 0, nil }
func (noop) Close(uint32) error                  { return nil }
func (noop) Actions() <-chan ActionInvoked       { return nil }
