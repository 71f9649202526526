//go:build !linux

package notify

import "github.com/gen2brain/beeep"

// toastNotifier uses the platform toast API. It cannot replace or close
// notifications and reports no actions.
type toastNotifier struct{}

// New returns a notifier backed by the native notification center.
func New() (Notifier, error) {
	beeep.AppName = "Harmony"
	return toastNotifier{}, nil
}

func (toastNotifier) Notify(n Notification) (uint32, error) {
	return 0, beeep.Notify(n.Summary, n.Body, "")
}

func (toastNotifier) Close(uint32) error            { return nil }
func (toastNotifier) Actions() <-chan ActionInvoked { return nil }
