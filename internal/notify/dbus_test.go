//go:build linux

package notify

import (
	"os"
	"testing"

	"github.com/godbus/dbus/v5"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		name   string
		sig    *dbus.Signal
		want   ActionInvoked
		wantOK bool
	}{
		{
			name:   "valid",
			sig:    &dbus.Signal{Name: actionSignal, Body: []any{uint32(7), "next"}},
			want:   ActionInvoked{ID: 7, Key: "next"},
			wantOK: true,
		},
		{
			name: "other signal",
			sig:  &dbus.Signal{Name: notifyIface + ".NotificationClosed", Body: []any{uint32(7), uint32(2)}},
		},
		{
			name: "wrong body types",
			sig:  &dbus.Signal{Name: actionSignal, Body: []any{"7", "next"}},
		},
		{
			name: "short body",
			sig:  &dbus.Signal{Name: actionSignal, Body: []any{uint32(7)}},
		},
		{name: "nil"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseAction(tt.sig)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("parseAction() = %+v, %v; want %+v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestActionList(t *testing.T) {
	got := actionList([]Action{{Key: "next", Label: "Next"}, {Key: "pause", Label: "Pause"}})
	want := []string{"next", "Next", "pause", "Pause"}
	if len(got) != len(want) {
		t.Fatalf("actionList() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("actionList()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if got := actionList(nil); got == nil || len(got) != 0 {
		t.Errorf("actionList(nil) = %#v, want empty non-nil slice", got)
	}
}

func TestHints(t *testing.T) {
	h := hints(Notification{Urgency: UrgencyCritical})
	if len(h) != 2 {
		t.Errorf("hints() has %d keys, want urgency and desktop-entry only", len(h))
	}
	if v, ok := h["urgency"].Value().(byte); !ok || v != 2 {
		t.Errorf("urgency hint = %v", h["urgency"])
	}

	h = hints(Notification{Category: trackCategory, Transient: true})
	if v, _ := h["category"].Value().(string); v != trackCategory {
		t.Errorf("category hint = %v", h["category"])
	}
	if v, _ := h["transient"].Value().(bool); !v {
		t.Errorf("transient hint = %v", h["transient"])
	}
}

func TestNotifyReplacesExisting(t *testing.T) {
	if os.Getenv("DBUS_SESSION_BUS_ADDRESS") == "" {
		t.Skip("no D-Bus session available")
	}

	notifier, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	id1, err := notifier.Notify(Notification{Summary: "Track 1", Body: "Artist - Album", Timeout: trackTimeout})
	if err != nil {
		t.Fatalf("first Notify() error: %v", err)
	}
	if id1 == 0 {
		t.Skip("no notification daemon")
	}

	id2, err := notifier.Notify(Notification{Summary: "Track 2", ReplacesID: id1, Transient: true})
	if err != nil {
		t.Fatalf("second Notify() error: %v", err)
	}
	if id2 != id1 {
		t.Errorf("replacing notification got id=%d, want id=%d", id2, id1)
	}

	if err := notifier.Close(id2); err != nil {
		t.Errorf("Close() error: %v", err)
	}
}
