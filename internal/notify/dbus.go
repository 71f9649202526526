//go:build linux

package notify

import (
	"github.com/godbus/dbus/v5"
)

const (
	appName        = "Harmony"
	appEntry       = "harmony"
	notifyDest     = "org.freedesktop.Notifications"
	notifyPath     = "/org/freedesktop/Notifications"
	notifyIface    = "org.freedesktop.Notifications"
	actionSignal   = notifyIface + ".ActionInvoked"
	actionsBufSize = 4
)

type dbusNotifier struct {
	conn    *dbus.Conn
	obj     dbus.BusObject
	actions chan ActionInvoked
}

// New connects to the session bus. Without a bus it returns a no-op
// notifier and no error.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return noop{}, nil //nolint:nilerr // notifications are optional
	}

	n := &dbusNotifier{
		conn:    conn,
		obj:     conn.Object(notifyDest, notifyPath),
		actions: make(chan ActionInvoked, actionsBufSize),
	}

	if err := conn.AddMatchSignal(
		dbus.WithMatchInterface(notifyIface),
		dbus.WithMatchMember("ActionInvoked"),
	); err == nil {
		signals := make(chan *dbus.Signal, actionsBufSize)
		conn.Signal(signals)
		go n.forwardActions(signals)
	}
	return n, nil
}

func (n *dbusNotifier) Notify(notif Notification) (uint32, error) {
	// Notify(app_name, replaces_id, app_icon, summary, body, actions, hints, expire_timeout) -> id
	call := n.obj.Call(
		notifyIface+".Notify",
		0,
		appName,
		notif.ReplacesID,
		notif.Icon,
		notif.Summary,
		notif.Body,
		actionList(notif.Actions),
		hints(notif),
		expireTimeout(notif.Timeout),
	)
	if call.Err != nil {
		return 0, call.Err
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (n *dbusNotifier) Close(id uint32) error {
	return n.obj.Call(notifyIface+".CloseNotification", 0, id).Err
}

func (n *dbusNotifier) Actions() <-chan ActionInvoked {
	return n.actions
}

func (n *dbusNotifier) forwardActions(signals <-chan *dbus.Signal) {
	for sig := range signals {
		ev, ok := parseAction(sig)
		if !ok {
			continue
		}
		select {
		case n.actions <- ev:
		default:
		}
	}
}

// parseAction decodes an ActionInvoked(id uint32, action_key string) signal.
func parseAction(sig *dbus.Signal) (ActionInvoked, bool) {
	if sig == nil || sig.Name != actionSignal || len(sig.Body) != 2 {
		return ActionInvoked{}, false
	}
	id, ok := sig.Body[0].(uint32)
	if !ok {
		return ActionInvoked{}, false
	}
	key, ok := sig.Body[1].(string)
	if !ok {
		return ActionInvoked{}, false
	}
	return ActionInvoked{ID: id, Key: key}, true
}

// actionList flattens actions to the [key, label, key, label, ...] form.
func actionList(actions []Action) []string {
	out := make([]string, 0, 2*len(actions))
	for _, a := range actions {
		out = append(out, a.Key, a.Label)
	}
	return out
}

func hints(notif Notification) map[string]dbus.Variant {
	h := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(notif.Urgency)),
		"desktop-entry": dbus.MakeVariant(appEntry),
	}
	if notif.Category != "" {
		h["category"] = dbus.MakeVariant(notif.Category)
	}
	if notif.Transient {
		h["transient"] = dbus.MakeVariant(true)
	}
	return h
}
