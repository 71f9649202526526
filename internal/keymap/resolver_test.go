//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"slices"
	"testing"
)

func TestResolver_Resolve(t *testing.T) {
	bindings := []Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextGlobal},
		{ActionPlayPause, []string{" "}, "Play/pause", ContextPlayback},
		{ActionSelect, []string{"enter"}, "Play now", ContextResults},
		{ActionDelete, []string{"d"}, "Remove", ContextQueue},
		{ActionSelect, []string{"enter"}, "Jump", ContextQueue},
	}

	r := NewResolver(bindings)

	tests := []struct {
		context  string
		key      string
		expected Action
	}{
		{ContextResults, "q", ActionQuit},
		{ContextQueue, "ctrl+c", ActionQuit},
		{ContextResults, " ", ActionPlayPause},
		{ContextResults, "enter", ActionSelect},
		{ContextQueue, "enter", ActionSelect},
		{ContextQueue, "d", ActionDelete},
		{ContextResults, "d", ""},
		{ContextResults, "unknown", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.context+"/"+tt.key, func(t *testing.T) {
			if got := r.Resolve(tt.context, tt.key); got != tt.expected {
				t.Errorf("Resolve(%q, %q) = %q, want %q", tt.context, tt.key, got, tt.expected)
			}
		})
	}
}

func TestResolver_ScopedShadowsShared(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionStop, []string{"s"}, "Stop", ContextPlayback},
		{ActionAdd, []string{"s"}, "Shadow", ContextResults},
	})

	if got := r.Resolve(ContextResults, "s"); got != ActionAdd {
		t.Errorf("Resolve(results, s) = %q, want %q", got, ActionAdd)
	}
	if got := r.Resolve(ContextQueue, "s"); got != ActionStop {
		t.Errorf("Resolve(queue, s) = %q, want %q", got, ActionStop)
	}
}

func TestResolver_KeysFor(t *testing.T) {
	r := NewResolver(All)

	keys := r.KeysFor(ActionMoveDown)
	if !slices.Contains(keys, "j") || !slices.Contains(keys, "down") {
		t.Errorf("KeysFor(move_down) = %v, want j and down", keys)
	}
	// j/down appear in results and queue; duplicates must collapse.
	if len(keys) != 2 {
		t.Errorf("KeysFor(move_down) has %d keys, want 2", len(keys))
	}
	if got := r.KeysFor("missing"); got != nil {
		t.Errorf("KeysFor(missing) = %v, want nil", got)
	}
}

func TestResolver_AllBindingsResolve(t *testing.T) {
	r := NewResolver(All)
	for _, b := range All {
		for _, key := range b.Keys {
			if got := r.Resolve(b.Context, key); got != b.Action {
				t.Errorf("Resolve(%q, %q) = %q, want %q", b.Context, key, got, b.Action)
			}
		}
	}
}
