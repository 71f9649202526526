package keymap

// Resolver maps key strings to actions. Panel-specific bindings shadow
// global and playback ones, so "enter" can mean different things in the
// results list and in the queue.
type Resolver struct {
	scoped   map[string]map[string]Action // context -> key -> action
	shared   map[string]Action            // global and playback keys
	byAction map[Action][]string          // action -> keys (for help/documentation)
}

// NewResolver creates a resolver from bindings.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		scoped:   make(map[string]map[string]Action),
		shared:   make(map[string]Action),
		byAction: make(map[Action][]string),
	}
	for _, b := range bindings {
		target := r.shared
		if b.Context != ContextGlobal && b.Context != ContextPlayback {
			if r.scoped[b.Context] == nil {
				r.scoped[b.Context] = make(map[string]Action)
			}
			target = r.scoped[b.Context]
		}
		for _, key := range b.Keys {
			target[key] = b.Action
		}
		r.byAction[b.Action] = append(r.byAction[b.Action], b.Keys...)
	}
	for action, keys := range r.byAction {
		r.byAction[action] = dedupe(keys)
	}
	return r
}

// Resolve returns the action for a key in the given panel context,
// or empty string if not bound.
func (r *Resolver) Resolve(context, key string) Action {
	if a, ok := r.scoped[context][key]; ok {
		return a
	}
	return r.shared[key]
}

// KeysFor returns the keys bound to an action (for help/documentation).
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}

// dedupe removes duplicate strings from a slice.
func dedupe(s []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
