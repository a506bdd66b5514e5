package keymap

// fallbackContexts are consulted after the focused context.
var fallbackContexts = []string{ContextGlobal, ContextPlayback}

// Resolver maps key strings to actions.
type Resolver struct {
	scoped   map[string]map[string]Action // context -> key -> action
	byAction map[Action][]string          // action -> keys (for help/documentation)
}

// NewResolver creates a resolver from bindings.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		scoped:   make(map[string]map[string]Action),
		byAction: make(map[Action][]string),
	}
	for _, b := range bindings {
		ctx := r.scoped[b.Context]
		if ctx == nil {
			ctx = make(map[string]Action)
			r.scoped[b.Context] = ctx
		}
		for _, key := range b.Keys {
			ctx[key] = b.Action
		}
		// Collect all keys for each action (may have duplicates from different contexts)
		r.byAction[b.Action] = append(r.byAction[b.Action], b.Keys...)
	}
	// Deduplicate keys per action
	for action, keys := range r.byAction {
		r.byAction[action] = dedupe(keys)
	}
	return r
}

// ResolveChain returns the action for a key pressed while contexts have
// focus, earlier contexts shadowing later ones. Global and playback bindings
// are consulted last.
func (r *Resolver) ResolveChain(key string, contexts ...string) Action {
	for _, ctx := range contexts {
		if a, ok := r.scoped[ctx][key]; ok {
			return a
		}
	}
	for _, ctx := range fallbackContexts {
		if a, ok := r.scoped[ctx][key]; ok {
			return a
		}
	}
	return ""
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
