package keymap

import "strings"

// Resolver maps key strings to actions.
type Resolver struct {
	bindings map[string]Action   // key -> action
	byAction map[Action][]string // action -> keys, for the help line
	order    []Binding
}

// NewResolver creates a resolver from bindings. When a key is bound twice,
// the later binding wins.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: make(map[string]Action),
		byAction: make(map[Action][]string),
		order:    bindings,
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.bindings[key] = b.Action
		}
		r.byAction[b.Action] = append(r.byAction[b.Action], b.Keys...)
	}
	for action, keys := range r.byAction {
		r.byAction[action] = dedupe(keys)
	}
	return r
}

// Resolve returns the action for a key, or empty string if not bound.
func (r *Resolver) Resolve(key string) Action {
	return r.bindings[key]
}

// KeysFor returns the keys bound to an action.
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}

// Help renders "key description" pairs for the given actions, using the
// first key of each, separated by sep. Unbound actions are skipped.
func (r *Resolver) Help(sep string, actions ...Action) string {
	parts := make([]string, 0, len(actions))
	for _, a := range actions {
		keys := r.byAction[a]
		if len(keys) == 0 {
			continue
		}
		parts = append(parts, displayKey(keys[0])+" "+r.describe(a))
	}
	return strings.Join(parts, sep)
}

func (r *Resolver) describe(a Action) string {
	for _, b := range r.order {
		if b.Action == a {
			return strings.ToLower(b.Description)
		}
	}
	return string(a)
}

func displayKey(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

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
