package tkengine

import "sort"

// Bound lists the canonical sequences registered on tag, sorted.
func Bound(e *Engine, tag string) []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, 0, len(e.bindings[tag]))
	for seq := range e.bindings[tag] {
		out = append(out, seq)
	}
	sort.Strings(out)
	return out
}
