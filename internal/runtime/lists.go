package runtime

import "sync"

// NamedList is a per-entry list or set declared by a script's `list NAME`
// or `set NAME` header directive. Block sinks append to it during the
// evaluation of one entry; a later statement on the same entry may read
// it back with `use NAME`. Scope is strictly per-entry (spec.md §3's
// "cleared at the start of processing each input entry"): each entry
// gets its own fresh NamedList instances, built by Template.ForEntry,
// so no locking is needed across entries -- only within one entry's
// evaluation, which may itself fan out if a chain is ever run
// concurrently against the same ilist (it currently is not, but the
// mutex costs nothing and keeps the type safe to reuse that way later).
type NamedList struct {
	Set bool

	mu    sync.Mutex
	items []string
	seen  map[string]bool
}

// NewNamedList creates an empty named list or, if isSet, an empty named
// set (an order-preserving list that silently drops repeats).
func NewNamedList(isSet bool) *NamedList {
	nl := &NamedList{Set: isSet}
	if isSet {
		nl.seen = make(map[string]bool)
	}
	return nl
}

// Append adds s to the list, deduplicating first if this is a set.
func (l *NamedList) Append(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.Set {
		if l.seen[s] {
			return
		}
		l.seen[s] = true
	}
	l.items = append(l.items, s)
}

// Items returns a snapshot of the list's current contents, in append
// order.
func (l *NamedList) Items() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.items))
	copy(out, l.items)
	return out
}

// Len reports the list's current length.
func (l *NamedList) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// GlobalList is a list or set loaded once, from a script's `global_list`/
// `global_set` header directive, before any entry is processed. It is
// read-only for the rest of the run, so it needs no locking.
type GlobalList struct {
	Set   bool
	items []string
	index map[string]bool
}

// NewGlobalList builds a GlobalList from already-loaded-and-filtered
// items.
func NewGlobalList(isSet bool, items []string) *GlobalList {
	g := &GlobalList{Set: isSet, items: items}
	if isSet {
		g.index = make(map[string]bool, len(items))
		for _, s := range items {
			g.index[s] = true
		}
	}
	return g
}

// Contains reports whether s is in the list, used by the glist_in/gset_in
// leaves. A global_set does this in O(1); a global_list falls back to a
// linear scan, matching its weaker ordered-list-with-duplicates contract.
func (g *GlobalList) Contains(s string) bool {
	if g.index != nil {
		return g.index[s]
	}
	for _, it := range g.items {
		if it == s {
			return true
		}
	}
	return false
}

// Items returns the list's (read-only) backing slice directly; callers
// must not mutate it.
func (g *GlobalList) Items() []string { return g.items }
