package token

import "bitbucket.org/creachadair/stringset"

// Set is a membership set of Kind values. coffeelex represents the three
// closed sets spec.md §4.1.1 defines (callable, indexable, not-regexp) as
// Sets built once at init, rather than as ad-hoc map[Kind]bool literals
// scattered through the dispatch loop.
type Set struct{ s stringset.Set }

// NewSet builds a Set containing exactly the given kinds.
func NewSet(kinds ...Kind) Set {
	strs := make([]string, len(kinds))
	for i, k := range kinds {
		strs[i] = string(k)
	}
	return Set{s: stringset.New(strs...)}
}

// Has reports whether k is a member of the set.
func (set Set) Has(k Kind) bool {
	return set.s.Contains(string(k))
}

// With returns a new Set containing set's members plus more.
func (set Set) With(more ...Kind) Set {
	strs := make([]string, len(more))
	for i, k := range more {
		strs[i] = string(k)
	}
	return Set{s: set.s.Union(stringset.New(strs...))}
}

var (
	// CallableSet is Callable (spec.md §4.1.1) as a Set.
	CallableSet = NewSet(Callable...)
	// IndexableSet is Indexable (spec.md §4.1.1) as a Set.
	IndexableSet = NewSet(Indexable...)
	// NotRegexpSet is NotRegexp (spec.md §4.1.1) as a Set.
	NotRegexpSet = NewSet(NotRegexp...)
)
