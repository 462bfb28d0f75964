package tokenlist

import (
	"github.com/coffeelex/coffeelex/internal/compiler/lexerrors"
	"github.com/coffeelex/coffeelex/internal/compiler/token"
)

// List is the immutable, queryable Token List of spec.md §3.4. Once
// constructed it is safe to share by reference across goroutines.
type List struct {
	tokens []token.Token

	// sparse byte->token-index lookups (spec.md §3.4); built back-to-front
	// so that when multiple tokens touch the same byte, the earliest
	// token's entry is the one left standing.
	at         map[int]int
	startingAt map[int]int
	endingAt   map[int]int

	handles []*Handle // canonical cache, index i == offset i
}

// New builds a Token List from tokens, which must already be in
// non-decreasing, non-overlapping order (spec.md §3.4's gap invariant).
func New(tokens []token.Token) (*List, error) {
	for i := 1; i < len(tokens); i++ {
		if tokens[i-1].End > tokens[i].Start {
			return nil, lexerrors.Misuse("Tokens not in order")
		}
	}

	l := &List{
		tokens:     tokens,
		at:         make(map[int]int),
		startingAt: make(map[int]int),
		endingAt:   make(map[int]int),
	}
	for i := len(tokens) - 1; i >= 0; i-- {
		t := tokens[i]
		l.startingAt[t.Start] = i
		l.endingAt[t.End] = i
		for b := t.Start; b < t.End; b++ {
			l.at[b] = i
		}
	}
	l.handles = make([]*Handle, len(tokens)+1)
	for i := range l.handles {
		l.handles[i] = &Handle{list: l, offset: i}
	}
	return l, nil
}

func (l *List) handleAt(offset int) *Handle {
	if h := l.handles[offset]; h != nil {
		return h
	}
	h := &Handle{list: l, offset: offset}
	l.handles[offset] = h
	return h
}

// Len reports the number of tokens.
func (l *List) Len() int { return len(l.tokens) }

// StartIndex is always valid; equals EndIndex iff the list is empty.
func (l *List) StartIndex() *Handle { return l.handleAt(0) }

// EndIndex is the one-past-the-last-token handle.
func (l *List) EndIndex() *Handle { return l.handleAt(len(l.tokens)) }

// TokenAtIndex returns the token h points to, or ok=false at EndIndex.
func (l *List) TokenAtIndex(h *Handle) (token.Token, bool) {
	if h.offset >= len(l.tokens) {
		return token.Token{}, false
	}
	return l.tokens[h.offset], true
}

// IndexOfTokenContainingSourceIndex returns the token containing byte b, or
// ok=false if b falls in a gap (a filtered space, or past the end).
func (l *List) IndexOfTokenContainingSourceIndex(b int) (*Handle, bool) {
	i, ok := l.at[b]
	if !ok {
		return nil, false
	}
	return l.handleAt(i), true
}

// IndexOfTokenNearSourceIndex returns the token containing b if any, else
// the nearest token starting before b, else StartIndex.
func (l *List) IndexOfTokenNearSourceIndex(b int) *Handle {
	if h, ok := l.IndexOfTokenContainingSourceIndex(b); ok {
		return h
	}
	best := -1
	for i, t := range l.tokens {
		if t.Start <= b && (best == -1 || t.Start > l.tokens[best].Start) {
			best = i
		}
	}
	if best == -1 {
		return l.StartIndex()
	}
	return l.handleAt(best)
}

// IndexOfTokenStartingAtSourceIndex is an exact-boundary lookup on token
// start.
func (l *List) IndexOfTokenStartingAtSourceIndex(b int) (*Handle, bool) {
	i, ok := l.startingAt[b]
	if !ok {
		return nil, false
	}
	return l.handleAt(i), true
}

// IndexOfTokenEndingAtSourceIndex is an exact-boundary lookup on token end.
func (l *List) IndexOfTokenEndingAtSourceIndex(b int) (*Handle, bool) {
	i, ok := l.endingAt[b]
	if !ok {
		return nil, false
	}
	return l.handleAt(i), true
}

// Predicate is the callback shape for the matching-predicate queries.
type Predicate func(token.Token) bool

// IndexOfTokenMatchingPredicate scans forward over [start, end), defaulting
// to the whole list.
func (l *List) IndexOfTokenMatchingPredicate(p Predicate, start, end *Handle) (*Handle, bool) {
	if start == nil {
		start = l.StartIndex()
	}
	if end == nil {
		end = l.EndIndex()
	}
	for i := start.offset; i < end.offset; i++ {
		if p(l.tokens[i]) {
			return l.handleAt(i), true
		}
	}
	return nil, false
}

// LastIndexOfTokenMatchingPredicate scans backward from end down to start,
// both inclusive; end defaults to EndIndex.Previous() and start to
// StartIndex.
func (l *List) LastIndexOfTokenMatchingPredicate(p Predicate, start, end *Handle) (*Handle, bool) {
	if start == nil {
		start = l.StartIndex()
	}
	if end == nil {
		end, _ = l.EndIndex().Previous()
		if end == nil {
			end = l.StartIndex()
		}
	}
	for i := end.offset; i >= start.offset; i-- {
		if i >= len(l.tokens) {
			continue
		}
		if p(l.tokens[i]) {
			return l.handleAt(i), true
		}
	}
	return nil, false
}

// Tokens returns the full underlying slice. Callers must not mutate it.
func (l *List) Tokens() []token.Token { return l.tokens }

// ForEach visits every token in order.
func (l *List) ForEach(fn func(token.Token)) {
	for _, t := range l.tokens {
		fn(t)
	}
}

// Filter returns every token matching p, preserving order.
func (l *List) Filter(p Predicate) []token.Token {
	var out []token.Token
	for _, t := range l.tokens {
		if p(t) {
			out = append(out, t)
		}
	}
	return out
}

// Map applies fn to every token, preserving order.
func (l *List) Map(fn func(token.Token) token.Token) []token.Token {
	out := make([]token.Token, len(l.tokens))
	for i, t := range l.tokens {
		out[i] = fn(t)
	}
	return out
}

// Slice returns the tokens in [from, to); both handles must belong to l.
func (l *List) Slice(from, to *Handle) ([]token.Token, error) {
	if from.list != l || to.list != l {
		return nil, lexerrors.Misuse("cannot slice a list using indexes from another list")
	}
	if from.offset > to.offset {
		return nil, nil
	}
	return append([]token.Token{}, l.tokens[from.offset:to.offset]...), nil
}
