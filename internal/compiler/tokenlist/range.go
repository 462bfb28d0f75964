package tokenlist

import "github.com/coffeelex/coffeelex/internal/compiler/token"

// RangeOfMatchingTokensContainingTokenIndex implements the balanced-match
// query of spec.md §4.5/§9: if h names a kS token, it scans forward with a
// nesting counter; if a kE, it scans backward; otherwise it first scans
// backward to the innermost unopened kS and restarts the forward scan from
// there — a single backward pass does not get nesting right on its own.
// The returned end handle is one past the matching kE.
func (l *List) RangeOfMatchingTokensContainingTokenIndex(kS, kE token.Kind, h *Handle) (*Handle, *Handle, bool) {
	t, ok := l.TokenAtIndex(h)
	if !ok {
		return nil, nil, false
	}
	switch t.Kind {
	case kS:
		return l.forwardMatch(h, kS, kE)
	case kE:
		return l.backwardMatchFromEnd(h, kS, kE)
	default:
		start, ok := l.innermostUnopenedStart(h, kS, kE)
		if !ok {
			return nil, nil, false
		}
		return l.forwardMatch(start, kS, kE)
	}
}

// forwardMatch scans forward from a known kS handle, tracking nesting
// depth, and returns [start, matching-kE-handle.Next()).
func (l *List) forwardMatch(start *Handle, kS, kE token.Kind) (*Handle, *Handle, bool) {
	depth := 1
	for i := start.offset + 1; i < len(l.tokens); i++ {
		switch l.tokens[i].Kind {
		case kS:
			depth++
		case kE:
			depth--
			if depth == 0 {
				end := l.handleAt(i)
				next, _ := end.Next()
				return start, next, true
			}
		}
	}
	return nil, nil, false
}

// backwardMatchFromEnd scans backward from a known kE handle, tracking
// nesting depth, to find its matching kS.
func (l *List) backwardMatchFromEnd(end *Handle, kS, kE token.Kind) (*Handle, *Handle, bool) {
	depth := 1
	for i := end.offset - 1; i >= 0; i-- {
		switch l.tokens[i].Kind {
		case kE:
			depth++
		case kS:
			depth--
			if depth == 0 {
				start := l.handleAt(i)
				next, _ := end.Next()
				return start, next, true
			}
		}
	}
	return nil, nil, false
}

// innermostUnopenedStart scans backward from (but not including) h,
// tracking how many kE's are still owed a kS, and returns the first kS
// that isn't spoken for by one of those kE's — the innermost construct
// still open at h.
func (l *List) innermostUnopenedStart(h *Handle, kS, kE token.Kind) (*Handle, bool) {
	pending := 0
	for i := h.offset - 1; i >= 0; i-- {
		switch l.tokens[i].Kind {
		case kE:
			pending++
		case kS:
			if pending > 0 {
				pending--
			} else {
				return l.handleAt(i), true
			}
		}
	}
	return nil, false
}

// interpolatedPairs enumerates the three construct kinds that can host
// interpolations (spec.md §4.5).
var interpolatedPairs = [][2]token.Kind{
	{token.DstringStart, token.DstringEnd},
	{token.TdstringStart, token.TdstringEnd},
	{token.HeregexpStart, token.HeregexpEnd},
}

// RangeOfInterpolatedStringTokensContainingTokenIndex tries every
// interpolation-capable construct and returns the smallest (innermost)
// matching range, per spec.md §4.5's concrete scenario 10.
func (l *List) RangeOfInterpolatedStringTokensContainingTokenIndex(h *Handle) (*Handle, *Handle, bool) {
	var bestStart, bestEnd *Handle
	found := false
	for _, pair := range interpolatedPairs {
		start, end, ok := l.RangeOfMatchingTokensContainingTokenIndex(pair[0], pair[1], h)
		if !ok {
			continue
		}
		if !found || (end.Offset()-start.Offset()) < (bestEnd.Offset()-bestStart.Offset()) {
			bestStart, bestEnd, found = start, end, true
		}
	}
	return bestStart, bestEnd, found
}
