// Package padding implements the three independent padding passes of
// spec.md §4.3: normal single/double string padding, triple-quoted string
// (herestring) padding with shared-indent removal, and heregex padding.
// Each pass consumes a run of markers for one multiline construct from a
// Buffered Stream, inspects the underlying source bytes, and produces a
// denser replacement marker sequence that classifies every byte of the
// construct as content, padding (elided), or a line-separator.
package padding

import (
	"sort"

	"github.com/coffeelex/coffeelex/internal/compiler/lexerrors"
	"github.com/coffeelex/coffeelex/internal/compiler/token"
)

// Range is a half-open byte range.
type Range struct{ Start, End int }

// Fragment is a maximal run of string-body bytes between interpolation
// boundaries (spec.md GLOSSARY "Fragment"), carrying the padding and
// line-separator marks a padding pass has recorded on it (spec.md §3.7).
type Fragment struct {
	Start, End int

	paddingRanges []Range
	lineSeps      []int
}

// Content returns the fragment's raw source bytes.
func (f *Fragment) Content(source string) string { return source[f.Start:f.End] }

// MarkPadding records [start, end) as padding. Overlapping ranges coalesce
// at ComputeMarkers time (spec.md §3.7's merging rule); a no-op range is
// silently dropped.
func (f *Fragment) MarkPadding(start, end int) {
	if start >= end {
		return
	}
	f.paddingRanges = append(f.paddingRanges, Range{start, end})
}

// MarkLineSeparator records the single byte at pos as a line separator.
func (f *Fragment) MarkLineSeparator(pos int) {
	f.lineSeps = append(f.lineSeps, pos)
}

func (f *Fragment) sortedPadding() []Range {
	rs := append([]Range{}, f.paddingRanges...)
	sort.Slice(rs, func(i, j int) bool { return rs[i].Start < rs[j].Start })
	merged := rs[:0]
	for _, r := range rs {
		if n := len(merged); n > 0 && r.Start <= merged[n-1].End {
			if r.End > merged[n-1].End {
				merged[n-1].End = r.End
			}
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

// ComputeMarkers replays the fragment's byte range as a run of
// {string_content, string_padding, string_line_separator} markers, scanning
// per-byte events and collapsing adjacent same-kind emissions (spec.md
// §4.3.1). A zero-length fragment still yields one empty string_content
// marker — this is how the empty content token between two adjacent
// interpolations (spec.md §8 scenario 3) arises.
func (f *Fragment) ComputeMarkers() ([]token.Marker, error) {
	padding := f.sortedPadding()
	lineSeps := append([]int{}, f.lineSeps...)
	sort.Ints(lineSeps)

	var out []token.Marker
	var lastKind token.Kind
	havePrev := false
	pi, si := 0, 0

	emit := func(kind token.Kind, pos int) {
		if havePrev && lastKind == kind {
			return
		}
		out = append(out, token.Marker{Kind: kind, Start: pos})
		lastKind, havePrev = kind, true
	}

	for p := f.Start; p < f.End; p++ {
		for pi < len(padding) && padding[pi].End <= p {
			pi++
		}
		inPad := pi < len(padding) && padding[pi].Start <= p && p < padding[pi].End
		for si < len(lineSeps) && lineSeps[si] < p {
			si++
		}
		isSep := si < len(lineSeps) && lineSeps[si] == p

		if inPad && isSep {
			return nil, lexerrors.Newf(lexerrors.PhasePadding,
				lexerrors.Position{Offset: p}, "illegal padding state at byte %d", p)
		}
		switch {
		case isSep:
			emit(token.StringLineSeparator, p)
		case inPad:
			emit(token.StringPadding, p)
		default:
			emit(token.StringContent, p)
		}
	}
	if !havePrev {
		out = append(out, token.Marker{Kind: token.StringContent, Start: f.Start})
	}
	return out, nil
}
