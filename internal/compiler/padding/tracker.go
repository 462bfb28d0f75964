package padding

import "github.com/coffeelex/coffeelex/internal/compiler/token"

// item is one entry of a Tracker's replay sequence: either a Fragment
// (expanded into content/padding/line-separator markers at replay time) or
// a marker that passes through unchanged (interpolation framing, and
// anything nested inside an interpolation).
type item struct {
	fragment *Fragment
	marker   token.Marker
	isFrag   bool
}

// Tracker is the shared padding-tracker helper of spec.md §4.3.1. It
// consumes markers for one multiline construct — from just after the
// construct's `*_start` up to and including its matching end marker —
// tracking interpolation depth so only outside-interpolation content runs
// become Fragments.
type Tracker struct {
	Start   token.Marker
	EndKind token.Kind
	End     token.Marker

	Fragments []*Fragment
	items     []item
}

// NewTracker begins tracking a construct whose `*_start` marker (already
// shifted off the stream by the caller) was start, ending at endKind.
func NewTracker(start token.Marker, endKind token.Kind) *Tracker {
	return &Tracker{Start: start, EndKind: endKind}
}

// fragmentContinues reports whether a depth-0 marker kind belongs inside an
// in-progress fragment rather than breaking it. heregexp_comment is folded
// in here: the Location Stream always emits one immediately followed by a
// string_content run with no gap between them, so from the padding pass's
// point of view they're one continuous span of bytes (spec.md §4.3.4 marks
// the comment's own text as padding within that span).
func fragmentContinues(k token.Kind) bool {
	return k == token.StringContent || k == token.HeregexpComment
}

// Collect pulls markers from shift until it sees the matching end marker at
// interpolation depth 0 (or EOF, which then stands in as End), recording
// outside-interpolation content runs as Fragments and everything else
// verbatim for replay.
func (t *Tracker) Collect(shift func() token.Marker) {
	depth := 0
	pendingStart := -1

	flush := func(end int) {
		if pendingStart < 0 {
			return
		}
		f := &Fragment{Start: pendingStart, End: end}
		t.Fragments = append(t.Fragments, f)
		t.items = append(t.items, item{fragment: f, isFrag: true})
		pendingStart = -1
	}

	for {
		m := shift()
		if m.Kind == token.EOF {
			// An unterminated construct: the stream repeats EOF forever, so
			// stop here and let the caller surface the stream's error.
			flush(m.Start)
			t.End = m
			return
		}
		if m.Kind == t.EndKind && depth == 0 {
			flush(m.Start)
			t.End = m
			return
		}
		if depth == 0 && fragmentContinues(m.Kind) {
			if pendingStart < 0 {
				pendingStart = m.Start
			}
			continue
		}
		flush(m.Start)
		switch m.Kind {
		case token.InterpolationStart:
			depth++
		case token.InterpolationEnd:
			depth--
		}
		t.items = append(t.items, item{marker: m})
	}
}

// Replay reproduces the full, denser marker sequence for the construct:
// Start, then each recorded item in order (fragments expanded via
// ComputeMarkers, everything else passed through unchanged), then End.
func (t *Tracker) Replay() ([]token.Marker, error) {
	out := []token.Marker{t.Start}
	for _, it := range t.items {
		if !it.isFrag {
			out = append(out, it.marker)
			continue
		}
		ms, err := it.fragment.ComputeMarkers()
		if err != nil {
			return nil, err
		}
		out = append(out, ms...)
	}
	out = append(out, t.End)
	return out, nil
}
