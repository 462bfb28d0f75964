// Package assembler implements the Token Assembler (spec.md §4.5): it
// drains the Buffered Stream, splicing in the padding passes and the
// negated-operator combiner ahead of the raw markers, and pairs adjacent
// markers into half-open source tokens.
package assembler

import (
	"github.com/coffeelex/coffeelex/internal/compiler/bufstream"
	"github.com/coffeelex/coffeelex/internal/compiler/combiner"
	"github.com/coffeelex/coffeelex/internal/compiler/padding"
	"github.com/coffeelex/coffeelex/internal/compiler/token"
)

var paddingEndKind = map[token.Kind]token.Kind{
	token.SstringStart:  token.SstringEnd,
	token.DstringStart:  token.DstringEnd,
	token.TsstringStart: token.TsstringEnd,
	token.TdstringStart: token.TdstringEnd,
	token.HeregexpStart: token.HeregexpEnd,
}

// Assembler pairs the markers of a Buffered Stream into Tokens.
type Assembler struct {
	source string
	bs     *bufstream.Stream
	queue  []token.Marker
}

// New constructs an Assembler over bs, a Buffered Stream wrapping a
// Location Stream positioned at the start of source.
func New(source string, bs *bufstream.Stream) *Assembler {
	return &Assembler{source: source, bs: bs}
}

// Run drains the stream to eof and returns the assembled tokens, or the
// first error raised by the Location Stream, a padding pass, or the
// combiner.
func (a *Assembler) Run() ([]token.Token, error) {
	var tokens []token.Token
	var prev token.Marker
	havePrev := false

	for {
		cur, err := a.shiftAssembled()
		if err != nil {
			return nil, err
		}
		if havePrev && prev.Kind != token.Space {
			tokens = append(tokens, token.Token{Kind: prev.Kind, Start: prev.Start, End: cur.Start})
		}
		prev, havePrev = cur, true
		if cur.Kind == token.EOF {
			break
		}
	}
	if err := a.bs.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}

// shiftAssembled returns the next marker after giving the padding passes
// and the negated-operator combiner a chance to splice their denser
// replacement ahead of it.
func (a *Assembler) shiftAssembled() (token.Marker, error) {
	if len(a.queue) > 0 {
		m := a.queue[0]
		a.queue = a.queue[1:]
		return m, nil
	}

	cur := a.bs.Shift()

	if endKind, ok := paddingEndKind[cur.Kind]; ok {
		replacement, err := a.runPaddingPass(cur, endKind)
		if err != nil {
			return token.Marker{}, err
		}
		a.queue = replacement[1:]
		return replacement[0], nil
	}

	if cur.Kind == token.Operator {
		if combined, ok := combiner.TryCombine(a.source, cur, a.bs); ok {
			return combined, nil
		}
		// TryCombine unshifted cur (and whatever it looked at) back onto
		// bs on a non-match; re-shift it to actually consume it.
		return a.bs.Shift(), nil
	}

	return cur, nil
}

func (a *Assembler) runPaddingPass(start token.Marker, endKind token.Kind) ([]token.Marker, error) {
	t := padding.NewTracker(start, endKind)
	t.Collect(a.bs.Shift)

	switch start.Kind {
	case token.SstringStart, token.DstringStart:
		padding.NormalString(a.source, t.Fragments)
	case token.TsstringStart, token.TdstringStart:
		padding.TripleString(a.source, t.Fragments)
	case token.HeregexpStart:
		padding.Heregex(a.source, t.Fragments)
	}
	return t.Replay()
}
