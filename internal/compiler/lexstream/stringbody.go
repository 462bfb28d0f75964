package lexstream

import (
	"strings"

	"github.com/coffeelex/coffeelex/internal/compiler/lexerrors"
	"github.com/coffeelex/coffeelex/internal/compiler/token"
)

// stepStringBody implements the "String/regex body" dispatch group of
// spec.md §4.1. Entering or resuming a string/heregex always runs a
// content scan first (possibly zero-width — this is how the empty
// string_content token between two adjacent interpolations, spec.md §8
// scenario 3, arises), then the following call resolves whatever trigger
// stopped the scan.
func (s *Stream) stepStringBody() token.Kind {
	f, _ := s.stack.top()

	if s.needContentScan {
		s.needContentScan = false
		return s.scanStringContent(f)
	}
	return s.resolveStringTrigger(f)
}

// scanStringContent consumes plain content bytes (honoring '\' escapes)
// until it reaches the frame's end delimiter, an interpolation opener, or
// (CS2 heregex only) a comment trigger — without consuming the trigger
// itself. It always returns token.StringContent, even for a zero-byte run.
func (s *Stream) scanStringContent(f frame) token.Kind {
	for s.index < len(s.source) {
		if s.atTrigger(f) {
			break
		}
		if s.source[s.index] == '\\' {
			if s.index+1 >= len(s.source) {
				s.advance(1)
				break
			}
			s.advance(2)
			continue
		}
		s.advance(1)
	}
	return token.StringContent
}

// atTrigger reports whether the current index begins the frame's end
// delimiter, an interpolation opener, or (CS2 heregex) a comment.
func (s *Stream) atTrigger(f frame) bool {
	if s.hasPrefixAt(s.index, f.endDelim) {
		return true
	}
	if f.allowInterp && s.hasPrefixAt(s.index, "#{") {
		return true
	}
	if f.allowComments && s.useCS2 && s.atHeregexCommentStart() {
		return true
	}
	return false
}

// atHeregexCommentStart reports whether a '#' at the current index begins
// a CS2 heregex comment: it must not be immediately followed by '{' (that
// would be an interpolation) and must follow a whitespace byte (space, tab
// or newline).
func (s *Stream) atHeregexCommentStart() bool {
	if s.byteAt(s.index) != '#' || s.byteAt(s.index+1) == '{' {
		return false
	}
	if s.index == 0 {
		return true
	}
	switch s.source[s.index-1] {
	case ' ', '\t', '\n':
		return true
	}
	return false
}

func (s *Stream) resolveStringTrigger(f frame) token.Kind {
	if s.hasPrefixAt(s.index, f.endDelim) {
		s.advance(len(f.endDelim))
		s.stack.pop()
		return f.endKind
	}
	if f.allowInterp && s.hasPrefixAt(s.index, "#{") {
		s.advance(2)
		s.stack.push(frame{kind: frameInterpolation, outerKind: token.StringContent})
		return token.InterpolationStart
	}
	if f.allowComments && s.useCS2 && s.atHeregexCommentStart() {
		s.advance(1)
		return token.HeregexpComment
	}
	// The scan loop only stops at EOF or a recognised trigger; reaching
	// here at EOF with the string frame still open is an unterminated
	// construct.
	s.fail(lexerrors.Newf(lexerrors.PhaseStream, s.pos(), "unexpected EOF while in context STRING"))
	return token.Unknown
}

// stepHeregexpCommentBody consumes a CS2 heregex comment's text up to (but
// not including) its terminating newline, then resumes the string body —
// the comment's own bytes become the start of the next content fragment,
// matching how the padding pass later reclassifies them (spec.md §4.3.4).
func (s *Stream) stepHeregexpCommentBody() token.Kind {
	for s.index < len(s.source) && s.source[s.index] != '\n' {
		s.advance(1)
	}
	s.needContentScan = true
	f, _ := s.stack.top()
	return s.scanStringContent(f)
}

// stepAfterHeregexpEnd consumes trailing regex-flag letters and returns to
// normal code scanning (spec.md §4.1, "heregexp_end: consume trailing
// regex-flag letters, return to normal").
func (s *Stream) stepAfterHeregexpEnd() token.Kind {
	for s.index < len(s.source) && strings.IndexByte("igmuy", s.source[s.index]) >= 0 {
		s.advance(1)
	}
	return token.Normal
}
