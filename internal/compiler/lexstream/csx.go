package lexstream

import (
	"github.com/coffeelex/coffeelex/internal/compiler/lexerrors"
	"github.com/coffeelex/coffeelex/internal/compiler/token"
)

var notCSXPredecessor = token.NewSet(token.Identifier, token.RParen, token.RBracket, token.Number)

// canStartCSX implements spec.md §4.1.2: '<' opens a CSX tag iff the byte
// after it is '>' (a fragment) or a CSX identifier, and either we're
// already inside csx_body/csx_open_tag, or the last emitted kind isn't one
// that makes '<' read as "less than" instead (identifier, rparen, rbracket,
// number).
func (s *Stream) canStartCSX() bool {
	next := s.byteAt(s.index + 1)
	looksLikeTag := next == '>' || csxIdentRe.MatchString(string(next))
	if !looksLikeTag {
		return false
	}
	if s.inCSXTag(frameCSXBody) || s.inCSXTag(frameCSXOpenTag) {
		return true
	}
	return !notCSXPredecessor.Has(s.lastNonSpace.Kind)
}

func (s *Stream) inCSXTag(kind frameKind) bool {
	f, ok := s.stack.top()
	return ok && f.kind == kind
}

// stepCSXOpenStart consumes the '<' (or '</') that opens a CSX tag and
// pushes the matching context frame.
func (s *Stream) stepCSXOpenStart() token.Kind {
	if s.byteAt(s.index+1) == '/' {
		s.advance(2)
		s.stack.push(frame{kind: frameCSXCloseTag})
		return token.CSXCloseTagStart
	}
	s.advance(1)
	s.stack.push(frame{kind: frameCSXOpenTag})
	return token.CSXOpenTagStart
}

// stepCSXBody implements the "csx_body" dispatch group, mirroring
// stepStringBody's two-phase content-scan/trigger-resolve split: entering
// or resuming csx_body always runs a content scan first (possibly
// zero-width — this is how the empty csx_body token between a closed
// interpolation and an immediately following close tag, spec.md §8
// scenario 9, arises), then the following call resolves whatever trigger
// stopped the scan.
func (s *Stream) stepCSXBody() token.Kind {
	if s.needCSXContentScan {
		s.needCSXContentScan = false
		return s.scanCSXBodyContent()
	}
	return s.resolveCSXBodyTrigger()
}

// scanCSXBodyContent consumes body text until it reaches '</', a nested
// tag opener, or a '{' interpolation opener, without consuming the
// trigger itself. It always returns token.CSXBody, even for a zero-byte
// run.
func (s *Stream) scanCSXBodyContent() token.Kind {
	for s.index < len(s.source) && !s.atCSXBodyTrigger() {
		s.advance(1)
	}
	return token.CSXBody
}

func (s *Stream) atCSXBodyTrigger() bool {
	ch := s.byteAt(s.index)
	if ch == '<' && (s.byteAt(s.index+1) == '/' || s.canStartCSX()) {
		return true
	}
	return ch == '{'
}

// resolveCSXBodyTrigger processes whatever scanCSXBodyContent stopped at:
// a closing tag, a nested tag opener, or an interpolation opener.
func (s *Stream) resolveCSXBodyTrigger() token.Kind {
	if s.byteAt(s.index) == '<' && s.byteAt(s.index+1) == '/' {
		s.stack.pop() // leave this tag's body for its closing tag
		s.advance(2)
		s.stack.push(frame{kind: frameCSXCloseTag})
		return token.CSXCloseTagStart
	}
	ch := s.byteAt(s.index)
	if ch == '<' && s.canStartCSX() {
		// A nested tag opens without leaving this body frame: it sits on
		// top of the stack and its own close pops back down to us.
		return s.stepCSXOpenStart()
	}
	if ch == '{' {
		s.advance(1)
		s.stack.push(frame{kind: frameInterpolation, outerKind: token.CSXBody})
		return token.InterpolationStart
	}
	s.fail(lexerrors.Newf(lexerrors.PhaseStream, s.pos(), "unexpected EOF while in context CSX"))
	return token.Unknown
}
