// Package lexstream implements the Location Stream (spec.md §4.1): a
// pull-based producer of source-location markers, dispatching on the
// current context (code, quoted-string interior, comment, embedded JS, CSX
// markup) and a short prefix match of the remaining source.
package lexstream

import (
	"github.com/coffeelex/coffeelex/internal/compiler/lexerrors"
	"github.com/coffeelex/coffeelex/internal/compiler/token"
)

// Stream is the Location Stream of spec.md §4.1. Construct with New and
// pull markers with Next until it reports token.EOF; it remains at EOF on
// every subsequent call (it is not restartable).
type Stream struct {
	source string
	useCS2 bool

	index int // next unread byte
	line  int
	col   int

	ctx   token.Kind // "location.kind": the dispatch mode the scanner is in
	stack stack

	// needContentScan is set whenever the scanner has just resumed a
	// string/heregex body (after popping an interpolation, or after a CS2
	// heregex comment) and must run a content scan (possibly zero-width)
	// before resolving whatever trigger follows it. Right after a *_start
	// marker, stepCode runs the content scan directly instead.
	needContentScan bool

	// needCSXContentScan is the CSX-body counterpart of needContentScan:
	// set whenever control returns to csx_body framing (tag just opened,
	// an interpolation or nested tag just closed) so the next step
	// announces a (possibly zero-width) csx_body marker before resolving
	// whatever follows it.
	needCSXContentScan bool

	lastNonSpace token.Marker // most recent marker whose kind isn't Space/Newline
	prevMarker   token.Marker // literally the previous marker, any kind
	havePrev     bool

	history []token.Marker
	atEOF   bool
	err     error
}

// New constructs a Location Stream over source, starting at startByte, with
// the given CS2-heregex-comment option.
func New(source string, startByte int, useCS2 bool) *Stream {
	return &Stream{
		source: source,
		useCS2: useCS2,
		index:  startByte,
		line:   1,
		col:    1,
		ctx:    token.Normal,
	}
}

// UseCS2 reports whether this stream recognises `# …` comments inside
// heregexes (spec.md §6 Options.useCS2).
func (s *Stream) UseCS2() bool { return s.useCS2 }

// History returns every marker emitted so far, in emission order.
func (s *Stream) History() []token.Marker { return s.history }

// Err returns the fatal error that stopped the stream, if any.
func (s *Stream) Err() error { return s.err }

// Next returns the next source-location marker, or the sentinel EOF marker
// forever after EOF has been reached. Once Err() is non-nil, Next always
// returns the EOF marker without doing further work.
func (s *Stream) Next() token.Marker {
	if s.atEOF || s.err != nil {
		return token.Marker{Kind: token.EOF, Start: len(s.source)}
	}

	for {
		start := s.index
		var newKind token.Kind
		if s.index >= len(s.source) {
			newKind = token.EOF
		} else {
			newKind = s.step()
			if s.err != nil {
				s.atEOF = true
				return token.Marker{Kind: token.EOF, Start: len(s.source)}
			}
		}

		nothingChanged := newKind == s.ctx && s.index == start && newKind != token.EOF
		if newKind == token.Normal || nothingChanged {
			s.ctx = newKind
			continue
		}

		s.ctx = newKind
		marker := token.Marker{Kind: newKind, Start: start}
		s.history = append(s.history, marker)
		s.prevMarker, s.havePrev = marker, true
		if newKind != token.Space && newKind != token.Newline {
			s.lastNonSpace = marker
		}
		if newKind == token.EOF {
			if !s.stack.empty() {
				s.fail(lexerrors.Newf(lexerrors.PhaseStream, s.pos(),
					"unexpected EOF while in context %s", s.topContextName()))
				return token.Marker{Kind: token.EOF, Start: len(s.source)}
			}
			s.atEOF = true
		}
		return marker
	}
}

// step dispatches on the current context and advances s.index, returning
// the resulting marker kind. It is the single entry point all of
// lexstream's other files (code.go, stringbody.go, special.go, csx.go)
// implement pieces of.
func (s *Stream) step() token.Kind {
	switch {
	case s.stack.topIsStringFrame() && (s.needContentScan || s.ctx == token.StringContent):
		// Also covers "interpolation_end: pop into the saved outer kind
		// (string_content), resume string body" (spec.md §4.1): the '}'
		// handler in code.go already set needContentScan and left the
		// string frame on top, so this branch runs the content scan.
		return s.stepStringBody()
	case s.ctx == token.HeregexpEnd:
		return s.stepAfterHeregexpEnd()
	case s.ctx == token.HeregexpComment:
		return s.stepHeregexpCommentBody()
	case s.ctx == token.JS:
		return s.stepEmbeddedJS("`")
	case s.ctx == token.HereJS:
		return s.stepEmbeddedJS("```")
	case s.inCSXTag(frameCSXBody):
		// Covers every way control arrives with a csx_body frame on top:
		// a tag just opened, a nested tag or interpolation just closed
		// back into it, or we're mid-body continuing a content scan.
		return s.stepCSXBody()
	case s.ctx == token.Herecomment:
		return s.stepHerecomment()
	case s.ctx == token.Comment:
		return s.stepComment()
	default:
		return s.stepCode()
	}
}

func (s *Stream) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

func (s *Stream) pos() lexerrors.Position {
	return lexerrors.Position{Line: s.line, Column: s.col, Offset: s.index}
}

// topContextName names the open context-stack frame for error messages
// like "unexpected EOF while in context INTERPOLATION".
func (s *Stream) topContextName() string {
	f, ok := s.stack.top()
	if !ok {
		return "TOP"
	}
	switch f.kind {
	case frameString:
		return "STRING"
	case frameInterpolation:
		return "INTERPOLATION"
	case frameParen:
		return "PAREN"
	case frameBrace:
		return "BRACE"
	case frameCSXOpenTag, frameCSXCloseTag, frameCSXBody:
		return "CSX"
	default:
		return "TOP"
	}
}

// advance moves index forward by n bytes, tracking line/column for error
// reporting. It must only be called with n bytes that are actually present
// in source (callers check bounds first).
func (s *Stream) advance(n int) {
	for i := 0; i < n; i++ {
		if s.source[s.index+i] == '\n' {
			s.line++
			s.col = 1
		} else {
			s.col++
		}
	}
	s.index += n
}

func (s *Stream) rest() string {
	return s.source[s.index:]
}

func (s *Stream) hasPrefixAt(i int, prefix string) bool {
	end := i + len(prefix)
	return end <= len(s.source) && s.source[i:end] == prefix
}

func (s *Stream) byteAt(i int) byte {
	if i < 0 || i >= len(s.source) {
		return 0
	}
	return s.source[i]
}
