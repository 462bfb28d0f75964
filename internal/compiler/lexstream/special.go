package lexstream

import (
	"github.com/coffeelex/coffeelex/internal/compiler/lexerrors"
	"github.com/coffeelex/coffeelex/internal/compiler/token"
)

// stepComment implements the "comment" dispatch group: a line comment runs
// to (but not including) the next newline, then control returns to normal
// code scanning (spec.md §4.1).
func (s *Stream) stepComment() token.Kind {
	for s.index < len(s.source) && s.source[s.index] != '\n' {
		s.advance(1)
	}
	return token.Normal
}

// stepHerecomment implements the "herecomment" dispatch group: a block
// comment runs until a literal "###", which it also consumes, then control
// returns to normal code scanning.
func (s *Stream) stepHerecomment() token.Kind {
	for s.index < len(s.source) {
		if s.hasPrefixAt(s.index, "###") {
			s.advance(3)
			return token.Normal
		}
		s.advance(1)
	}
	s.fail(lexerrors.Newf(lexerrors.PhaseStream, s.pos(), "unterminated herecomment (missing closing ###)"))
	return token.Unknown
}

// stepEmbeddedJS implements the "js"/"herejs" dispatch groups: raw
// JavaScript runs until the matching backtick delimiter, honoring '\'
// escapes, then control returns to normal code scanning (spec.md §4.1).
func (s *Stream) stepEmbeddedJS(delim string) token.Kind {
	for s.index < len(s.source) {
		if s.hasPrefixAt(s.index, delim) {
			s.advance(len(delim))
			return token.Normal
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
	s.fail(lexerrors.Newf(lexerrors.PhaseStream, s.pos(), "unterminated embedded JS (missing closing %s)", delim))
	return token.Unknown
}
