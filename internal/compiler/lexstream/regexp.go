package lexstream

import (
	"strings"

	"github.com/coffeelex/coffeelex/internal/compiler/lexerrors"
	"github.com/coffeelex/coffeelex/internal/compiler/token"
)

// tryRegexLiteral implements spec.md §4.1.3: rest begins with '/'. It
// returns ok=false (consuming nothing) when the '/' reads as division or an
// empty "//" that belongs to the symbol-operator table instead; it fails
// the stream outright (ok's return value is moot) when a regex clearly
// started but never closed.
func (s *Stream) tryRegexLiteral(rest string) (token.Kind, int, bool) {
	if len(rest) < 2 || rest[1] == '/' {
		return token.Unknown, 0, false
	}

	callable := token.CallableSet.Has(s.lastNonSpace.Kind)
	hadSpace := s.havePrev && s.prevMarker.Kind == token.Space
	if callable && hadSpace {
		return token.Unknown, 0, false
	}
	if token.NotRegexpSet.Has(s.lastNonSpace.Kind) {
		return token.Unknown, 0, false
	}

	i := 1
	inClass := false
	closed := false
	for i < len(rest) {
		c := rest[i]
		if c == '\n' {
			break
		}
		if c == '\\' {
			if i+1 >= len(rest) {
				i++
				break
			}
			i += 2
			continue
		}
		if c == '[' {
			inClass = true
			i++
			continue
		}
		if c == ']' {
			inClass = false
			i++
			continue
		}
		if c == '/' && !inClass {
			i++
			closed = true
			break
		}
		i++
	}
	if !closed {
		s.fail(lexerrors.Newf(lexerrors.PhaseStream, s.pos(), "missing / (unclosed regex)"))
		return token.Unknown, 0, false
	}

	for i < len(rest) && strings.IndexByte("igmuy", rest[i]) >= 0 {
		i++
	}
	return token.Regexp, i, true
}
