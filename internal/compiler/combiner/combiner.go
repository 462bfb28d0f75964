// Package combiner implements the negated-operator combiner (spec.md
// §4.4): it merges `not in`/`!in`/`not of`/`!of` into a single relation
// marker, and `not instanceof`/`!instanceof` into a single operator marker.
package combiner

import "github.com/coffeelex/coffeelex/internal/compiler/token"

// Shifter is the lookahead surface the combiner needs: bufstream.Stream
// satisfies it.
type Shifter interface {
	Shift() token.Marker
	Unshift(markers ...token.Marker)
}

// TryCombine runs only when next.Kind == operator (the caller already
// shifted next off the stream). It shifts up to two more markers and
// tests the literal source text at next.Start; on a match it returns the
// single replacement marker and true. On no match it unshifts everything
// it looked at, including next, and returns false.
func TryCombine(source string, next token.Marker, s Shifter) (token.Marker, bool) {
	if next.Kind != token.Operator {
		return token.Marker{}, false
	}

	word := literalAt(source, next.Start)
	switch word {
	case "not", "!":
		m1 := s.Shift()
		if m1.Kind == token.Space {
			m2 := s.Shift()
			if kind, ok := negatedKind(literalAt(source, m2.Start)); ok {
				return token.Marker{Kind: kind, Start: next.Start}, true
			}
			s.Unshift(m1, m2)
			s.Unshift(next)
			return token.Marker{}, false
		}
		if kind, ok := negatedKind(literalAt(source, m1.Start)); ok {
			return token.Marker{Kind: kind, Start: next.Start}, true
		}
		s.Unshift(m1)
		s.Unshift(next)
		return token.Marker{}, false
	}
	s.Unshift(next)
	return token.Marker{}, false
}

func negatedKind(word string) (token.Kind, bool) {
	switch word {
	case "in", "of":
		return token.Relation, true
	case "instanceof":
		return token.Operator, true
	}
	return "", false
}

// literalAt reads the identifier/operator-shaped word starting at pos,
// stopping at the first byte that can't extend it — enough to recover
// "not", "!", "in", "of", "instanceof" from their start positions without
// needing the marker's end (the combiner only ever sees operator/identifier
// markers here, whose literal text is a short run of letters or a single
// '!').
func literalAt(source string, pos int) string {
	if pos >= len(source) {
		return ""
	}
	if source[pos] == '!' {
		return "!"
	}
	i := pos
	for i < len(source) && isWordByte(source[i]) {
		i++
	}
	return source[pos:i]
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
