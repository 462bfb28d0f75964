package lexstream

import (
	"regexp"
	"strings"

	"github.com/coffeelex/coffeelex/internal/compiler/lexerrors"
	"github.com/coffeelex/coffeelex/internal/compiler/token"
)

var (
	spaceRunRe  = regexp.MustCompile(`^[^\n\r\S]+`)
	numberRe    = regexp.MustCompile(`(?i)^(0b[01]+|0o[0-7]+|0x[\da-f]+|\d*\.?\d+(e[+-]?\d+)?)`)
	identRe     = regexp.MustCompile(`^(?:\$|[\p{L}_])[$\w\x{7f}-\x{ffff}]*`)
	csxIdentRe  = regexp.MustCompile(`^(?:\$|[\p{L}_])[$\w.\-\x{7f}-\x{ffff}]*`)
	yieldFromRe = regexp.MustCompile(`^yield[ \t]+from\b`)
)

// symbolOperators is the longest-match-first symbol operator table of
// spec.md §4.1 rule 22. Word-based operators (and/or/not/is/isnt/
// instanceof) are handled through the identifier/keyword path (rule 24)
// instead, since they are shaped like identifiers.
var symbolOperators = []string{
	"?.::", "::~", "<<<", ">>>=",
	"===", "!==", "**=", "//=", "%%=", "&&=", "||=", "<<=", ">>=", ">>>",
	"?.", "::", "==", "!=", "<=", ">=", "<<", ">>", "**", "//", "%%",
	"&&", "||", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
	"+", "-", "*", "/", "%", "<", ">", "=", "&", "|", "^", "~", "!",
}

// stepCode implements the "Code-like contexts" dispatch group: spec.md
// §4.1's 26 numbered prefix-pattern rules, tried in priority order.
func (s *Stream) stepCode() token.Kind {
	// Meta-rule: "On any *_start framing, the next step always sets kind to
	// string_content so the body loop engages" (spec.md §4.1, after the
	// numbered list). The content scan runs immediately (not via
	// needContentScan) so this produces exactly one string_content marker
	// instead of a zero-width "flip" marker followed by the real scan.
	if isStringStartKind(s.ctx) && s.stack.topIsStringFrame() {
		f, _ := s.stack.top()
		return s.scanStringContent(f)
	}

	rest := s.rest()
	ch := s.byteAt(s.index)

	// Section-tag-like CSX open recognition is checked before most code
	// rules so '<' doesn't fall through to a bare relational operator.
	if ch == '<' && s.canStartCSX() {
		return s.stepCSXOpenStart()
	}
	if s.inCSXTag(frameCSXOpenTag) {
		if ch == '>' {
			s.advance(1)
			s.stack.pop()
			s.stack.push(frame{kind: frameCSXBody})
			s.needCSXContentScan = true
			return token.CSXOpenTagEnd
		}
		if ch == '/' && s.byteAt(s.index+1) == '>' {
			s.advance(2)
			s.stack.pop()
			s.needCSXContentScan = true
			return token.CSXSelfClosingTagEnd
		}
	}
	if s.inCSXTag(frameCSXCloseTag) && ch == '>' {
		s.advance(1)
		s.stack.pop()
		s.needCSXContentScan = true
		return token.CSXCloseTagEnd
	}

	// 1. space run
	if m := spaceRunRe.FindString(rest); m != "" {
		s.advance(len(m))
		return token.Space
	}
	// 2. newline
	if ch == '\n' {
		s.advance(1)
		return token.Newline
	}
	// 3. range
	if strings.HasPrefix(rest, "...") {
		s.advance(3)
		return token.Range
	}
	if strings.HasPrefix(rest, "..") {
		s.advance(2)
		return token.Range
	}
	// 4. number
	if !s.inCSXTag(frameCSXOpenTag) && !s.inCSXTag(frameCSXCloseTag) {
		if m := numberRe.FindString(rest); m != "" {
			s.advance(len(m))
			return token.Number
		}
	}
	// 5. dot
	if ch == '.' {
		s.advance(1)
		return token.Dot
	}
	// 6. quoted-string openers
	if k, ok := s.matchStringOpener(rest); ok {
		s.advance(len(k.delim))
		s.stack.push(frame{kind: frameString, allowInterp: k.allowInterp, allowComments: false, endDelim: k.delim, endKind: k.endKind})
		return k.startKind
	}
	// 7/8. herecomment / comment
	if strings.HasPrefix(rest, "###") && s.byteAt(s.index+3) != '#' {
		s.advance(3)
		return token.Herecomment
	}
	if ch == '#' {
		s.advance(1)
		return token.Comment
	}
	// 9. heregex opener
	if strings.HasPrefix(rest, "///") {
		s.advance(3)
		s.stack.push(frame{kind: frameString, allowInterp: true, allowComments: true, endDelim: "///", endKind: token.HeregexpEnd})
		return token.HeregexpStart
	}
	// 10/11. parens
	if ch == '(' {
		s.advance(1)
		if token.CallableSet.Has(s.lastNonSpace.Kind) {
			s.stack.push(frame{kind: frameParen, sourceKind: token.CallStart})
			return token.CallStart
		}
		s.stack.push(frame{kind: frameParen, sourceKind: token.LParen})
		return token.LParen
	}
	if ch == ')' {
		f, ok := s.stack.top()
		if !ok || f.kind != frameParen {
			s.fail(lexerrors.Newf(lexerrors.PhaseStream, s.pos(), "unexpected ')' at %d", s.index))
			return token.Unknown
		}
		s.stack.pop()
		s.advance(1)
		if f.sourceKind == token.CallStart {
			return token.CallEnd
		}
		return token.RParen
	}
	// 12. brackets
	if ch == '[' {
		s.advance(1)
		return token.LBracket
	}
	if ch == ']' {
		s.advance(1)
		return token.RBracket
	}
	// 13/14. braces
	if ch == '{' {
		s.advance(1)
		if s.stack.topIsInterpolation() {
			return token.LBrace
		}
		s.stack.push(frame{kind: frameBrace})
		return token.LBrace
	}
	if ch == '}' {
		if s.stack.topIsInterpolation() {
			f := s.stack.pop()
			s.advance(1)
			if f.outerKind == token.CSXBody {
				s.needCSXContentScan = true
			} else {
				s.needContentScan = true
			}
			return token.InterpolationEnd
		}
		f, ok := s.stack.top()
		if ok && f.kind == frameBrace {
			s.stack.pop()
			s.advance(1)
			return token.RBrace
		}
		s.fail(lexerrors.Newf(lexerrors.PhaseStream, s.pos(), "Unexpected '}' found in string at %d", s.index))
		return token.Unknown
	}
	// 18. arrows (checked before operator table, which would otherwise
	// split on '-'/'=')
	if strings.HasPrefix(rest, "->") {
		s.advance(2)
		return token.Function
	}
	if strings.HasPrefix(rest, "=>") {
		s.advance(2)
		return token.Function
	}
	// 19. regex literal
	if ch == '/' {
		if kind, n, ok := s.tryRegexLiteral(rest); ok {
			s.advance(n)
			return kind
		}
		if s.err != nil {
			return token.Unknown
		}
	}
	// 20. misc punctuation
	if strings.HasPrefix(rest, "::") {
		s.advance(2)
		return token.Proto
	}
	if ch == ':' {
		s.advance(1)
		return token.Colon
	}
	if ch == ',' {
		s.advance(1)
		return token.Comma
	}
	if ch == '@' {
		s.advance(1)
		return token.At
	}
	if ch == ';' {
		s.advance(1)
		return token.Semicolon
	}
	// 21. embedded JS
	if strings.HasPrefix(rest, "```") {
		s.advance(3)
		return token.HereJS
	}
	if ch == '`' {
		s.advance(1)
		return token.JS
	}
	// 23. yield from
	if m := yieldFromRe.FindString(rest); m != "" {
		s.advance(len(m))
		return token.YieldFrom
	}
	// 24. identifiers / keywords / CSX identifiers
	if ident, ok := s.matchIdentifier(rest); ok {
		s.advance(len(ident))
		return s.classifyWord(ident)
	}
	// 22. ++/-- must be tried before the symbol-operator loop below, since
	// that loop matches "+"/"-" first and would otherwise shadow them.
	if strings.HasPrefix(rest, "++") {
		s.advance(2)
		return token.Increment
	}
	if strings.HasPrefix(rest, "--") {
		s.advance(2)
		return token.Decrement
	}
	// 22. symbol operators (longest match)
	for _, op := range symbolOperators {
		if strings.HasPrefix(rest, op) {
			s.advance(len(op))
			switch op {
			case "?.", "?":
				return token.Existence
			default:
				return token.Operator
			}
		}
	}
	if ch == '?' {
		s.advance(1)
		return token.Existence
	}
	// 25. continuation
	if ch == '\\' {
		s.advance(1)
		return token.Continuation
	}
	// 26. unknown: consume remainder of input to guarantee convergence
	s.index = len(s.source)
	return token.Unknown
}

func isStringStartKind(k token.Kind) bool {
	switch k {
	case token.SstringStart, token.DstringStart, token.TsstringStart, token.TdstringStart, token.HeregexpStart:
		return true
	}
	return false
}

type stringOpener struct {
	delim       string
	startKind   token.Kind
	endKind     token.Kind
	allowInterp bool
}

// matchStringOpener tries the quote delimiters in the priority order of
// spec.md §4.1 rule 6: """, ", ''', '.
func (s *Stream) matchStringOpener(rest string) (stringOpener, bool) {
	switch {
	case strings.HasPrefix(rest, `"""`):
		return stringOpener{`"""`, token.TdstringStart, token.TdstringEnd, true}, true
	case strings.HasPrefix(rest, `"`):
		return stringOpener{`"`, token.DstringStart, token.DstringEnd, true}, true
	case strings.HasPrefix(rest, `'''`):
		return stringOpener{`'''`, token.TsstringStart, token.TsstringEnd, false}, true
	case strings.HasPrefix(rest, `'`):
		return stringOpener{`'`, token.SstringStart, token.SstringEnd, false}, true
	}
	return stringOpener{}, false
}

func (s *Stream) matchIdentifier(rest string) (string, bool) {
	re := identRe
	if s.inCSXTag(frameCSXOpenTag) {
		re = csxIdentRe
	}
	m := re.FindString(rest)
	if m == "" {
		return "", false
	}
	return m, true
}

// classifyWord implements rule 24's disambiguation: a matched word is an
// Identifier (never a keyword) if it follows '.'/'::' , immediately
// follows '@' with no intervening space, or precedes ':' as an object key;
// otherwise it's looked up in the keyword table.
func (s *Stream) classifyWord(word string) token.Kind {
	prev := s.lastNonSpace.Kind
	if prev == token.Dot || prev == token.Proto {
		return token.Identifier
	}
	if s.havePrev && s.prevMarker.Kind == token.At {
		return token.Identifier
	}
	if s.nextNonSpaceStartsWithColon() {
		return token.Identifier
	}
	if kind, ok := token.LookupWord(word); ok {
		return kind
	}
	return token.Identifier
}

// nextNonSpaceStartsWithColon looks past the just-consumed word (and any
// following spaces/tabs) for a ':' that isn't '::', signalling an object
// key (spec.md §4.1 rule 24).
func (s *Stream) nextNonSpaceStartsWithColon() bool {
	i := s.index
	for i < len(s.source) && (s.source[i] == ' ' || s.source[i] == '\t') {
		i++
	}
	if i >= len(s.source) || s.source[i] != ':' {
		return false
	}
	return s.byteAt(i+1) != ':'
}
