// Package token defines the closed enumeration of source-location and
// source-token kinds (spec.md §3.1) and the two value types the scanning
// pipeline passes between its stages: Marker (a kind that starts at a byte
// and runs until the next marker) and Token (a kind with an explicit
// half-open byte range).
package token

// Kind is the closed tag attached to every marker and token coffeelex ever
// produces. It mirrors the teacher's token.TokenType in shape (a named
// string type with a keyword lookup table) but the vocabulary is CoffeeScript's
// source kinds rather than gmx's.
type Kind string

const (
	// Structural
	Normal  Kind = "normal"
	Space   Kind = "space"
	Newline Kind = "newline"
	EOF     Kind = "eof"
	Unknown Kind = "unknown"

	// Punctuation
	LParen    Kind = "lparen"
	RParen    Kind = "rparen"
	LBrace    Kind = "lbrace"
	RBrace    Kind = "rbrace"
	LBracket  Kind = "lbracket"
	RBracket  Kind = "rbracket"
	Comma     Kind = "comma"
	Colon     Kind = "colon"
	Semicolon Kind = "semicolon"
	Dot       Kind = "dot"
	At        Kind = "at"
	Range     Kind = "range"

	// Call brackets
	CallStart Kind = "call_start"
	CallEnd   Kind = "call_end"

	// Literals
	Number     Kind = "number"
	Bool       Kind = "bool"
	Null       Kind = "null"
	Undefined  Kind = "undefined"
	Identifier Kind = "identifier"

	// Operators and related
	Operator     Kind = "operator"
	Increment    Kind = "increment"
	Decrement    Kind = "decrement"
	Existence    Kind = "existence"
	Proto        Kind = "proto"
	Function     Kind = "function"
	Relation     Kind = "relation"
	Continuation Kind = "continuation"

	// Keywords
	If         Kind = "if"
	Else       Kind = "else"
	Then       Kind = "then"
	For        Kind = "for"
	Own        Kind = "own"
	While      Kind = "while"
	Loop       Kind = "loop"
	Switch     Kind = "switch"
	When       Kind = "when"
	Try        Kind = "try"
	Catch      Kind = "catch"
	Finally    Kind = "finally"
	Class      Kind = "class"
	New        Kind = "new"
	Return     Kind = "return"
	Break      Kind = "break"
	Continue   Kind = "continue"
	This       Kind = "this"
	Super      Kind = "super"
	Delete     Kind = "delete"
	Do         Kind = "do"
	Yield      Kind = "yield"
	YieldFrom  Kind = "yieldfrom"
	Throw      Kind = "throw"
	Extends    Kind = "extends"
	Import     Kind = "import"
	Export     Kind = "export"
	Default    Kind = "default"

	// Comments
	Comment         Kind = "comment"
	Herecomment     Kind = "herecomment"
	HeregexpComment Kind = "heregexp_comment"

	// String / regex framing
	SstringStart  Kind = "sstring_start"
	SstringEnd    Kind = "sstring_end"
	DstringStart  Kind = "dstring_start"
	DstringEnd    Kind = "dstring_end"
	TsstringStart Kind = "tsstring_start"
	TsstringEnd   Kind = "tsstring_end"
	TdstringStart Kind = "tdstring_start"
	TdstringEnd   Kind = "tdstring_end"
	HeregexpStart Kind = "heregexp_start"
	HeregexpEnd   Kind = "heregexp_end"
	Regexp        Kind = "regexp"

	// String interior
	StringContent       Kind = "string_content"
	StringPadding        Kind = "string_padding"
	StringLineSeparator Kind = "string_line_separator"

	// Interpolation framing
	InterpolationStart Kind = "interpolation_start"
	InterpolationEnd   Kind = "interpolation_end"

	// Embedded JavaScript
	JS     Kind = "js"
	HereJS Kind = "herejs"

	// CSX markup
	CSXOpenTagStart       Kind = "csx_open_tag_start"
	CSXOpenTagEnd         Kind = "csx_open_tag_end"
	CSXSelfClosingTagEnd  Kind = "csx_self_closing_tag_end"
	CSXCloseTagStart      Kind = "csx_close_tag_start"
	CSXCloseTagEnd        Kind = "csx_close_tag_end"
	CSXBody               Kind = "csx_body"
)

// keywords is the longest-match keyword table of spec.md §4.1 step 24,
// including the aliases (unless→if, until→while, and/or/not/is/isnt/
// instanceof→operator, in/of→relation, true/false/yes/no/on/off→bool).
var keywords = map[string]Kind{
	"if":         If,
	"unless":     If,
	"else":       Else,
	"then":       Then,
	"for":        For,
	"own":        Own,
	"while":      While,
	"until":      While,
	"loop":       Loop,
	"switch":     Switch,
	"when":       When,
	"try":        Try,
	"catch":      Catch,
	"finally":    Finally,
	"class":      Class,
	"new":        New,
	"return":     Return,
	"break":      Break,
	"continue":   Continue,
	"this":       This,
	"super":      Super,
	"delete":     Delete,
	"do":         Do,
	"yield":      Yield,
	"throw":      Throw,
	"extends":    Extends,
	"import":     Import,
	"export":     Export,
	"default":    Default,
	"null":       Null,
	"undefined":  Undefined,
	"true":       Bool,
	"false":      Bool,
	"yes":        Bool,
	"no":         Bool,
	"on":         Bool,
	"off":        Bool,
	"and":        Operator,
	"or":         Operator,
	"not":        Operator,
	"is":         Operator,
	"isnt":       Operator,
	"instanceof": Operator,
	"in":         Relation,
	"of":         Relation,
}

// LookupWord maps a scanned identifier-shaped word to its keyword Kind, or
// reports ok=false when the word is an ordinary Identifier.
func LookupWord(word string) (kind Kind, ok bool) {
	kind, ok = keywords[word]
	return kind, ok
}

// Callable is the set of kinds whose immediately following '(' becomes
// CallStart rather than LParen (spec.md §4.1.1). It is not used for CSX
// recognition: lexstream's canStartCSX checks its own smaller set.
var Callable = []Kind{Identifier, CallEnd, RParen, RBracket, Existence, At, This, Super}

// Indexable extends Callable with the kinds that may also precede '.' /
// '[' member access without being directly callable (spec.md §4.1.1).
var Indexable = append(append([]Kind{}, Callable...),
	Number, Regexp, HeregexpEnd, Bool, Null, Undefined, RBrace, Proto,
	SstringEnd, DstringEnd, TsstringEnd, TdstringEnd)

// NotRegexp extends Indexable with Increment/Decrement: if the previous
// non-space marker is in this set, a following '/' is division, not the
// start of a regex literal (spec.md §4.1.1).
var NotRegexp = append(append([]Kind{}, Indexable...), Increment, Decrement)
