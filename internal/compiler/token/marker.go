package token

// Marker is a source-location marker (spec.md §3.2): starting at Start, the
// source is of kind Kind until the next marker. Markers are the currency of
// the Location Stream, the Buffered Stream, the padding passes, and the
// negated-operator combiner; the Token Assembler pairs adjacent markers into
// Tokens.
type Marker struct {
	Kind  Kind
	Start int
}

// Token is a source token (spec.md §3.3): a half-open byte range
// [Start, End) classified as Kind. Start <= End always; Start == End occurs
// for StringContent (an empty run, e.g. between two adjacent
// interpolations) and CSXBody (an empty run of markup body text, e.g.
// between an interpolation and a closing tag).
type Token struct {
	Kind  Kind
	Start int
	End   int
}

// Literal slices the token's bytes out of source.
func (t Token) Literal(source string) string {
	return source[t.Start:t.End]
}
