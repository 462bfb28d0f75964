package assembler

import (
	"testing"

	"github.com/coffeelex/coffeelex/internal/compiler/bufstream"
	"github.com/coffeelex/coffeelex/internal/compiler/lexstream"
	"github.com/coffeelex/coffeelex/internal/compiler/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, source string, useCS2 bool) []token.Token {
	t.Helper()
	ls := lexstream.New(source, 0, useCS2)
	bs := bufstream.New(ls)
	tokens, err := New(source, bs).Run()
	require.NoError(t, err)
	return tokens
}

func TestSimpleExpressionTokens(t *testing.T) {
	tokens := run(t, "a + b", false)
	assert.Equal(t, []token.Token{
		{Kind: token.Identifier, Start: 0, End: 1},
		{Kind: token.Operator, Start: 2, End: 3},
		{Kind: token.Identifier, Start: 4, End: 5},
	}, tokens)
}

func TestNegatedInstanceofCombines(t *testing.T) {
	tokens := run(t, "a not instanceof b", false)
	assert.Equal(t, []token.Token{
		{Kind: token.Identifier, Start: 0, End: 1},
		{Kind: token.Operator, Start: 2, End: 16},
		{Kind: token.Identifier, Start: 17, End: 18},
	}, tokens)
}

func TestNegatedInCombinesToRelation(t *testing.T) {
	tokens := run(t, "a not in b", false)
	var found bool
	for _, tk := range tokens {
		if tk.Kind == token.Relation {
			found = true
			assert.Equal(t, "not in", tk.Literal("a not in b"))
		}
	}
	assert.True(t, found)
}

func TestNormalStringPaddingScenario(t *testing.T) {
	// spec.md §8 scenario 4, 27 bytes total.
	source := "\"  b#{c}  \n  d#{e}  \n  f  \""
	require.Len(t, source, 27)
	tokens := run(t, source, false)

	var paddings, seps []token.Token
	for _, tk := range tokens {
		switch tk.Kind {
		case token.StringPadding:
			paddings = append(paddings, tk)
		case token.StringLineSeparator:
			seps = append(seps, tk)
		}
	}
	require.Len(t, paddings, 4)
	require.Len(t, seps, 2)
	assert.Equal(t, token.Token{Kind: token.StringPadding, Start: 8, End: 10}, paddings[0])
	assert.Equal(t, token.Token{Kind: token.StringPadding, Start: 11, End: 13}, paddings[1])
	assert.Equal(t, token.Token{Kind: token.StringLineSeparator, Start: 10, End: 11}, seps[0])
	assert.Equal(t, token.Token{Kind: token.StringPadding, Start: 18, End: 20}, paddings[2])
	assert.Equal(t, token.Token{Kind: token.StringPadding, Start: 21, End: 23}, paddings[3])
	assert.Equal(t, token.Token{Kind: token.StringLineSeparator, Start: 20, End: 21}, seps[1])
}

func TestTripleStringSharedIndentScenario(t *testing.T) {
	source := "foo = '''\n      abc\n\n      def\n      '''"
	tokens := run(t, source, false)

	want := []token.Token{
		{Kind: token.Identifier, Start: 0, End: 3},
		{Kind: token.Operator, Start: 4, End: 5},
		{Kind: token.TsstringStart, Start: 6, End: 9},
		{Kind: token.StringPadding, Start: 9, End: 16},
		{Kind: token.StringContent, Start: 16, End: 21},
		{Kind: token.StringPadding, Start: 21, End: 27},
		{Kind: token.StringContent, Start: 27, End: 30},
		{Kind: token.StringPadding, Start: 30, End: 37},
		{Kind: token.TsstringEnd, Start: 37, End: 40},
	}
	// Space markers never become tokens, so this filter keeps every token:
	// the identifier and operator ahead of the string are asserted too.
	var got []token.Token
	for _, tk := range tokens {
		if tk.Start >= 0 && tk.Kind != token.Space {
			got = append(got, tk)
		}
	}
	assert.Equal(t, want, got)
}

func TestHeregexWithInterpolationAssembled(t *testing.T) {
	tokens := run(t, "///a#{b}c///", false)
	var kinds []token.Kind
	for _, tk := range tokens {
		kinds = append(kinds, tk.Kind)
	}
	assert.Equal(t, []token.Kind{
		token.HeregexpStart, token.StringContent, token.InterpolationStart,
		token.Identifier, token.InterpolationEnd, token.StringContent,
		token.HeregexpEnd,
	}, kinds)
}

func TestUnclosedBraceFails(t *testing.T) {
	ls := lexstream.New("a = {", 0, false)
	bs := bufstream.New(ls)
	_, err := New("a = {", bs).Run()
	require.Error(t, err)
}
