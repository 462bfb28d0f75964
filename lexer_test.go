package coffeelex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexSimpleExpression(t *testing.T) {
	// spec.md §8 scenario 1.
	list, err := Lex("a + b", Options{})
	require.NoError(t, err)
	assert.Equal(t, []Token{
		{Kind: Identifier, Start: 0, End: 1},
		{Kind: Operator, Start: 2, End: 3},
		{Kind: Identifier, Start: 4, End: 5},
	}, list.Tokens())
}

func TestLexInterpolatedDoubleString(t *testing.T) {
	// spec.md §8 scenario 2.
	list, err := Lex(`"b#{c}d"`, Options{})
	require.NoError(t, err)
	assert.Equal(t, []Token{
		{Kind: DstringStart, Start: 0, End: 1},
		{Kind: StringContent, Start: 1, End: 2},
		{Kind: InterpolationStart, Start: 2, End: 4},
		{Kind: Identifier, Start: 4, End: 5},
		{Kind: InterpolationEnd, Start: 5, End: 6},
		{Kind: StringContent, Start: 6, End: 7},
		{Kind: DstringEnd, Start: 7, End: 8},
	}, list.Tokens())
}

func TestLexAdjacentInterpolationsEmptyContent(t *testing.T) {
	// spec.md §8 scenario 3.
	list, err := Lex(`"#{a}#{b}"`, Options{})
	require.NoError(t, err)
	found := false
	for _, tk := range list.Tokens() {
		if tk.Kind == StringContent && tk.Start == 5 && tk.End == 5 {
			found = true
		}
	}
	assert.True(t, found, "expected empty string_content 5..5 between the two interpolations, got %v", list.Tokens())
}

func TestLexNegatedInstanceofCombines(t *testing.T) {
	// spec.md §8 scenario 6.
	list, err := Lex("a not instanceof b", Options{})
	require.NoError(t, err)
	assert.Equal(t, []Token{
		{Kind: Identifier, Start: 0, End: 1},
		{Kind: Operator, Start: 2, End: 16},
		{Kind: Identifier, Start: 17, End: 18},
	}, list.Tokens())
}

func TestLexElseAfterDotIsIdentifier(t *testing.T) {
	// spec.md §8 scenario 8.
	list, err := Lex("s.else(0)", Options{})
	require.NoError(t, err)
	var kinds []Kind
	for _, tk := range list.Tokens() {
		kinds = append(kinds, tk.Kind)
	}
	assert.Equal(t, []Kind{Identifier, Dot, Identifier, CallStart, Number, CallEnd}, kinds)
}

func TestLexCSXBody(t *testing.T) {
	// spec.md §8 scenario 9.
	list, err := Lex("x = <div>Hello {name}</div>", Options{})
	require.NoError(t, err)
	var kinds []Kind
	for _, tk := range list.Tokens() {
		kinds = append(kinds, tk.Kind)
	}
	assert.Equal(t, []Kind{
		Identifier, Operator, CSXOpenTagStart, Identifier, CSXOpenTagEnd,
		CSXBody, InterpolationStart, Identifier, InterpolationEnd, CSXBody,
		CSXCloseTagStart, Identifier, CSXCloseTagEnd,
	}, kinds)

	var bodies []Token
	for _, tk := range list.Tokens() {
		if tk.Kind == CSXBody {
			bodies = append(bodies, tk)
		}
	}
	require.Len(t, bodies, 2)
	assert.Equal(t, Token{Kind: CSXBody, Start: 9, End: 15}, bodies[0])
	assert.Equal(t, Token{Kind: CSXBody, Start: 21, End: 21}, bodies[1])
}

func TestLexUnclosedInterpolationFails(t *testing.T) {
	// spec.md §8 scenario 11.
	_, err := Lex(`a = "#{`, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected EOF while in context INTERPOLATION")
}

func TestStreamYieldsMarkersThroughEOF(t *testing.T) {
	next, errFn := Stream("a + b", 0, Options{})
	markers := ConsumeStream(next)
	require.NoError(t, errFn())
	require.NotEmpty(t, markers)
	assert.Equal(t, EOF, markers[len(markers)-1].Kind)
	assert.Equal(t, Identifier, markers[0].Kind)
}

func TestConsumeStreamStopsAtEOF(t *testing.T) {
	calls := 0
	eofAt := 3
	next := func() Marker {
		calls++
		if calls >= eofAt {
			return Marker{Kind: EOF, Start: 99}
		}
		return Marker{Kind: Identifier, Start: calls}
	}
	markers := ConsumeStream(next)
	assert.Equal(t, eofAt, len(markers))
	assert.Equal(t, EOF, markers[len(markers)-1].Kind)
}
