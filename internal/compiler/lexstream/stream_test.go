package lexstream

import (
	"testing"

	"github.com/coffeelex/coffeelex/internal/compiler/token"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allMarkers(s *Stream) []token.Marker {
	var out []token.Marker
	for {
		m := s.Next()
		out = append(out, m)
		if m.Kind == token.EOF {
			return out
		}
	}
}

func TestSimpleExpression(t *testing.T) {
	s := New("a + b", 0, false)
	markers := allMarkers(s)
	require.NoError(t, s.Err())
	kinds := make([]token.Kind, len(markers))
	for i, m := range markers {
		kinds[i] = m.Kind
	}
	assert.Equal(t, []token.Kind{
		token.Identifier, token.Space, token.Operator, token.Space, token.Identifier, token.EOF,
	}, kinds)
}

func TestInterpolatedDoubleString(t *testing.T) {
	s := New(`"b#{c}d"`, 0, false)
	markers := allMarkers(s)
	require.NoError(t, s.Err())
	want := []token.Marker{
		{Kind: token.DstringStart, Start: 0},
		{Kind: token.StringContent, Start: 1},
		{Kind: token.InterpolationStart, Start: 2},
		{Kind: token.Identifier, Start: 4},
		{Kind: token.InterpolationEnd, Start: 5},
		{Kind: token.StringContent, Start: 6},
		{Kind: token.DstringEnd, Start: 7},
		{Kind: token.EOF, Start: 8},
	}
	if diff := cmp.Diff(want, markers); diff != "" {
		t.Errorf("marker sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestAdjacentInterpolationsEmptyContent(t *testing.T) {
	s := New(`"#{a}#{b}"`, 0, false)
	markers := allMarkers(s)
	require.NoError(t, s.Err())

	found := false
	for _, m := range markers {
		if m.Kind == token.StringContent && m.Start == 5 {
			found = true
		}
	}
	assert.True(t, found, "expected empty string_content marker at byte 5")
}

func TestNestedCallsAndExistence(t *testing.T) {
	s := New(`a(super(@(b[0](), true&(false), b?())))`, 0, false)
	markers := allMarkers(s)
	require.NoError(t, s.Err())

	depth := 0
	for _, m := range markers {
		switch m.Kind {
		case token.CallStart:
			depth++
		case token.CallEnd:
			depth--
			require.GreaterOrEqual(t, depth, 0)
		}
	}
	assert.Equal(t, 0, depth)

	sawLParen, sawExistence := false, false
	for _, m := range markers {
		if m.Kind == token.LParen {
			sawLParen = true
		}
		if m.Kind == token.Existence {
			sawExistence = true
		}
	}
	assert.True(t, sawLParen, "(false) must use lparen since it doesn't directly follow a callable")
	assert.True(t, sawExistence)
}

func TestElseAfterDotIsIdentifier(t *testing.T) {
	s := New(`s.else(0)`, 0, false)
	markers := allMarkers(s)
	require.NoError(t, s.Err())
	var kinds []token.Kind
	for _, m := range markers {
		if m.Kind != token.Space {
			kinds = append(kinds, m.Kind)
		}
	}
	assert.Equal(t, []token.Kind{
		token.Identifier, token.Dot, token.Identifier, token.CallStart, token.Number, token.CallEnd, token.EOF,
	}, kinds)
}

func TestCSXBasic(t *testing.T) {
	s := New(`x = <div>Hello {name}</div>`, 0, false)
	markers := allMarkers(s)
	require.NoError(t, s.Err())

	var kinds []token.Kind
	for _, m := range markers {
		if m.Kind != token.Space {
			kinds = append(kinds, m.Kind)
		}
	}
	assert.Equal(t, []token.Kind{
		token.Identifier, token.Operator,
		token.CSXOpenTagStart, token.Identifier, token.CSXOpenTagEnd,
		token.CSXBody,
		token.InterpolationStart, token.Identifier, token.InterpolationEnd,
		token.CSXBody,
		token.CSXCloseTagStart, token.Identifier, token.CSXCloseTagEnd,
		token.EOF,
	}, kinds)
}

func TestHeregexWithInterpolation(t *testing.T) {
	s := New(`///a#{b}c///`, 0, false)
	markers := allMarkers(s)
	require.NoError(t, s.Err())

	var kinds []token.Kind
	for _, m := range markers {
		kinds = append(kinds, m.Kind)
	}
	assert.Equal(t, []token.Kind{
		token.HeregexpStart, token.StringContent, token.InterpolationStart,
		token.Identifier, token.InterpolationEnd, token.StringContent,
		token.HeregexpEnd, token.EOF,
	}, kinds)
}

func TestUnclosedInterpolationFails(t *testing.T) {
	s := New(`a = "#{`, 0, false)
	_ = allMarkers(s)
	require.Error(t, s.Err())
	assert.Contains(t, s.Err().Error(), "unexpected EOF while in context INTERPOLATION")
}

func TestDivisionNotRegexAfterIdentifier(t *testing.T) {
	s := New(`a / b`, 0, false)
	markers := allMarkers(s)
	require.NoError(t, s.Err())
	assert.Equal(t, token.Operator, markers[2].Kind)
}

func TestRegexAfterOperator(t *testing.T) {
	s := New(`x = /ab+c/`, 0, false)
	markers := allMarkers(s)
	require.NoError(t, s.Err())
	var sawRegexp bool
	for _, m := range markers {
		if m.Kind == token.Regexp {
			sawRegexp = true
		}
	}
	assert.True(t, sawRegexp)
}

func TestIncrementAndDecrementRecognized(t *testing.T) {
	s := New(`a++`, 0, false)
	markers := allMarkers(s)
	require.NoError(t, s.Err())
	assert.Equal(t, token.Increment, markers[1].Kind)

	s = New(`a--`, 0, false)
	markers = allMarkers(s)
	require.NoError(t, s.Err())
	assert.Equal(t, token.Decrement, markers[1].Kind)
}

func TestDivisionNotRegexAfterIncrement(t *testing.T) {
	s := New(`a++ / b`, 0, false)
	markers := allMarkers(s)
	require.NoError(t, s.Err())
	var sawOperator bool
	for _, m := range markers {
		if m.Kind == token.Operator {
			sawOperator = true
		}
		require.NotEqual(t, token.Regexp, m.Kind)
	}
	assert.True(t, sawOperator)
}

func TestUnclosedRegexFails(t *testing.T) {
	s := New(`x = /ab`, 0, false)
	_ = allMarkers(s)
	require.Error(t, s.Err())
}

func TestUnknownConsumesRemainder(t *testing.T) {
	s := New("a \x01b", 0, false)
	markers := allMarkers(s)
	require.NoError(t, s.Err())
	last := markers[len(markers)-2]
	assert.Equal(t, token.Unknown, last.Kind)
	assert.Equal(t, token.EOF, markers[len(markers)-1].Kind)
}
