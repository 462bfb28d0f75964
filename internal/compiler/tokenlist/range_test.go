package tokenlist

import (
	"testing"

	"github.com/coffeelex/coffeelex/internal/compiler/assembler"
	"github.com/coffeelex/coffeelex/internal/compiler/bufstream"
	"github.com/coffeelex/coffeelex/internal/compiler/lexstream"
	"github.com/coffeelex/coffeelex/internal/compiler/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexToList(t *testing.T, source string) *List {
	t.Helper()
	ls := lexstream.New(source, 0, false)
	bs := bufstream.New(ls)
	tokens, err := assembler.New(source, bs).Run()
	require.NoError(t, err)
	l, err := New(tokens)
	require.NoError(t, err)
	return l
}

func TestRangeOfInterpolatedHeregex(t *testing.T) {
	// spec.md §8 scenario 10.
	l := lexToList(t, "///a#{b}c///")

	interpStart, ok := l.IndexOfTokenMatchingPredicate(func(tk token.Token) bool {
		return tk.Kind == token.InterpolationStart
	}, nil, nil)
	require.True(t, ok)

	start, end, ok := l.RangeOfInterpolatedStringTokensContainingTokenIndex(interpStart)
	require.True(t, ok)
	assert.True(t, l.StartIndex().Equal(start))
	assert.True(t, l.EndIndex().Equal(end))
}

func TestRangeOfMatchingTokensFromStart(t *testing.T) {
	l := lexToList(t, `"b#{c}d"`)
	start := l.StartIndex() // dstring_start
	rStart, rEnd, ok := l.RangeOfMatchingTokensContainingTokenIndex(token.DstringStart, token.DstringEnd, start)
	require.True(t, ok)
	assert.True(t, rStart.Equal(start))
	assert.True(t, rEnd.Equal(l.EndIndex()))
}

func TestRangeOfMatchingTokensFromEnd(t *testing.T) {
	l := lexToList(t, `"b#{c}d"`)
	end, ok := l.LastIndexOfTokenMatchingPredicate(func(tk token.Token) bool {
		return tk.Kind == token.DstringEnd
	}, nil, nil)
	require.True(t, ok)

	rStart, rEnd, ok := l.RangeOfMatchingTokensContainingTokenIndex(token.DstringStart, token.DstringEnd, end)
	require.True(t, ok)
	assert.True(t, rStart.Equal(l.StartIndex()))
	nextAfterEnd, _ := end.Next()
	assert.True(t, rEnd.Equal(nextAfterEnd))
}

func TestRangeOfMatchingTokensRestartsFromInnermostUnopened(t *testing.T) {
	l := lexToList(t, `"b#{c}d"`)
	// The identifier "c" sits inside the interpolation, which itself sits
	// inside the dstring; asking for the dstring range from a token that is
	// neither its start nor end must restart forward from the dstring_start.
	identH, ok := l.IndexOfTokenMatchingPredicate(func(tk token.Token) bool {
		return tk.Kind == token.Identifier
	}, nil, nil)
	require.True(t, ok)

	rStart, rEnd, ok := l.RangeOfMatchingTokensContainingTokenIndex(token.DstringStart, token.DstringEnd, identH)
	require.True(t, ok)
	assert.True(t, rStart.Equal(l.StartIndex()))
	assert.True(t, rEnd.Equal(l.EndIndex()))
}

func TestRangeOfMatchingTokensNoMatch(t *testing.T) {
	l := lexToList(t, `a + b`)
	h, ok := l.IndexOfTokenMatchingPredicate(func(tk token.Token) bool {
		return tk.Kind == token.Operator
	}, nil, nil)
	require.True(t, ok)
	_, _, ok = l.RangeOfMatchingTokensContainingTokenIndex(token.DstringStart, token.DstringEnd, h)
	assert.False(t, ok)
}
