package coffeelex

import (
	"github.com/coffeelex/coffeelex/internal/compiler/assembler"
	"github.com/coffeelex/coffeelex/internal/compiler/bufstream"
	"github.com/coffeelex/coffeelex/internal/compiler/lexstream"
	"github.com/coffeelex/coffeelex/internal/compiler/tokenlist"
)

// Lex drives the full pipeline — Location Stream, Buffered Stream, padding
// passes, negated-operator combiner, Token Assembler — to completion and
// returns the resulting TokenList (spec.md §2, §6).
func Lex(source string, opts Options) (*tokenlist.List, error) {
	ls := lexstream.New(source, 0, opts.UseCS2)
	bs := bufstream.New(ls)
	tokens, err := assembler.New(source, bs).Run()
	if err != nil {
		return nil, err
	}
	return tokenlist.New(tokens)
}

// Stream returns the raw pull function of the Location Stream (spec.md §6),
// positioned at startByte, with no padding/combining/assembly applied.
// Each call to the returned function returns the next Marker; it returns
// the sentinel EOF marker forever once the source is exhausted or a fatal
// error occurs (check Err after the first EOF-tagged call).
func Stream(source string, startByte int, opts Options) (next func() Marker, errFn func() error) {
	ls := lexstream.New(source, startByte, opts.UseCS2)
	return ls.Next, ls.Err
}

// ConsumeStream drains next until it yields an EOF marker (inclusive) and
// returns every marker produced, in order.
func ConsumeStream(next func() Marker) []Marker {
	var out []Marker
	for {
		m := next()
		out = append(out, m)
		if m.Kind == EOF {
			return out
		}
	}
}
