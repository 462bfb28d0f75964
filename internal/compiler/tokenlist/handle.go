// Package tokenlist implements the Token List (spec.md §3.4, §4.5): an
// immutable, ordered sequence of tokens with precomputed byte→token and
// balanced-range indexes, addressed through opaque handles rather than
// plain integers.
package tokenlist

import "github.com/coffeelex/coffeelex/internal/compiler/lexerrors"

// Handle is a token list index (spec.md §3.5): an opaque offset into its
// owning List, canonicalized so two handles at the same offset of the same
// list are the same object. Distance between handles from different lists
// is reported as an error; Equal returns false for them.
type Handle struct {
	list   *List
	offset int
}

// Offset exposes the raw integer offset, mostly for tests and diagnostics.
func (h *Handle) Offset() int { return h.offset }

// List returns the handle's owning list.
func (h *Handle) List() *List { return h.list }

// Advance returns the handle n positions away, or ok=false if that would
// fall outside [0, length].
func (h *Handle) Advance(n int) (*Handle, bool) {
	offset := h.offset + n
	if offset < 0 || offset > len(h.list.tokens) {
		return nil, false
	}
	return h.list.handleAt(offset), true
}

// Next is Advance(1).
func (h *Handle) Next() (*Handle, bool) { return h.Advance(1) }

// Previous is Advance(-1).
func (h *Handle) Previous() (*Handle, bool) { return h.Advance(-1) }

// Distance returns other.offset - h.offset (positive if other is later),
// or an error if the two handles belong to different lists.
func (h *Handle) Distance(other *Handle) (int, error) {
	if h.list != other.list {
		return 0, lexerrors.Misuse("cannot compare indexes from different lists")
	}
	return other.offset - h.offset, nil
}

// Equal reports whether h and other are the same canonical handle.
func (h *Handle) Equal(other *Handle) bool { return h == other }
