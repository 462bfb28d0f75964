// Package bufstream implements the Buffered Stream (spec.md §4.2): a FIFO
// push-back wrapper around a location producer, used by the padding passes
// and the negated-operator combiner to look ahead and splice in a denser
// marker sequence before the Token Assembler shifts the next marker.
package bufstream

import "github.com/coffeelex/coffeelex/internal/compiler/token"

// Producer is the pull-based marker source a Stream wraps: lexstream.Stream
// satisfies it.
type Producer interface {
	Next() token.Marker
	Err() error
}

// Stream adds shift/peek/hasNext/unshift to a Producer.
type Stream struct {
	upstream Producer
	buf      []token.Marker // buf[0] is the next marker to shift
}

// Err returns the fatal error that stopped the underlying Location Stream,
// if any.
func (s *Stream) Err() error { return s.upstream.Err() }

// New wraps upstream in a Buffered Stream.
func New(upstream Producer) *Stream {
	return &Stream{upstream: upstream}
}

// Shift returns the next buffered marker if one is pending, else pulls one
// from upstream.
func (s *Stream) Shift() token.Marker {
	if len(s.buf) > 0 {
		m := s.buf[0]
		s.buf = s.buf[1:]
		return m
	}
	return s.upstream.Next()
}

// Peek returns the next marker without consuming it.
func (s *Stream) Peek() token.Marker {
	m := s.Shift()
	s.Unshift(m)
	return m
}

// HasNext shifts len(kinds) markers, compares their kinds against kinds in
// order, pushes all of them back regardless of the outcome, and reports
// whether every comparison matched.
func (s *Stream) HasNext(kinds ...token.Kind) bool {
	shifted := make([]token.Marker, len(kinds))
	matched := true
	for i := range kinds {
		shifted[i] = s.Shift()
		if shifted[i].Kind != kinds[i] {
			matched = false
		}
	}
	for i := len(shifted) - 1; i >= 0; i-- {
		s.Unshift(shifted[i])
	}
	return matched
}

// Unshift prepends markers to the front of the buffer, in the given order:
// after Unshift(a, b), Shift returns a then b.
func (s *Stream) Unshift(markers ...token.Marker) {
	s.buf = append(append([]token.Marker{}, markers...), s.buf...)
}
