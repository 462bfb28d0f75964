// Package coffeelex is a source-preserving lexer for CoffeeScript: it
// classifies every byte of a source file into exactly one labeled span,
// never discarding or rewriting input, so that callers can reconstruct the
// original text byte-for-byte from the resulting token list.
//
// Lex drives the full pipeline — Location Stream, Buffered Stream, padding
// passes, negated-operator combiner, Token Assembler — to completion and
// returns a queryable TokenList. Stream exposes the raw pull-based marker
// producer for callers that want to drive the scanner incrementally.
package coffeelex
