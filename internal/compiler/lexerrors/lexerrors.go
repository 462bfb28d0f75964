// Package lexerrors defines the single error shape coffeelex raises to
// callers: ill-formed input (unterminated string/brace/regex, a stray
// close-brace) and API misuse (cross-list handles, out-of-order tokens).
// There are no recoverable errors and no partial output — see spec.md §7.
package lexerrors

import "fmt"

// Position locates a byte offset within source, with the line/column the
// scanner was tracking when it noticed the failure.
type Position struct {
	Line   int
	Column int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Phase names the pipeline stage that raised the error: "stream" (location
// stream dispatch), "padding" (a padding pass), "combiner", "assembler", or
// "tokenlist" (handle/index misuse).
type Phase string

const (
	PhaseStream    Phase = "stream"
	PhasePadding   Phase = "padding"
	PhaseCombiner  Phase = "combiner"
	PhaseAssembler Phase = "assembler"
	PhaseTokenList Phase = "tokenlist"
)

// Error is the one error type coffeelex ever returns: fatal, with no
// wrapping recoverable-error hierarchy above it.
type Error struct {
	Pos     Position
	Message string
	Phase   Phase
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Phase, e.Pos, e.Message)
}

// New builds an ill-formed-input error raised at pos during phase.
func New(phase Phase, pos Position, message string) *Error {
	return &Error{Pos: pos, Message: message, Phase: phase}
}

// Newf is New with fmt.Sprintf-style formatting of the message.
func Newf(phase Phase, pos Position, format string, args ...any) *Error {
	return New(phase, pos, fmt.Sprintf(format, args...))
}

// Misuse builds an API-misuse error. These are raised from direct calls
// into the tokenlist package rather than from scanning, so they carry no
// meaningful source position.
func Misuse(message string) *Error {
	return &Error{Message: message, Phase: PhaseTokenList}
}
