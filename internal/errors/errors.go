// Package errors defines the matching engine's error taxonomy: a small
// fixed set of kinds a caller (CLI, test, or an embedding tool) can switch
// on, each wrapping a causal chain built with pkg/errors so the original
// failure site survives up to the top-level caller.
package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a MatchError by the stage a matching run actually
// fails at.
type Kind string

const (
	// KindParse covers failures surfaced by the parser collaborator
	// (internal/parseradapter) while building a class group.
	KindParse Kind = "ParseError"
	// KindConfig covers malformed or out-of-range configuration.
	KindConfig Kind = "ConfigError"
	// KindPass covers a worker-pool task failure during a matching pass.
	KindPass Kind = "PassError"
	// KindReport covers failures writing a match report.
	KindReport Kind = "ReportError"
)

// MatchError is the engine's error type: a kind, a message, and the
// wrapped cause (nil for an originating error).
type MatchError struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *MatchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap lets errors.Is/errors.As see through to the cause.
func (e *MatchError) Unwrap() error { return e.Cause }

// New builds an originating MatchError with a stack trace attached via
// pkg/errors.
func New(kind Kind, message string) *MatchError {
	return &MatchError{Kind: kind, Message: message, Cause: errors.New(message)}
}

// Wrap attaches kind and message to an existing cause, preserving (or
// attaching) a pkg/errors stack trace.
func Wrap(kind Kind, cause error, message string) *MatchError {
	if cause == nil {
		return New(kind, message)
	}
	return &MatchError{Kind: kind, Message: message, Cause: errors.Wrap(cause, message)}
}

// Wrapf is Wrap with a formatted message.
func Wrapf(kind Kind, cause error, format string, args ...interface{}) *MatchError {
	return Wrap(kind, cause, fmt.Sprintf(format, args...))
}

// Is reports whether err is a *MatchError of the given kind.
func Is(err error, kind Kind) bool {
	me, ok := err.(*MatchError)
	return ok && me.Kind == kind
}
