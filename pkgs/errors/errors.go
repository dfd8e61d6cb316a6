// Package errors defines the closed error taxonomy returned by
// pkgs/parser. Every failure the parser can produce is one of the Code
// values below, wrapped in an *Error carrying the byte offset it was
// detected at and a caret-pointer snippet of the offending input.
package errors

import (
	"fmt"
	"strings"
)

// Code is the closed enumeration of parse failures. New members are
// never added silently — every parser error path returns one of these.
type Code int

const (
	_ Code = iota

	// Structural
	ErrMissingHeaderStart
	ErrHeaderMustBeFirst
	ErrUnexpectedCharacter
	ErrNameWorkSeparator
	ErrMissingVariableReps
	ErrExtraVariableReps
	ErrDuplicateAsymmetric
	ErrInvalidGroupKeyword
	ErrEmptyGroup

	// Semantic
	ErrModifierOnNoneWork
	ErrNoneWorkToFailure
	ErrTimeMacro
	ErrFailureMacro
	ErrFractionalSets
	ErrFractionalNoneModifier
	ErrDuplicateRadix

	// Numeric
	ErrIntegralOverflow
	ErrFixedPointOverflow
	ErrTooManyFractionalDigits
	ErrMissingDigitAfterRadix

	// String
	ErrEmptyString
	ErrStringTooLong

	// Resource
	ErrAllocation

	// Fallback
	ErrUnexpected
)

var codeNames = map[Code]string{
	ErrMissingHeaderStart:      "missing-header-start",
	ErrHeaderMustBeFirst:       "header-must-be-first",
	ErrUnexpectedCharacter:     "unexpected-character",
	ErrNameWorkSeparator:       "name-work-separator",
	ErrMissingVariableReps:     "missing-variable-reps",
	ErrExtraVariableReps:       "extra-variable-reps",
	ErrDuplicateAsymmetric:     "duplicate-asymmetric",
	ErrInvalidGroupKeyword:     "invalid-group-keyword",
	ErrEmptyGroup:              "empty-group",
	ErrModifierOnNoneWork:      "modifier-on-none-work",
	ErrNoneWorkToFailure:       "none-work-to-failure",
	ErrTimeMacro:               "time-macro",
	ErrFailureMacro:            "failure-macro",
	ErrFractionalSets:          "fractional-sets",
	ErrFractionalNoneModifier:  "fractional-none-modifier",
	ErrDuplicateRadix:          "duplicate-radix",
	ErrIntegralOverflow:        "integral-overflow",
	ErrFixedPointOverflow:      "fixed-point-overflow",
	ErrTooManyFractionalDigits: "too-many-fractional-digits",
	ErrMissingDigitAfterRadix:  "missing-digit-after-radix",
	ErrEmptyString:             "empty-string",
	ErrStringTooLong:           "string-too-long",
	ErrAllocation:              "allocation-error",
	ErrUnexpected:              "unexpected-error",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// Error is the single error type returned across pkgs/parser's API
// boundary. It satisfies the standard error interface.
type Error struct {
	Code    Code
	Message string
	Offset  int    // byte offset into Input where the error was detected
	Input   string // the full input, retained only to render the snippet
}

// Error renders "<code>: <message>" followed by a caret-pointer snippet
// of the input at Offset.
func (e *Error) Error() string {
	snippet := e.snippet()
	if snippet == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s\n%s", e.Code, e.Message, snippet)
}

func (e *Error) snippet() string {
	if e.Input == "" {
		return ""
	}

	offset := e.Offset
	if offset < 0 {
		offset = 0
	}
	if offset > len(e.Input) {
		offset = len(e.Input)
	}

	lineStart := strings.LastIndexByte(e.Input[:offset], '\n') + 1
	lineEnd := strings.IndexByte(e.Input[offset:], '\n')
	if lineEnd == -1 {
		lineEnd = len(e.Input)
	} else {
		lineEnd += offset
	}
	line := e.Input[lineStart:lineEnd]
	col := offset - lineStart

	var b strings.Builder
	fmt.Fprintf(&b, "  --> byte %d\n", offset)
	b.WriteString("   |\n")
	fmt.Fprintf(&b, "   | %s\n", line)
	b.WriteString("   | ")
	if col >= 0 && col <= len(line) {
		b.WriteString(strings.Repeat(" ", col) + "^")
	}
	return b.String()
}

// New creates an *Error at the given byte offset.
func New(code Code, offset int, input, message string) *Error {
	return &Error{Code: code, Message: message, Offset: offset, Input: input}
}

// CodeOf extracts the Code from err, if err is an *Error. Wrapped errors
// are not unwrapped.
func CodeOf(err error) (Code, bool) {
	if e, ok := err.(*Error); ok {
		return e.Code, true
	}
	return 0, false
}

// Is reports whether err is an *Error with the given Code.
func Is(err error, code Code) bool {
	got, ok := CodeOf(err)
	return ok && got == code
}
