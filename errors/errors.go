// Package errors defines the document processor's typed error kinds.
//
// Modeled on the teacher's pkgs/errors.DevCmdError (a single exported error
// type carrying a string-keyed Kind plus an optional wrapped cause),
// narrowed from devcmd's open string-constant Type to a closed Kind enum
// since this spec enumerates exactly seven distinguishable failure modes.
package errors

import "fmt"

// Kind distinguishes the seven error conditions the document processor can
// raise. Callers type-switch or compare Kind rather than parsing messages.
type Kind int

const (
	// ParseError covers any syntactic violation not covered by a more
	// specific kind below: a bad key, a stray character, an empty block,
	// a malformed escape, a variable assigned a non-scalar, a misplaced
	// import, or extra whitespace around import.
	ParseError Kind = iota
	// InvalidIndentation covers tabs in indentation, mixed tab/space
	// indentation, an indent that isn't a multiple of 4, or a child block
	// that isn't exactly 4 columns deeper than its parent.
	InvalidIndentation
	// VariableNotDefined is raised when a $name reference resolves to
	// neither a user-defined variable nor an environment variable.
	VariableNotDefined
	// DuplicatedKey is raised when the same key is defined twice in one
	// object, including after merging imported top-level keys.
	DuplicatedKey
	// DuplicatedVariable is raised when the same variable name is defined
	// twice, including across imports.
	DuplicatedVariable
	// DuplicatedImport is raised when the same canonicalized path is
	// imported twice in one invocation.
	DuplicatedImport
	// FileNotFound is raised when a referenced import path cannot be
	// opened.
	FileNotFound
)

func (k Kind) String() string {
	switch k {
	case ParseError:
		return "ParseError"
	case InvalidIndentation:
		return "InvalidIndentation"
	case VariableNotDefined:
		return "VariableNotDefined"
	case DuplicatedKey:
		return "DuplicatedKey"
	case DuplicatedVariable:
		return "DuplicatedVariable"
	case DuplicatedImport:
		return "DuplicatedImport"
	case FileNotFound:
		return "FileNotFound"
	default:
		return "UnknownError"
	}
}

// Error is the single exported error type the document processor raises.
// It always carries the 1-based line at which the problem was detected.
type Error struct {
	Kind    Kind
	Line    int
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s at line %d: %s (caused by: %v)", e.Kind, e.Line, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s at line %d: %s", e.Kind, e.Line, e.Message)
}

// Unwrap allows errors.Is/errors.As to reach the wrapped cause, if any.
func (e *Error) Unwrap() error { return e.Cause }

// New creates an Error with no wrapped cause.
func New(kind Kind, line int, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Line: line, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error that wraps cause, preserving it for Unwrap.
func Wrap(kind Kind, line int, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Line: line, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether err is a *Error of the given kind.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
