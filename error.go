package args

import (
	"errors"
	"fmt"
)

// ErrorKind is the class of an error returned by Add, Parse or Lookup.
type ErrorKind uint

const (
	// ErrUnknown indicates a generic error.
	ErrUnknown ErrorKind = iota

	// ErrInvalidDefinition indicates a malformed or conflicting definition
	// handed to Add: a bad option or param name, a duplicate name, a
	// disallowed specifier combination, or a second repeatable param.
	ErrInvalidDefinition

	// ErrInvalidArgument indicates a command-line violation at parse time:
	// an unrecognized option, a value supplied to an option that accepts
	// none, a duplicate non-repeatable option, or an extra positional
	// token. Lookup also returns it for names matching no definition.
	ErrInvalidArgument

	// ErrMissingArgument indicates a required option or param that was not
	// supplied, or an option whose value was cut short by the end of input
	// or the "--" terminator.
	ErrMissingArgument
)

func (k ErrorKind) String() string {
	kinds := [...]string{
		"unknown error",       // ErrUnknown
		"invalid definition",  // ErrInvalidDefinition
		"invalid argument",    // ErrInvalidArgument
		"missing argument",    // ErrMissingArgument
	}
	if int(k) >= len(kinds) {
		return "unrecognized error kind"
	}

	return kinds[k]
}

// Error is the error type returned from Add, Parse and Lookup. It carries
// the kind of failure and the offending token, so callers can branch on
// the class of error without parsing messages.
type Error struct {
	// Kind is the class of failure.
	Kind ErrorKind

	// Token is the offending definition field or command-line token.
	Token string

	// Message is a human-readable reason, suitable for end users.
	Message string
}

// Error returns the kind-prefixed message, for example
// "invalid argument: option \"-x\" not defined".
func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Message
}

// IsKind reports whether err carries the given kind. It is safe to call
// with a nil or foreign error.
func IsKind(err error, kind ErrorKind) bool {
	var perr *Error

	return errors.As(err, &perr) && perr.Kind == kind
}

func newErrorf(kind ErrorKind, token, format string, a ...any) *Error {
	return &Error{
		Kind:    kind,
		Token:   token,
		Message: fmt.Sprintf(format, a...),
	}
}
