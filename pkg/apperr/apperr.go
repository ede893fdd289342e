// Package apperr is the error taxonomy shared by all layers. Components
// raise typed kinds; only the HTTP boundary translates kinds to statuses,
// so no service or repository ever picks a status code itself.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// Unknown is anything not classified below; surfaced as Internal.
	Unknown Kind = iota
	// Unauthenticated covers missing, malformed, or wrong credentials.
	Unauthenticated
	// InvalidInput covers validation failures on otherwise well-formed requests.
	InvalidInput
	// NotFound covers both true absence and ownership mismatch; callers must
	// not be able to tell the two apart.
	NotFound
	// Conflict covers uniqueness violations such as a duplicate email.
	Conflict
	// Internal covers unexpected failures (storage down, bugs).
	Internal
)

// Error carries a kind, a caller-safe message, and optional machine-readable
// details (e.g. field->message maps for validation failures).
type Error struct {
	Kind    Kind
	Message string
	Details any
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New builds a classified error with a caller-safe message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap classifies an underlying error; the message is what callers may see,
// the wrapped error is for logs only.
func Wrap(kind Kind, err error, message string) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// WithDetails attaches machine-readable details and returns e.
func (e *Error) WithDetails(details any) *Error {
	e.Details = details
	return e
}

// KindOf extracts the classification of err, Unknown if it is untyped.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// Is lets errors.Is match two classified errors by kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}
