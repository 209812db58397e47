// Package configerr defines the error reported when a hub configuration
// violates one of its constraints.
//
// Every package that validates configuration (collections, admin registry,
// artifact generation, composition) returns *Error so callers can detect the
// whole class with a single errors.Is check:
//
//	if errors.Is(err, configerr.ErrConfiguration) {
//	    log.Error("invalid configuration", slog.Any("error", err))
//	    os.Exit(1)
//	}
package configerr

import (
	"errors"
	"fmt"
)

// ErrConfiguration matches every *Error via errors.Is.
var ErrConfiguration = errors.New("config: invalid configuration")

// Error describes a violated configuration constraint.
type Error struct {
	// Constraint names the violated rule, e.g. "duplicate collection slug".
	Constraint string
	// Value is the offending value, if any.
	Value string
	// Err is an optional underlying cause.
	Err error
}

// New creates an *Error for the given constraint and offending value.
func New(constraint, value string) *Error {
	return &Error{Constraint: constraint, Value: value}
}

// Wrap creates an *Error carrying an underlying cause.
func Wrap(constraint, value string, err error) *Error {
	return &Error{Constraint: constraint, Value: value, Err: err}
}

func (e *Error) Error() string {
	msg := "config: " + e.Constraint
	if e.Value != "" {
		msg += fmt.Sprintf(" %q", e.Value)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrConfiguration.
func (e *Error) Is(target error) bool {
	return target == ErrConfiguration
}

// As extracts an *Error from err.
func As(err error) (*Error, bool) {
	var ce *Error
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
