// Package errors provides error handling for classbuilder.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints and details
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := def.Validate(); err != nil {
//	    return errors.Wrap(err, "invalid class definition")
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "call Getter() before Setter()")
//
//	// Check errors
//	if errors.Is(err, errors.ErrInvalidPropertyState) {
//	    // handle illegal property option order
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is             = crdb.Is
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Sentinel errors. Wrap them with errors.Wrap() to add context while keeping
// errors.Is() working.
var (
	// ErrInvalidPropertyState indicates property options were combined in an
	// illegal order (ReadOnly after Getter, Setter before Getter)
	ErrInvalidPropertyState = New("invalid property state")

	// ErrInvalidDefinition indicates a declarative class definition is malformed
	ErrInvalidDefinition = New("invalid class definition")
)

// IsInvalidPropertyStateError checks if an error is or wraps ErrInvalidPropertyState
func IsInvalidPropertyStateError(err error) bool {
	return err != nil && Is(err, ErrInvalidPropertyState)
}

// IsInvalidDefinitionError checks if an error is or wraps ErrInvalidDefinition
func IsInvalidDefinitionError(err error) bool {
	return err != nil && Is(err, ErrInvalidDefinition)
}

// NewInvalidPropertyStateError creates an invalid-property-state error with a formatted message
func NewInvalidPropertyStateError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidPropertyState, Newf(format, args...).Error())
}

// NewInvalidDefinitionError creates an invalid-definition error with a formatted message
func NewInvalidDefinitionError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidDefinition, Newf(format, args...).Error())
}
