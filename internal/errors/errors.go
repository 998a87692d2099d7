// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrMalformedInput = errors.New("malformed option chain input")
	ErrConfigInvalid  = errors.New("invalid configuration")
)

// ChainError reports where an option chain snapshot failed to decode.
// It unwraps to ErrMalformedInput so callers can test the kind with
// errors.Is; decoding either succeeds for the whole snapshot or fails
// with one of these.
type ChainError struct {
	Entry  int // index in the snapshot, -1 when the envelope itself is bad
	Field  string
	Reason string
	Err    error
}

func (e *ChainError) Error() string {
	if e.Entry < 0 {
		if e.Err != nil {
			return fmt.Sprintf("option chain: %s: %v", e.Reason, e.Err)
		}
		return fmt.Sprintf("option chain: %s", e.Reason)
	}
	return fmt.Sprintf("option chain entry %d: %s: %s", e.Entry, e.Field, e.Reason)
}

func (e *ChainError) Unwrap() error {
	return ErrMalformedInput
}

// NewChainError creates a new ChainError for a field of one entry.
func NewChainError(entry int, field, reason string) *ChainError {
	return &ChainError{Entry: entry, Field: field, Reason: reason}
}

// NewChainEnvelopeError creates a new ChainError for a snapshot that could
// not be decoded at all.
func NewChainEnvelopeError(reason string, err error) *ChainError {
	return &ChainError{Entry: -1, Reason: reason, Err: err}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
