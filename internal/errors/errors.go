// Package errors provides sentinel errors and error types for the rules
// engine. It defines one sentinel per failure cause and a structured FEN
// error that preserves context while allowing inspection with errors.Is()
// and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for FEN decoding, one per failure cause.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrNotEnoughFields indicates a record that does not split into
	// the six mandatory fields.
	ErrNotEnoughFields = errors.New("not enough fields in FEN record")

	// ErrInvalidField indicates a malformed field not covered by a more
	// specific sentinel, such as a non-numeric move counter.
	ErrInvalidField = errors.New("invalid FEN field")

	// ErrInvalidPiece indicates a placement character that is neither a
	// piece letter nor an empty-square count.
	ErrInvalidPiece = errors.New("invalid piece character")

	// ErrInvalidTurn indicates a turn field that is neither "w" nor "b".
	ErrInvalidTurn = errors.New("invalid turn field")

	// ErrInvalidCastle indicates a castling character outside K, Q, k, q.
	ErrInvalidCastle = errors.New("invalid castling field")

	// ErrInvalidEnPassant indicates an en-passant field that is neither
	// "-" nor a valid square name.
	ErrInvalidEnPassant = errors.New("invalid en passant field")

	// ErrInvalidRankCount indicates a placement field that does not
	// describe exactly eight ranks.
	ErrInvalidRankCount = errors.New("invalid rank count")

	// ErrInvalidFileCount indicates a rank describing more than eight files.
	ErrInvalidFileCount = errors.New("invalid file count")
)

// ErrIllegalMove indicates a requested move that is not in the legal
// move set of the position.
var ErrIllegalMove = errors.New("illegal move")

// FENError wraps a FEN decoding error with the offending input. It
// supports unwrapping via errors.Is() and errors.As().
type FENError struct {
	Err    error  // The underlying sentinel
	Detail string // Human-readable description of the offending input
}

// Error returns a formatted message including the detail context.
func (e *FENError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%v: %s", e.Err, e.Detail)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying sentinel for errors.Is/As.
func (e *FENError) Unwrap() error {
	return e.Err
}

// NewFENError builds a FENError with a formatted detail string.
func NewFENError(sentinel error, format string, args ...interface{}) error {
	return &FENError{Err: sentinel, Detail: fmt.Sprintf(format, args...)}
}

// Wrap adds context to an error while preserving the original for
// errors.Is() checks.
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the
// original for errors.Is() checks.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
