// Package errors provides sentinel errors and error types for the rules engine.
// It defines the rejection reasons a game can report and structured error
// types that preserve context while allowing inspection with errors.Is() and
// errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrMalformedSquare indicates a square string that is not a file a-h
	// followed by a rank 1-8.
	ErrMalformedSquare = errors.New("malformed square")

	// ErrNoPieceAtOrigin indicates a move from an empty square.
	ErrNoPieceAtOrigin = errors.New("no piece at origin")

	// ErrWrongSideToMove indicates a move of the opponent's piece.
	ErrWrongSideToMove = errors.New("wrong side to move")

	// ErrIllegalDestination indicates a destination outside the legal set.
	ErrIllegalDestination = errors.New("illegal destination")

	// ErrNoPendingPromotion indicates a promotion request for a square
	// with no pawn waiting.
	ErrNoPendingPromotion = errors.New("no pending promotion")

	// ErrInvalidPromotionKind indicates a promotion to something other
	// than queen, rook, bishop or knight.
	ErrInvalidPromotionKind = errors.New("invalid promotion kind")

	// ErrGameNotOver indicates a game-over assertion on a game that has
	// not reached checkmate or stalemate.
	ErrGameNotOver = errors.New("game not over")

	// ErrInvalidFEN indicates a malformed setup string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps a move rejection with the move that caused it.
// It implements the error interface and supports unwrapping via
// errors.Is() and errors.As().
type MoveError struct {
	Err  error  // The underlying error
	From string // Origin square as given by the caller
	To   string // Destination square as given by the caller
	Side string // Side to move when the move was attempted (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	}
	if e.Side != "" {
		parts = append(parts, e.Side+" to move")
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "move rejected"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a setup-string parsing error with field context.
type ParseError struct {
	Err   error  // The underlying error
	Field string // Name of the FEN field (e.g. "placement")
	Got   string // The offending text
}

// Error returns a formatted error message with field context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target matches err, like the standard library.
// It lets callers import only this package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
