package pocketcube

import (
	"errors"
	"fmt"
)

// Sentinel errors for the pocketcube package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("pocketcube: invalid move notation")
	ErrInvalidColor    = errors.New("pocketcube: invalid color")

	// Construction errors
	ErrRepeatedColor  = errors.New("pocketcube: top and front colors are equal")
	ErrOppositeColors = errors.New("pocketcube: top and front colors are opposite")

	// Search errors
	ErrSearchExhausted    = errors.New("pocketcube: search exhausted without meeting")
	ErrDepthLimit         = errors.New("pocketcube: search depth limit reached")
	ErrVerificationFailed = errors.New("pocketcube: solution failed verification")
	ErrNoReorientation    = errors.New("pocketcube: meeting states are not symmetry equivalent")
)

// NotationError reports where a move sequence failed to parse.
type NotationError struct {
	Input  string
	Offset int
	Err    error
}

func (e *NotationError) Error() string {
	return fmt.Sprintf("%v at offset %d in %q", e.Err, e.Offset, e.Input)
}

func (e *NotationError) Unwrap() error {
	return e.Err
}

// VerificationError reports a solution that does not solve its scramble.
type VerificationError struct {
	Scrambled Cube
	Moves     []Move
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("%v: %q leaves\n%s", ErrVerificationFailed, FormatMoves(e.Moves), e.resultString())
}

func (e *VerificationError) resultString() string {
	c := e.Scrambled
	c.Apply(e.Moves...)
	return c.String()
}

func (e *VerificationError) Unwrap() error {
	return ErrVerificationFailed
}
