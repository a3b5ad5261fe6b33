package errutil

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

var (
	ErrInvalidTileValue  = errors.New("invalid tile value")
	ErrDeckComposition   = errors.New("illegal deck composition")
	ErrWallExhausted     = errors.New("wall exhausted")
	ErrIllegalParameter  = errors.New("illegal parameter")
	ErrUnsupportedFormat = errors.New("unsupported output format")
)

// RankError reports a numbered-suit tile constructed with a rank outside [1,9].
type RankError struct {
	Suit string
	Rank int
}

func (e *RankError) Error() string {
	return fmt.Sprintf("%v: %s rank must be between 1 and 9, got %d", ErrInvalidTileValue, e.Suit, e.Rank)
}

func (e *RankError) Cause() error  { return ErrInvalidTileValue }
func (e *RankError) Unwrap() error { return ErrInvalidTileValue }

// Code code for the error
func Code(err error) int {
	if err == nil {
		return 0
	}
	if c, ok := errs[pkgerrors.Cause(err)]; ok {
		return c
	}
	return Unknown
}
