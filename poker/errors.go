package poker

import (
	"errors"
	"fmt"
)

// Parse failures. Callers match them with errors.Is.
var (
	ErrNoRankFound   = errors.New("no rank found")
	ErrInvalidRank   = errors.New("invalid rank")
	ErrNoSuitFound   = errors.New("no suit found")
	ErrInvalidSuit   = errors.New("invalid suit")
	ErrTrailingInput = errors.New("trailing characters after card")
	ErrWrongLength   = errors.New("wrong length")
)

// ParseError records which token of a hand failed to parse.
type ParseError struct {
	Position int // 1-based token position within the hand
	Token    string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("card %d %q: %v", e.Position, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
