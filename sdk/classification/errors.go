package classification

import "errors"

var (
	// ErrInvalidBoard is returned when a flop is not exactly three distinct cards.
	ErrInvalidBoard = errors.New("invalid board")
	// ErrInvalidHand is returned for a hole/board combination that cannot be dealt.
	ErrInvalidHand = errors.New("invalid hand")
)
