package blackjack

import (
	"errors"
	"fmt"
)

// ErrSessionOver is returned when an action is attempted after the session ended
var ErrSessionOver = errors.New("session is over")

// BetError is an error on a round's bet.
// The reason is written for the player: below the minimum, over the
// bankroll, or not a whole number at the input boundary.
type BetError struct {
	Reason string
}

func (b *BetError) Error() string {
	return fmt.Sprintf("invalid bet: %s", b.Reason)
}

// NewBetError returns a BetError with a formatted reason
func NewBetError(format string, a ...interface{}) *BetError {
	return &BetError{Reason: fmt.Sprintf(format, a...)}
}
