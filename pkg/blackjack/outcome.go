package blackjack

import (
	"casino-blackjack/pkg/deck"
)

// Outcome is the single result of a resolved round
type Outcome string

// Outcome constants
const (
	// OutcomePlayerBust means the player went over 21 and the dealer wins
	OutcomePlayerBust Outcome = "player-bust"

	// OutcomeDealerBust means the dealer went over 21 and the player wins
	OutcomeDealerBust Outcome = "dealer-bust"

	// OutcomePlayerHigher means the player won with the higher total
	OutcomePlayerHigher Outcome = "player-higher"

	// OutcomeDealerHigher means the dealer won with the higher total
	OutcomeDealerHigher Outcome = "dealer-higher"

	// OutcomePlayerBlackjack means the player won with a two-card 21
	OutcomePlayerBlackjack Outcome = "player-blackjack"

	// OutcomeDealerBlackjack means the dealer won with a two-card 21
	OutcomeDealerBlackjack Outcome = "dealer-blackjack"

	// OutcomePush means the totals tied and the stake is returned
	OutcomePush Outcome = "push"
)

// resolveOutcome determines who won the round.
// A player bust loses to anything. A natural beats everything but an opposing
// natural, which pushes; the player's natural still pays 3:2 when the dealer
// busts. After the busts, the higher total wins and equal totals push.
func resolveOutcome(playerHand, dealerHand deck.Hand) Outcome {
	playerSum := playerHand.OptimalTotal()
	dealerSum := dealerHand.OptimalTotal()

	switch {
	case playerSum > maxTotal:
		return OutcomePlayerBust
	case playerHand.IsBlackjack() && !dealerHand.IsBlackjack():
		return OutcomePlayerBlackjack
	case dealerHand.IsBlackjack() && !playerHand.IsBlackjack():
		return OutcomeDealerBlackjack
	case dealerSum > maxTotal:
		return OutcomeDealerBust
	case playerSum > dealerSum:
		return OutcomePlayerHigher
	case dealerSum > playerSum:
		return OutcomeDealerHigher
	}

	return OutcomePush
}

// Payout returns the amount credited back to the bankroll.
// A blackjack pays 3:2 (the stake plus one and a half times the bet; an odd
// stake rounds the half down), a plain win or dealer bust pays even money,
// a push returns the stake, and a loss pays nothing.
func (o Outcome) Payout(bet int) int {
	switch o {
	case OutcomePlayerBlackjack:
		return bet * 5 / 2
	case OutcomePlayerHigher, OutcomeDealerBust:
		return bet * 2
	case OutcomePush:
		return bet
	}

	return 0
}

// PlayerWon returns true if the outcome pays the player
func (o Outcome) PlayerWon() bool {
	switch o {
	case OutcomePlayerBlackjack, OutcomePlayerHigher, OutcomeDealerBust:
		return true
	}

	return false
}

// DealerWon returns true if the outcome takes the player's stake
func (o Outcome) DealerWon() bool {
	switch o {
	case OutcomeDealerBlackjack, OutcomeDealerHigher, OutcomePlayerBust:
		return true
	}

	return false
}
