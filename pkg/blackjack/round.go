package blackjack

import (
	"fmt"

	"casino-blackjack/internal/rng"
	"casino-blackjack/pkg/deck"

	"github.com/google/uuid"
)

// maxTotal is the highest total a hand can have without busting
const maxTotal = 21

// dealerStandsAt is the total at which the dealer stops drawing
const dealerStandsAt = 17

// RoundState is the phase of the current round
type RoundState string

// RoundState constants
const (
	// RoundStateAwaitingBet means no round is in progress and a bet can be placed
	RoundStateAwaitingBet RoundState = "awaiting-bet"

	// RoundStateDealing means a bet was accepted and the opening cards can be dealt
	RoundStateDealing RoundState = "dealing"

	// RoundStatePlayerTurn means the player can hit or stand
	RoundStatePlayerTurn RoundState = "player-turn"

	// RoundStateDealerTurn means the player's turn is over and the dealer draws to 17
	RoundStateDealerTurn RoundState = "dealer-turn"

	// RoundStateResolved means both turns are over and the outcome can be computed
	RoundStateResolved RoundState = "resolved"

	// RoundStateSessionOver means the session ended and no further bets can be placed
	RoundStateSessionOver RoundState = "session-over"
)

// Round is a single bet's worth of blackjack.
// The hands persist across rounds and are emptied when the next bet is
// accepted.
type Round struct {
	ID         string
	PlayerHand deck.Hand
	DealerHand deck.Hand
	Bet        int
	State      RoundState
}

func newRound() *Round {
	return &Round{
		PlayerHand: deck.Hand{},
		DealerHand: deck.Hand{},
		State:      RoundStateAwaitingBet,
	}
}

// reset starts a new round for the accepted bet
func (r *Round) reset(bet int) {
	r.ID = uuid.New().String()
	r.Bet = bet
	r.PlayerHand.Clear()
	r.DealerHand.Clear()
	r.State = RoundStateDealing
}

// dealInitial deals the opening cards: one to the dealer, then two to the
// player. A player dealt 21 off the deal never gets to act, so the round
// skips straight to the dealer's turn.
func (r *Round) dealInitial(g rng.Generator) error {
	if r.State != RoundStateDealing {
		return fmt.Errorf("cannot deal from state: %s", r.State)
	}

	r.DealerHand.AddRandomCards(g, 1)
	r.PlayerHand.AddRandomCards(g, 2)

	if r.PlayerHand.OptimalTotal() == maxTotal {
		r.State = RoundStateDealerTurn
	} else {
		r.State = RoundStatePlayerTurn
	}

	return nil
}

// hit deals the player one more card.
// A total of 21 or more ends the player's turn; both a bust and an exact 21
// hand the round to the dealer.
func (r *Round) hit(g rng.Generator) (*deck.Card, error) {
	if r.State != RoundStatePlayerTurn {
		return nil, fmt.Errorf("cannot hit from state: %s", r.State)
	}

	r.PlayerHand.AddRandomCards(g, 1)
	if r.PlayerHand.OptimalTotal() >= maxTotal {
		r.State = RoundStateDealerTurn
	}

	return r.PlayerHand.LastCard(), nil
}

// playDealer draws for the dealer until the total reaches 17.
// Every draw strictly increases the total, so the loop always terminates;
// soft-ace revaluation keeps a hand full of aces at 21 or below until a
// hard draw pushes it to 17 or past.
func (r *Round) playDealer(g rng.Generator) ([]*deck.Card, error) {
	switch r.State {
	case RoundStatePlayerTurn, RoundStateDealerTurn:
	default:
		return nil, fmt.Errorf("cannot play the dealer from state: %s", r.State)
	}

	drawn := make([]*deck.Card, 0)
	for r.DealerHand.OptimalTotal() < dealerStandsAt {
		r.DealerHand.AddRandomCards(g, 1)
		drawn = append(drawn, r.DealerHand.LastCard())
	}

	r.State = RoundStateResolved
	return drawn, nil
}
