package blackjack

import (
	"errors"
	"fmt"

	"casino-blackjack/internal/rng"
	"casino-blackjack/pkg/deck"

	"github.com/sirupsen/logrus"
)

// Game is a single-player blackjack session against the house dealer.
// It is the sole owner of the bankroll and the current round; after a bet
// is validated, every remaining step of the round is a total function over
// valid state and cannot fail.
type Game struct {
	options  Options
	rand     rng.Generator
	logger   logrus.FieldLogger
	bankroll int
	round    *Round
}

// NewGame returns a new game
func NewGame(logger logrus.FieldLogger, generator rng.Generator, options Options) (*Game, error) {
	if options.MinimumBet < 1 {
		return nil, errors.New("minimum bet must be at least 1")
	}

	if options.StartingBankroll < options.MinimumBet {
		return nil, errors.New("starting bankroll cannot cover the minimum bet")
	}

	return &Game{
		options:  options,
		rand:     generator,
		logger:   logger,
		bankroll: options.StartingBankroll,
		round:    newRound(),
	}, nil
}

// PlaceBet accepts a bet and starts a new round.
// The bet must be at least the minimum bet and no more than the bankroll;
// otherwise a *BetError is returned and the bankroll is untouched. The bet
// is deducted up front and paid back through Resolve().
func (g *Game) PlaceBet(amount int) error {
	switch g.round.State {
	case RoundStateAwaitingBet:
	case RoundStateSessionOver:
		return ErrSessionOver
	default:
		return fmt.Errorf("cannot place a bet from state: %s", g.round.State)
	}

	if amount < g.options.MinimumBet {
		return NewBetError("bet of %d is below the minimum bet of %d", amount, g.options.MinimumBet)
	}

	if amount > g.bankroll {
		return NewBetError("bet of %d exceeds your bankroll of %d", amount, g.bankroll)
	}

	g.bankroll -= amount
	g.round.reset(amount)

	g.logger.WithFields(logrus.Fields{
		"round":    g.round.ID,
		"bet":      amount,
		"bankroll": g.bankroll,
	}).Info("bet placed")

	return nil
}

// DealInitial deals the opening cards and returns a snapshot for rendering
func (g *Game) DealInitial() (*DealSnapshot, error) {
	if err := g.round.dealInitial(g.rand); err != nil {
		return nil, err
	}

	g.logger.WithFields(logrus.Fields{
		"round":  g.round.ID,
		"dealer": g.round.DealerHand.String(),
		"player": g.round.PlayerHand.String(),
	}).Debug("opening cards dealt")

	return &DealSnapshot{
		DealerHand:     g.round.DealerHand.Clone(),
		PlayerHand:     g.round.PlayerHand.Clone(),
		PlayerTurnOver: g.round.State == RoundStateDealerTurn,
	}, nil
}

// Hit deals the player one more card
func (g *Game) Hit() (*HitResult, error) {
	card, err := g.round.hit(g.rand)
	if err != nil {
		return nil, err
	}

	total := g.round.PlayerHand.OptimalTotal()
	g.logger.WithFields(logrus.Fields{
		"round": g.round.ID,
		"card":  card.String(),
		"total": total,
	}).Debug("player hit")

	return &HitResult{
		PlayerHand: g.round.PlayerHand.Clone(),
		Card:       card,
		Busted:     total > maxTotal,
		TurnOver:   g.round.State != RoundStatePlayerTurn,
	}, nil
}

// Stand ends the player's turn and plays out the dealer's hand
func (g *Game) Stand() (*DealerResult, error) {
	drawn, err := g.round.playDealer(g.rand)
	if err != nil {
		return nil, err
	}

	g.logger.WithFields(logrus.Fields{
		"round":  g.round.ID,
		"dealer": g.round.DealerHand.String(),
		"drew":   len(drawn),
	}).Debug("dealer stood")

	return &DealerResult{
		DealerHand: g.round.DealerHand.Clone(),
		Drawn:      drawn,
	}, nil
}

// Resolve computes the outcome, pays out the bet, and readies the next
// round. When the bankroll can no longer cover the minimum bet, the
// session is over.
func (g *Game) Resolve() (*Result, error) {
	round := g.round
	if round.State != RoundStateResolved {
		return nil, fmt.Errorf("cannot resolve from state: %s", round.State)
	}

	outcome := resolveOutcome(round.PlayerHand, round.DealerHand)
	payout := outcome.Payout(round.Bet)
	g.bankroll += payout

	if g.bankroll < g.options.MinimumBet {
		round.State = RoundStateSessionOver
	} else {
		round.State = RoundStateAwaitingBet
	}

	g.logger.WithFields(logrus.Fields{
		"round":    round.ID,
		"outcome":  outcome,
		"payout":   payout,
		"bankroll": g.bankroll,
	}).Info("round resolved")

	return &Result{
		Outcome:     outcome,
		Payout:      payout,
		Bankroll:    g.bankroll,
		SessionOver: round.State == RoundStateSessionOver,
	}, nil
}

// Quit ends the session between rounds
func (g *Game) Quit() error {
	if g.round.State != RoundStateAwaitingBet {
		return fmt.Errorf("cannot quit from state: %s", g.round.State)
	}

	g.round.State = RoundStateSessionOver
	return nil
}

// Bankroll returns the player's available funds
func (g *Game) Bankroll() int {
	return g.bankroll
}

// Bet returns the bet for the round in progress
func (g *Game) Bet() int {
	return g.round.Bet
}

// State returns the current round state
func (g *Game) State() RoundState {
	return g.round.State
}

// PlayerHand returns a snapshot of the player's hand
func (g *Game) PlayerHand() deck.Hand {
	return g.round.PlayerHand.Clone()
}

// DealerHand returns a snapshot of the dealer's hand
func (g *Game) DealerHand() deck.Hand {
	return g.round.DealerHand.Clone()
}
