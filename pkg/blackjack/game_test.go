package blackjack

import (
	"fmt"
	"io"
	"testing"

	"casino-blackjack/internal/rng"
	"casino-blackjack/pkg/deck"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRNG plays back a fixed sequence of values
type scriptedRNG struct {
	values []int
	index  int
}

func (s *scriptedRNG) Intn(n int) int {
	if s.index >= len(s.values) {
		panic("scriptedRNG exhausted")
	}

	value := s.values[s.index]
	s.index++

	if value >= n {
		panic(fmt.Sprintf("scripted value %d is out of range for Intn(%d)", value, n))
	}

	return value
}

// rngForCards scripts a generator to deal the given cards in order.
// Each card costs two draws: the rank offset and the suit index.
func rngForCards(cards string) *scriptedRNG {
	values := make([]int, 0)
	for _, card := range deck.CardsFromString(cards) {
		values = append(values, card.Rank-2)

		switch card.Suit {
		case deck.Hearts:
			values = append(values, 0)
		case deck.Clubs:
			values = append(values, 1)
		case deck.Diamonds:
			values = append(values, 2)
		case deck.Spades:
			values = append(values, 3)
		}
	}

	return &scriptedRNG{values: values}
}

func testLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestGame(t *testing.T, bankroll int, cards string) *Game {
	t.Helper()

	game, err := NewGame(testLogger(), rngForCards(cards), Options{
		StartingBankroll: bankroll,
		MinimumBet:       1,
	})
	require.NoError(t, err)

	return game
}

func TestNewGame(t *testing.T) {
	game, err := NewGame(testLogger(), rng.Crypto{}, DefaultOptions())
	assert.NoError(t, err)
	assert.Equal(t, 100, game.Bankroll())
	assert.Equal(t, RoundStateAwaitingBet, game.State())

	game, err = NewGame(testLogger(), rng.Crypto{}, Options{StartingBankroll: 100, MinimumBet: 0})
	assert.EqualError(t, err, "minimum bet must be at least 1")
	assert.Nil(t, game)

	game, err = NewGame(testLogger(), rng.Crypto{}, Options{StartingBankroll: 4, MinimumBet: 5})
	assert.EqualError(t, err, "starting bankroll cannot cover the minimum bet")
	assert.Nil(t, game)
}

func TestGame_PlaceBet(t *testing.T) {
	game := newTestGame(t, 100, "")

	var betError *BetError
	assert.ErrorAs(t, game.PlaceBet(0), &betError)
	assert.EqualError(t, betError, "invalid bet: bet of 0 is below the minimum bet of 1")
	assert.Equal(t, 100, game.Bankroll())

	assert.ErrorAs(t, game.PlaceBet(-5), &betError)
	assert.Equal(t, 100, game.Bankroll())

	assert.ErrorAs(t, game.PlaceBet(101), &betError)
	assert.EqualError(t, betError, "invalid bet: bet of 101 exceeds your bankroll of 100")
	assert.Equal(t, 100, game.Bankroll())

	assert.NoError(t, game.PlaceBet(25))
	assert.Equal(t, 75, game.Bankroll())
	assert.Equal(t, 25, game.Bet())
	assert.Equal(t, RoundStateDealing, game.State())

	assert.EqualError(t, game.PlaceBet(10), "cannot place a bet from state: dealing")
}

func TestGame_stateErrors(t *testing.T) {
	game := newTestGame(t, 100, "")

	snapshot, err := game.DealInitial()
	assert.EqualError(t, err, "cannot deal from state: awaiting-bet")
	assert.Nil(t, snapshot)

	hit, err := game.Hit()
	assert.EqualError(t, err, "cannot hit from state: awaiting-bet")
	assert.Nil(t, hit)

	stand, err := game.Stand()
	assert.EqualError(t, err, "cannot play the dealer from state: awaiting-bet")
	assert.Nil(t, stand)

	result, err := game.Resolve()
	assert.EqualError(t, err, "cannot resolve from state: awaiting-bet")
	assert.Nil(t, result)
}

func TestGame_playerBlackjack(t *testing.T) {
	// dealer shows a nine, player is dealt blackjack, dealer draws to 18
	game := newTestGame(t, 100, "9h,14s,13c,9d")
	require.NoError(t, game.PlaceBet(10))
	assert.Equal(t, 90, game.Bankroll())

	snapshot, err := game.DealInitial()
	require.NoError(t, err)
	assert.Equal(t, "9h", snapshot.DealerHand.String())
	assert.Equal(t, "14s,13c", snapshot.PlayerHand.String())
	assert.True(t, snapshot.PlayerTurnOver)
	assert.Equal(t, RoundStateDealerTurn, game.State())

	stand, err := game.Stand()
	require.NoError(t, err)
	assert.Equal(t, "9h,9d", stand.DealerHand.String())
	assert.Equal(t, 18, stand.DealerHand.OptimalTotal())

	result, err := game.Resolve()
	require.NoError(t, err)
	assert.Equal(t, OutcomePlayerBlackjack, result.Outcome)
	assert.Equal(t, 25, result.Payout)
	assert.Equal(t, 115, result.Bankroll)
	assert.False(t, result.SessionOver)
	assert.Equal(t, RoundStateAwaitingBet, game.State())
}

func TestGame_playerHigher(t *testing.T) {
	// player stands on 19, dealer draws to 17
	game := newTestGame(t, 100, "10c,10d,9h,7s")
	require.NoError(t, game.PlaceBet(10))

	snapshot, err := game.DealInitial()
	require.NoError(t, err)
	assert.False(t, snapshot.PlayerTurnOver)
	assert.Equal(t, RoundStatePlayerTurn, game.State())

	stand, err := game.Stand()
	require.NoError(t, err)
	assert.Equal(t, 17, stand.DealerHand.OptimalTotal())
	assert.Equal(t, []*deck.Card{deck.CardFromString("7s")}, stand.Drawn)

	result, err := game.Resolve()
	require.NoError(t, err)
	assert.Equal(t, OutcomePlayerHigher, result.Outcome)
	assert.Equal(t, 20, result.Payout)
	assert.Equal(t, 110, result.Bankroll)
}

func TestGame_pushReturnsTheStake(t *testing.T) {
	// twenty against twenty
	game := newTestGame(t, 100, "10c,10d,10h,10s")
	require.NoError(t, game.PlaceBet(42))

	_, err := game.DealInitial()
	require.NoError(t, err)

	_, err = game.Stand()
	require.NoError(t, err)

	result, err := game.Resolve()
	require.NoError(t, err)
	assert.Equal(t, OutcomePush, result.Outcome)
	assert.Equal(t, 42, result.Payout)
	assert.Equal(t, 100, result.Bankroll, "a push must restore the bankroll exactly")
}

func TestGame_playerBust(t *testing.T) {
	// player hits twenty and busts; the dealer still draws out the hand
	game := newTestGame(t, 100, "5c,13d,12h,5s,13c,10d")
	require.NoError(t, game.PlaceBet(10))

	_, err := game.DealInitial()
	require.NoError(t, err)

	hit, err := game.Hit()
	require.NoError(t, err)
	assert.Equal(t, "5s", deck.CardToString(hit.Card))
	assert.True(t, hit.Busted)
	assert.True(t, hit.TurnOver)
	assert.Equal(t, RoundStateDealerTurn, game.State())

	stand, err := game.Stand()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, stand.DealerHand.OptimalTotal(), 17)

	result, err := game.Resolve()
	require.NoError(t, err)
	assert.Equal(t, OutcomePlayerBust, result.Outcome)
	assert.Equal(t, 0, result.Payout)
	assert.Equal(t, 90, result.Bankroll)
}

func TestGame_hitToExactTwentyOne(t *testing.T) {
	// hitting to exactly 21 ends the turn without a bust
	game := newTestGame(t, 100, "10c,10d,5h,6s")
	require.NoError(t, game.PlaceBet(10))

	_, err := game.DealInitial()
	require.NoError(t, err)

	hit, err := game.Hit()
	require.NoError(t, err)
	assert.False(t, hit.Busted)
	assert.True(t, hit.TurnOver)
	assert.Equal(t, 21, hit.PlayerHand.OptimalTotal())

	_, err = game.Hit()
	assert.EqualError(t, err, "cannot hit from state: dealer-turn")
}

func TestGame_hitKeepsTurnBelowTwentyOne(t *testing.T) {
	game := newTestGame(t, 100, "10c,5d,5h,6s")
	require.NoError(t, game.PlaceBet(10))

	_, err := game.DealInitial()
	require.NoError(t, err)

	hit, err := game.Hit()
	require.NoError(t, err)
	assert.False(t, hit.Busted)
	assert.False(t, hit.TurnOver)
	assert.Equal(t, 16, hit.PlayerHand.OptimalTotal())
	assert.Equal(t, RoundStatePlayerTurn, game.State())
}

func TestGame_dealerDrawsThroughSoftAces(t *testing.T) {
	// dealer starts with an ace, draws a second ace (12), then a nine (21)
	game := newTestGame(t, 100, "14c,10d,9h,14d,9s")
	require.NoError(t, game.PlaceBet(10))

	_, err := game.DealInitial()
	require.NoError(t, err)

	stand, err := game.Stand()
	require.NoError(t, err)
	assert.Equal(t, 21, stand.DealerHand.OptimalTotal())
	assert.Equal(t, 3, stand.DealerHand.Len())

	result, err := game.Resolve()
	require.NoError(t, err)
	assert.Equal(t, OutcomeDealerHigher, result.Outcome)
}

func TestGame_sessionOverWhenBroke(t *testing.T) {
	// player goes all-in on nineteen and loses to twenty
	game := newTestGame(t, 10, "10c,10d,9h,10s")
	require.NoError(t, game.PlaceBet(10))

	_, err := game.DealInitial()
	require.NoError(t, err)

	_, err = game.Stand()
	require.NoError(t, err)

	result, err := game.Resolve()
	require.NoError(t, err)
	assert.Equal(t, OutcomeDealerHigher, result.Outcome)
	assert.Equal(t, 0, result.Bankroll)
	assert.True(t, result.SessionOver)
	assert.Equal(t, RoundStateSessionOver, game.State())

	assert.Equal(t, ErrSessionOver, game.PlaceBet(1))
}

func TestGame_quit(t *testing.T) {
	game := newTestGame(t, 100, "")
	assert.NoError(t, game.Quit())
	assert.Equal(t, RoundStateSessionOver, game.State())
	assert.Equal(t, ErrSessionOver, game.PlaceBet(10))

	game = newTestGame(t, 100, "9h,10s,9c")
	require.NoError(t, game.PlaceBet(10))
	assert.EqualError(t, game.Quit(), "cannot quit from state: dealing")
}

func TestGame_dealerAlwaysFinishesAtSeventeenOrMore(t *testing.T) {
	// play full rounds on real randomness and check the invariants hold
	game, err := NewGame(testLogger(), rng.Crypto{}, Options{
		StartingBankroll: 1_000_000,
		MinimumBet:       1,
	})
	require.NoError(t, err)

	for i := 0; i < 100 && game.State() == RoundStateAwaitingBet; i++ {
		require.NoError(t, game.PlaceBet(1))

		_, err := game.DealInitial()
		require.NoError(t, err)

		stand, err := game.Stand()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, stand.DealerHand.OptimalTotal(), 17)

		result, err := game.Resolve()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.Bankroll, 0)
	}
}
