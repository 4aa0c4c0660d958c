package console

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"casino-blackjack/pkg/blackjack"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// Session drives a single-player blackjack game at a terminal.
// It owns all rendering and input parsing; the game engine only ever sees
// validated decisions.
type Session struct {
	game   *blackjack.Game
	in     *bufio.Scanner
	out    io.Writer
	logger logrus.FieldLogger
	delay  time.Duration
	color  bool
}

// Options are options for creating a new session
type Options struct {
	// DelayBetweenDraws paces the deal to mimic a real table
	DelayBetweenDraws time.Duration
	DisableColor      bool
}

// New returns a session reading decisions from in and rendering to out
func New(logger logrus.FieldLogger, game *blackjack.Game, in io.Reader, out io.Writer, options Options) *Session {
	return &Session{
		game:   game,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger,
		delay:  options.DelayBetweenDraws,
		color:  !options.DisableColor && isTerminal(out),
	}
}

// isTerminal returns true if the writer is a terminal
func isTerminal(out io.Writer) bool {
	if f, ok := out.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}

	return false
}

// Run plays rounds until the player quits or goes broke.
// Reaching the end of the input is treated as a quit; an in-progress round
// is simply discarded.
func (s *Session) Run() error {
	s.printf("\nWelcome to:\n")
	s.printBanner(openingTitle)

	for {
		start, err := s.promptStartOrQuit()
		if err != nil || !start {
			return s.goodbye(err)
		}

		if err := s.playRound(); err != nil {
			return s.goodbye(err)
		}

		if s.game.State() == blackjack.RoundStateSessionOver {
			s.printf("Oops! It looks like you don't have enough balance to place a bet. The game is over.\n\n")
			return s.goodbye(nil)
		}
	}
}

// goodbye prints the sign-off. An end-of-input error is a normal quit.
func (s *Session) goodbye(err error) error {
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	if s.game.State() == blackjack.RoundStateAwaitingBet {
		if err := s.game.Quit(); err != nil {
			return err
		}
	}

	s.printf("Thank you for playing Casino Blackjack. Goodbye!\n")
	return nil
}

func (s *Session) playRound() error {
	if err := s.promptBet(); err != nil {
		return err
	}

	snapshot, err := s.game.DealInitial()
	if err != nil {
		return err
	}

	// reveal the opening deal one card at a time
	s.renderTable(snapshot.DealerHand, snapshot.PlayerHand[:0])
	s.pause()
	s.renderTable(snapshot.DealerHand, snapshot.PlayerHand[:1])
	s.pause()
	s.renderTable(snapshot.DealerHand, snapshot.PlayerHand)
	s.pause()

	if !snapshot.PlayerTurnOver {
		if err := s.playerTurn(); err != nil {
			return err
		}
	}

	dealer, err := s.game.Stand()
	if err != nil {
		return err
	}

	// replay the dealer's draws with the same pacing as the deal
	shown := dealer.DealerHand.Len() - len(dealer.Drawn)
	for i := range dealer.Drawn {
		s.renderTable(dealer.DealerHand[:shown+i+1], s.game.PlayerHand())
		s.pause()
	}

	result, err := s.game.Resolve()
	if err != nil {
		return err
	}

	s.announce(result)
	return nil
}

func (s *Session) playerTurn() error {
	for {
		hit, err := s.promptHitOrStand()
		if err != nil {
			return err
		}

		if !hit {
			return nil
		}

		result, err := s.game.Hit()
		if err != nil {
			return err
		}

		s.renderTable(s.game.DealerHand(), result.PlayerHand)
		s.pause()

		if result.TurnOver {
			return nil
		}
	}
}

func (s *Session) announce(result *blackjack.Result) {
	switch {
	case result.Outcome == blackjack.OutcomePlayerBlackjack:
		s.printf("BLACKJACK!\n")
		s.printBanner(youWon)
		s.printf("Your payout is one and a half times your bet, plus your initial bet! Your balance is now: %d\n\n", result.Bankroll)
	case result.Outcome.PlayerWon():
		s.printBanner(youWon)
		s.printf("Your bet has been doubled! Your balance is now: %d\n\n", result.Bankroll)
	case result.Outcome.DealerWon():
		s.printBanner(youLost)
		s.printf("You lost your bet. Your balance is now: %d\n\n", result.Bankroll)
	default:
		s.printf("It's a tie. No one won. Your bet has been returned. Your balance is now: %d\n\n", result.Bankroll)
	}
}

// promptBet asks for a bet until the game accepts one
func (s *Session) promptBet() error {
	s.printf("\nYOUR BALANCE: %d\n", s.game.Bankroll())

	for {
		s.printf("Please place your bet (an integer of at least 1):\n")

		input, err := s.readLine()
		if err != nil {
			return err
		}

		bet, convErr := strconv.Atoi(input)
		if convErr != nil {
			betError := blackjack.NewBetError("%q is not a whole number", input)
			s.logger.WithError(betError).Debug("rejected bet input")
			s.printf("Sorry, %s. Please try again.\n", betError.Reason)
			continue
		}

		if err := s.game.PlaceBet(bet); err != nil {
			var betError *blackjack.BetError
			if errors.As(err, &betError) {
				s.printf("Sorry, %s. Please try again.\n", betError.Reason)
				continue
			}

			return err
		}

		return nil
	}
}

// promptStartOrQuit returns true to start a round and false to quit
func (s *Session) promptStartOrQuit() (bool, error) {
	s.printf("Enter 's' to start a new round or 'q' to quit the game:\n")

	for {
		input, err := s.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(input) {
		case "s":
			return true, nil
		case "q":
			return false, nil
		}

		s.printf("Invalid input, please try again. Enter 's' to start or 'q' to quit the game\n")
	}
}

// promptHitOrStand returns true to hit and false to stand
func (s *Session) promptHitOrStand() (bool, error) {
	s.printf("Enter 'h' to hit or 's' to stand:\n")

	for {
		input, err := s.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(input) {
		case "h":
			return true, nil
		case "s":
			return false, nil
		}

		s.printf("Invalid input, please try again. Enter 'h' to hit or 's' to stand:\n")
	}
}

func (s *Session) readLine() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}

		return "", io.EOF
	}

	return strings.TrimSpace(s.in.Text()), nil
}

func (s *Session) pause() {
	time.Sleep(s.delay)
}
