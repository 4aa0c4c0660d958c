package console

import (
	"fmt"
	"strconv"
	"strings"

	"casino-blackjack/pkg/deck"
)

const (
	ansiRed   = "\033[31m"
	ansiReset = "\033[0m"
)

// maxCardsPerRow keeps wide hands from overflowing the console
const maxCardsPerRow = 5

// cardGap separates cards rendered side by side
const cardGap = "    "

// openingTitle is ASCII art made with https://patorjk.com/software/taag/
var openingTitle = []string{
	"  ____          _               ____  _            _     _            _    ",
	" / ___|__ _ ___(_)_ __   ___   | __ )| | __ _  ___| | __(_) __ _  ___| | __",
	"| |   / _` / __| | '_ \\ / _ \\  |  _ \\| |/ _` |/ __| |/ /| |/ _` |/ __| |/ /",
	"| |__| (_| \\__ \\ | | | | (_) | | |_) | | (_| | (__|   < | | (_| | (__|   < ",
	" \\____\\__,_|___/_|_| |_|\\___/  |____/|_|\\__,_|\\___|_|\\_\\/ |\\__,_|\\___|_|\\_\\",
	"                                                       |__/                ",
}

var youWon = []string{
	" __   __                                       _ ",
	" \\ \\ / /___   _   _    __      __ ___   _ __  | |",
	"  \\ V // _ \\ | | | |   \\ \\ /\\ / // _ \\ | '_ \\ | |",
	"   | || (_) || |_| |    \\ V  V /| (_) || | | ||_|",
	"   |_| \\___/  \\__,_|     \\_/\\_/  \\___/ |_| |_|(_)",
}

var youLost = []string{
	" __   __                _              _            ",
	" \\ \\ / /___   _   _    | |  ___   ___ | |_          ",
	"  \\ V // _ \\ | | | |   | | / _ \\ / __|| __|         ",
	"   | || (_) || |_| |   | || (_) |\\__ \\| |_  _  _  _ ",
	"   |_| \\___/  \\__,_|   |_| \\___/ |___/ \\__|(_)(_)(_)",
}

func (s *Session) printf(format string, a ...interface{}) {
	fmt.Fprintf(s.out, format, a...)
}

func (s *Session) printBanner(lines []string) {
	for _, line := range lines {
		s.printf("%s\n", line)
	}

	s.printf("\n")
}

// renderTable prints the separator, the balance and bet line, and both
// hands with their current totals
func (s *Session) renderTable(dealer, player deck.Hand) {
	s.printf("===================================================================\n\n")
	s.printf("YOUR BALANCE: %d | YOUR BET: %d\n\n", s.game.Bankroll(), s.game.Bet())

	s.printf("Dealer (%d):\n", dealer.OptimalTotal())
	s.renderHand(dealer)

	s.printf("You (%d):\n", player.OptimalTotal())
	s.renderHand(player)

	s.printf("\n")
}

// renderHand prints the hand as rows of card art side by side
func (s *Session) renderHand(hand deck.Hand) {
	for start := 0; start < len(hand); start += maxCardsPerRow {
		end := start + maxCardsPerRow
		if end > len(hand) {
			end = len(hand)
		}

		s.renderCardRow(hand[start:end])
	}
}

// renderCardRow prints a row of cards like:
//  +----------+    +----------+
//  | A        |    | 10       |
//  | ♠        |    | ♥        |
//  |          |    |          |
//  |        ♠ |    |        ♥ |
//  |        A |    |       10 |
//  +----------+    +----------+
func (s *Session) renderCardRow(cards []*deck.Card) {
	lines := make([]string, 7)
	for _, card := range cards {
		rank := rankLabel(card)
		icon := suitIcon(card)

		lines[0] += "+----------+" + cardGap
		lines[1] += fmt.Sprintf("| %s       |%s", s.paint(card, fmt.Sprintf("%-2s", rank)), cardGap)
		lines[2] += fmt.Sprintf("| %s        |%s", s.paint(card, icon), cardGap)
		lines[3] += "|          |" + cardGap
		lines[4] += fmt.Sprintf("|        %s |%s", s.paint(card, icon), cardGap)
		lines[5] += fmt.Sprintf("|       %s |%s", s.paint(card, fmt.Sprintf("%2s", rank)), cardGap)
		lines[6] += "+----------+" + cardGap
	}

	for _, line := range lines {
		s.printf("%s\n", strings.TrimRight(line, " "))
	}
}

// paint wraps the text in red when the card is a heart or diamond and
// color is enabled
func (s *Session) paint(card *deck.Card, text string) string {
	if s.color && (card.Suit == deck.Hearts || card.Suit == deck.Diamonds) {
		return ansiRed + text + ansiReset
	}

	return text
}

func rankLabel(card *deck.Card) string {
	switch card.Rank {
	case deck.Jack:
		return "J"
	case deck.Queen:
		return "Q"
	case deck.King:
		return "K"
	case deck.Ace:
		return "A"
	}

	return strconv.Itoa(card.Rank)
}

func suitIcon(card *deck.Card) string {
	switch card.Suit {
	case deck.Hearts:
		return "♥"
	case deck.Diamonds:
		return "♦"
	case deck.Clubs:
		return "♣"
	}

	return "♠"
}
