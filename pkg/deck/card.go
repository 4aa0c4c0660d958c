package deck

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"casino-blackjack/internal/rng"
)

// ErrInvalidRank is an error when a card is built with a rank outside 2 through ace
var ErrInvalidRank = errors.New("rank must be between 2 and 14 (ace)")

// ErrInvalidSuit is an error when a card is built with an unknown suit
var ErrInvalidSuit = errors.New("suit must be hearts, diamonds, clubs or spades")

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Spades   Suit = "spades"
)

// face cards
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

// Card is an individual playing card
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// NewCard returns a card with the specified rank and suit.
// The rank must be 2 through 14 (ace) and the suit must be one of the four
// suit constants.
func NewCard(rank int, suit Suit) (*Card, error) {
	if rank < 2 || rank > Ace {
		return nil, ErrInvalidRank
	}

	switch suit {
	case Hearts, Clubs, Diamonds, Spades:
	default:
		return nil, ErrInvalidSuit
	}

	return &Card{Rank: rank, Suit: suit}, nil
}

var suits = []Suit{Hearts, Clubs, Diamonds, Spades}

// NewRandomCard returns a card drawn uniformly from the 13 ranks and 4 suits.
// Cards are generated independently, like dealing from an infinite shoe.
func NewRandomCard(g rng.Generator) *Card {
	return &Card{
		Rank: 2 + g.Intn(13),
		Suit: suits[g.Intn(4)],
	}
}

// BlackjackValue returns the nominal value of the card for summing a hand.
// Twos through tens count face value, face cards count 10, and an ace counts
// 11. Revaluing aces from 11 to 1 to avoid busting is the hand's job, not
// the card's.
func (c *Card) BlackjackValue() int {
	switch {
	case c.Rank >= Jack && c.Rank <= King:
		return 10
	case c.Rank == Ace:
		return 11
	}

	return c.Rank
}

// IsAce returns true if the card is an ace
func (c *Card) IsAce() bool {
	return c.Rank == Ace
}

func (c *Card) String() string {
	var rank string
	switch c.Rank {
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	case Ace:
		rank = "A"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return fmt.Sprintf("%s%s", rank, suit)
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// Clone returns a clone of the card
func (c *Card) Clone() *Card {
	cp := *c
	return &cp
}

var cardRx = regexp.MustCompile(`(?i)^([2-9]|1[0-4])([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank >= 2 and <= 14 and suit in [cdhs]
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	rank, err := strconv.Atoi(match[1])
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		// should never be hit due to the regexp
		panic("unknown suit")
	}

	return &Card{
		Rank: rank,
		Suit: suit,
	}
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	return fmt.Sprintf("%d%s", card.Rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
