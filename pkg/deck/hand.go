package deck

import (
	"errors"

	"casino-blackjack/internal/rng"
)

// ErrEmptyHand is an error when a card is removed from an empty hand
var ErrEmptyHand = errors.New("hand is empty")

// ErrIndexOutOfRange is an error when a card is requested at an index the hand does not have
var ErrIndexOutOfRange = errors.New("index out of range")

// blackjack is the total every hand is chasing
const blackjack = 21

// Hand represents a collection of cards in deal order
type Hand []*Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// AddRandomCards deals count random cards to the hand.
// A count of zero is a no-op.
func (h *Hand) AddRandomCards(g rng.Generator, count int) {
	for i := 0; i < count; i++ {
		h.AddCard(NewRandomCard(g))
	}
}

// RemoveLast removes and returns the most recently dealt card.
// If the hand is empty, an ErrEmptyHand is returned along with a nil card.
func (h *Hand) RemoveLast() (*Card, error) {
	n := len(*h)
	if n == 0 {
		return nil, ErrEmptyHand
	}

	card := (*h)[n-1]
	*h = (*h)[:n-1]

	return card, nil
}

// Clear empties the hand
func (h *Hand) Clear() {
	*h = (*h)[:0]
}

// Len returns the number of cards in the hand
func (h Hand) Len() int {
	return len(h)
}

// CardAt returns the card at the given zero-based index
// If the index is outside [0, Len()), an ErrIndexOutOfRange is returned.
func (h Hand) CardAt(index int) (*Card, error) {
	if index < 0 || index >= len(h) {
		return nil, ErrIndexOutOfRange
	}

	return h[index], nil
}

// FirstCard returns the first card in the hand or nil if the cards are empty
func (h Hand) FirstCard() *Card {
	if len(h) == 0 {
		return nil
	}

	return h[0]
}

// LastCard returns the last card in the hand or nil if the cards are empty
func (h Hand) LastCard() *Card {
	n := len(h)
	if n == 0 {
		return nil
	}

	return h[n-1]
}

// OptimalTotal returns the best blackjack total for the hand.
// Every card is summed at its nominal value with aces counting 11. While the
// total is over 21 and the hand still has an ace counted as 11, one ace is
// revalued from 11 to 1. The result is the lowest total that does not bust,
// or the unavoidable bust total if no revaluation saves the hand. The total
// depends only on how many aces get revalued, never on which ones.
func (h Hand) OptimalTotal() int {
	total := 0
	aces := 0

	for _, card := range h {
		total += card.BlackjackValue()
		if card.IsAce() {
			aces++
		}
	}

	for total > blackjack && aces > 0 {
		total -= 10
		aces--
	}

	return total
}

// IsBlackjack returns true if the hand is a two-card 21
func (h Hand) IsBlackjack() bool {
	return len(h) == 2 && h.OptimalTotal() == blackjack
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
