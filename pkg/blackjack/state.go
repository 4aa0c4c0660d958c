package blackjack

import (
	"casino-blackjack/pkg/deck"
)

// DealSnapshot is the table state after the opening deal.
// The hands are clones; the renderer can hold them without touching the
// round's state.
type DealSnapshot struct {
	DealerHand deck.Hand `json:"dealerHand"`
	PlayerHand deck.Hand `json:"playerHand"`
	// PlayerTurnOver is true when the player was dealt 21 and never acts
	PlayerTurnOver bool `json:"playerTurnOver"`
}

// HitResult is the player's hand after taking a card
type HitResult struct {
	PlayerHand deck.Hand  `json:"playerHand"`
	Card       *deck.Card `json:"card"`
	Busted     bool       `json:"busted"`
	TurnOver   bool       `json:"turnOver"`
}

// DealerResult is the dealer's hand after drawing to 17.
// Drawn lists the cards in draw order so the renderer can replay them one
// at a time.
type DealerResult struct {
	DealerHand deck.Hand    `json:"dealerHand"`
	Drawn      []*deck.Card `json:"drawn"`
}

// Result is the resolution of a round
type Result struct {
	Outcome     Outcome `json:"outcome"`
	Payout      int     `json:"payout"`
	Bankroll    int     `json:"bankroll"`
	SessionOver bool    `json:"sessionOver"`
}
