package blackjack

// Options are options for creating a new blackjack game
type Options struct {
	StartingBankroll int // Default: 100
	MinimumBet       int // Default: 1
}

// DefaultOptions returns the default options for a blackjack game
func DefaultOptions() Options {
	return Options{
		StartingBankroll: 100,
		MinimumBet:       1,
	}
}
