package game

import (
	"fmt"
	"math/rand"
)

// DeckSize is the number of cards in a standard deck.
const DeckSize = 32

// Cut position bounds: at least 6 cards must remain on either side.
const (
	MinCutPosition = 6
	MaxCutPosition = 26
)

// Deck is an ordered stack of cards; index 0 is the top.
type Deck []Card

// NewDeck returns the standard 32-card deck in canonical order: suits
// Clubs through Spades, ranks Seven through Ace within each suit.
func NewDeck() Deck {
	deck := make(Deck, 0, DeckSize)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			deck = append(deck, Card{Rank: rank, Suit: suit})
		}
	}
	return deck
}

// NewShuffledDeck returns a uniformly random permutation of the standard
// deck using a Fisher-Yates shuffle driven by rng. The randomness source is
// injected so deals can be reproduced in tests.
func NewShuffledDeck(rng *rand.Rand) Deck {
	deck := NewDeck()
	for i := len(deck) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}
	return deck
}

// Cut splits the deck at position cards from the chosen end and swaps the
// two halves, the traditional cut. Position must be within 6..26.
func (d Deck) Cut(position int, fromTop bool) (Deck, error) {
	if position < MinCutPosition || position > MaxCutPosition {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCutPosition, position)
	}
	if len(d) != DeckSize {
		panic(fmt.Sprintf("game: cut on %d-card deck", len(d)))
	}

	split := position
	if !fromTop {
		split = len(d) - position
	}

	out := make(Deck, 0, len(d))
	out = append(out, d[split:]...)
	return append(out, d[:split]...), nil
}

// deal removes count cards from the top of the deck, returning them and the
// remaining deck.
func (d Deck) deal(count int) ([]Card, Deck) {
	if count > len(d) {
		panic(fmt.Sprintf("game: cannot deal %d cards from %d", count, len(d)))
	}
	return d[:count], d[count:]
}
