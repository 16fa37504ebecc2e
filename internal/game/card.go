package game

import "fmt"

// Rank represents a card rank in the 32-card deck.
// Numeric values follow the natural order Seven=7 through Ace=14.
type Rank int

const (
	RankSeven Rank = 7
	RankEight Rank = 8
	RankNine  Rank = 9
	RankTen   Rank = 10
	RankJack  Rank = 11
	RankQueen Rank = 12
	RankKing  Rank = 13
	RankAce   Rank = 14
)

// Ranks lists all ranks in ascending natural order.
var Ranks = [8]Rank{RankSeven, RankEight, RankNine, RankTen, RankJack, RankQueen, RankKing, RankAce}

func (r Rank) String() string {
	switch r {
	case RankJack:
		return "J"
	case RankQueen:
		return "Q"
	case RankKing:
		return "K"
	case RankAce:
		return "A"
	default:
		return fmt.Sprintf("%d", int(r))
	}
}

// Suit represents one of the four suits, ordered Clubs < Diamonds < Hearts <
// Spades for the Colour mode hierarchy.
type Suit int

const (
	SuitClubs Suit = iota
	SuitDiamonds
	SuitHearts
	SuitSpades
)

// Suits lists all suits in hierarchy order.
var Suits = [4]Suit{SuitClubs, SuitDiamonds, SuitHearts, SuitSpades}

var suitSymbols = map[Suit]string{
	SuitClubs:    "♣",
	SuitDiamonds: "♦",
	SuitHearts:   "♥",
	SuitSpades:   "♠",
}

func (s Suit) String() string {
	if sym, ok := suitSymbols[s]; ok {
		return sym
	}
	return "?"
}

// Card is an immutable playing card.
type Card struct {
	Rank Rank
	Suit Suit
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Per-mode valuation and strength tables. Trump-bearing suits (every suit
// under AllTrumps, the announced suit under a Colour mode) use the trump
// tables; every other suit uses the plain tables.
//
// Trump order: J > 9 > A > 10 > K > Q > 8 > 7
// Plain order: A > 10 > K > Q > J > 9 > 8 > 7
var (
	trumpPoints = map[Rank]int{
		RankJack: 20, RankNine: 14, RankAce: 11, RankTen: 10,
		RankKing: 4, RankQueen: 3, RankEight: 0, RankSeven: 0,
	}
	plainPoints = map[Rank]int{
		RankAce: 11, RankTen: 10, RankKing: 4, RankQueen: 3,
		RankJack: 2, RankNine: 0, RankEight: 0, RankSeven: 0,
	}
	trumpStrength = map[Rank]int{
		RankJack: 8, RankNine: 7, RankAce: 6, RankTen: 5,
		RankKing: 4, RankQueen: 3, RankEight: 2, RankSeven: 1,
	}
	plainStrength = map[Rank]int{
		RankAce: 8, RankTen: 7, RankKing: 6, RankQueen: 5,
		RankJack: 4, RankNine: 3, RankEight: 2, RankSeven: 1,
	}
)

// isTrumpSuit reports whether this card's suit uses the trump tables under
// the given mode.
func (c Card) isTrumpSuit(mode Mode) bool {
	if mode.Category() == CategoryAllTrumps {
		return true
	}
	if trump, ok := mode.TrumpSuit(); ok {
		return c.Suit == trump
	}
	return false
}

// Points returns the card point value of this card under the given mode.
func (c Card) Points(mode Mode) int {
	if c.isTrumpSuit(mode) {
		return trumpPoints[c.Rank]
	}
	return plainPoints[c.Rank]
}

// Strength returns the comparison strength of this card under the given
// mode. Higher is stronger. Only meaningful between cards of the same suit.
func (c Card) Strength(mode Mode) int {
	if c.isTrumpSuit(mode) {
		return trumpStrength[c.Rank]
	}
	return plainStrength[c.Rank]
}

// beats reports whether the challenger wins over the current best card in a
// trick where leadSuit was led. Trump beats non-trump; the led suit beats
// other plain suits; within one suit the mode's strength order decides.
func beats(challenger, current Card, leadSuit Suit, mode Mode) bool {
	if trump, ok := mode.TrumpSuit(); ok {
		challengerTrump := challenger.Suit == trump
		currentTrump := current.Suit == trump
		if challengerTrump != currentTrump {
			return challengerTrump
		}
	}

	if challenger.Suit != current.Suit {
		if current.Suit == leadSuit {
			return false
		}
		return challenger.Suit == leadSuit
	}

	return challenger.Strength(mode) > current.Strength(mode)
}

// Hand is the unordered set of cards held by one seat during a deal.
type Hand []Card

// Contains reports whether the hand holds the given card.
func (h Hand) Contains(card Card) bool {
	for _, c := range h {
		if c == card {
			return true
		}
	}
	return false
}

// Remove returns the hand without the given card. The card must be present;
// a hand losing track of a card is a programming defect.
func (h Hand) Remove(card Card) Hand {
	for i, c := range h {
		if c == card {
			out := make(Hand, 0, len(h)-1)
			out = append(out, h[:i]...)
			return append(out, h[i+1:]...)
		}
	}
	panic(fmt.Sprintf("game: card %s not in hand", card))
}

// Clone returns an independent copy of the hand.
func (h Hand) Clone() Hand {
	out := make(Hand, len(h))
	copy(out, h)
	return out
}
