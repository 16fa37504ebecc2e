package game

// ValidPlays returns every card in the hand the player may legally play into
// the trick, applying the follow-suit and trump obligations of the mode:
//
//  1. A player who can follow the led suit must. When following under
//     AllTrumps, or following the trump suit under a Colour mode, they must
//     beat the current best card of that suit if able.
//  2. Under a Colour mode, a player who cannot follow must trump, unless
//     their partner currently holds the trick with a non-trump card. If a
//     trump has already been played they must overtrump if able, otherwise
//     any trump.
//  3. Otherwise any card in hand is legal.
func ValidPlays(seat Seat, hand Hand, trick *Trick, mode Mode) []Card {
	if len(trick.Plays) == 0 {
		return hand.Clone()
	}

	leadSuit, _ := trick.LeadSuit()
	category := mode.Category()

	var leadSuitCards []Card
	for _, c := range hand {
		if c.Suit == leadSuit {
			leadSuitCards = append(leadSuitCards, c)
		}
	}

	if len(leadSuitCards) > 0 {
		return followSuitPlays(leadSuitCards, trick, mode, category, leadSuit)
	}

	if category == CategoryColour {
		trump, _ := mode.TrumpSuit()
		return cantFollowColourPlays(seat, hand, trick, mode, trump)
	}

	// NoTrumps/AllTrumps with no led-suit cards: discard freely.
	return hand.Clone()
}

// followSuitPlays narrows the led-suit cards to those that beat the current
// best card when the mode obliges the player to climb.
func followSuitPlays(leadSuitCards []Card, trick *Trick, mode Mode, category Category, leadSuit Suit) []Card {
	mustBeat := category == CategoryAllTrumps
	if category == CategoryColour {
		if trump, ok := mode.TrumpSuit(); ok && leadSuit == trump {
			mustBeat = true
		}
	}

	if mustBeat {
		if best, ok := trick.winningPlay(mode); ok && best.Card.Suit == leadSuit {
			var higher []Card
			for _, c := range leadSuitCards {
				if beats(c, best.Card, leadSuit, mode) {
					higher = append(higher, c)
				}
			}
			if len(higher) > 0 {
				return higher
			}
		}
	}

	return leadSuitCards
}

// cantFollowColourPlays applies the trump obligations of a Colour mode when
// the player holds no cards of the led suit.
func cantFollowColourPlays(seat Seat, hand Hand, trick *Trick, mode Mode, trump Suit) []Card {
	var trumpCards []Card
	for _, c := range hand {
		if c.Suit == trump {
			trumpCards = append(trumpCards, c)
		}
	}
	if len(trumpCards) == 0 {
		return hand.Clone()
	}

	best, _ := trick.winningPlay(mode)
	partnerHolds := best.Seat.Team() == seat.Team()
	partnerHoldsPlain := partnerHolds && best.Card.Suit != trump
	trumpPlayed := trick.hasTrump(trump)

	if partnerHoldsPlain && !trumpPlayed {
		return hand.Clone()
	}

	if trumpPlayed {
		if highest, ok := trick.highestTrump(trump, mode); ok {
			var overtrumps []Card
			for _, c := range trumpCards {
				if c.Strength(mode) > highest.Strength(mode) {
					overtrumps = append(overtrumps, c)
				}
			}
			if len(overtrumps) > 0 {
				return overtrumps
			}
		}
		return trumpCards
	}

	return trumpCards
}

// isValidPlay reports whether the card is among the legal options.
func isValidPlay(seat Seat, card Card, hand Hand, trick *Trick, mode Mode) bool {
	for _, c := range ValidPlays(seat, hand, trick, mode) {
		if c == card {
			return true
		}
	}
	return false
}
