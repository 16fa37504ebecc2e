package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trickWith(leader Seat, plays ...Card) *Trick {
	trick := NewTrick(leader, 1)
	for _, c := range plays {
		trick.play(c)
	}
	return trick
}

func TestValidPlaysLeaderPlaysAnything(t *testing.T) {
	hand := Hand{
		{Rank: RankSeven, Suit: SuitClubs},
		{Rank: RankAce, Suit: SuitSpades},
	}
	plays := ValidPlays(SeatBottom, hand, NewTrick(SeatBottom, 1), ModeColourHearts)
	assert.ElementsMatch(t, []Card(hand), plays)
}

func TestValidPlaysMustFollowSuit(t *testing.T) {
	trick := trickWith(SeatLeft, Card{Rank: RankKing, Suit: SuitHearts})
	hand := Hand{
		{Rank: RankSeven, Suit: SuitHearts},
		{Rank: RankAce, Suit: SuitClubs},
	}

	plays := ValidPlays(SeatTop, hand, trick, ModeColourSpades)
	require.Len(t, plays, 1)
	assert.Equal(t, Card{Rank: RankSeven, Suit: SuitHearts}, plays[0])
}

func TestValidPlaysFollowPlainSuitNeedNotBeat(t *testing.T) {
	// Hearts is a plain suit under ColourSpades; a lower heart is fine even
	// though the ace is in hand.
	trick := trickWith(SeatLeft, Card{Rank: RankKing, Suit: SuitHearts})
	hand := Hand{
		{Rank: RankSeven, Suit: SuitHearts},
		{Rank: RankAce, Suit: SuitHearts},
	}

	plays := ValidPlays(SeatTop, hand, trick, ModeColourSpades)
	assert.Len(t, plays, 2)
}

func TestValidPlaysMustClimbOnTrumpLead(t *testing.T) {
	// Spades led and spades is trump: a holder of a stronger spade must
	// play one.
	trick := trickWith(SeatLeft, Card{Rank: RankAce, Suit: SuitSpades})
	hand := Hand{
		{Rank: RankNine, Suit: SuitSpades}, // trump 9 beats trump A
		{Rank: RankSeven, Suit: SuitSpades},
		{Rank: RankAce, Suit: SuitHearts},
	}

	plays := ValidPlays(SeatTop, hand, trick, ModeColourSpades)
	require.Len(t, plays, 1)
	assert.Equal(t, Card{Rank: RankNine, Suit: SuitSpades}, plays[0])
}

func TestValidPlaysMustClimbUnderAllTrumps(t *testing.T) {
	trick := trickWith(SeatLeft, Card{Rank: RankAce, Suit: SuitClubs})
	hand := Hand{
		{Rank: RankJack, Suit: SuitClubs},
		{Rank: RankSeven, Suit: SuitClubs},
	}

	plays := ValidPlays(SeatTop, hand, trick, ModeAllTrumps)
	require.Len(t, plays, 1)
	assert.Equal(t, Card{Rank: RankJack, Suit: SuitClubs}, plays[0])
}

func TestValidPlaysClimbImpossibleAllowsAnyOfSuit(t *testing.T) {
	trick := trickWith(SeatLeft, Card{Rank: RankJack, Suit: SuitClubs})
	hand := Hand{
		{Rank: RankNine, Suit: SuitClubs},
		{Rank: RankSeven, Suit: SuitClubs},
		{Rank: RankAce, Suit: SuitHearts},
	}

	// Nothing beats the jack under AllTrumps; any club is legal.
	plays := ValidPlays(SeatTop, hand, trick, ModeAllTrumps)
	assert.Len(t, plays, 2)
}

func TestValidPlaysMustTrumpWhenVoid(t *testing.T) {
	trick := trickWith(SeatLeft, Card{Rank: RankAce, Suit: SuitHearts})
	hand := Hand{
		{Rank: RankSeven, Suit: SuitSpades},
		{Rank: RankAce, Suit: SuitClubs},
	}

	plays := ValidPlays(SeatTop, hand, trick, ModeColourSpades)
	require.Len(t, plays, 1)
	assert.Equal(t, Card{Rank: RankSeven, Suit: SuitSpades}, plays[0])
}

func TestValidPlaysMustOvertrump(t *testing.T) {
	trick := trickWith(SeatLeft,
		Card{Rank: RankAce, Suit: SuitHearts},
		Card{Rank: RankTen, Suit: SuitSpades}, // Top trumped
	)
	hand := Hand{
		{Rank: RankJack, Suit: SuitSpades},
		{Rank: RankSeven, Suit: SuitSpades},
		{Rank: RankAce, Suit: SuitClubs},
	}

	// Right is void in hearts, a trump is on the table, and the jack can
	// overtrump: it is the only legal card.
	plays := ValidPlays(SeatRight, hand, trick, ModeColourSpades)
	require.Len(t, plays, 1)
	assert.Equal(t, Card{Rank: RankJack, Suit: SuitSpades}, plays[0])
}

func TestValidPlaysUndertrumpWhenNoOvertrump(t *testing.T) {
	trick := trickWith(SeatLeft,
		Card{Rank: RankAce, Suit: SuitHearts},
		Card{Rank: RankJack, Suit: SuitSpades},
	)
	hand := Hand{
		{Rank: RankSeven, Suit: SuitSpades},
		{Rank: RankAce, Suit: SuitClubs},
	}

	// The jack cannot be beaten, but the void player must still trump.
	plays := ValidPlays(SeatRight, hand, trick, ModeColourSpades)
	require.Len(t, plays, 1)
	assert.Equal(t, Card{Rank: RankSeven, Suit: SuitSpades}, plays[0])
}

func TestValidPlaysPartnerHoldingLiftsTrumpObligation(t *testing.T) {
	// Top (Bottom's partner) holds the trick with a plain card and no trump
	// has been played: Bottom may discard freely.
	trick := trickWith(SeatLeft,
		Card{Rank: RankSeven, Suit: SuitHearts},
		Card{Rank: RankAce, Suit: SuitHearts},
		Card{Rank: RankEight, Suit: SuitHearts},
	)
	hand := Hand{
		{Rank: RankSeven, Suit: SuitSpades},
		{Rank: RankAce, Suit: SuitClubs},
	}

	plays := ValidPlays(SeatBottom, hand, trick, ModeColourSpades)
	assert.Len(t, plays, 2)
}

func TestValidPlaysNoTrumpsDiscardFreely(t *testing.T) {
	trick := trickWith(SeatLeft, Card{Rank: RankAce, Suit: SuitHearts})
	hand := Hand{
		{Rank: RankSeven, Suit: SuitSpades},
		{Rank: RankAce, Suit: SuitClubs},
	}

	plays := ValidPlays(SeatTop, hand, trick, ModeNoTrumps)
	assert.Len(t, plays, 2)
}

func TestValidPlaysVoidEverywhereDiscardFreely(t *testing.T) {
	trick := trickWith(SeatLeft, Card{Rank: RankAce, Suit: SuitHearts})
	hand := Hand{
		{Rank: RankSeven, Suit: SuitDiamonds},
		{Rank: RankAce, Suit: SuitClubs},
	}

	// Void in hearts and holding no trump: anything goes.
	plays := ValidPlays(SeatTop, hand, trick, ModeColourSpades)
	assert.Len(t, plays, 2)
}
