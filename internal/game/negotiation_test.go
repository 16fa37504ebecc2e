package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Dealer is SeatBottom throughout, so SeatLeft always acts first.

func TestNegotiationFourPassesCancels(t *testing.T) {
	n := NewNegotiation(SeatBottom)

	for _, seat := range []Seat{SeatLeft, SeatTop, SeatRight, SeatBottom} {
		require.NoError(t, n.Apply(Accept(seat)))
	}

	assert.True(t, n.Complete())
	assert.True(t, n.NoBid())
	assert.Panics(t, func() { n.Outcome() })
}

func TestNegotiationAnnounceThenThreeAccepts(t *testing.T) {
	n := NewNegotiation(SeatBottom)

	require.NoError(t, n.Apply(Announce(SeatLeft, ModeColourHearts)))
	require.NoError(t, n.Apply(Accept(SeatTop)))
	require.NoError(t, n.Apply(Accept(SeatRight)))
	assert.False(t, n.Complete())
	require.NoError(t, n.Apply(Accept(SeatBottom)))

	require.True(t, n.Complete())
	assert.False(t, n.NoBid())

	mode, multiplier, announcer := n.Outcome()
	assert.Equal(t, ModeColourHearts, mode)
	assert.Equal(t, MultiplierNormal, multiplier)
	assert.Equal(t, Team2, announcer)
}

func TestNegotiationOutbidResetsAccepts(t *testing.T) {
	n := NewNegotiation(SeatBottom)

	require.NoError(t, n.Apply(Announce(SeatLeft, ModeColourClubs)))
	require.NoError(t, n.Apply(Accept(SeatTop)))
	require.NoError(t, n.Apply(Accept(SeatRight)))

	// Bottom outbids on the third response; the count restarts.
	require.NoError(t, n.Apply(Announce(SeatBottom, ModeNoTrumps)))
	assert.False(t, n.Complete())

	require.NoError(t, n.Apply(Accept(SeatLeft)))
	require.NoError(t, n.Apply(Accept(SeatTop)))
	require.NoError(t, n.Apply(Accept(SeatRight)))

	require.True(t, n.Complete())
	mode, _, announcer := n.Outcome()
	assert.Equal(t, ModeNoTrumps, mode)
	assert.Equal(t, Team1, announcer)
}

func TestNegotiationAnnounceMustOutrank(t *testing.T) {
	n := NewNegotiation(SeatBottom)

	require.NoError(t, n.Apply(Announce(SeatLeft, ModeColourHearts)))

	// Equal or lower modes are rejected; the state is unchanged.
	err := n.Apply(Announce(SeatTop, ModeColourHearts))
	assert.ErrorIs(t, err, ErrIllegalNegotiationAction)
	err = n.Apply(Announce(SeatTop, ModeColourClubs))
	assert.ErrorIs(t, err, ErrIllegalNegotiationAction)
	assert.Equal(t, SeatTop, n.CurrentActor())

	require.NoError(t, n.Apply(Announce(SeatTop, ModeColourSpades)))
}

func TestNegotiationOneColourPerTeam(t *testing.T) {
	n := NewNegotiation(SeatBottom)

	require.NoError(t, n.Apply(Announce(SeatLeft, ModeColourClubs)))
	require.NoError(t, n.Apply(Announce(SeatTop, ModeColourDiamonds)))

	// Left's teammate cannot announce a second Colour for Team2.
	err := n.Apply(Announce(SeatRight, ModeColourSpades))
	assert.ErrorIs(t, err, ErrIllegalNegotiationAction)

	// A non-Colour mode is still open to them.
	require.NoError(t, n.Apply(Announce(SeatRight, ModeNoTrumps)))
}

func TestNegotiationWrongTurn(t *testing.T) {
	n := NewNegotiation(SeatBottom)

	err := n.Apply(Announce(SeatTop, ModeAllTrumps))
	assert.ErrorIs(t, err, ErrIllegalNegotiationAction)
	assert.Empty(t, n.Actions())
}

func TestNegotiationNoAnnounceAfterAccepting(t *testing.T) {
	n := NewNegotiation(SeatBottom)

	require.NoError(t, n.Apply(Announce(SeatLeft, ModeColourClubs)))
	require.NoError(t, n.Apply(Accept(SeatTop)))
	require.NoError(t, n.Apply(Announce(SeatRight, ModeNoTrumps)))
	require.NoError(t, n.Apply(Accept(SeatBottom)))
	require.NoError(t, n.Apply(Accept(SeatLeft)))

	// Top already accepted once and may not re-enter the bidding.
	err := n.Apply(Announce(SeatTop, ModeAllTrumps))
	assert.ErrorIs(t, err, ErrIllegalNegotiationAction)
}

func TestNegotiationDoubleAndRedouble(t *testing.T) {
	n := NewNegotiation(SeatBottom)

	require.NoError(t, n.Apply(Announce(SeatLeft, ModeAllTrumps)))

	// Only the defending team can double, and only the standing bid.
	err := n.Apply(Double(SeatTop, ModeNoTrumps))
	assert.ErrorIs(t, err, ErrIllegalNegotiationAction)
	require.NoError(t, n.Apply(Double(SeatTop, ModeAllTrumps)))

	// After a double nobody may announce.
	err = n.Apply(Announce(SeatRight, ModeAllTrumps))
	assert.ErrorIs(t, err, ErrIllegalNegotiationAction)

	require.NoError(t, n.Apply(Accept(SeatRight)))
	require.NoError(t, n.Apply(Accept(SeatBottom)))

	// Only the announcing team redoubles.
	require.NoError(t, n.Apply(Redouble(SeatLeft, ModeAllTrumps)))

	require.NoError(t, n.Apply(Accept(SeatTop)))
	require.NoError(t, n.Apply(Accept(SeatRight)))
	require.NoError(t, n.Apply(Accept(SeatBottom)))

	require.True(t, n.Complete())
	mode, multiplier, announcer := n.Outcome()
	assert.Equal(t, ModeAllTrumps, mode)
	assert.Equal(t, MultiplierRedoubled, multiplier)
	assert.Equal(t, Team2, announcer)
}

func TestNegotiationDoubleRules(t *testing.T) {
	n := NewNegotiation(SeatBottom)

	// Nothing to double yet.
	err := n.Apply(Double(SeatLeft, ModeAllTrumps))
	assert.ErrorIs(t, err, ErrIllegalNegotiationAction)

	require.NoError(t, n.Apply(Announce(SeatLeft, ModeNoTrumps)))

	// Redouble requires a prior double.
	err = n.Apply(Redouble(SeatTop, ModeNoTrumps))
	assert.ErrorIs(t, err, ErrIllegalNegotiationAction)

	require.NoError(t, n.Apply(Accept(SeatTop)))

	// The bidder's own team cannot double.
	err = n.Apply(Double(SeatRight, ModeNoTrumps))
	assert.ErrorIs(t, err, ErrIllegalNegotiationAction)
	require.NoError(t, n.Apply(Accept(SeatRight)))

	require.NoError(t, n.Apply(Double(SeatBottom, ModeNoTrumps)))
	require.NoError(t, n.Apply(Accept(SeatLeft)))

	// A second double of the same bid is rejected.
	err = n.Apply(Double(SeatTop, ModeNoTrumps))
	assert.ErrorIs(t, err, ErrIllegalNegotiationAction)

	// Only the announcing team may redouble.
	err = n.Apply(Redouble(SeatTop, ModeNoTrumps))
	assert.ErrorIs(t, err, ErrIllegalNegotiationAction)
}

func TestNegotiationDoubleResetsAccepts(t *testing.T) {
	n := NewNegotiation(SeatBottom)

	require.NoError(t, n.Apply(Announce(SeatLeft, ModeAllTrumps)))
	require.NoError(t, n.Apply(Accept(SeatTop)))
	require.NoError(t, n.Apply(Accept(SeatRight)))
	require.NoError(t, n.Apply(Double(SeatBottom, ModeAllTrumps)))
	assert.False(t, n.Complete())

	require.NoError(t, n.Apply(Accept(SeatLeft)))
	require.NoError(t, n.Apply(Accept(SeatTop)))
	assert.False(t, n.Complete())
	require.NoError(t, n.Apply(Accept(SeatRight)))

	require.True(t, n.Complete())
	_, multiplier, _ := n.Outcome()
	assert.Equal(t, MultiplierDoubled, multiplier)
}

func TestNegotiationValidActions(t *testing.T) {
	n := NewNegotiation(SeatBottom)

	// First actor: all six announcements plus a pass.
	actions := n.ValidActions()
	assert.Len(t, actions, 7)

	require.NoError(t, n.Apply(Announce(SeatLeft, ModeColourHearts)))

	// Opponent of the bidder: higher announces, accept, double.
	actions = n.ValidActions()
	var types []NegotiationActionType
	for _, a := range actions {
		types = append(types, a.Type)
		if a.Type == ActionAnnounce {
			assert.True(t, a.Mode.OutRanks(ModeColourHearts))
		}
	}
	assert.Contains(t, types, ActionAccept)
	assert.Contains(t, types, ActionDouble)
	assert.NotContains(t, types, ActionRedouble)
}

func TestNegotiationRejectsAfterComplete(t *testing.T) {
	n := NewNegotiation(SeatBottom)
	for _, seat := range []Seat{SeatLeft, SeatTop, SeatRight, SeatBottom} {
		require.NoError(t, n.Apply(Accept(seat)))
	}

	err := n.Apply(Accept(SeatLeft))
	assert.ErrorIs(t, err, ErrIllegalNegotiationAction)
	assert.Nil(t, n.ValidActions())
}
