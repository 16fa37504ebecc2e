package game

import "fmt"

// PlayedCard pairs a card with the seat that played it.
type PlayedCard struct {
	Seat Seat
	Card Card
}

func (p PlayedCard) String() string {
	return fmt.Sprintf("%s: %s", p.Seat, p.Card)
}

// Trick is one round of four cards. The winner of trick n leads trick n+1.
type Trick struct {
	Leader Seat
	Number int // 1-based, 1..8
	Plays  []PlayedCard
}

// NewTrick starts an empty trick led by the given seat.
func NewTrick(leader Seat, number int) *Trick {
	return &Trick{Leader: leader, Number: number}
}

// Complete reports whether all four cards have been played.
func (t *Trick) Complete() bool {
	return len(t.Plays) == 4
}

// CurrentPlayer returns the seat expected to play next. The second return is
// false once the trick is complete.
func (t *Trick) CurrentPlayer() (Seat, bool) {
	if t.Complete() {
		return 0, false
	}
	seat := t.Leader
	for i := 0; i < len(t.Plays); i++ {
		seat = seat.Next()
	}
	return seat, true
}

// LeadSuit returns the suit of the first card played, if any.
func (t *Trick) LeadSuit() (Suit, bool) {
	if len(t.Plays) == 0 {
		return 0, false
	}
	return t.Plays[0].Card.Suit, true
}

// play appends the current player's card. Turn order is enforced by the
// caller; the trick only tracks the rotation.
func (t *Trick) play(card Card) {
	seat, ok := t.CurrentPlayer()
	if !ok {
		panic("game: play on a complete trick")
	}
	t.Plays = append(t.Plays, PlayedCard{Seat: seat, Card: card})
}

// winningPlay returns the play currently holding the trick. Ties are
// impossible with distinct cards.
func (t *Trick) winningPlay(mode Mode) (PlayedCard, bool) {
	if len(t.Plays) == 0 {
		return PlayedCard{}, false
	}
	leadSuit := t.Plays[0].Card.Suit
	best := t.Plays[0]
	for _, p := range t.Plays[1:] {
		if beats(p.Card, best.Card, leadSuit, mode) {
			best = p
		}
	}
	return best, true
}

// Winner returns the seat holding the trick so far.
func (t *Trick) Winner(mode Mode) Seat {
	best, ok := t.winningPlay(mode)
	if !ok {
		panic("game: winner of an empty trick")
	}
	return best.Seat
}

// Points sums the card point values of all plays under the given mode.
func (t *Trick) Points(mode Mode) int {
	total := 0
	for _, p := range t.Plays {
		total += p.Card.Points(mode)
	}
	return total
}

// hasTrump reports whether any trump card has been played in this trick.
func (t *Trick) hasTrump(trump Suit) bool {
	for _, p := range t.Plays {
		if p.Card.Suit == trump {
			return true
		}
	}
	return false
}

// highestTrump returns the strongest trump played so far, if any.
func (t *Trick) highestTrump(trump Suit, mode Mode) (Card, bool) {
	var best Card
	found := false
	for _, p := range t.Plays {
		if p.Card.Suit != trump {
			continue
		}
		if !found || p.Card.Strength(mode) > best.Strength(mode) {
			best = p.Card
			found = true
		}
	}
	return best, found
}

// Clone returns an independent copy of the trick.
func (t *Trick) Clone() Trick {
	plays := make([]PlayedCard, len(t.Plays))
	copy(plays, t.Plays)
	return Trick{Leader: t.Leader, Number: t.Number, Plays: plays}
}
