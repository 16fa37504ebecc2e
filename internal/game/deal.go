package game

import "fmt"

// DealPhase represents the lifecycle of a deal.
type DealPhase int

const (
	PhaseAwaitingCut DealPhase = iota
	PhaseNegotiating
	PhasePlaying
	PhaseComplete
)

var phaseNames = map[DealPhase]string{
	PhaseAwaitingCut: "AWAITING_CUT",
	PhaseNegotiating: "NEGOTIATING",
	PhasePlaying:     "PLAYING",
	PhaseComplete:    "COMPLETE",
}

func (p DealPhase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PHASE_%d", int(p))
}

// TrickOutcome describes the effect of an accepted play.
type TrickOutcome struct {
	TrickComplete bool
	Winner        Seat
	TrickNumber   int
	DealComplete  bool
}

// Deal is one hand of 32 cards played to completion: cut, distribution,
// negotiation, and up to 8 tricks. It owns the four hands exclusively for
// its duration.
type Deal struct {
	Dealer Seat

	phase DealPhase
	deck  Deck
	hands [4]Hand

	Negotiation *Negotiation
	Play        *HandState

	hasContract bool
	mode        Mode
	multiplier  Multiplier
	announcer   Team

	result *DealResult
}

// NewDeal starts a deal with the given dealer and deck, awaiting the cut
// from the player to the dealer's right.
func NewDeal(dealer Seat, deck Deck) *Deal {
	return &Deal{
		Dealer: dealer,
		phase:  PhaseAwaitingCut,
		deck:   deck,
	}
}

// Phase returns the deal's current lifecycle phase.
func (d *Deal) Phase() DealPhase {
	return d.phase
}

// Cutter returns the seat expected to cut, the player to the dealer's right.
func (d *Deal) Cutter() Seat {
	return d.Dealer.Previous()
}

// HandOf returns a copy of the given seat's current cards.
func (d *Deal) HandOf(seat Seat) Hand {
	return d.hands[seat].Clone()
}

// Result returns the deal's outcome once it is complete.
func (d *Deal) Result() (DealResult, bool) {
	if d.result == nil {
		return DealResult{}, false
	}
	return *d.result, true
}

// Contract returns the decided mode, multiplier, and announcing team. The
// second return is false until negotiation concludes with a bid.
func (d *Deal) Contract() (Mode, Multiplier, Team, bool) {
	if !d.hasContract {
		return 0, MultiplierNone, 0, false
	}
	return d.mode, d.multiplier, d.announcer, true
}

// ApplyCut cuts the deck, distributes the cards clockwise from the dealer's
// left in rounds of 3, 2, and 3, and opens the negotiation.
func (d *Deal) ApplyCut(position int, fromTop bool) error {
	if d.phase != PhaseAwaitingCut {
		return fmt.Errorf("%w: cut in phase %s", ErrWrongPhase, d.phase)
	}

	cut, err := d.deck.Cut(position, fromTop)
	if err != nil {
		return err
	}
	d.deck = cut

	deck := d.deck
	for _, round := range []int{3, 2, 3} {
		for _, seat := range d.Dealer.PlayOrder() {
			var cards []Card
			cards, deck = deck.deal(round)
			d.hands[seat] = append(d.hands[seat], cards...)
		}
	}
	d.deck = deck

	d.Negotiation = NewNegotiation(d.Dealer)
	d.phase = PhaseNegotiating
	return nil
}

// ApplyNegotiationAction submits one bidding action for the given actor and
// returns the valid actions for the next actor. On termination the deal
// either enters trick play (with the bidder's contract and the seat left of
// the dealer leading) or completes immediately as a no-bid deal.
func (d *Deal) ApplyNegotiationAction(actor Seat, action NegotiationAction) ([]NegotiationAction, error) {
	if d.phase != PhaseNegotiating {
		return nil, fmt.Errorf("%w: negotiation action in phase %s", ErrWrongPhase, d.phase)
	}
	if action.Actor != actor {
		return nil, fmt.Errorf("%w: action actor %s does not match submitter %s", ErrIllegalNegotiationAction, action.Actor, actor)
	}

	if err := d.Negotiation.Apply(action); err != nil {
		return nil, err
	}

	if !d.Negotiation.Complete() {
		return d.Negotiation.ValidActions(), nil
	}

	if d.Negotiation.NoBid() {
		result := NoBidResult()
		d.result = &result
		d.phase = PhaseComplete
		return nil, nil
	}

	d.mode, d.multiplier, d.announcer = d.Negotiation.Outcome()
	d.hasContract = true
	d.Play = NewHandState(d.mode, d.Dealer.Next())
	d.phase = PhasePlaying
	return nil, nil
}

// ApplyPlay submits one card for the given actor, enforcing turn order, card
// ownership, and the suit/trump obligations of the decided mode. Violations
// return ErrIllegalPlay and leave the deal, including the hand, unchanged.
func (d *Deal) ApplyPlay(actor Seat, card Card) (TrickOutcome, error) {
	if d.phase != PhasePlaying {
		return TrickOutcome{}, fmt.Errorf("%w: play in phase %s", ErrWrongPhase, d.phase)
	}

	trick := d.Play.CurrentTrick()
	current, ok := trick.CurrentPlayer()
	if !ok || current != actor {
		return TrickOutcome{}, fmt.Errorf("%w: it is %s's turn, not %s's", ErrIllegalPlay, current, actor)
	}
	if !d.hands[actor].Contains(card) {
		return TrickOutcome{}, fmt.Errorf("%w: %s does not hold %s", ErrIllegalPlay, actor, card)
	}
	if !isValidPlay(actor, card, d.hands[actor], trick, d.mode) {
		return TrickOutcome{}, fmt.Errorf("%w: %s violates the suit/trump obligations", ErrIllegalPlay, card)
	}

	number := trick.Number
	d.hands[actor] = d.hands[actor].Remove(card)
	winner, trickDone := d.Play.playCard(card)

	outcome := TrickOutcome{TrickComplete: trickDone, TrickNumber: number}
	if trickDone {
		outcome.Winner = winner
	}

	if d.Play.Complete() {
		sweeper, wasSweep := d.Play.SweepingTeam()
		result := Score(
			d.mode,
			d.multiplier,
			d.announcer,
			[2]int{d.Play.CardPoints(Team1), d.Play.CardPoints(Team2)},
			sweeper,
			wasSweep,
		)
		d.result = &result
		d.phase = PhaseComplete
		outcome.DealComplete = true
	}

	return outcome, nil
}

// CurrentActor returns the seat the deal is waiting on, if any.
func (d *Deal) CurrentActor() (Seat, bool) {
	switch d.phase {
	case PhaseAwaitingCut:
		return d.Cutter(), true
	case PhaseNegotiating:
		return d.Negotiation.CurrentActor(), true
	case PhasePlaying:
		return d.Play.CurrentTrick().CurrentPlayer()
	default:
		return 0, false
	}
}

// ValidPlays returns the legal cards for the seat currently expected to
// play. Empty outside the playing phase.
func (d *Deal) ValidPlays() []Card {
	if d.phase != PhasePlaying {
		return nil
	}
	seat, ok := d.Play.CurrentTrick().CurrentPlayer()
	if !ok {
		return nil
	}
	return ValidPlays(seat, d.hands[seat], d.Play.CurrentTrick(), d.mode)
}
