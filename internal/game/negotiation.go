package game

import "fmt"

// NegotiationActionType discriminates the four negotiation moves.
type NegotiationActionType int

const (
	ActionAnnounce NegotiationActionType = iota
	ActionAccept
	ActionDouble
	ActionRedouble
)

var actionNames = map[NegotiationActionType]string{
	ActionAnnounce: "ANNOUNCE",
	ActionAccept:   "ACCEPT",
	ActionDouble:   "DOUBLE",
	ActionRedouble: "REDOUBLE",
}

func (t NegotiationActionType) String() string {
	if name, ok := actionNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ACTION_%d", int(t))
}

// NegotiationAction is one move in the bidding phase. Mode carries the
// announced mode for ANNOUNCE and the targeted mode for DOUBLE/REDOUBLE; it
// is ignored for ACCEPT.
type NegotiationAction struct {
	Type  NegotiationActionType
	Actor Seat
	Mode  Mode
}

func (a NegotiationAction) String() string {
	if a.Type == ActionAccept {
		return fmt.Sprintf("%s %s", a.Actor, a.Type)
	}
	return fmt.Sprintf("%s %s %s", a.Actor, a.Type, a.Mode)
}

// Announce builds an announcement action.
func Announce(actor Seat, mode Mode) NegotiationAction {
	return NegotiationAction{Type: ActionAnnounce, Actor: actor, Mode: mode}
}

// Accept builds an accept action.
func Accept(actor Seat) NegotiationAction {
	return NegotiationAction{Type: ActionAccept, Actor: actor}
}

// Double builds a double action targeting the given mode.
func Double(actor Seat, mode Mode) NegotiationAction {
	return NegotiationAction{Type: ActionDouble, Actor: actor, Mode: mode}
}

// Redouble builds a redouble action targeting the given mode.
func Redouble(actor Seat, mode Mode) NegotiationAction {
	return NegotiationAction{Type: ActionRedouble, Actor: actor, Mode: mode}
}

// Negotiation is the bidding phase state machine. Turn order is clockwise
// starting left of the dealer. It terminates either with a decided mode
// (three consecutive accepts on a standing bid) or with no bid at all (all
// four players pass on their first turn).
type Negotiation struct {
	dealer  Seat
	current Seat

	hasBid bool
	bid    Mode
	bidder Seat

	consecutiveAccepts int
	actions            []NegotiationAction

	doubled        map[Mode]bool
	redoubled      map[Mode]bool
	colourByTeam   map[Team]Mode
	accepted       map[Seat]bool
	doubleOccurred bool

	complete bool
	noBid    bool
}

// NewNegotiation starts a negotiation for the given dealer. The player to
// the dealer's left acts first.
func NewNegotiation(dealer Seat) *Negotiation {
	return &Negotiation{
		dealer:       dealer,
		current:      dealer.Next(),
		doubled:      make(map[Mode]bool),
		redoubled:    make(map[Mode]bool),
		colourByTeam: make(map[Team]Mode),
		accepted:     make(map[Seat]bool),
	}
}

// CurrentActor returns the seat whose turn it is.
func (n *Negotiation) CurrentActor() Seat {
	return n.current
}

// Complete reports whether the negotiation has terminated.
func (n *Negotiation) Complete() bool {
	return n.complete
}

// NoBid reports whether the negotiation terminated without any announcement.
func (n *Negotiation) NoBid() bool {
	return n.complete && n.noBid
}

// CurrentBid returns the standing bid, if any.
func (n *Negotiation) CurrentBid() (Mode, bool) {
	return n.bid, n.hasBid
}

// Actions returns the ordered history of accepted actions.
func (n *Negotiation) Actions() []NegotiationAction {
	out := make([]NegotiationAction, len(n.actions))
	copy(out, n.actions)
	return out
}

// Outcome returns the decided mode, its multiplier, and the announcing team.
// Valid only once the negotiation completed with a bid.
func (n *Negotiation) Outcome() (Mode, Multiplier, Team) {
	if !n.complete || n.noBid {
		panic("game: negotiation outcome requested before a mode was decided")
	}
	multiplier := MultiplierNormal
	if n.redoubled[n.bid] {
		multiplier = MultiplierRedoubled
	} else if n.doubled[n.bid] {
		multiplier = MultiplierDoubled
	}
	return n.bid, multiplier, n.bidder.Team()
}

// Apply validates the action for the current actor and advances the state
// machine. Illegal actions return ErrIllegalNegotiationAction and leave the
// state, including the action history, unchanged.
func (n *Negotiation) Apply(action NegotiationAction) error {
	if n.complete {
		return fmt.Errorf("%w: negotiation is already complete", ErrIllegalNegotiationAction)
	}
	if action.Actor != n.current {
		return fmt.Errorf("%w: it is %s's turn, not %s's", ErrIllegalNegotiationAction, n.current, action.Actor)
	}

	switch action.Type {
	case ActionAnnounce:
		return n.applyAnnounce(action)
	case ActionAccept:
		return n.applyAccept(action)
	case ActionDouble:
		return n.applyDouble(action)
	case ActionRedouble:
		return n.applyRedouble(action)
	default:
		return fmt.Errorf("%w: unknown action type %d", ErrIllegalNegotiationAction, action.Type)
	}
}

func (n *Negotiation) canAnnounce(actor Seat, mode Mode) error {
	if n.doubleOccurred {
		return fmt.Errorf("%w: cannot announce after a double", ErrIllegalNegotiationAction)
	}
	if n.accepted[actor] {
		return fmt.Errorf("%w: cannot announce after accepting", ErrIllegalNegotiationAction)
	}
	if n.hasBid && !mode.OutRanks(n.bid) {
		return fmt.Errorf("%w: %s does not outrank the standing bid %s", ErrIllegalNegotiationAction, mode, n.bid)
	}
	if mode.IsColour() {
		if existing, ok := n.colourByTeam[actor.Team()]; ok {
			return fmt.Errorf("%w: team already announced %s, one Colour per team per deal", ErrIllegalNegotiationAction, existing)
		}
	}
	return nil
}

func (n *Negotiation) applyAnnounce(action NegotiationAction) error {
	if err := n.canAnnounce(action.Actor, action.Mode); err != nil {
		return err
	}

	n.hasBid = true
	n.bid = action.Mode
	n.bidder = action.Actor
	n.consecutiveAccepts = 0
	if action.Mode.IsColour() {
		n.colourByTeam[action.Actor.Team()] = action.Mode
	}
	n.record(action)
	n.current = n.current.Next()
	return nil
}

func (n *Negotiation) applyAccept(action NegotiationAction) error {
	// An accept with no standing bid is a pass; four passes cancel the deal.
	n.consecutiveAccepts++
	n.accepted[action.Actor] = true
	n.record(action)

	if n.hasBid && n.consecutiveAccepts >= 3 {
		n.complete = true
		return nil
	}
	if !n.hasBid && n.consecutiveAccepts >= 4 {
		n.complete = true
		n.noBid = true
		return nil
	}

	n.current = n.current.Next()
	return nil
}

func (n *Negotiation) canDouble(actor Seat, target Mode) error {
	if !n.hasBid {
		return fmt.Errorf("%w: nothing to double", ErrIllegalNegotiationAction)
	}
	if target != n.bid {
		return fmt.Errorf("%w: can only double the standing bid %s", ErrIllegalNegotiationAction, n.bid)
	}
	if actor.Team() == n.bidder.Team() {
		return fmt.Errorf("%w: cannot double your own team's bid", ErrIllegalNegotiationAction)
	}
	if n.doubled[target] {
		return fmt.Errorf("%w: %s is already doubled", ErrIllegalNegotiationAction, target)
	}
	return nil
}

func (n *Negotiation) applyDouble(action NegotiationAction) error {
	if err := n.canDouble(action.Actor, action.Mode); err != nil {
		return err
	}

	n.doubled[action.Mode] = true
	n.doubleOccurred = true
	n.consecutiveAccepts = 0
	n.record(action)
	n.current = n.current.Next()
	return nil
}

func (n *Negotiation) canRedouble(actor Seat, target Mode) error {
	if !n.hasBid || target != n.bid {
		return fmt.Errorf("%w: can only redouble the standing bid", ErrIllegalNegotiationAction)
	}
	if !n.doubled[target] {
		return fmt.Errorf("%w: %s has not been doubled", ErrIllegalNegotiationAction, target)
	}
	if n.redoubled[target] {
		return fmt.Errorf("%w: %s is already redoubled", ErrIllegalNegotiationAction, target)
	}
	if actor.Team() != n.bidder.Team() {
		return fmt.Errorf("%w: only the announcing team can redouble", ErrIllegalNegotiationAction)
	}
	return nil
}

func (n *Negotiation) applyRedouble(action NegotiationAction) error {
	if err := n.canRedouble(action.Actor, action.Mode); err != nil {
		return err
	}

	n.redoubled[action.Mode] = true
	n.doubleOccurred = true
	n.consecutiveAccepts = 0
	n.record(action)
	n.current = n.current.Next()
	return nil
}

func (n *Negotiation) record(action NegotiationAction) {
	n.actions = append(n.actions, action)
}

// ValidActions enumerates every action the current actor may legally take.
// Empty once the negotiation is complete.
func (n *Negotiation) ValidActions() []NegotiationAction {
	if n.complete {
		return nil
	}

	actor := n.current
	var actions []NegotiationAction

	for _, mode := range Modes {
		if n.canAnnounce(actor, mode) == nil {
			actions = append(actions, Announce(actor, mode))
		}
	}

	actions = append(actions, Accept(actor))

	if n.hasBid {
		if n.canDouble(actor, n.bid) == nil {
			actions = append(actions, Double(actor, n.bid))
		}
		if n.canRedouble(actor, n.bid) == nil {
			actions = append(actions, Redouble(actor, n.bid))
		}
	}

	return actions
}
